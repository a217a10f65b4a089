package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/patch"
	"permit-quotation-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAgencyNotFound      = errs.Categorize("agency not found", errs.ErrNotFound)
	ErrDuplicateAgency     = errs.Categorize("an agency with this name already exists", errs.ErrConflict)
	ErrDuplicatePermitType = errs.Categorize("this agency already offers a permit type with this name", errs.ErrConflict)
	ErrAgencyInUse         = errs.Categorize("agency has permit types referenced by quotations", errs.ErrConflict)
	ErrPermitTypeInUse     = errs.Categorize("permit type is referenced by quotations", errs.ErrConflict)
)

type PermitTypeRequest struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	TimeEstimate    string
	ExternalItemRef *string
}

func (r PermitTypeRequest) spec() catalog.PermitTypeSpec {
	return catalog.PermitTypeSpec{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		TimeEstimate:    r.TimeEstimate,
		ExternalItemRef: r.ExternalItemRef,
	}
}

// UpdatePermitTypeRequest leaves nil fields unchanged.
type UpdatePermitTypeRequest struct {
	Name            *string
	Description     *string
	Price           *decimal.Decimal
	TimeEstimate    *string
	ExternalItemRef *string
}

type CatalogCommands interface {
	CreateAgency(ctx context.Context, name string) (uuid.UUID, error)
	DeleteAgency(ctx context.Context, id uuid.UUID) error
	CreatePermitType(ctx context.Context, agencyID uuid.UUID, req PermitTypeRequest) (uuid.UUID, error)
	UpdatePermitType(ctx context.Context, id uuid.UUID, req UpdatePermitTypeRequest) error
	DeletePermitType(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateAgency(ctx context.Context, name string) (uuid.UUID, error) {
	agency, err := catalog.NewAgency(name, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateAgency(ctx, tx.DB(), agency)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return uuid.Nil, errs.WithField("name", ErrDuplicateAgency)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return agency.ID(), nil
}

func (uc *catalogUseCaseImpl) DeleteAgency(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().DeleteAgency(ctx, tx.DB(), id)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrAgencyNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrAgencyInUse
	}
	return err
}

func (uc *catalogUseCaseImpl) CreatePermitType(ctx context.Context, agencyID uuid.UUID, req PermitTypeRequest) (uuid.UUID, error) {
	pt, err := catalog.NewPermitType(agencyID, req.spec(), uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().AgencyByID(ctx, agencyID); derr != nil {
			return notFoundAs(derr, ErrAgencyNotFound)
		}
		return tx.Catalog().CreatePermitType(ctx, tx.DB(), pt)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return uuid.Nil, errs.WithField("name", ErrDuplicatePermitType)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return pt.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdatePermitType(ctx context.Context, id uuid.UUID, req UpdatePermitTypeRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, derr := tx.Reads().PermitTypeByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, ErrPermitTypeNotFound)
		}

		spec := catalog.PermitTypeSpec{
			Name:            patch.Coalesce(req.Name, pt.Name()),
			Description:     patch.Coalesce(req.Description, pt.Description()),
			Price:           patch.Coalesce(req.Price, pt.Price()),
			TimeEstimate:    patch.Coalesce(req.TimeEstimate, pt.TimeEstimate()),
			ExternalItemRef: pt.ExternalItemRef(),
		}
		if req.ExternalItemRef != nil {
			spec.ExternalItemRef = req.ExternalItemRef
		}
		if derr = pt.Revise(spec, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Catalog().UpdatePermitType(ctx, tx.DB(), pt)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.WithField("name", ErrDuplicatePermitType)
	}
	return err
}

func (uc *catalogUseCaseImpl) DeletePermitType(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().DeletePermitType(ctx, tx.DB(), id)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrPermitTypeNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrPermitTypeInUse
	}
	return err
}
