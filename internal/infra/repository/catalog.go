package repository

import (
	"context"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/infra/repository/converter"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	CreateAgency(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAgencyParams) error
	DeleteAgency(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetAgencyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Agencies, error)
	CreatePermitType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePermitTypeParams) error
	UpdatePermitType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePermitTypeParams) (int64, error)
	DeletePermitType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetPermitTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PermitTypes, error)
	FindPermitTypeByName(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPermitTypeByNameParams) (sqlc.PermitTypes, error)
	FindPermitTypeByNameAnyAgency(ctx context.Context, db sqlc.DBTX, name string) (sqlc.PermitTypes, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) CreateAgency(ctx context.Context, tx sqlc.DBTX, a *catalog.Agency) error {
	if err := r.queries.CreateAgency(ctx, tx, converter.AgencyToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create agency", err)
	}
	return nil
}

// DeleteAgency cascades to its permit types; referenced ones make it fail
// with KindForeignKeyViolated.
func (r *CatalogRepository) DeleteAgency(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteAgency(ctx, tx, id)
	return affected(n, err, "delete agency")
}

func (r *CatalogRepository) CreatePermitType(ctx context.Context, tx sqlc.DBTX, pt *catalog.PermitType) error {
	if err := r.queries.CreatePermitType(ctx, tx, converter.PermitTypeToCreateParams(pt)); err != nil {
		return infra.WrapRepoErr("failed to create permit type", err)
	}
	return nil
}

func (r *CatalogRepository) UpdatePermitType(ctx context.Context, tx sqlc.DBTX, pt *catalog.PermitType) error {
	n, err := r.queries.UpdatePermitType(ctx, tx, converter.PermitTypeToUpdateParams(pt))
	return affected(n, err, "update permit type")
}

func (r *CatalogRepository) DeletePermitType(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeletePermitType(ctx, tx, id)
	return affected(n, err, "delete permit type")
}

func (r *CatalogRepository) FindAgencyByID(ctx context.Context, id uuid.UUID) (*catalog.Agency, error) {
	row, err := r.queries.GetAgencyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agency not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agency", err)
	}
	return converter.AgencyFromRow(row), nil
}

func (r *CatalogRepository) FindPermitTypeByID(ctx context.Context, id uuid.UUID) (*catalog.PermitType, error) {
	row, err := r.queries.GetPermitTypeByID(ctx, r.db, id)
	return r.permitType(row, err)
}

func (r *CatalogRepository) FindPermitTypeByName(ctx context.Context, name string, agencyID *uuid.UUID) (*catalog.PermitType, error) {
	if agencyID != nil {
		row, err := r.queries.FindPermitTypeByName(ctx, r.db, sqlc.FindPermitTypeByNameParams{
			Name:     name,
			AgencyID: *agencyID,
		})
		return r.permitType(row, err)
	}
	row, err := r.queries.FindPermitTypeByNameAnyAgency(ctx, r.db, name)
	return r.permitType(row, err)
}

func (r *CatalogRepository) permitType(row sqlc.PermitTypes, err error) (*catalog.PermitType, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("permit type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get permit type", err)
	}
	pt, err := converter.PermitTypeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode permit type", err)
	}
	return pt, nil
}
