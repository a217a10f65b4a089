package repository

import (
	"context"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/infra/repository/converter"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PermitRequestWriteQueries interface {
	CreatePermitRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePermitRequestParams) error
	DeletePermitRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePermitRequestParams) (int64, error)
	DeletePermitRequestsByQuotation(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) error
	GetPermitRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PermitRequests, error)
	ListPricedPermitRequests(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) ([]sqlc.ListPricedPermitRequestsRow, error)
}

type PermitRequestRepository struct {
	queries PermitRequestWriteQueries
	db      sqlc.DBTX
}

func NewPermitRequestRepository(queries PermitRequestWriteQueries, db sqlc.DBTX) *PermitRequestRepository {
	return &PermitRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PermitRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, pr *quotation.PermitRequest) error {
	if err := r.queries.CreatePermitRequest(ctx, tx, converter.PermitRequestToCreateParams(pr)); err != nil {
		return infra.WrapRepoErr("failed to create permit request", err)
	}
	return nil
}

// Delete removes the request only if it belongs to quotationID.
func (r *PermitRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, quotationID, id uuid.UUID) error {
	n, err := r.queries.DeletePermitRequest(ctx, tx, sqlc.DeletePermitRequestParams{
		ID:          id,
		QuotationID: quotationID,
	})
	return affected(n, err, "delete permit request")
}

func (r *PermitRequestRepository) DeleteAllForQuotation(ctx context.Context, tx sqlc.DBTX, quotationID uuid.UUID) error {
	if err := r.queries.DeletePermitRequestsByQuotation(ctx, tx, quotationID); err != nil {
		return infra.WrapRepoErr("failed to delete permit requests", err)
	}
	return nil
}

func (r *PermitRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*quotation.PermitRequest, error) {
	row, err := r.queries.GetPermitRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("permit request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get permit request", err)
	}
	pr, err := converter.PermitRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode permit request", err)
	}
	return pr, nil
}

func (r *PermitRequestRepository) ListPriced(ctx context.Context, quotationID uuid.UUID) ([]quotation.PricedPermit, error) {
	rows, err := r.queries.ListPricedPermitRequests(ctx, r.db, quotationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list permit requests", err)
	}
	out := make([]quotation.PricedPermit, 0, len(rows))
	for _, row := range rows {
		pp, err := converter.PricedPermitFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode permit request", err)
		}
		out = append(out, pp)
	}
	return out, nil
}
