package repository

import (
	"context"
	"time"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/infra/repository/converter"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QuotationWriteQueries interface {
	CreateQuotation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQuotationParams) error
	UpdateQuotationDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuotationDetailsParams) (int64, error)
	UpdateQuotationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuotationStatusParams) (int64, error)
	UpdateQuotationSync(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuotationSyncParams) (int64, error)
	MarkQuotationUnsynced(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkQuotationUnsyncedParams) (int64, error)
	DeleteQuotation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetQuotationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotations, error)
	GetQuotationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotations, error)
	MarkQuotationSyncAttempted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkQuotationSyncAttemptedParams) (int64, error)
	ListUnsyncedQuotationIDs(ctx context.Context, db sqlc.DBTX, limit int32) ([]uuid.UUID, error)
}

type QuotationRepository struct {
	queries QuotationWriteQueries
	db      sqlc.DBTX
}

func NewQuotationRepository(queries QuotationWriteQueries, db sqlc.DBTX) *QuotationRepository {
	return &QuotationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QuotationRepository) Create(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error {
	if err := r.queries.CreateQuotation(ctx, tx, converter.QuotationToCreateParams(q)); err != nil {
		return infra.WrapRepoErr("failed to create quotation", err)
	}
	return nil
}

func (r *QuotationRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error {
	n, err := r.queries.UpdateQuotationDetails(ctx, tx, converter.QuotationToDetailsParams(q))
	return affected(n, err, "update quotation details")
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error {
	n, err := r.queries.UpdateQuotationStatus(ctx, tx, converter.QuotationToStatusParams(q))
	return affected(n, err, "update quotation status")
}

// SaveSync writes only the estimate mirror columns.
func (r *QuotationRepository) SaveSync(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation, attemptedAt time.Time) error {
	n, err := r.queries.UpdateQuotationSync(ctx, tx, converter.QuotationToSyncParams(q, attemptedAt))
	return affected(n, err, "update quotation sync state")
}

// MarkSyncAttempted stamps a failed mirror attempt without touching updated_at.
func (r *QuotationRepository) MarkSyncAttempted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	n, err := r.queries.MarkQuotationSyncAttempted(ctx, tx, sqlc.MarkQuotationSyncAttemptedParams{
		ID:              id,
		SyncAttemptedAt: pgconv.TimeToPgtype(at),
	})
	return affected(n, err, "mark quotation sync attempted")
}

func (r *QuotationRepository) MarkUnsynced(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	n, err := r.queries.MarkQuotationUnsynced(ctx, tx, sqlc.MarkQuotationUnsyncedParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	return affected(n, err, "mark quotation unsynced")
}

func (r *QuotationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteQuotation(ctx, tx, id)
	return affected(n, err, "delete quotation")
}

func (r *QuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return r.find(ctx, id, r.queries.GetQuotationByID)
}

func (r *QuotationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return r.find(ctx, id, r.queries.GetQuotationByIDForUpdate)
}

func (r *QuotationRepository) find(ctx context.Context, id uuid.UUID, get func(context.Context, sqlc.DBTX, uuid.UUID) (sqlc.Quotations, error)) (*quotation.Quotation, error) {
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get quotation by id", err)
	}
	q, err := converter.QuotationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode quotation", err)
	}
	return q, nil
}

// ListUnsyncedIDs returns unanswered unsynced quotations, least recently
// attempted first.
func (r *QuotationRepository) ListUnsyncedIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUnsyncedQuotationIDs(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unsynced quotations", err)
	}
	return ids, nil
}

// affected turns a zero-row write into KindNotFound.
func affected(n int64, err error, op string) error {
	if err != nil {
		return infra.WrapRepoErr("failed to "+op, err)
	}
	if n == 0 {
		return infra.NotFound(op + ": no matching row")
	}
	return nil
}
