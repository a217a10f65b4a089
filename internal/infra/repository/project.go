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

type ProjectWriteQueries interface {
	UpsertProject(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertProjectParams) error
	GetProjectByQuotation(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) (sqlc.Projects, error)
}

type ProjectRepository struct {
	queries ProjectWriteQueries
	db      sqlc.DBTX
}

func NewProjectRepository(queries ProjectWriteQueries, db sqlc.DBTX) *ProjectRepository {
	return &ProjectRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProjectRepository) Upsert(ctx context.Context, tx sqlc.DBTX, p *quotation.Project) error {
	if err := r.queries.UpsertProject(ctx, tx, converter.ProjectToUpsertParams(p)); err != nil {
		return infra.WrapRepoErr("failed to upsert project", err)
	}
	return nil
}

func (r *ProjectRepository) FindByQuotation(ctx context.Context, quotationID uuid.UUID) (*quotation.Project, error) {
	row, err := r.queries.GetProjectByQuotation(ctx, r.db, quotationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("project not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get project", err)
	}
	return converter.ProjectFromRow(row), nil
}
