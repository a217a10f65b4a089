package readstore

import (
	"context"

	"permit-quotation-service/internal/infra"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	ListAgencies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Agencies, error)
	ListPermitTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.PermitTypes, error)
	FindPermitTypeByName(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPermitTypeByNameParams) (sqlc.PermitTypes, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ListAgencies(ctx context.Context) ([]*queries.AgencyView, error) {
	rows, err := r.queries.ListAgencies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agencies", err)
	}

	views := make([]*queries.AgencyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.AgencyView{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *CatalogReadStore) ListPermitTypes(ctx context.Context) ([]*queries.PermitTypeView, error) {
	rows, err := r.queries.ListPermitTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list permit types", err)
	}

	views := make([]*queries.PermitTypeView, 0, len(rows))
	for _, row := range rows {
		v, err := toPermitTypeView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *CatalogReadStore) FindPermitTypeByName(ctx context.Context, name string, agencyID uuid.UUID) (*queries.PermitTypeView, error) {
	row, err := r.queries.FindPermitTypeByName(ctx, r.db, sqlc.FindPermitTypeByNameParams{
		Name:     name,
		AgencyID: agencyID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("permit type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find permit type by name", err)
	}
	return toPermitTypeView(row)
}

func toPermitTypeView(row sqlc.PermitTypes) (*queries.PermitTypeView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode permit type price", err)
	}
	return &queries.PermitTypeView{
		ID:              row.ID,
		AgencyID:        row.AgencyID,
		Name:            row.Name,
		Description:     row.Description,
		Price:           price,
		TimeEstimate:    row.TimeEstimate,
		ExternalItemRef: pgconv.StringPtrFromPgtype(row.ExternalItemRef),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
