package readstore

import (
	"context"
	"time"

	"permit-quotation-service/internal/infra"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotationReadQueries interface {
	GetQuotationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotations, error)
	ListPricedPermitRequests(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) ([]sqlc.ListPricedPermitRequestsRow, error)
	GetProjectByQuotation(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) (sqlc.Projects, error)
	ListQuotationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsFirstPageParams) ([]sqlc.Quotations, error)
	ListQuotationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsKeysetParams) ([]sqlc.Quotations, error)
	ListQuotationsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsForExportParams) ([]sqlc.Quotations, error)
}

type QuotationReadStore struct {
	queries QuotationReadQueries
	db      sqlc.DBTX
}

func NewQuotationReadStore(queries QuotationReadQueries, db sqlc.DBTX) *QuotationReadStore {
	return &QuotationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QuotationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuotationView, error) {
	row, err := r.queries.GetQuotationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get quotation", err)
	}

	item, err := toQuotationListItem(row)
	if err != nil {
		return nil, err
	}
	return &queries.QuotationView{
		QuotationListItem: *item,
		ClientID:          pgconv.UUIDPtrFromPgtype(row.ClientID),
		Description:       row.Description,
		SyncedAt:          pgconv.TimePtrFromPgtype(row.SyncedAt),
	}, nil
}

func (r *QuotationReadStore) ListPermitRequests(ctx context.Context, quotationID uuid.UUID) ([]*queries.PermitRequestView, error) {
	rows, err := r.queries.ListPricedPermitRequests(ctx, r.db, quotationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list permit requests", err)
	}

	views := make([]*queries.PermitRequestView, 0, len(rows))
	for _, row := range rows {
		v := &queries.PermitRequestView{
			ID:           row.ID,
			PermitTypeID: pgconv.UUIDPtrFromPgtype(row.PermitTypeID),
			CustomName:   pgconv.StringPtrFromPgtype(row.CustomName),
			AgencyName:   pgconv.StringPtrFromPgtype(row.AgencyName),
			TimeEstimate: pgconv.StringPtrFromPgtype(row.TimeEstimate),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
		price, err := pgconv.DecimalPtrFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode permit price", err)
		}
		v.Price = price
		switch {
		case row.PermitName.Valid:
			v.Name = row.PermitName.String
		case row.CustomName.Valid:
			v.Name = row.CustomName.String
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *QuotationReadStore) FindProject(ctx context.Context, quotationID uuid.UUID) (*queries.ProjectView, error) {
	row, err := r.queries.GetProjectByQuotation(ctx, r.db, quotationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("project not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get project", err)
	}
	return &queries.ProjectView{
		ProjectType:        row.ProjectType,
		LotArea:            pgconv.StringPtrFromPgtype(row.LotArea),
		AnnualCapacity:     pgconv.StringPtrFromPgtype(row.AnnualCapacity),
		ProjectDescription: row.ProjectDescription,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *QuotationReadStore) FindFirstPage(ctx context.Context, filters queries.QuotationFilters, limit int32) ([]*queries.QuotationListItem, error) {
	rows, err := r.queries.ListQuotationsFirstPage(ctx, r.db, sqlc.ListQuotationsFirstPageParams{
		Status:      pgconv.StringPtrToPgtype(filters.Status),
		ServiceType: pgconv.StringPtrToPgtype(filters.ServiceType),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations", err)
	}
	return toQuotationListItems(rows)
}

func (r *QuotationReadStore) FindKeyset(ctx context.Context, filters queries.QuotationFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.QuotationListItem, error) {
	rows, err := r.queries.ListQuotationsKeyset(ctx, r.db, sqlc.ListQuotationsKeysetParams{
		Status:      pgconv.StringPtrToPgtype(filters.Status),
		ServiceType: pgconv.StringPtrToPgtype(filters.ServiceType),
		CreatedAt:   pgconv.TimeToPgtype(lastCreatedAt),
		ID:          lastID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations by keyset", err)
	}
	return toQuotationListItems(rows)
}

func (r *QuotationReadStore) FindForExport(ctx context.Context, filters queries.QuotationFilters, limit int32) ([]*queries.QuotationListItem, error) {
	rows, err := r.queries.ListQuotationsForExport(ctx, r.db, sqlc.ListQuotationsForExportParams{
		Status:      pgconv.StringPtrToPgtype(filters.Status),
		ServiceType: pgconv.StringPtrToPgtype(filters.ServiceType),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations for export", err)
	}
	return toQuotationListItems(rows)
}

func toQuotationListItems(rows []sqlc.Quotations) ([]*queries.QuotationListItem, error) {
	items := make([]*queries.QuotationListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toQuotationListItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toQuotationListItem(row sqlc.Quotations) (*queries.QuotationListItem, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.ExternalEstimateAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode estimate amount", err)
	}
	return &queries.QuotationListItem{
		ID:                     row.ID,
		FirstName:              row.FirstName,
		LastName:               row.LastName,
		Email:                  row.Email,
		PhoneNumber:            row.PhoneNumber,
		CompanyName:            pgconv.StringPtrFromPgtype(row.CompanyName),
		ServiceType:            row.ServiceType,
		Status:                 row.Status,
		ExternalEstimateID:     pgconv.StringPtrFromPgtype(row.ExternalEstimateID),
		ExternalEstimateAmount: amount,
		IsSynced:               row.IsSynced,
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
		RespondedAt:            pgconv.TimePtrFromPgtype(row.RespondedAt),
	}, nil
}
