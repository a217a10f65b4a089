package converter

import (
	"time"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/domain/quotation"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func QuotationToCreateParams(q *quotation.Quotation) sqlc.CreateQuotationParams {
	c := q.Contact()
	return sqlc.CreateQuotationParams{
		ID:                     q.ID(),
		ClientID:               pgconv.UUIDPtrToPgtype(q.ClientID()),
		FirstName:              c.FirstName(),
		LastName:               c.LastName(),
		Email:                  c.Email(),
		PhoneNumber:            c.Phone(),
		CompanyName:            pgconv.StringPtrToPgtype(c.CompanyName()),
		ServiceType:            q.ServiceType().String(),
		Description:            q.Description(),
		Status:                 q.Status().String(),
		ExternalEstimateID:     pgconv.StringPtrToPgtype(q.ExternalEstimateID()),
		ExternalEstimateAmount: pgconv.DecimalPtrToNumeric(q.ExternalEstimateAmount()),
		IsSynced:               q.IsSynced(),
		SyncedAt:               pgconv.TimePtrToPgtype(q.SyncedAt()),
		RespondedAt:            pgconv.TimePtrToPgtype(q.RespondedAt()),
		CreatedAt:              pgconv.TimeToPgtype(q.CreatedAt()),
		UpdatedAt:              pgconv.TimeToPgtype(q.UpdatedAt()),
	}
}

func QuotationToDetailsParams(q *quotation.Quotation) sqlc.UpdateQuotationDetailsParams {
	c := q.Contact()
	return sqlc.UpdateQuotationDetailsParams{
		ID:          q.ID(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		PhoneNumber: c.Phone(),
		CompanyName: pgconv.StringPtrToPgtype(c.CompanyName()),
		Description: q.Description(),
		Status:      q.Status().String(),
		IsSynced:    q.IsSynced(),
		UpdatedAt:   pgconv.TimeToPgtype(q.UpdatedAt()),
	}
}

func QuotationToStatusParams(q *quotation.Quotation) sqlc.UpdateQuotationStatusParams {
	return sqlc.UpdateQuotationStatusParams{
		ID:          q.ID(),
		Status:      q.Status().String(),
		RespondedAt: pgconv.TimePtrToPgtype(q.RespondedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(q.UpdatedAt()),
	}
}

func QuotationToSyncParams(q *quotation.Quotation, attemptedAt time.Time) sqlc.UpdateQuotationSyncParams {
	return sqlc.UpdateQuotationSyncParams{
		ID:                     q.ID(),
		ExternalEstimateID:     pgconv.StringPtrToPgtype(q.ExternalEstimateID()),
		ExternalEstimateAmount: pgconv.DecimalPtrToNumeric(q.ExternalEstimateAmount()),
		IsSynced:               q.IsSynced(),
		SyncedAt:               pgconv.TimePtrToPgtype(q.SyncedAt()),
		SyncAttemptedAt:        pgconv.TimeToPgtype(attemptedAt),
	}
}

func QuotationFromRow(row sqlc.Quotations) (*quotation.Quotation, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.ExternalEstimateAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "quotation %s estimate amount", row.ID)
	}
	return quotation.ReconstructQuotation(quotation.Snapshot{
		ID:                     row.ID,
		ClientID:               pgconv.UUIDPtrFromPgtype(row.ClientID),
		Contact:                quotation.ReconstructContact(row.FirstName, row.LastName, row.Email, row.PhoneNumber, pgconv.StringPtrFromPgtype(row.CompanyName)),
		ServiceType:            quotation.ServiceType(row.ServiceType),
		Description:            row.Description,
		Status:                 quotation.Status(row.Status),
		ExternalEstimateID:     pgconv.StringPtrFromPgtype(row.ExternalEstimateID),
		ExternalEstimateAmount: amount,
		IsSynced:               row.IsSynced,
		SyncedAt:               pgconv.TimePtrFromPgtype(row.SyncedAt),
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
		RespondedAt:            pgconv.TimePtrFromPgtype(row.RespondedAt),
	}), nil
}

func PermitRequestToCreateParams(pr *quotation.PermitRequest) sqlc.CreatePermitRequestParams {
	return sqlc.CreatePermitRequestParams{
		ID:           pr.ID(),
		QuotationID:  pr.QuotationID(),
		PermitTypeID: pgconv.UUIDPtrToPgtype(pr.PermitTypeID()),
		CustomName:   pgconv.StringPtrToPgtype(pr.CustomName()),
		CreatedAt:    pgconv.TimeToPgtype(pr.CreatedAt()),
	}
}

func PermitRequestFromRow(row sqlc.PermitRequests) (*quotation.PermitRequest, error) {
	return quotation.ReconstructPermitRequest(
		row.ID,
		row.QuotationID,
		pgconv.UUIDPtrFromPgtype(row.PermitTypeID),
		pgconv.StringPtrFromPgtype(row.CustomName),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func PricedPermitFromRow(row sqlc.ListPricedPermitRequestsRow) (quotation.PricedPermit, error) {
	pr, err := quotation.ReconstructPermitRequest(
		row.ID,
		row.QuotationID,
		pgconv.UUIDPtrFromPgtype(row.PermitTypeID),
		pgconv.StringPtrFromPgtype(row.CustomName),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
	if err != nil {
		return quotation.PricedPermit{}, err
	}
	if !row.PermitTypeID.Valid {
		return quotation.PricedPermit{Request: pr}, nil
	}

	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return quotation.PricedPermit{}, errs.Wrapf(err, "permit request %s price", row.ID)
	}
	pt := catalog.ReconstructPermitType(
		uuid.UUID(row.PermitTypeID.Bytes),
		uuid.UUID(row.AgencyID.Bytes),
		row.PermitName.String,
		row.PermitDescription.String,
		price,
		row.TimeEstimate.String,
		pgconv.StringPtrFromPgtype(row.ExternalItemRef),
		pgconv.TimeFromPgtype(row.PermitCreatedAt),
		pgconv.TimeFromPgtype(row.PermitUpdatedAt),
	)
	return quotation.PricedPermit{Request: pr, PermitType: pt}, nil
}

func ProjectToUpsertParams(p *quotation.Project) sqlc.UpsertProjectParams {
	return sqlc.UpsertProjectParams{
		QuotationID:        p.QuotationID(),
		ProjectType:        p.ProjectType(),
		LotArea:            pgconv.StringPtrToPgtype(p.LotArea()),
		AnnualCapacity:     pgconv.StringPtrToPgtype(p.AnnualCapacity()),
		ProjectDescription: p.Description(),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProjectFromRow(row sqlc.Projects) *quotation.Project {
	return quotation.ReconstructProject(
		row.QuotationID,
		row.ProjectType,
		pgconv.StringPtrFromPgtype(row.LotArea),
		pgconv.StringPtrFromPgtype(row.AnnualCapacity),
		row.ProjectDescription,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
