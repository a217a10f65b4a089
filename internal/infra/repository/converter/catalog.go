package converter

import (
	"permit-quotation-service/internal/domain/catalog"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/pgconv"
)

func AgencyToCreateParams(a *catalog.Agency) sqlc.CreateAgencyParams {
	return sqlc.CreateAgencyParams{
		ID:        a.ID(),
		Name:      a.Name(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AgencyFromRow(row sqlc.Agencies) *catalog.Agency {
	return catalog.ReconstructAgency(row.ID, row.Name, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func PermitTypeToCreateParams(pt *catalog.PermitType) sqlc.CreatePermitTypeParams {
	return sqlc.CreatePermitTypeParams{
		ID:              pt.ID(),
		AgencyID:        pt.AgencyID(),
		Name:            pt.Name(),
		Description:     pt.Description(),
		Price:           pgconv.DecimalToNumeric(pt.Price()),
		TimeEstimate:    pt.TimeEstimate(),
		ExternalItemRef: pgconv.StringPtrToPgtype(pt.ExternalItemRef()),
		CreatedAt:       pgconv.TimeToPgtype(pt.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(pt.UpdatedAt()),
	}
}

func PermitTypeToUpdateParams(pt *catalog.PermitType) sqlc.UpdatePermitTypeParams {
	return sqlc.UpdatePermitTypeParams{
		ID:              pt.ID(),
		Name:            pt.Name(),
		Description:     pt.Description(),
		Price:           pgconv.DecimalToNumeric(pt.Price()),
		TimeEstimate:    pt.TimeEstimate(),
		ExternalItemRef: pgconv.StringPtrToPgtype(pt.ExternalItemRef()),
		UpdatedAt:       pgconv.TimeToPgtype(pt.UpdatedAt()),
	}
}

func PermitTypeFromRow(row sqlc.PermitTypes) (*catalog.PermitType, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "permit type %s price", row.ID)
	}
	return catalog.ReconstructPermitType(
		row.ID,
		row.AgencyID,
		row.Name,
		row.Description,
		price,
		row.TimeEstimate,
		pgconv.StringPtrFromPgtype(row.ExternalItemRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
