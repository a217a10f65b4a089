package response

import (
	"permit-quotation-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogResponse struct {
	Agencies []*queries.AgencyWithPermitsView `json:"agencies"`
}

func FromCatalog(agencies []*queries.AgencyWithPermitsView) *CatalogResponse {
	if agencies == nil {
		agencies = []*queries.AgencyWithPermitsView{}
	}
	return &CatalogResponse{Agencies: agencies}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
