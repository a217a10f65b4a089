package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"
	"slices"
	"strings"
	"time"

	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPermitTypeNotFound = errs.Categorize("permit type not found", errs.ErrNotFound)
	ErrPermitNameRequired = errs.Categorize("permit type name is required", errs.ErrValidation)
)

type AgencyView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PermitTypeView struct {
	ID              uuid.UUID       `json:"id"`
	AgencyID        uuid.UUID       `json:"agency_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	TimeEstimate    string          `json:"time_estimate"`
	ExternalItemRef *string         `json:"external_item_ref,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AgencyWithPermitsView struct {
	Agency      *AgencyView       `json:"agency"`
	PermitTypes []*PermitTypeView `json:"permit_types"`
}

type CatalogReadStore interface {
	// ListAgencies is ordered by name.
	ListAgencies(ctx context.Context) ([]*AgencyView, error)
	ListPermitTypes(ctx context.Context) ([]*PermitTypeView, error)
	FindPermitTypeByName(ctx context.Context, name string, agencyID uuid.UUID) (*PermitTypeView, error)
}

type CatalogQueries interface {
	ListAgenciesWithPermits(ctx context.Context) ([]*AgencyWithPermitsView, error)
	FindPermitType(ctx context.Context, name string, agencyID uuid.UUID) (*PermitTypeView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

// ListAgenciesWithPermits includes agencies without permit types.
func (q *catalogQueriesImpl) ListAgenciesWithPermits(ctx context.Context) ([]*AgencyWithPermitsView, error) {
	agencies, err := q.readStore.ListAgencies(ctx)
	if err != nil {
		return nil, err
	}
	permits, err := q.readStore.ListPermitTypes(ctx)
	if err != nil {
		return nil, err
	}

	byAgency := make(map[uuid.UUID][]*PermitTypeView, len(agencies))
	for _, p := range permits {
		byAgency[p.AgencyID] = append(byAgency[p.AgencyID], p)
	}

	out := make([]*AgencyWithPermitsView, len(agencies))
	for i, a := range agencies {
		list := byAgency[a.ID]
		if list == nil {
			list = []*PermitTypeView{}
		}
		slices.SortStableFunc(list, func(x, y *PermitTypeView) int {
			return strings.Compare(x.Name, y.Name)
		})
		out[i] = &AgencyWithPermitsView{Agency: a, PermitTypes: list}
	}
	return out, nil
}

// FindPermitType matches the name exactly within one agency.
func (q *catalogQueriesImpl) FindPermitType(ctx context.Context, name string, agencyID uuid.UUID) (*PermitTypeView, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.WithField("name", ErrPermitNameRequired)
	}
	pt, err := q.readStore.FindPermitTypeByName(ctx, name, agencyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPermitTypeNotFound
		}
		return nil, err
	}
	return pt, nil
}
