//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"permit-quotation-service/internal/handler/dto/request"
	"permit-quotation-service/internal/handler/dto/response"
	"permit-quotation-service/internal/usecase/queries"
	"permit-quotation-service/tests/common/authtest"
	"permit-quotation-service/tests/common/dbtest"
	"permit-quotation-service/tests/common/httptest"
	"permit-quotation-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	agenciesURL    = "/api/catalog/agencies"
	agencyURL      = "/api/catalog/agencies/%s"
	permitTypesURL = "/api/catalog/agencies/%s/permit-types"
	permitTypeURL  = "/api/catalog/permit-types/%s"
	lookupURL      = "/api/catalog/permit-types/lookup"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
}

func (s *CatalogSuite) listCatalog() response.CatalogResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, agenciesURL, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out response.CatalogResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &out))
	return out
}

func (s *CatalogSuite) seededAgencyID() uuid.UUID {
	for _, a := range s.listCatalog().Agencies {
		if a.Agency.Name == "DENR" {
			return a.Agency.ID
		}
	}
	s.T().Fatal("seeded agency missing")
	return uuid.Nil
}

func (s *CatalogSuite) TestListAgencies() {
	s.Run("Normal case: public listing groups permit types by agency", func() {
		t := s.T()
		agencyID := dbtest.CreateAgency(t, s.DB, "BFP")
		dbtest.CreatePermitType(t, s.DB, agencyID, "Fire Safety Inspection Certificate", "1500.00", "2 weeks")
		dbtest.CreateAgency(t, s.DB, "LGU")

		out := s.listCatalog()
		names := make([]string, 0, len(out.Agencies))
		for _, a := range out.Agencies {
			names = append(names, a.Agency.Name)
		}
		require.Equal(t, []string{"BFP", "DENR", "LGU"}, names)

		denr := out.Agencies[1]
		got := make([]queries.PermitTypeView, 0, len(denr.PermitTypes))
		for _, p := range denr.PermitTypes {
			got = append(got, *p)
		}
		want := []queries.PermitTypeView{
			{AgencyID: denr.Agency.ID, Name: "Discharge Permit", Description: "Wastewater discharge", Price: decimal.RequireFromString("3500"), TimeEstimate: "20 days"},
			{AgencyID: denr.Agency.ID, Name: "Environmental Compliance Certificate", Description: "ECC for new projects", Price: decimal.RequireFromString("5000"), TimeEstimate: "30-45 days"},
		}
		diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(queries.PermitTypeView{}, "ID", "CreatedAt", "UpdatedAt"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		)
		require.Empty(t, diff)

		require.Empty(t, out.Agencies[2].PermitTypes)
	})
}

func (s *CatalogSuite) TestLookup() {
	s.Run("Normal case: exact name within the agency", func() {
		t := s.T()
		agencyID := s.seededAgencyID()

		q := url.Values{"name": {"Discharge Permit"}, "agency_id": {agencyID.String()}}
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, lookupURL+"?"+q.Encode(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var view queries.PermitTypeView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Equal(t, "Discharge Permit", view.Name)
	})

	s.Run("Error case: other agency or different case is not a match", func() {
		t := s.T()
		otherID := dbtest.CreateAgency(t, s.DB, "BFP")

		cases := []url.Values{
			{"name": {"Discharge Permit"}, "agency_id": {otherID.String()}},
			{"name": {"discharge permit"}, "agency_id": {s.seededAgencyID().String()}},
		}
		for _, q := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, lookupURL+"?"+q.Encode(), nil, "")
			require.Equal(t, http.StatusNotFound, w.Code, q.Encode())
		}
	})
}

func (s *CatalogSuite) TestAdminManagement() {
	s.Run("Normal case: create agency and permit type, then edit the price", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, request.CreateAgencyRequest{Name: "BFP"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var agency response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &agency))

		body := request.CreatePermitTypeRequest{
			Name:         "Fire Safety Inspection Certificate",
			Price:        decimal.RequireFromString("1500.555"),
			TimeEstimate: "2 weeks",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(permitTypesURL, agency.ID), body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var permitType response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &permitType))

		var price decimal.Decimal
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT price FROM permit_types WHERE id = $1", permitType.ID).Scan(&price))
		require.True(t, decimal.RequireFromString("1500.56").Equal(price), "price is stored with two decimals")

		newPrice := decimal.RequireFromString("1750")
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(permitTypeURL, permitType.ID),
			request.UpdatePermitTypeRequest{Price: &newPrice}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT price FROM permit_types WHERE id = $1", permitType.ID).Scan(&price))
		require.True(t, newPrice.Equal(price))
	})

	s.Run("Error case: duplicates and invalid values", func() {
		t := s.T()
		token := s.adminToken()
		denrID := s.seededAgencyID()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, request.CreateAgencyRequest{Name: "DENR"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(permitTypesURL, denrID),
			request.CreatePermitTypeRequest{Name: "Discharge Permit", Price: decimal.NewFromInt(1)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already offers")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(permitTypesURL, denrID),
			request.CreatePermitTypeRequest{Name: "Tree Cutting Permit", Price: decimal.NewFromInt(-1)}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(permitTypesURL, uuid.New()),
			request.CreatePermitTypeRequest{Name: "Tree Cutting Permit", Price: decimal.NewFromInt(1)}, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: referenced permit types block deletes", func() {
		t := s.T()
		token := s.adminToken()

		quotation := request.CreateQuotationRequest{
			FirstName:   "Jose",
			LastName:    "Reyes",
			Email:       "jose@example.com",
			PhoneNumber: "+63 917 555 0199",
			ServiceType: "permit_acquisition",
			PermitNames: []string{"Discharge Permit"},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotations", quotation, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		denrID := s.seededAgencyID()
		var referencedID, freeID uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT id FROM permit_types WHERE agency_id = $1 AND name = 'Discharge Permit'", denrID).Scan(&referencedID))
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT id FROM permit_types WHERE agency_id = $1 AND name = 'Environmental Compliance Certificate'", denrID).Scan(&freeID))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(permitTypeURL, referencedID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "referenced by quotations")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(agencyURL, denrID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "referenced by quotations")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(permitTypeURL, freeID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Normal case: deleting an unused agency cascades to its permit types", func() {
		t := s.T()
		token := s.adminToken()
		agencyID := dbtest.CreateAgency(t, s.DB, "LGU")
		dbtest.CreatePermitType(t, s.DB, agencyID, "Mayor's Permit", "800.00", "1 week")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(agencyURL, agencyID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM permit_types WHERE agency_id = $1", agencyID).Scan(&count))
		require.Zero(t, count)
	})

	s.Run("Error case: catalog writes require an admin", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, request.CreateAgencyRequest{Name: "BFP"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		staff := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", "staff")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, request.CreateAgencyRequest{Name: "BFP"}, staff)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
