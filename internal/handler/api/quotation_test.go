//go:build unit

package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/handler/api"
	reqdto "permit-quotation-service/internal/handler/dto/request"
	resdto "permit-quotation-service/internal/handler/dto/response"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/responsetoken"
	"permit-quotation-service/internal/usecase/commands"
	"permit-quotation-service/internal/usecase/queries"
	"permit-quotation-service/tests/common/httptest"
	"permit-quotation-service/tests/common/testutil"
	commandsmock "permit-quotation-service/tests/mock/commands"
	queriesmock "permit-quotation-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuotationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuotationCommands
	mockQueries  *queriesmock.MockQuotationQueries
	handler      *api.QuotationHandler
}

func (s *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuotationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuotationQueries(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.handler = api.NewQuotationHandler(s.mockCommands, s.mockQueries, clk)

	s.router.POST("/quotations", s.handler.Create)
	s.router.POST("/quotations/respond", s.handler.Respond)
	s.router.GET("/quotations", s.handler.List)
	s.router.GET("/quotations/export", s.handler.Export)
	s.router.GET("/quotations/:id", s.handler.Get)
	s.router.PUT("/quotations/:id", s.handler.Update)
	s.router.DELETE("/quotations/:id", s.handler.Delete)
	s.router.POST("/quotations/:id/permits", s.handler.AddPermit)
	s.router.DELETE("/quotations/:id/permits/:permitRequestId", s.handler.RemovePermit)
	s.router.POST("/quotations/:id/send", s.handler.Send)
	s.router.POST("/quotations/:id/sync", s.handler.Resync)
}

func (s *QuotationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotationHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}

func validCreateRequest() reqdto.CreateQuotationRequest {
	return reqdto.CreateQuotationRequest{
		FirstName:          "Maria",
		LastName:           "Santos",
		Email:              "maria@example.com",
		PhoneNumber:        "+63 917 555 0101",
		ServiceType:        "permit_acquisition",
		ProjectDescription: "Poultry farm expansion",
		PermitNames:        []string{"ECC"},
	}
}

func quotationView(id uuid.UUID) *queries.QuotationView {
	return &queries.QuotationView{
		QuotationListItem: queries.QuotationListItem{
			ID:          id,
			FirstName:   "Maria",
			LastName:    "Santos",
			Email:       "maria@example.com",
			ServiceType: "permit_acquisition",
			Status:      "pending",
		},
		PermitRequests: []*queries.PermitRequestView{},
	}
}

func (s *QuotationHandlerTestSuite) TestCreate() {
	url := "/quotations"
	reqBody := validCreateRequest()
	quotationID := uuid.New()

	s.Run("success: returns 201 with the mirror outcome", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateQuotationRequest) (*commands.CreateQuotationResult, error) {
				s.Equal("Maria", req.FirstName)
				s.Equal("maria@example.com", req.Email)
				s.Equal([]string{"ECC"}, req.PermitNames)
				s.Nil(req.AgencyID)
				return &commands.CreateQuotationResult{
					QuotationID: quotationID,
					Mirror:      commands.MirrorResult{Status: commands.MirrorSynced},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuotationCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(quotationID, response.ID)
		s.Equal("synced", response.Mirror.Status)
		s.Empty(response.Mirror.Warning)
		s.Empty(response.Warnings)
	})

	s.Run("success: provider outage is reported, not failed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateQuotationResult{
				QuotationID: quotationID,
				Mirror:      commands.MirrorResult{Status: commands.MirrorFailed, Err: errors.New("timeout")},
				Warnings:    []string{`permit "Unknown" is not in the catalog and was added as a custom request`},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuotationCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("failed", response.Mirror.Status)
		s.NotEmpty(response.Mirror.Warning)
		s.Len(response.Warnings, 1)
		s.NotContains(rec.Body.String(), "timeout")
	})

	s.Run("success: agency scope is passed through", func() {
		agencyID := uuid.New()
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("agency_id", agencyID.String()))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateQuotationRequest) (*commands.CreateQuotationResult, error) {
				s.Require().NotNil(req.AgencyID)
				s.Equal(agencyID, *req.AgencyID)
				return &commands.CreateQuotationResult{QuotationID: quotationID, Mirror: commands.MirrorResult{Status: commands.MirrorSynced}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 with field detail on binding errors", func() {
		tooMany := make([]string, 51)
		for i := range tooMany {
			tooMany[i] = "Permit"
		}
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
			field  string
		}{
			{name: "too many permit names", mutate: testutil.Field("permit_names", tooMany), field: "permit_names"},
			{name: "permit name too long", mutate: testutil.Field("permit_names", []string{strings.Repeat("a", 201)}), field: "permit_names[0]"},
			{name: "too many custom permits", mutate: testutil.Field("custom_permits", tooMany), field: "custom_permits"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
				s.Contains(rec.Body.String(), `"field":"`+tc.field+`"`)
			})
		}
	})

	s.Run("error: malformed json returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain validation carries the field name", func() {
		testCases := []struct {
			name  string
			err   error
			field string
			msg   string
		}{
			{name: "email", err: errs.WithField("email", quotation.ErrInvalidEmail), field: "email", msg: "email is invalid"},
			{name: "first name", err: errs.WithField("first_name", quotation.ErrFirstNameRequired), field: "first_name", msg: "first name is required"},
			{name: "service type", err: errs.WithField("service_type", quotation.ErrInvalidServiceType), field: "service_type", msg: "service type must be"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrap(tc.err, "create quotation")).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
				s.Contains(rec.Body.String(), `"field":"`+tc.field+`"`)
			})
		}
	})
}

func (s *QuotationHandlerTestSuite) TestList() {
	s.Run("success: passes filters, limit and cursor", func() {
		items := []*queries.QuotationListItem{{ID: uuid.New(), Status: "sent"}}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			DoAndReturn(func(_ context.Context, f queries.QuotationFilters, _ *queries.Cursor, _ int) ([]*queries.QuotationListItem, *queries.Cursor, error) {
				s.Require().NotNil(f.Status)
				s.Equal("sent", *f.Status)
				s.Nil(f.ServiceType)
				return items, &queries.Cursor{After: "next"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?status=sent&limit=5&after=abc", nil, "token")

		var response resdto.QuotationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Quotations, 1)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: defaults and empty page", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.QuotationFilters{}, nil, queries.DefaultListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"quotations":[]`)
		s.NotContains(rec.Body.String(), "next_cursor")
	})

	s.Run("error: 400 on invalid query", func() {
		testCases := []struct {
			name  string
			query string
			field string
		}{
			{name: "unknown status", query: "status=archived", field: "status"},
			{name: "unknown service type", query: "service_type=consulting", field: "service_type"},
			{name: "non numeric limit", query: "limit=ten", field: "limit"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?"+tc.query, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
				s.Contains(rec.Body.String(), `"field":"`+tc.field+`"`)
			})
		}
	})

	s.Run("error: invalid cursor from queries", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Categorize("invalid cursor", errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?after=garbage", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *QuotationHandlerTestSuite) TestExport() {
	s.Run("success: streams the workbook as an attachment", func() {
		s.mockQueries.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ queries.QuotationFilters, w io.Writer) error {
				_, err := w.Write([]byte("PK-xlsx-bytes"))
				return err
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/export", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		s.Equal(`attachment; filename="quotations-20260302-090000.xlsx"`, rec.Header().Get("Content-Disposition"))
		s.Equal("PK-xlsx-bytes", rec.Body.String())
	})

	s.Run("error: failure before writing maps to status", func() {
		s.mockQueries.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("read failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/export", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *QuotationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the quotation view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(quotationView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/"+id.String(), nil, "token")

		var response queries.QuotationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"field":"id"`)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrQuotationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "quotation not found")
	})
}

func (s *QuotationHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/quotations/" + id.String()

	s.Run("success: returns the fresh view with the mirror outcome", func() {
		permitTypeID := uuid.New()
		body := map[string]any{
			"status":  "sent",
			"permits": map[string]any{"permit_type_ids": []string{permitTypeID.String()}, "custom_names": []string{"Barangay Clearance"}},
		}
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.UpdateQuotationRequest) (*commands.MirrorResult, error) {
				s.Require().NotNil(req.Status)
				s.Equal("sent", *req.Status)
				s.Nil(req.FirstName)
				s.Require().NotNil(req.Permits)
				s.Equal([]uuid.UUID{permitTypeID}, req.Permits.PermitTypeIDs)
				s.Equal([]string{"Barangay Clearance"}, req.Permits.CustomNames)
				return &commands.MirrorResult{Status: commands.MirrorSynced}, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(quotationView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")

		var response resdto.QuotationMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Quotation)
		s.Equal(id, response.Quotation.ID)
		s.Equal("synced", response.Mirror.Status)
	})

	s.Run("error: permit set replacement failure leaves nothing to read", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Wrap(commands.ErrPermitTypeNotFound, "replace permits")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"permits": map[string]any{}}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "permit type not found")
	})

	s.Run("error: 404 when quotation is missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrQuotationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"description": "x"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "quotation not found")
	})
}

func (s *QuotationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns the mirror outcome", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(&commands.MirrorResult{Status: commands.MirrorSkipped}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String(), nil, "token")

		var response resdto.MirrorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("skipped", response.Status)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil, commands.ErrQuotationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "quotation not found")
	})
}

func (s *QuotationHandlerTestSuite) TestPermits() {
	id := uuid.New()
	permitTypeID := uuid.New()
	permitRequestID := uuid.New()

	s.Run("success: add returns 201", func() {
		s.mockCommands.EXPECT().AddPermit(gomock.Any(), id, permitTypeID).
			Return(&commands.PermitChangeResult{PermitRequestID: permitRequestID, Mirror: commands.MirrorResult{Status: commands.MirrorSynced}}, nil).Times(1)

		body := map[string]any{"permit_type_id": permitTypeID.String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/"+id.String()+"/permits", body, "token")

		var response resdto.PermitChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(permitRequestID, response.PermitRequestID)
	})

	s.Run("error: add without permit_type_id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/"+id.String()+"/permits", map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"field":"permit_type_id"`)
	})

	s.Run("error: add with unknown permit type returns 404", func() {
		s.mockCommands.EXPECT().AddPermit(gomock.Any(), id, permitTypeID).
			Return(nil, commands.ErrPermitTypeNotFound).Times(1)

		body := map[string]any{"permit_type_id": permitTypeID.String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/"+id.String()+"/permits", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "permit type not found")
	})

	s.Run("success: remove returns 200", func() {
		s.mockCommands.EXPECT().RemovePermit(gomock.Any(), id, permitRequestID).
			Return(&commands.PermitChangeResult{PermitRequestID: permitRequestID, Mirror: commands.MirrorResult{Status: commands.MirrorFailed, Err: errors.New("down")}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String()+"/permits/"+permitRequestID.String(), nil, "token")

		var response resdto.PermitChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("failed", response.Mirror.Status)
		s.NotEmpty(response.Mirror.Warning)
	})

	s.Run("error: remove with malformed permit request id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String()+"/permits/nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"field":"permitRequestId"`)
	})

	s.Run("error: remove a request of another quotation returns 404", func() {
		s.mockCommands.EXPECT().RemovePermit(gomock.Any(), id, permitRequestID).
			Return(nil, commands.ErrPermitRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String()+"/permits/"+permitRequestID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "permit request not found")
	})
}

func (s *QuotationHandlerTestSuite) TestSend() {
	id := uuid.New()
	url := "/quotations/" + id.String() + "/send"

	s.Run("success: empty body sends the standard variant", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), id, commands.SendOptions{}).
			Return(&commands.SendResult{MessageID: "<msg-1@example.com>", Mirror: commands.MirrorResult{Status: commands.MirrorSynced}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.SendResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("<msg-1@example.com>", response.MessageID)
		s.Empty(response.Warnings)
	})

	s.Run("success: custom message selects the custom variant", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, opts commands.SendOptions) (*commands.SendResult, error) {
				s.Require().NotNil(opts.CustomMessage)
				s.Equal("Please see the attached quotation.", *opts.CustomMessage)
				return &commands.SendResult{MessageID: "m", Mirror: commands.MirrorResult{Status: commands.MirrorSkipped}}, nil
			}).Times(1)

		body := map[string]any{"custom_message": "Please see the attached quotation."}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: custom message too long returns 400", func() {
		body := map[string]any{"custom_message": strings.Repeat("a", 5001)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"field":"custom_message"`)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no estimate yet", err: quotation.ErrEstimateRequired, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "an estimate must exist"},
			{name: "already sent", err: quotation.ErrAlreadySent, expectedStatus: http.StatusConflict, expectedMsg: "already been sent"},
			{name: "not found", err: commands.ErrQuotationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "quotation not found"},
			{name: "delivery failed", err: errs.Wrap(commands.ErrNotificationFailed, "smtp: 421"), expectedStatus: http.StatusBadGateway, expectedMsg: "An external service failed"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Send(gomock.Any(), id, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "smtp")
			})
		}
	})
}

func (s *QuotationHandlerTestSuite) TestResync() {
	id := uuid.New()

	s.Run("success: returns the fresh view", func() {
		s.mockCommands.EXPECT().Resync(gomock.Any(), id).
			Return(&commands.MirrorResult{Status: commands.MirrorSynced}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(quotationView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/"+id.String()+"/sync", nil, "token")

		var response resdto.QuotationMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("synced", response.Mirror.Status)
	})
}

func (s *QuotationHandlerTestSuite) TestRespond() {
	url := "/quotations/respond"
	quotationID := uuid.New()

	s.Run("success: returns the recorded status", func() {
		s.mockCommands.EXPECT().HandleResponse(gomock.Any(), "signed-token").
			Return(&commands.ResponseResult{
				QuotationID: quotationID,
				Status:      quotation.StatusApproved,
				Mirror:      commands.MirrorResult{Status: commands.MirrorSynced},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": "signed-token"}, "")

		var response resdto.RespondResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quotationID, response.QuotationID)
		s.Equal("approved", response.Status)
		s.False(response.Replayed)
	})

	s.Run("success: replay is flagged", func() {
		s.mockCommands.EXPECT().HandleResponse(gomock.Any(), "signed-token").
			Return(&commands.ResponseResult{QuotationID: quotationID, Status: quotation.StatusApproved, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": "signed-token"}, "")

		var response resdto.RespondResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
	})

	s.Run("error: missing token returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"field":"token"`)
	})

	s.Run("error: maps token and state errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "expired", err: responsetoken.ErrExpiredToken, expectedStatus: http.StatusGone, expectedMsg: "response link has expired"},
			{name: "tampered", err: responsetoken.ErrInvalidToken, expectedStatus: http.StatusBadRequest, expectedMsg: "response token is invalid"},
			{name: "malformed payload", err: responsetoken.ErrMalformedPayload, expectedStatus: http.StatusBadRequest, expectedMsg: "payload is malformed"},
			{name: "quotation deleted", err: commands.ErrQuotationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "quotation not found"},
			{name: "opposite answer", err: quotation.ErrAlreadyAnswered, expectedStatus: http.StatusConflict, expectedMsg: "already been answered"},
			{name: "never sent", err: quotation.ErrNotAwaitingReply, expectedStatus: http.StatusConflict, expectedMsg: "has not been sent"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().HandleResponse(gomock.Any(), "signed-token").Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": "signed-token"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
