package api

import (
	"fmt"
	"net/http"
	"strconv"

	reqdto "permit-quotation-service/internal/handler/dto/request"
	resdto "permit-quotation-service/internal/handler/dto/response"
	"permit-quotation-service/internal/handler/httperr"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/usecase/commands"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotationHandler struct {
	cmds  commands.QuotationCommands
	q     queries.QuotationQueries
	clock clock.Clock
}

func NewQuotationHandler(cmds commands.QuotationCommands, q queries.QuotationQueries, clk clock.Clock) *QuotationHandler {
	return &QuotationHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Submit a quotation request
// @Description Public intake. The estimate mirror is best-effort and reported in the response.
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuotationRequest true "Quotation request"
// @Success 201 {object} resdto.QuotationCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req reqdto.CreateQuotationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary List quotations
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, sent, approved or rejected"
// @Param service_type query string false "permit_acquisition or monitoring"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.QuotationListResponse
// @Failure 400 {object} httperr.Response
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	filters, err := queries.NewQuotationFilters(c.Query("status"), c.Query("service_type"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, convErr := strconv.Atoi(v)
		if convErr != nil {
			httperr.BadRequest(c, convErr, "limit")
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotationList(items, next))
}

// @Summary Export quotations
// @Description Streams the filtered quotations as an XLSX workbook.
// @Tags quotations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param service_type query string false "Service type filter"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /quotations/export [get]
func (h *QuotationHandler) Export(c *gin.Context) {
	filters, err := queries.NewQuotationFilters(c.Query("status"), c.Query("service_type"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	filename := fmt.Sprintf("quotations-%s.xlsx", h.clock.Now().Format("20060102-150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := h.q.Export(c.Request.Context(), filters, c.Writer); err != nil {
		if c.Writer.Written() {
			_ = c.Error(err)
			return
		}
		httperr.Abort(c, err)
	}
}

// @Summary Get quotation
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} queries.QuotationView
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update quotation
// @Description Atomic update of contact fields, status, description, permit set and project.
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.UpdateQuotationRequest true "Fields to change"
// @Success 200 {object} resdto.QuotationMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateQuotationRequest
	if !bindJSON(c, &req) {
		return
	}
	mirror, err := h.cmds.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, id, *mirror)
}

// @Summary Delete quotation
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} resdto.MirrorResponse
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	mirror, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMirror(*mirror))
}

// @Summary Add a catalogued permit
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.AddPermitRequest true "Permit type"
// @Success 201 {object} resdto.PermitChangeResponse
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/permits [post]
func (h *QuotationHandler) AddPermit(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddPermitRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.AddPermit(c.Request.Context(), id, req.PermitTypeID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPermitChange(result))
}

// @Summary Remove a permit request
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param permitRequestId path string true "Permit request ID"
// @Success 200 {object} resdto.PermitChangeResponse
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/permits/{permitRequestId} [delete]
func (h *QuotationHandler) RemovePermit(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	permitRequestID, ok := pathUUID(c, "permitRequestId")
	if !ok {
		return
	}
	result, err := h.cmds.RemovePermit(c.Request.Context(), id, permitRequestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPermitChange(result))
}

// @Summary Send quotation to the client
// @Description Emails the quotation with approve and decline links, then marks it sent.
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.SendQuotationRequest false "Custom message variant"
// @Success 200 {object} resdto.SendResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /quotations/{id}/send [post]
func (h *QuotationHandler) Send(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendQuotationRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Send(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSendResult(result))
}

// @Summary Resync the estimate mirror
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} resdto.QuotationMutationResponse
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/sync [post]
func (h *QuotationHandler) Resync(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	mirror, err := h.cmds.Resync(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, id, *mirror)
}

// @Summary Answer a sent quotation
// @Description Public endpoint behind the approve and decline email links.
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body reqdto.RespondRequest true "Signed response token"
// @Success 200 {object} resdto.RespondResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /quotations/respond [post]
func (h *QuotationHandler) Respond(c *gin.Context) {
	var req reqdto.RespondRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.HandleResponse(c.Request.Context(), req.Token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResponseResult(result))
}

func (h *QuotationHandler) respondWithView(c *gin.Context, id uuid.UUID, mirror commands.MirrorResult) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.QuotationMutationResponse{Quotation: view, Mirror: resdto.FromMirror(mirror)})
}
