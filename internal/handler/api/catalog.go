package api

import (
	"net/http"

	reqdto "permit-quotation-service/internal/handler/dto/request"
	resdto "permit-quotation-service/internal/handler/dto/response"
	"permit-quotation-service/internal/handler/httperr"
	"permit-quotation-service/internal/usecase/commands"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List agencies with their permit types
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /catalog/agencies [get]
func (h *CatalogHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.q.ListAgenciesWithPermits(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalog(agencies))
}

// @Summary Look up a permit type by exact name within an agency
// @Tags catalog
// @Produce json
// @Param name query string true "Permit type name"
// @Param agency_id query string true "Agency ID"
// @Success 200 {object} queries.PermitTypeView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /catalog/permit-types/lookup [get]
func (h *CatalogHandler) FindPermitType(c *gin.Context) {
	agencyID, err := uuid.Parse(c.Query("agency_id"))
	if err != nil {
		httperr.BadRequest(c, err, "agency_id")
		return
	}
	view, err := h.q.FindPermitType(c.Request.Context(), c.Query("name"), agencyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create agency
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAgencyRequest true "Agency"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} httperr.Response
// @Router /catalog/agencies [post]
func (h *CatalogHandler) CreateAgency(c *gin.Context) {
	var req reqdto.CreateAgencyRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateAgency(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete agency
// @Description Cascades to its permit types unless any is referenced by a quotation.
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /catalog/agencies/{id} [delete]
func (h *CatalogHandler) DeleteAgency(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteAgency(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create permit type
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Param request body reqdto.CreatePermitTypeRequest true "Permit type"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /catalog/agencies/{id}/permit-types [post]
func (h *CatalogHandler) CreatePermitType(c *gin.Context) {
	agencyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreatePermitTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreatePermitType(c.Request.Context(), agencyID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update permit type
// @Description Price changes never alter totals already synced to the estimate provider.
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Permit type ID"
// @Param request body reqdto.UpdatePermitTypeRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /catalog/permit-types/{id} [put]
func (h *CatalogHandler) UpdatePermitType(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePermitTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdatePermitType(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete permit type
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Permit type ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /catalog/permit-types/{id} [delete]
func (h *CatalogHandler) DeletePermitType(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeletePermitType(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
