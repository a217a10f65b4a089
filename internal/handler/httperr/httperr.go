package httperr

import (
	"log/slog"
	"net/http"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field string `json:"field"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status by its category. External provider and
// uncategorized errors keep their detail out of the response.
func Abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		var detail any
		if field := errs.Field(err); field != "" {
			detail = FieldDetail{Field: field}
		}
		AbortWithError(c, http.StatusBadRequest, err, errs.Message(err), detail)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrBusinessRule):
		AbortWithError(c, http.StatusUnprocessableEntity, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrExpiredToken):
		AbortWithError(c, http.StatusGone, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrInvalidToken):
		AbortWithError(c, http.StatusBadRequest, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrExternalProvider):
		slog.Error("external provider failure", "path", c.FullPath(), "error", err)
		AbortWithError(c, http.StatusBadGateway, err, "An external service failed, please try again later", nil)
	default:
		slog.Error("unhandled error", "path", c.FullPath(), "error", err, "stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, err error, field string) {
	var detail any
	if field != "" {
		detail = FieldDetail{Field: field}
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}
