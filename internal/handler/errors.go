package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/middleware"
)

var debugErrors atomic.Bool

// SetDebugErrors controls whether internal error details are echoed to
// clients in the detail field.
func SetDebugErrors(enabled bool) {
	debugErrors.Store(enabled)
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error         string            `json:"error"`
	Fields        map[string]string `json:"fields,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Detail        string            `json:"detail,omitempty"`
}

// respondError maps a service error onto the HTTP error taxonomy. msg is
// the generic message used for unexpected errors.
func respondError(c *gin.Context, err error, msg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrValidationFailed), errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a valid UUID"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no updatable fields supplied"})
	default:
		requestID := middleware.GetRequestID(c)
		logger.WithRequestID(requestID).Error(msg, slog.String("error", err.Error()))
		resp := ErrorResponse{Error: msg, CorrelationID: requestID}
		if debugErrors.Load() {
			resp.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
