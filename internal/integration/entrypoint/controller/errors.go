// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/ops-tracker/backend/internal/domain/error"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/middleware"
)

// handleRecordError maps record errors to HTTP responses.
func handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(statusForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeRecordInternalError),
	})
}

// statusForRecordError maps record error codes to HTTP status codes.
func statusForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound,
		domainerror.ErrCodeProductNotOwned:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// handleReportError maps report errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		// All report errors besides internal ones are input validation failures.
		status := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// businessScope extracts the authenticated business scope from the
// request context, answering 401 when the middleware did not set one.
func businessScope(ctx *gin.Context) (uuid.UUID, bool) {
	businessID, ok := middleware.GetBusinessIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return businessID, true
}
