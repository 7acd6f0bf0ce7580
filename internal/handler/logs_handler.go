package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"datavision/internal/auth"
	apperrors "datavision/internal/errors"
	"datavision/internal/service"
)

// LogsHandler exposes read-side queries over the audit trail.
type LogsHandler struct {
	auditService service.AuditService
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(auditService service.AuditService) *LogsHandler {
	return &LogsHandler{auditService: auditService}
}

// MyLogs godoc
// @Summary List the caller's audit entries, newest first
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.LogEntry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs/my-logs [get]
func (h *LogsHandler) MyLogs(c echo.Context) error {
	identity := auth.FromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrInvalidToken.Error(),
			Code:  "INVALID_TOKEN",
		})
	}

	entries, err := h.auditService.ListForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to fetch logs",
			Code:  "LOGS_FAILED",
		})
	}
	return c.JSON(http.StatusOK, entries)
}

// AllLogs godoc
// @Summary List all audit entries, newest first (Admin only)
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.LogEntry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs/all [get]
func (h *LogsHandler) AllLogs(c echo.Context) error {
	entries, err := h.auditService.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to fetch logs",
			Code:  "LOGS_FAILED",
		})
	}
	return c.JSON(http.StatusOK, entries)
}

// EndpointStats godoc
// @Summary Per-endpoint hit counts, most frequent first (Admin only)
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.EndpointCount
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs/stats [get]
func (h *LogsHandler) EndpointStats(c echo.Context) error {
	stats, err := h.auditService.EndpointStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to fetch endpoint stats",
			Code:  "STATS_FAILED",
		})
	}
	return c.JSON(http.StatusOK, stats)
}
