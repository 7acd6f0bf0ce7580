package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"datavision/internal/service"
)

// ReportsHandler serves chart-ready dashboard datasets. Report generation
// never fails: upstream problems degrade to curated fallback data.
type ReportsHandler struct {
	reportService service.ReportService
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(reportService service.ReportService) *ReportsHandler {
	return &ReportsHandler{reportService: reportService}
}

// FuelPricesHistory godoc
// @Summary Monthly fuel price history
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReportData
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/fuel-prices-history [get]
func (h *ReportsHandler) FuelPricesHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.FuelPricesHistory(c.Request().Context()))
}

// CurrentFuelPrices godoc
// @Summary Current fuel prices per type
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReportData
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/current-fuel-prices [get]
func (h *ReportsHandler) CurrentFuelPrices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.CurrentFuelPrices(c.Request().Context()))
}

// FuelSales godoc
// @Summary Sales distribution by fuel type
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReportData
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/fuel-sales [get]
func (h *ReportsHandler) FuelSales(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.FuelSales(c.Request().Context()))
}

// AllReports godoc
// @Summary All dashboard datasets in one response
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]service.ReportData
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/all-reports [get]
func (h *ReportsHandler) AllReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.AllReports(c.Request().Context()))
}

// DashboardSummary godoc
// @Summary Dashboard headline figures
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/dashboard-summary [get]
func (h *ReportsHandler) DashboardSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.Summary(c.Request().Context()))
}
