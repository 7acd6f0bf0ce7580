package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "datavision/internal/errors"
	"datavision/internal/recope"
)

// RecopeHandler passes fuel-price data through from the RECOPE open-data API.
type RecopeHandler struct {
	client *recope.Client
}

// NewRecopeHandler creates a new RECOPE handler.
func NewRecopeHandler(client *recope.Client) *RecopeHandler {
	return &RecopeHandler{client: client}
}

var errNoData = apperrors.ErrorResponse{Error: "no data available", Code: "NO_DATA"}

// InternationalPrice godoc
// @Summary International fuel price history
// @Tags recope
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} recope.InternationalPrices
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recope/international-price [get]
func (h *RecopeHandler) InternationalPrice(c echo.Context) error {
	prices := h.client.InternationalPrices(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if prices == nil {
		return echo.NewHTTPError(http.StatusNotFound, errNoData)
	}
	return c.JSON(http.StatusOK, prices)
}

// ConsumerPrice godoc
// @Summary Current consumer-level sale prices
// @Tags recope
// @Produce json
// @Security BearerAuth
// @Success 200 {array} recope.SalePrice
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recope/consumer-price [get]
func (h *RecopeHandler) ConsumerPrice(c echo.Context) error {
	prices := h.client.ConsumerPrices(c.Request().Context())
	if prices == nil {
		return echo.NewHTTPError(http.StatusNotFound, errNoData)
	}
	return c.JSON(http.StatusOK, prices)
}

// PlantPrice godoc
// @Summary Current plant-level sale prices
// @Tags recope
// @Produce json
// @Security BearerAuth
// @Success 200 {array} recope.SalePrice
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recope/plant-price [get]
func (h *RecopeHandler) PlantPrice(c echo.Context) error {
	prices := h.client.PlantPrices(c.Request().Context())
	if prices == nil {
		return echo.NewHTTPError(http.StatusNotFound, errNoData)
	}
	return c.JSON(http.StatusOK, prices)
}
