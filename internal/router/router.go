package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"datavision/internal/auth"
	"datavision/internal/errors"
	"datavision/internal/handler"
	"datavision/internal/middleware"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	Auditor        middleware.AuditRecorder
	AuthHandler    *handler.AuthHandler
	LogsHandler    *handler.LogsHandler
	RecopeHandler  *handler.RecopeHandler
	ReportsHandler *handler.ReportsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, d Deps) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Credential-issuance routes stay out of the audit trail. The allowlist
	// names route paths explicitly instead of substring-matching on "login".
	skipAudit := middleware.SkipPaths("/api/auth/login", "/api/auth/register")
	api.Use(middleware.Audit(d.Auditor, skipAudit, d.Logger))

	// Public routes
	api.POST("/auth/login", d.AuthHandler.Login)
	api.POST("/auth/register", d.AuthHandler.Register)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return d.JWTService.Validate(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		},
	}))

	secured.GET("/auth/profile", d.AuthHandler.Profile)

	secured.GET("/recope/international-price", d.RecopeHandler.InternationalPrice)
	secured.GET("/recope/consumer-price", d.RecopeHandler.ConsumerPrice)
	secured.GET("/recope/plant-price", d.RecopeHandler.PlantPrice)

	secured.GET("/reports/fuel-prices-history", d.ReportsHandler.FuelPricesHistory)
	secured.GET("/reports/current-fuel-prices", d.ReportsHandler.CurrentFuelPrices)
	secured.GET("/reports/fuel-sales", d.ReportsHandler.FuelSales)
	secured.GET("/reports/all-reports", d.ReportsHandler.AllReports)
	secured.GET("/reports/dashboard-summary", d.ReportsHandler.DashboardSummary)

	secured.GET("/logs/my-logs", d.LogsHandler.MyLogs)

	// Admin-only read side of the audit trail
	admin := secured.Group("/logs", middleware.AdminOnly)
	admin.GET("/all", d.LogsHandler.AllLogs)
	admin.GET("/stats", d.LogsHandler.EndpointStats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
