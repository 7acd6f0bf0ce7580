package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"datavision/internal/auth"
)

// AuditRecorder appends one audit entry per completed request.
// Satisfied by service.AuditService.
type AuditRecorder interface {
	Record(ctx context.Context, userID uint, endpoint string) error
}

// SkipPaths builds a skip predicate from an explicit route allowlist. Matching
// is on the registered route path, so an unrelated route whose text happens to
// contain "login" is still audited.
func SkipPaths(paths ...string) func(echo.Context) bool {
	skip := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		skip[p] = struct{}{}
	}
	return func(c echo.Context) bool {
		_, ok := skip[c.Path()]
		return ok
	}
}

// Audit records "who called what, when" after each request completes,
// whatever the handler's outcome. Requests without a validated identity and
// requests to skipped routes produce no entry. A failed append is logged and
// swallowed: auditing never fails or delays the request it observes.
func Audit(recorder AuditRecorder, skip func(echo.Context) bool, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			if skip != nil && skip(c) {
				return err
			}
			identity := auth.FromContext(c)
			if identity == nil {
				return err
			}

			endpoint := c.Request().Method + " " + c.Path()
			if recErr := recorder.Record(c.Request().Context(), identity.UserID, endpoint); recErr != nil {
				logger.Warn("audit append failed",
					"user_id", identity.UserID,
					"endpoint", endpoint,
					"error", recErr)
			}
			return err
		}
	}
}
