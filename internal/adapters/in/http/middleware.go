package http

import (
	"log/slog"
	"strings"

	"orders/internal/auth"
	"orders/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key the auth middleware stores the
// verified claims under.
const claimsContextKey = "auth.claims"

// AuthMiddleware verifies the Authorization header and stores the resulting
// claims in the request context. A missing credential answers 401, any
// verification failure answers 403.
func AuthMiddleware(verifier auth.Verifier, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))

			claims, err := verifier.Verify(raw)
			if err != nil {
				return respondError(ctx, logger, err)
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// bearerToken extracts the credential from an Authorization header value.
// Returns an empty string when the header is absent or not a bearer scheme.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// claimsFromContext returns the claims stored by AuthMiddleware.
func claimsFromContext(ctx echo.Context) (identity.Claims, error) {
	claims, ok := ctx.Get(claimsContextKey).(identity.Claims)
	if !ok {
		return identity.Claims{}, auth.ErrTokenRequired
	}
	return claims, nil
}
