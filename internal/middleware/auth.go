package middleware

import (
	"net/http"
	"strings"

	"github.com/gdh/parayo/internal/repository"
	"github.com/gdh/parayo/pkg/auth"
	"github.com/gdh/parayo/pkg/token"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	bearerScheme   = "Bearer"
	grantTypeParam = "grant_type"

	GrantTypeRefreshToken = "refresh_token"
)

// Routes usable without a token. Everything else under the API group requires
// a valid bearer token.
var allowedWithoutToken = map[string]struct{}{
	"POST /api/v1/signin": {},
	"POST /api/v1/users":  {},
	"GET /api/v1/ping":    {},
}

// TokenValidation gates every API route. Requests without an Authorization
// header only pass when the route is allow-listed; requests with one must
// carry a verifiable token, in which case the resolved user is put on the
// request context. The identity is scoped to the request context and gone
// once the request ends, so it can never bleed into another request.
func TokenValidation(tokens *token.Service, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			authHeader := strings.TrimSpace(req.Header.Get(echo.HeaderAuthorization))
			if authHeader == "" {
				if _, ok := allowedWithoutToken[req.Method+" "+req.URL.Path]; ok {
					return next(c)
				}
				return c.NoContent(http.StatusUnauthorized)
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerScheme))

			var email string
			var err error
			if c.QueryParam(grantTypeParam) == GrantTypeRefreshToken {
				email, err = tokens.VerifyRefresh(tokenString)
			} else {
				email, err = tokens.Verify(tokenString)
			}
			if err != nil {
				log.Error().Err(err).Str("component", "TokenValidation").Msg("")
				return c.NoContent(http.StatusUnauthorized)
			}

			user, err := users.GetUserByEmail(req.Context(), email)
			if err != nil || user.ID == 0 {
				return c.NoContent(http.StatusUnauthorized)
			}

			ctx := auth.WithUser(req.Context(), auth.User{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			})
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
