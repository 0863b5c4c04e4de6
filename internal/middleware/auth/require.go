package authmw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/tokens"
)

// Context keys populated for downstream handlers. The service layer
// trusts these and never re-derives identity.
const (
	CtxUserID  = "user_id"
	CtxMetizID = "metiz_id"
	CtxRole    = "role"
)

type Middleware struct {
	JWTSecret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{JWTSecret: secret}
}

func (m *Middleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, tokens.RoleUser)
}

func (m *Middleware) RequireMetiz(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, tokens.RoleMetiz)
}

func (m *Middleware) require(next echo.HandlerFunc, role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie("accessToken")
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(cookie.Value, m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}
		if claims.Role != role {
			return echo.NewHTTPError(http.StatusForbidden, role+" access required")
		}

		id, err := claims.SubjectID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
		}

		c.Set(CtxRole, claims.Role)
		if role == tokens.RoleMetiz {
			c.Set(CtxMetizID, id)
		} else {
			c.Set(CtxUserID, id)
		}
		return next(c)
	}
}
