package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/pkg/constants"
	"camrental/pkg/contextkeys"
	"camrental/pkg/session"
)

// AuthMiddleware gates routes on the session role. Failing a gate never
// renders an error page; the visitor is redirected to the matching login
// form instead.
type AuthMiddleware struct {
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthMiddleware(sessions *session.Manager, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// RequireCustomer admits only sessions with the customer role.
func (m *AuthMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, s, ok := m.sessions.Current(c)
		if !ok || s.Role != constants.RoleCustomer {
			m.logger.Debug("customer gate refused", zap.String("path", c.Path()), zap.String("role", s.Role))
			return c.Redirect(http.StatusSeeOther, "/login/customer")
		}
		bindIdentity(c, s)
		return next(c)
	}
}

// RequireEmployee admits only sessions whose role is one of the staff roles.
func (m *AuthMiddleware) RequireEmployee(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, s, ok := m.sessions.Current(c)
		if !ok || !constants.IsStaffRole(s.Role) {
			m.logger.Debug("employee gate refused", zap.String("path", c.Path()), zap.String("role", s.Role))
			return c.Redirect(http.StatusSeeOther, "/login/employee")
		}
		bindIdentity(c, s)
		return next(c)
	}
}

// bindIdentity copies the authenticated identity into the request context so
// handlers and services never touch the session store directly.
func bindIdentity(c echo.Context, s session.Session) {
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, s.UserID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, s.Role)
	ctx = context.WithValue(ctx, contextkeys.UserNameKey, s.Name)
	c.SetRequest(c.Request().WithContext(ctx))
}
