package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"camrental/pkg/constants"
)

// Echo glue: cookie handling and flash messages. Flashes work for anonymous
// visitors too (signup confirmations are shown on the login page), so an
// empty session is created on demand.

// Current returns the token and session bound to the request cookie.
func (m *Manager) Current(c echo.Context) (string, Session, bool) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", Session{}, false
	}
	s, err := m.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return "", Session{}, false
	}
	return cookie.Value, s, true
}

// Login replaces the current session with one carrying the authenticated
// identity. Flashes queued before login survive the swap.
func (m *Manager) Login(c echo.Context, s Session) error {
	ctx := c.Request().Context()
	if token, old, ok := m.Current(c); ok {
		s.Flash = append(old.Flash, s.Flash...)
		if err := m.Destroy(ctx, token); err != nil {
			return err
		}
	}
	token, err := m.Create(ctx, s)
	if err != nil {
		return err
	}
	m.setCookie(c, token)
	return nil
}

// Logout destroys the session unconditionally. With flashes, a fresh
// anonymous session carries them so the response writes exactly one cookie.
func (m *Manager) Logout(c echo.Context, flashes ...string) error {
	ctx := c.Request().Context()
	if token, _, ok := m.Current(c); ok {
		_ = m.Destroy(ctx, token)
	}

	if len(flashes) == 0 {
		m.setExpiredCookie(c)
		return nil
	}
	token, err := m.Create(ctx, Session{Flash: flashes})
	if err != nil {
		m.setExpiredCookie(c)
		return err
	}
	m.setCookie(c, token)
	return nil
}

// AddFlash queues a message for the next rendered page.
func (m *Manager) AddFlash(c echo.Context, msg string) error {
	ctx := c.Request().Context()
	token, s, ok := m.Current(c)
	if !ok {
		s = Session{Flash: []string{msg}}
		newToken, err := m.Create(ctx, s)
		if err != nil {
			return err
		}
		m.setCookie(c, newToken)
		return nil
	}
	s.Flash = append(s.Flash, msg)
	return m.Save(ctx, token, s)
}

// PopFlashes drains and returns the queued messages.
func (m *Manager) PopFlashes(c echo.Context) []string {
	token, s, ok := m.Current(c)
	if !ok || len(s.Flash) == 0 {
		return nil
	}
	flashes := s.Flash
	s.Flash = nil
	_ = m.Save(c.Request().Context(), token, s)
	return flashes
}

func (m *Manager) setCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) setExpiredCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
