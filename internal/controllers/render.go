package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"camrental/pkg/session"
)

// render executes a page template with the queued flash messages merged in.
func render(c echo.Context, sessions *session.Manager, name, title string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Title"] = title
	data["Flashes"] = sessions.PopFlashes(c)
	return c.Render(http.StatusOK, name, data)
}
