package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/pkg/middleware"
	"camrental/pkg/session"
)

// InitRouter wires repositories, services and controllers and registers
// every route of the web service.
func InitRouter(e *echo.Echo, db *sql.DB, sessions *session.Manager, logger *zap.Logger) {
	authMW := middleware.NewAuthMiddleware(sessions, logger)

	runAuthRouter(e, db, sessions, logger)
	runDashboardRouter(e, sessions, logger, authMW)
	runCatalogRouter(e, db, sessions, logger, authMW)
	runReservationRouter(e, db, sessions, logger, authMW)
}
