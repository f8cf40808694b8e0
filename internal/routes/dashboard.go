package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/controllers"
	"camrental/pkg/middleware"
	"camrental/pkg/session"
)

func runDashboardRouter(e *echo.Echo, sessions *session.Manager, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	dashboardCtrl := controllers.NewDashboardController(sessions, logger)

	e.GET("/", dashboardCtrl.Home)
	e.GET("/customer", dashboardCtrl.Customer, authMW.RequireCustomer)
	e.GET("/employee", dashboardCtrl.Employee, authMW.RequireEmployee)
}
