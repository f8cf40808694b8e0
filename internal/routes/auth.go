package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/controllers"
	"camrental/internal/repositories"
	"camrental/internal/services"
	"camrental/pkg/session"
)

func runAuthRouter(e *echo.Echo, db *sql.DB, sessions *session.Manager, logger *zap.Logger) {
	customerRepo := repositories.NewCustomerRepository(db, logger)
	staffRepo := repositories.NewStaffRepository(db, logger)
	authService := services.NewAuthService(customerRepo, staffRepo, logger)
	authCtrl := controllers.NewAuthController(authService, sessions, logger)

	e.GET("/signup", authCtrl.ShowSignup)
	e.POST("/signup", authCtrl.Signup)
	e.GET("/login/customer", authCtrl.ShowCustomerLogin)
	e.POST("/login/customer", authCtrl.CustomerLogin)
	e.GET("/login/employee", authCtrl.ShowEmployeeLogin)
	e.POST("/login/employee", authCtrl.EmployeeLogin)
	e.GET("/logout", authCtrl.Logout)
}
