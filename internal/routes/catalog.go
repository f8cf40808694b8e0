package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/controllers"
	"camrental/internal/repositories"
	"camrental/internal/services"
	"camrental/pkg/middleware"
	"camrental/pkg/session"
)

func runCatalogRouter(e *echo.Echo, db *sql.DB, sessions *session.Manager, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	equipmentRepo := repositories.NewEquipmentRepository(db, logger)
	categoryRepo := repositories.NewCategoryRepository(db, logger)
	staffRepo := repositories.NewStaffRepository(db, logger)
	catalogService := services.NewCatalogService(equipmentRepo, categoryRepo, staffRepo, logger)
	catalogCtrl := controllers.NewCatalogController(catalogService, sessions, logger)

	e.GET("/available", catalogCtrl.Available)
	e.GET("/employee/available", catalogCtrl.EmployeeAvailable, authMW.RequireEmployee)
}
