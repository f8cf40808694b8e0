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

func runReservationRouter(e *echo.Echo, db *sql.DB, sessions *session.Manager, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	reservationRepo := repositories.NewReservationRepository(db, logger)
	equipmentRepo := repositories.NewEquipmentRepository(db, logger)
	categoryRepo := repositories.NewCategoryRepository(db, logger)
	staffRepo := repositories.NewStaffRepository(db, logger)

	reservationService := services.NewReservationService(reservationRepo, logger)
	catalogService := services.NewCatalogService(equipmentRepo, categoryRepo, staffRepo, logger)
	reservationCtrl := controllers.NewReservationController(reservationService, catalogService, sessions, logger)

	e.GET("/reservations", reservationCtrl.ShowForm, authMW.RequireCustomer)
	e.POST("/reservations", reservationCtrl.Create, authMW.RequireCustomer)
}
