package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/dto"
	"camrental/internal/services"
	apperrors "camrental/pkg/errors"
	"camrental/pkg/session"
	"camrental/pkg/utils"
)

type ReservationController struct {
	reservationService services.ReservationServiceInterface
	catalogService     services.CatalogServiceInterface
	sessions           *session.Manager
	logger             *zap.Logger
}

func NewReservationController(
	reservationService services.ReservationServiceInterface,
	catalogService services.CatalogServiceInterface,
	sessions *session.Manager,
	logger *zap.Logger,
) *ReservationController {
	return &ReservationController{
		reservationService: reservationService,
		catalogService:     catalogService,
		sessions:           sessions,
		logger:             logger,
	}
}

func (ctrl *ReservationController) ShowForm(c echo.Context) error {
	equipment, categories, err := ctrl.catalogService.ReservationForm(c.Request().Context())
	if err != nil {
		ctrl.logger.Warn("reservation form load failed", zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Could not load equipment.")
	}
	return render(c, ctrl.sessions, "reservations", "Request a reservation", echo.Map{
		"Equipment":  equipment,
		"Categories": categories,
	})
}

func (ctrl *ReservationController) Create(c echo.Context) error {
	ctx := c.Request().Context()
	customerID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var payload dto.CreateReservationDTO
	if err := c.Bind(&payload); err != nil || c.Validate(&payload) != nil {
		_ = ctrl.sessions.AddFlash(c, "Reservation failed.")
		return c.Redirect(http.StatusSeeOther, "/reservations")
	}

	if err := ctrl.reservationService.Create(ctx, customerID, payload); err != nil {
		_ = ctrl.sessions.AddFlash(c, "Reservation failed.")
	} else {
		_ = ctrl.sessions.AddFlash(c, "Reservation requested!")
	}
	return c.Redirect(http.StatusSeeOther, "/reservations")
}
