package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/services"
	apperrors "camrental/pkg/errors"
	"camrental/pkg/session"
	"camrental/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	sessions       *session.Manager
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, sessions *session.Manager, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, sessions: sessions, logger: logger}
}

// Available is the public listing of active equipment with category names.
func (ctrl *CatalogController) Available(c echo.Context) error {
	equipment, err := ctrl.catalogService.Available(c.Request().Context())
	if err != nil {
		ctrl.logger.Warn("availability listing failed", zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Could not load equipment.")
	}
	return render(c, ctrl.sessions, "available", "Available equipment", echo.Map{
		"Equipment": equipment,
	})
}

// EmployeeAvailable lists active equipment held at the logged-in staff
// member's branch.
func (ctrl *CatalogController) EmployeeAvailable(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	equipment, branch, err := ctrl.catalogService.AvailableAtBranch(ctx, staffID)
	if err != nil {
		ctrl.logger.Warn("branch listing failed", zap.Uint64("staff_id", staffID), zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Could not load equipment.")
	}
	return render(c, ctrl.sessions, "employee_available", "Equipment at your branch", echo.Map{
		"Equipment": equipment,
		"Branch":    branch,
	})
}
