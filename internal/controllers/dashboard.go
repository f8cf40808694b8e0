package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/pkg/session"
	"camrental/pkg/utils"
)

type DashboardController struct {
	sessions *session.Manager
	logger   *zap.Logger
}

func NewDashboardController(sessions *session.Manager, logger *zap.Logger) *DashboardController {
	return &DashboardController{sessions: sessions, logger: logger}
}

func (ctrl *DashboardController) Home(c echo.Context) error {
	return render(c, ctrl.sessions, "home", "Camera/Video Equipment Rental", nil)
}

func (ctrl *DashboardController) Customer(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, ctrl.sessions, "customer_dashboard", "Customer dashboard", echo.Map{
		"Name": utils.UserNameFromContext(ctx),
	})
}

func (ctrl *DashboardController) Employee(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, ctrl.sessions, "employee_dashboard", "Employee dashboard", echo.Map{
		"Name": utils.UserNameFromContext(ctx),
		"Role": utils.UserRoleFromContext(ctx),
	})
}
