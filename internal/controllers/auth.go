package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"camrental/internal/dto"
	"camrental/internal/services"
	"camrental/pkg/constants"
	apperrors "camrental/pkg/errors"
	"camrental/pkg/session"
)

type AuthController struct {
	authService services.AuthServiceInterface
	sessions    *session.Manager
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, sessions *session.Manager, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, sessions: sessions, logger: logger}
}

func (ctrl *AuthController) ShowSignup(c echo.Context) error {
	return render(c, ctrl.sessions, "signup", "Sign up", nil)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		_ = ctrl.sessions.AddFlash(c, "Signup failed. Try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	if err := c.Validate(&payload); err != nil {
		_ = ctrl.sessions.AddFlash(c, "Please fill in all required fields correctly.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	err := ctrl.authService.Signup(c.Request().Context(), payload)
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		_ = ctrl.sessions.AddFlash(c, "Email already exists!")
		return c.Redirect(http.StatusSeeOther, "/signup")
	case errors.Is(err, apperrors.ErrPhoneTaken):
		_ = ctrl.sessions.AddFlash(c, "Phone number already exists!")
		return c.Redirect(http.StatusSeeOther, "/signup")
	case err != nil:
		ctrl.logger.Warn("signup failed", zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Signup failed. Try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	_ = ctrl.sessions.AddFlash(c, "Account created! Please log in.")
	return c.Redirect(http.StatusSeeOther, "/login/customer")
}

func (ctrl *AuthController) ShowCustomerLogin(c echo.Context) error {
	return render(c, ctrl.sessions, "login_customer", "Customer login", nil)
}

func (ctrl *AuthController) CustomerLogin(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil || c.Validate(&payload) != nil {
		_ = ctrl.sessions.AddFlash(c, "Invalid credentials or account is not active.")
		return c.Redirect(http.StatusSeeOther, "/login/customer")
	}

	customer, err := ctrl.authService.LoginCustomer(c.Request().Context(), payload)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctrl.logger.Warn("customer login error", zap.Error(err))
		}
		_ = ctrl.sessions.AddFlash(c, "Invalid credentials or account is not active.")
		return c.Redirect(http.StatusSeeOther, "/login/customer")
	}

	err = ctrl.sessions.Login(c, session.Session{
		UserID: customer.ID,
		Role:   constants.RoleCustomer,
		Name:   customer.FullName,
		Flash:  []string{"Welcome, " + customer.FullName},
	})
	if err != nil {
		ctrl.logger.Error("session create failed", zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Login error (check db connection and credentials).")
		return c.Redirect(http.StatusSeeOther, "/login/customer")
	}
	return c.Redirect(http.StatusSeeOther, "/customer")
}

func (ctrl *AuthController) ShowEmployeeLogin(c echo.Context) error {
	return render(c, ctrl.sessions, "login_employee", "Employee login", nil)
}

func (ctrl *AuthController) EmployeeLogin(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil || c.Validate(&payload) != nil {
		_ = ctrl.sessions.AddFlash(c, "Invalid credentials.")
		return c.Redirect(http.StatusSeeOther, "/login/employee")
	}

	staff, err := ctrl.authService.LoginStaff(c.Request().Context(), payload)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctrl.logger.Warn("employee login error", zap.Error(err))
		}
		_ = ctrl.sessions.AddFlash(c, "Invalid credentials.")
		return c.Redirect(http.StatusSeeOther, "/login/employee")
	}

	err = ctrl.sessions.Login(c, session.Session{
		UserID: staff.ID,
		Role:   staff.Role,
		Name:   staff.FullName,
		Flash:  []string{"Welcome, " + staff.FullName},
	})
	if err != nil {
		ctrl.logger.Error("session create failed", zap.Error(err))
		_ = ctrl.sessions.AddFlash(c, "Login error (check db connection and credentials).")
		return c.Redirect(http.StatusSeeOther, "/login/employee")
	}
	return c.Redirect(http.StatusSeeOther, "/employee")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if err := ctrl.sessions.Logout(c, "Logged out."); err != nil {
		ctrl.logger.Error("logout session rotation failed", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
