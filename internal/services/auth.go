package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"camrental/internal/dto"
	"camrental/internal/entities"
	"camrental/internal/repositories"
	"camrental/pkg/constants"
	apperrors "camrental/pkg/errors"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) error
	LoginCustomer(ctx context.Context, payload dto.LoginDTO) (*entities.Customer, error)
	LoginStaff(ctx context.Context, payload dto.LoginDTO) (*entities.Staff, error)
}

type AuthService struct {
	customerRepo repositories.CustomerRepositoryInterface
	staffRepo    repositories.StaffRepositoryInterface
	logger       *zap.Logger
}

func NewAuthService(
	customerRepo repositories.CustomerRepositoryInterface,
	staffRepo repositories.StaffRepositoryInterface,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{customerRepo: customerRepo, staffRepo: staffRepo, logger: logger}
}

// Signup creates a customer account after checking email and phone
// uniqueness separately, so the caller can report which field conflicts.
// The uniqueness checks race with the insert; the unique indexes catch the
// race and the insert error surfaces as a generic failure.
func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) error {
	taken, err := s.customerRepo.ExistsByEmail(ctx, payload.Email)
	if err != nil {
		return fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailTaken
	}

	if payload.Phone != "" {
		taken, err := s.customerRepo.ExistsByPhone(ctx, payload.Phone)
		if err != nil {
			return fmt.Errorf("checking phone: %w", err)
		}
		if taken {
			return apperrors.ErrPhoneTaken
		}
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	customer := entities.Customer{
		FullName:     payload.Name,
		Email:        payload.Email,
		PasswordHash: hash,
		Phone:        null.NewString(payload.Phone, payload.Phone != ""),
		Status:       constants.CustomerStatusActive,
	}
	if _, err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Warn("customer insert failed", zap.String("email", payload.Email), zap.Error(err))
		return fmt.Errorf("creating customer: %w", err)
	}
	return nil
}

// LoginCustomer authenticates a customer. Unknown email, wrong password and
// an inactive account all collapse into ErrInvalidCredentials so the page
// never reveals which check failed.
func (s *AuthService) LoginCustomer(ctx context.Context, payload dto.LoginDTO) (*entities.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, payload.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(customer.PasswordHash, payload.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if customer.Status != constants.CustomerStatusActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	return customer, nil
}

// LoginStaff authenticates an employee.
func (s *AuthService) LoginStaff(ctx context.Context, payload dto.LoginDTO) (*entities.Staff, error) {
	staff, err := s.staffRepo.FindByEmail(ctx, payload.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(staff.PasswordHash, payload.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return staff, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
