package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"camrental/internal/database"
	"camrental/internal/dto"
	"camrental/internal/entities"
	"camrental/internal/repositories"
	"camrental/pkg/constants"
	apperrors "camrental/pkg/errors"
)

func newAuthService(t *testing.T) (AuthServiceInterface, repositories.CustomerRepositoryInterface, repositories.StaffRepositoryInterface) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(ctx, ":memory:")
	require.NoError(t, err)
	// a second pool connection would see an empty in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	customers := repositories.NewCustomerRepository(db, logger)
	staff := repositories.NewStaffRepository(db, logger)
	return NewAuthService(customers, staff, logger), customers, staff
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, customers, _ := newAuthService(t)

	payload := dto.SignupDTO{
		Name:     "Ann Chu",
		Email:    "ann@example.com",
		Password: "customer-pass",
		Phone:    "555-0101",
	}
	require.NoError(t, svc.Signup(ctx, payload))

	stored, err := customers.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "customer-pass", stored.PasswordHash)
	assert.True(t, CheckPassword(stored.PasswordHash, "customer-pass"))

	got, err := svc.LoginCustomer(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "customer-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Ann Chu", got.FullName)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, customers, _ := newAuthService(t)

	payload := dto.SignupDTO{Name: "Ann Chu", Email: "ann@example.com", Password: "customer-pass"}
	require.NoError(t, svc.Signup(ctx, payload))

	payload.Name = "Another Ann"
	err := svc.Signup(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	count, err := customers.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSignupDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, dto.SignupDTO{
		Name: "Ann Chu", Email: "ann@example.com", Password: "customer-pass", Phone: "555-0101",
	}))

	err := svc.Signup(ctx, dto.SignupDTO{
		Name: "Bob Reyes", Email: "bob@example.com", Password: "other-pass", Phone: "555-0101",
	})
	assert.ErrorIs(t, err, apperrors.ErrPhoneTaken)
}

func TestLoginCustomerRejections(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, dto.SignupDTO{
		Name: "Ann Chu", Email: "ann@example.com", Password: "customer-pass",
	}))

	_, err := svc.LoginCustomer(ctx, dto.LoginDTO{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.LoginCustomer(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginInactiveCustomer(t *testing.T) {
	ctx := context.Background()
	svc, customers, _ := newAuthService(t)

	hash, err := HashPassword("customer-pass")
	require.NoError(t, err)
	_, err = customers.Create(ctx, entities.Customer{
		FullName:     "Carla Duarte",
		Email:        "carla@example.com",
		PasswordHash: hash,
		Status:       constants.CustomerStatusInactive,
	})
	require.NoError(t, err)

	_, err = svc.LoginCustomer(ctx, dto.LoginDTO{Email: "carla@example.com", Password: "customer-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginStaff(t *testing.T) {
	ctx := context.Background()
	svc, _, staff := newAuthService(t)

	hash, err := HashPassword("manager-pass")
	require.NoError(t, err)
	_, err = staff.Create(ctx, entities.Staff{
		FullName:     "Maya Ortiz",
		Email:        "maya.ortiz@rental.example",
		PasswordHash: hash,
		Role:         constants.RoleManager,
	})
	require.NoError(t, err)

	got, err := svc.LoginStaff(ctx, dto.LoginDTO{Email: "maya.ortiz@rental.example", Password: "manager-pass"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleManager, got.Role)

	_, err = svc.LoginStaff(ctx, dto.LoginDTO{Email: "maya.ortiz@rental.example", Password: "bad"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
