package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"camrental/internal/entities"
	apperrors "camrental/pkg/errors"
)

const staffTable = "staff"

type StaffRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.Staff, error)
	BranchCode(ctx context.Context, staffID uint64) (string, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, staff entities.Staff) (uint64, error)
}

type StaffRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewStaffRepository(storage *sql.DB, logger *zap.Logger) StaffRepositoryInterface {
	return &StaffRepository{storage: storage, logger: logger}
}

func scanStaff(row sq.RowScanner) (*entities.Staff, error) {
	var s entities.Staff
	err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.Role, &s.HireDate, &s.BranchCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning staff: %w", err)
	}
	return &s, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*entities.Staff, error) {
	query, args, err := sq.Select("staff_id", "full_name", "email", "password", "role", "hire_date", "branch_code").
		From(staffTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanStaff(r.storage.QueryRowContext(ctx, query, args...))
}

// BranchCode returns the branch the staff member is assigned to. Staff
// without an assignment resolve to the empty string.
func (r *StaffRepository) BranchCode(ctx context.Context, staffID uint64) (string, error) {
	query, args, err := sq.Select("branch_code").From(staffTable).Where(sq.Eq{"staff_id": staffID}).ToSql()
	if err != nil {
		return "", err
	}
	var code sql.NullString
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("looking up staff branch: %w", err)
	}
	return code.String, nil
}

func (r *StaffRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := sq.Select("1").From(staffTable).Where(sq.Eq{"email": email}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking staff existence: %w", err)
	}
	return true, nil
}

func (r *StaffRepository) Create(ctx context.Context, staff entities.Staff) (uint64, error) {
	query, args, err := sq.Insert(staffTable).
		Columns("full_name", "email", "password", "role", "hire_date", "branch_code").
		Values(staff.FullName, staff.Email, staff.PasswordHash, staff.Role, staff.HireDate, staff.BranchCode).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting staff: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
