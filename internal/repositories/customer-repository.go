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

const customerTable = "customer"

type CustomerRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.Customer, error)
	FindByID(ctx context.Context, id uint64) (*entities.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Create(ctx context.Context, customer entities.Customer) (uint64, error)
	Count(ctx context.Context) (uint64, error)
}

type CustomerRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewCustomerRepository(storage *sql.DB, logger *zap.Logger) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage, logger: logger}
}

func scanCustomer(row sq.RowScanner) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.PasswordHash, &c.Phone, &c.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning customer: %w", err)
	}
	return &c, nil
}

func customerSelect() sq.SelectBuilder {
	return sq.Select("customer_id", "full_name", "email", "password", "phone", "status").
		From(customerTable)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	query, args, err := customerSelect().Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCustomer(r.storage.QueryRowContext(ctx, query, args...))
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint64) (*entities.Customer, error) {
	query, args, err := customerSelect().Where(sq.Eq{"customer_id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCustomer(r.storage.QueryRowContext(ctx, query, args...))
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, sq.Eq{"email": email})
}

func (r *CustomerRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, sq.Eq{"phone": phone})
}

func (r *CustomerRepository) exists(ctx context.Context, cond sq.Eq) (bool, error) {
	query, args, err := sq.Select("1").From(customerTable).Where(cond).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking customer existence: %w", err)
	}
	return true, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer entities.Customer) (uint64, error) {
	query, args, err := sq.Insert(customerTable).
		Columns("full_name", "email", "password", "phone", "status").
		Values(customer.FullName, customer.Email, customer.PasswordHash, customer.Phone, customer.Status).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting customer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *CustomerRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.storage.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+customerTable).Scan(&total)
	return total, err
}
