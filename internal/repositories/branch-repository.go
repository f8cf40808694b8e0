package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"camrental/internal/entities"
)

const branchTable = "branch"

type BranchRepositoryInterface interface {
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, branch entities.Branch) error
}

type BranchRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewBranchRepository(storage *sql.DB, logger *zap.Logger) BranchRepositoryInterface {
	return &BranchRepository{storage: storage, logger: logger}
}

func (r *BranchRepository) Exists(ctx context.Context, code string) (bool, error) {
	query, args, err := sq.Select("1").From(branchTable).Where(sq.Eq{"branch_code": code}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking branch existence: %w", err)
	}
	return true, nil
}

func (r *BranchRepository) Create(ctx context.Context, branch entities.Branch) error {
	query, args, err := sq.Insert(branchTable).
		Columns("branch_code", "name").
		Values(branch.Code, branch.Name).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting branch: %w", err)
	}
	return nil
}
