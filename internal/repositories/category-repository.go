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

const categoryTable = "category"

type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Category, error)
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, category entities.Category) error
}

type CategoryRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewCategoryRepository(storage *sql.DB, logger *zap.Logger) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage, logger: logger}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entities.Category, error) {
	query, args, err := sq.Select("code", "name", "parent_code").From(categoryTable).OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []entities.Category
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.Code, &c.Name, &c.ParentCode); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Exists(ctx context.Context, code string) (bool, error) {
	query, args, err := sq.Select("1").From(categoryTable).Where(sq.Eq{"code": code}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking category existence: %w", err)
	}
	return true, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category entities.Category) error {
	query, args, err := sq.Insert(categoryTable).
		Columns("code", "name", "parent_code").
		Values(category.Code, category.Name, category.ParentCode).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}
