package repositories

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"camrental/internal/entities"
	"camrental/pkg/constants"
)

const (
	equipmentTable = "equipment"
	equipCopyTable = "equip_copy"
)

type EquipmentRepositoryInterface interface {
	ListActive(ctx context.Context) ([]entities.Equipment, error)
	ListActiveWithCategory(ctx context.Context) ([]entities.Equipment, error)
	ListActiveByBranch(ctx context.Context, branchCode string) ([]entities.Equipment, error)
	Create(ctx context.Context, equipment entities.Equipment) (uint64, error)
	CreateCopy(ctx context.Context, copy entities.EquipmentCopy) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type EquipmentRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *sql.DB, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// ListActive returns the rentable equipment types for the reservation form.
func (r *EquipmentRepository) ListActive(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select("equip_id", "name", "brand", "model", "daily_rate").
		From(equipmentTable).
		Where(sq.Eq{"status": constants.EquipmentStatusActive}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing active equipment: %w", err)
	}
	defer rows.Close()

	var out []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Brand, &e.Model, &e.DailyRate); err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		e.Status = constants.EquipmentStatusActive
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListActiveWithCategory backs the public availability listing.
func (r *EquipmentRepository) ListActiveWithCategory(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select("e.equip_id", "e.name", "e.brand", "e.model", "e.daily_rate", "c.name").
		From(equipmentTable + " AS e").
		Join("category c ON c.code = e.category_code").
		Where(sq.Eq{"e.status": constants.EquipmentStatusActive}).
		OrderBy("e.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing available equipment: %w", err)
	}
	defer rows.Close()

	var out []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Brand, &e.Model, &e.DailyRate, &e.CategoryName); err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListActiveByBranch returns active equipment that has at least one copy at
// the given branch, one row per copy, as the employee view shows units.
func (r *EquipmentRepository) ListActiveByBranch(ctx context.Context, branchCode string) ([]entities.Equipment, error) {
	query, args, err := sq.Select("e.equip_id", "e.name", "e.brand", "e.model", "e.daily_rate", "b.name").
		From(equipmentTable + " AS e").
		Join(equipCopyTable + " ec ON ec.equip_id = e.equip_id").
		Join("branch b ON ec.branch_code = b.branch_code").
		Where(sq.Eq{
			"e.status":       constants.EquipmentStatusActive,
			"ec.branch_code": branchCode,
		}).
		OrderBy("e.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing branch equipment: %w", err)
	}
	defer rows.Close()

	var out []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Brand, &e.Model, &e.DailyRate, &e.BranchName); err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment entities.Equipment) (uint64, error) {
	query, args, err := sq.Insert(equipmentTable).
		Columns("name", "brand", "model", "daily_rate", "deposit", "status", "category_code").
		Values(equipment.Name, equipment.Brand, equipment.Model, equipment.DailyRate,
			equipment.Deposit, equipment.Status, equipment.CategoryCode).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting equipment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *EquipmentRepository) CreateCopy(ctx context.Context, copy entities.EquipmentCopy) error {
	query, args, err := sq.Insert(equipCopyTable).
		Columns("equip_id", "copy_no", "equip_code", "branch_code", "condition", "purchase_date", "serial_number").
		Values(copy.EquipID, copy.CopyNo, copy.EquipCode, copy.BranchCode,
			copy.Condition, copy.PurchaseDate, copy.SerialNumber).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting equipment copy: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query, args, err := sq.Select("1").From(equipmentTable).Where(sq.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.storage.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking equipment existence: %w", err)
	}
	return true, nil
}
