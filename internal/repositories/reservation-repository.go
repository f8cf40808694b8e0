package repositories

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"camrental/internal/entities"
)

const reservationTable = "reservation"

type ReservationRepositoryInterface interface {
	Create(ctx context.Context, reservation entities.Reservation) (uint64, error)
	CountByCustomer(ctx context.Context, customerID uint64) (uint64, error)
}

type ReservationRepository struct {
	storage *sql.DB
	logger  *zap.Logger
}

func NewReservationRepository(storage *sql.DB, logger *zap.Logger) ReservationRepositoryInterface {
	return &ReservationRepository{storage: storage, logger: logger}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation entities.Reservation) (uint64, error) {
	query, args, err := sq.Insert(reservationTable).
		Columns("customer_id", "equip_id", "status", "start_date", "end_date").
		Values(reservation.CustomerID, reservation.EquipID, reservation.Status,
			reservation.StartDate, reservation.EndDate).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting reservation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *ReservationRepository) CountByCustomer(ctx context.Context, customerID uint64) (uint64, error) {
	query, args, err := sq.Select("COUNT(*)").From(reservationTable).Where(sq.Eq{"customer_id": customerID}).ToSql()
	if err != nil {
		return 0, err
	}
	var total uint64
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting reservations: %w", err)
	}
	return total, nil
}
