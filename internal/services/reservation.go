package services

import (
	"context"

	"go.uber.org/zap"

	"camrental/internal/dto"
	"camrental/internal/entities"
	"camrental/internal/repositories"
	"camrental/pkg/constants"
)

type ReservationServiceInterface interface {
	Create(ctx context.Context, customerID uint64, payload dto.CreateReservationDTO) error
}

type ReservationService struct {
	reservationRepo repositories.ReservationRepositoryInterface
	logger          *zap.Logger
}

func NewReservationService(
	reservationRepo repositories.ReservationRepositoryInterface,
	logger *zap.Logger,
) ReservationServiceInterface {
	return &ReservationService{reservationRepo: reservationRepo, logger: logger}
}

// Create records a Pending reservation for the customer. No availability
// check is made against existing reservations or copies; requests are
// triaged by staff later.
func (s *ReservationService) Create(ctx context.Context, customerID uint64, payload dto.CreateReservationDTO) error {
	reservation := entities.Reservation{
		CustomerID: customerID,
		EquipID:    payload.EquipID,
		Status:     constants.ReservationStatusPending,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
	}
	id, err := s.reservationRepo.Create(ctx, reservation)
	if err != nil {
		s.logger.Warn("reservation insert failed", zap.Uint64("customer_id", customerID), zap.Error(err))
		return err
	}
	s.logger.Info("reservation created",
		zap.Uint64("reservation_id", id),
		zap.Uint64("customer_id", customerID),
		zap.Uint64("equip_id", payload.EquipID),
	)
	return nil
}
