package dto

type CreateReservationDTO struct {
	EquipID   uint64 `form:"equip_id" validate:"required"`
	StartDate string `form:"start" validate:"required"`
	EndDate   string `form:"end" validate:"required"`
}
