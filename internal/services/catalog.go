package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"camrental/internal/entities"
	"camrental/internal/repositories"
)

type CatalogServiceInterface interface {
	ReservationForm(ctx context.Context) ([]entities.Equipment, []entities.Category, error)
	Available(ctx context.Context) ([]entities.Equipment, error)
	AvailableAtBranch(ctx context.Context, staffID uint64) ([]entities.Equipment, string, error)
}

type CatalogService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	categoryRepo  repositories.CategoryRepositoryInterface
	staffRepo     repositories.StaffRepositoryInterface
	logger        *zap.Logger
}

func NewCatalogService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	staffRepo repositories.StaffRepositoryInterface,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		staffRepo:     staffRepo,
		logger:        logger,
	}
}

// ReservationForm returns everything the reservation page needs: the active
// equipment types and the full category tree.
func (s *CatalogService) ReservationForm(ctx context.Context) ([]entities.Equipment, []entities.Category, error) {
	equipment, err := s.equipmentRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return equipment, categories, nil
}

func (s *CatalogService) Available(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.ListActiveWithCategory(ctx)
}

// AvailableAtBranch scopes the listing to the branch the staff member is
// assigned to, returning the branch code alongside for display.
func (s *CatalogService) AvailableAtBranch(ctx context.Context, staffID uint64) ([]entities.Equipment, string, error) {
	branchCode, err := s.staffRepo.BranchCode(ctx, staffID)
	if err != nil {
		return nil, "", fmt.Errorf("resolving staff branch: %w", err)
	}
	equipment, err := s.equipmentRepo.ListActiveByBranch(ctx, branchCode)
	if err != nil {
		return nil, "", err
	}
	return equipment, branchCode, nil
}
