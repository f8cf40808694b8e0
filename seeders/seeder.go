package seeders

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"camrental/internal/repositories"
	"camrental/internal/services"
)

// Seeder populates the web service's sqlite store with working data:
// branches, categories, equipment with copies, staff accounts and one demo
// customer. Every step looks up its natural key first, so reruns are
// no-ops.
type Seeder struct {
	branches   repositories.BranchRepositoryInterface
	categories repositories.CategoryRepositoryInterface
	equipment  repositories.EquipmentRepositoryInterface
	staff      repositories.StaffRepositoryInterface
	customers  repositories.CustomerRepositoryInterface
	logger     *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		branches:   repositories.NewBranchRepository(db, logger),
		categories: repositories.NewCategoryRepository(db, logger),
		equipment:  repositories.NewEquipmentRepository(db, logger),
		staff:      repositories.NewStaffRepository(db, logger),
		customers:  repositories.NewCustomerRepository(db, logger),
		logger:     logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedBranches(ctx); err != nil {
		return fmt.Errorf("seeding branches: %w", err)
	}
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}
	if err := s.seedEquipment(ctx); err != nil {
		return fmt.Errorf("seeding equipment: %w", err)
	}
	if err := s.seedStaff(ctx); err != nil {
		return fmt.Errorf("seeding staff: %w", err)
	}
	if err := s.seedDemoCustomer(ctx); err != nil {
		return fmt.Errorf("seeding demo customer: %w", err)
	}
	s.logger.Info("seed complete")
	return nil
}

func (s *Seeder) seedBranches(ctx context.Context) error {
	for _, b := range branchData {
		exists, err := s.branches.Exists(ctx, b.Code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.branches.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedEquipment(ctx context.Context) error {
	for _, e := range equipmentData {
		exists, err := s.equipment.ExistsByName(ctx, e.entity.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		id, err := s.equipment.Create(ctx, e.entity)
		if err != nil {
			return err
		}
		for _, c := range e.copies {
			c.EquipID = id
			if err := s.equipment.CreateCopy(ctx, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedStaff(ctx context.Context) error {
	for _, st := range staffData {
		exists, err := s.staff.ExistsByEmail(ctx, st.entity.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		hash, err := services.HashPassword(st.password)
		if err != nil {
			return err
		}
		entity := st.entity
		entity.PasswordHash = hash
		if _, err := s.staff.Create(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedDemoCustomer(ctx context.Context) error {
	exists, err := s.customers.ExistsByEmail(ctx, demoCustomer.entity.Email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := services.HashPassword(demoCustomer.password)
	if err != nil {
		return err
	}
	entity := demoCustomer.entity
	entity.PasswordHash = hash
	_, err = s.customers.Create(ctx, entity)
	return err
}
