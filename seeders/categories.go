package seeders

import (
	"context"
	"fmt"

	"camrental/internal/entities"
)

// seedCategories inserts the category tree after proving it acyclic. The
// schema itself does not forbid cycles, so the seeder is where the policy
// lives: cyclic data is rejected before the first insert.
func (s *Seeder) seedCategories(ctx context.Context) error {
	if err := checkAcyclic(categoryData); err != nil {
		return err
	}
	for _, c := range categoryData {
		exists, err := s.categories.Exists(ctx, c.Code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.categories.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// checkAcyclic walks every parent chain; a chain longer than the category
// count can only mean a cycle.
func checkAcyclic(categories []entities.Category) error {
	parents := make(map[string]string, len(categories))
	for _, c := range categories {
		if c.ParentCode.Valid {
			parents[c.Code] = c.ParentCode.String
		}
	}

	for code := range parents {
		cur := code
		for steps := 0; ; steps++ {
			parent, ok := parents[cur]
			if !ok {
				break
			}
			if steps > len(categories) {
				return fmt.Errorf("category hierarchy contains a cycle through %q", code)
			}
			cur = parent
		}
	}
	return nil
}
