package seeder

import (
	"context"
	"fmt"

	"freelance-directory/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store *repository.Store) error
}

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		FreelancesSeeder{},
		AssignmentsSeeder{},
		LinksSeeder{},
	}
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, store *repository.Store) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Run(ctx, store); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
