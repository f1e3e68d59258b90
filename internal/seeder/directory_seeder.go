package seeder

import (
	"context"

	"freelance-directory/internal/repository"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(_ context.Context, store *repository.Store) error {
	dir, err := ExampleDirectory()
	if err != nil {
		return err
	}
	for _, s := range dir.Skills {
		store.SaveSkill(s)
	}
	return nil
}

type FreelancesSeeder struct{}

func (FreelancesSeeder) Name() string { return "freelances" }

func (FreelancesSeeder) Run(_ context.Context, store *repository.Store) error {
	dir, err := ExampleDirectory()
	if err != nil {
		return err
	}
	for _, p := range dir.Freelances {
		store.SaveFreelance(p)
	}
	return nil
}

type AssignmentsSeeder struct{}

func (AssignmentsSeeder) Name() string { return "freelance_skills" }

func (AssignmentsSeeder) Run(_ context.Context, store *repository.Store) error {
	dir, err := ExampleDirectory()
	if err != nil {
		return err
	}
	for _, a := range dir.Assignments {
		store.SaveAssignment(a)
	}
	return nil
}

type LinksSeeder struct{}

func (LinksSeeder) Name() string { return "professional_links" }

func (LinksSeeder) Run(_ context.Context, store *repository.Store) error {
	dir, err := ExampleDirectory()
	if err != nil {
		return err
	}
	for _, l := range dir.Links {
		store.SaveLink(l)
	}
	return nil
}
