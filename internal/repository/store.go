// Package repository holds the directory's in-memory collections.
//
// A Store performs no locking and no referential checks: relations between
// collections are plain id references that callers join at read time.
// Callers that share a Store across goroutines must serialize access.
package repository

import (
	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
)

type Stats struct {
	Freelances  int `json:"freelances"`
	Skills      int `json:"skills"`
	Assignments int `json:"assignments"`
	Links       int `json:"links"`
}

type Store struct {
	freelances  *collection[string, freelance.Profile]
	skills      *collection[string, skill.Skill]
	assignments *collection[skill.AssignmentKey, skill.Assignment]
	links       *collection[string, freelance.Link]
}

var (
	_ FreelanceRepository  = (*Store)(nil)
	_ SkillRepository      = (*Store)(nil)
	_ AssignmentRepository = (*Store)(nil)
	_ LinkRepository       = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		freelances:  newCollection[string, freelance.Profile](),
		skills:      newCollection[string, skill.Skill](),
		assignments: newCollection[skill.AssignmentKey, skill.Assignment](),
		links:       newCollection[string, freelance.Link](),
	}
}

func (s *Store) Stats() Stats {
	return Stats{
		Freelances:  s.freelances.len(),
		Skills:      s.skills.len(),
		Assignments: s.assignments.len(),
		Links:       s.links.len(),
	}
}
