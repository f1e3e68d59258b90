package usecase

import (
	"strings"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/repository"
)

const DefaultListLimit = 10

// FreelanceFilter narrows ListFreelances. Nil or empty fields do not filter.
type FreelanceFilter struct {
	Skills        []string
	Availability  *freelance.Availability
	Location      *string
	MinHourlyRate *float64
	MaxHourlyRate *float64
}

type DirectoryQuery struct {
	freelances  repository.FreelanceRepository
	skills      repository.SkillRepository
	assignments repository.AssignmentRepository
	links       repository.LinkRepository
}

func NewDirectoryQuery(
	freelances repository.FreelanceRepository,
	skills repository.SkillRepository,
	assignments repository.AssignmentRepository,
	links repository.LinkRepository,
) *DirectoryQuery {
	return &DirectoryQuery{freelances: freelances, skills: skills, assignments: assignments, links: links}
}

func (q *DirectoryQuery) Freelance(id string) (freelance.Profile, bool) {
	return q.freelances.GetFreelance(id)
}

// ListFreelances applies the filter conjunctively and then slices the result
// by offset and limit. Results keep insertion order.
func (q *DirectoryQuery) ListFreelances(filter FreelanceFilter, limit, offset int) []freelance.Profile {
	items := q.freelances.ListFreelances()

	if filter.Availability != nil {
		want := *filter.Availability
		items = keep(items, func(p freelance.Profile) bool { return p.Availability == want })
	}
	if filter.Location != nil && *filter.Location != "" {
		needle := strings.ToLower(*filter.Location)
		items = keep(items, func(p freelance.Profile) bool {
			return p.Location != nil && strings.Contains(strings.ToLower(*p.Location), needle)
		})
	}
	if filter.MinHourlyRate != nil {
		lo := *filter.MinHourlyRate
		items = keep(items, func(p freelance.Profile) bool { return p.HourlyRate != nil && *p.HourlyRate >= lo })
	}
	if filter.MaxHourlyRate != nil {
		hi := *filter.MaxHourlyRate
		items = keep(items, func(p freelance.Profile) bool { return p.HourlyRate != nil && *p.HourlyRate <= hi })
	}
	if len(filter.Skills) > 0 {
		items = keep(items, q.holdsAnySkill(filter.Skills))
	}

	return page(items, limit, offset)
}

// holdsAnySkill matches profiles assigned at least one skill whose name
// equals one of names, ignoring case.
func (q *DirectoryQuery) holdsAnySkill(names []string) func(freelance.Profile) bool {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = struct{}{}
	}

	return func(p freelance.Profile) bool {
		for _, a := range q.assignments.FindAssignmentsByFreelanceID(p.ID) {
			sk, ok := q.skills.GetSkill(a.SkillID)
			if !ok {
				continue
			}
			if _, hit := wanted[strings.ToLower(sk.Name)]; hit {
				return true
			}
		}
		return false
	}
}

// SearchFreelances returns every profile whose first name, last name, title
// or description contains query, ignoring case.
func (q *DirectoryQuery) SearchFreelances(query string) []freelance.Profile {
	needle := strings.ToLower(query)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }

	return keep(q.freelances.ListFreelances(), func(p freelance.Profile) bool {
		return contains(p.FirstName) ||
			contains(p.LastName) ||
			contains(p.Title) ||
			(p.Description != nil && contains(*p.Description))
	})
}

func (q *DirectoryQuery) Skill(id string) (skill.Skill, bool) {
	return q.skills.GetSkill(id)
}

func (q *DirectoryQuery) ListSkills(category *skill.Category) []skill.Skill {
	items := q.skills.ListSkills()
	if category == nil {
		return items
	}
	want := *category
	return keep(items, func(s skill.Skill) bool { return s.Category == want })
}

func (q *DirectoryQuery) FreelanceCount() int {
	return q.freelances.CountFreelances()
}

func (q *DirectoryQuery) SkillCount() int {
	return q.skills.CountSkills()
}

func (q *DirectoryQuery) AvailableFreelanceCount() int {
	n := 0
	for _, p := range q.freelances.ListFreelances() {
		if p.IsAvailable() {
			n++
		}
	}
	return n
}

func keep[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if fn(it) {
			out = append(out, it)
		}
	}
	return out
}

// page slices items[offset:offset+limit], clamping to the available range.
// Negative values count as zero.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	if limit > len(items)-offset {
		return items[offset:]
	}
	return items[offset : offset+limit]
}
