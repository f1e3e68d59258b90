package seeder

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/directory.yaml
var directoryYAML []byte

type fixtureSkill struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description *string `yaml:"description"`
}

type fixtureFreelance struct {
	ID           string   `yaml:"id"`
	FirstName    string   `yaml:"firstName"`
	LastName     string   `yaml:"lastName"`
	Email        string   `yaml:"email"`
	Phone        *string  `yaml:"phone"`
	Title        string   `yaml:"title"`
	Description  *string  `yaml:"description"`
	Location     *string  `yaml:"location"`
	Availability string   `yaml:"availability"`
	HourlyRate   *float64 `yaml:"hourlyRate"`
	CreatedAt    string   `yaml:"createdAt"`
	UpdatedAt    string   `yaml:"updatedAt"`
}

type fixtureAssignment struct {
	FreelanceID       string `yaml:"freelanceId"`
	SkillID           string `yaml:"skillId"`
	Level             string `yaml:"level"`
	YearsOfExperience *int   `yaml:"yearsOfExperience"`
}

type fixtureLink struct {
	ID          string  `yaml:"id"`
	FreelanceID string  `yaml:"freelanceId"`
	Platform    string  `yaml:"platform"`
	URL         string  `yaml:"url"`
	Title       *string `yaml:"title"`
}

type fixtureFile struct {
	Skills      []fixtureSkill      `yaml:"skills"`
	Freelances  []fixtureFreelance  `yaml:"freelances"`
	Assignments []fixtureAssignment `yaml:"assignments"`
	Links       []fixtureLink       `yaml:"links"`
}

// Directory is the decoded example directory.
type Directory struct {
	Skills      []skill.Skill
	Freelances  []freelance.Profile
	Assignments []skill.Assignment
	Links       []freelance.Link
}

var (
	loadOnce sync.Once
	loaded   Directory
	loadErr  error
)

// ExampleDirectory returns the embedded example directory.
func ExampleDirectory() (Directory, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseDirectory(directoryYAML)
	})
	return loaded, loadErr
}

// ParseDirectory decodes and validates a fixture document.
func ParseDirectory(raw []byte) (Directory, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Directory{}, fmt.Errorf("decode fixtures: %w", err)
	}

	out := Directory{}
	for i, s := range f.Skills {
		cat := skill.Category(s.Category)
		if s.ID == "" || !cat.IsValid() {
			return Directory{}, fmt.Errorf("skills[%d]: invalid id %q or category %q", i, s.ID, s.Category)
		}
		out.Skills = append(out.Skills, skill.Skill{ID: s.ID, Name: s.Name, Category: cat, Description: s.Description})
	}

	for i, p := range f.Freelances {
		av := freelance.Availability(p.Availability)
		if av == "" {
			av = freelance.AvailabilityAvailable
		}
		if p.ID == "" || !av.IsValid() {
			return Directory{}, fmt.Errorf("freelances[%d]: invalid id %q or availability %q", i, p.ID, p.Availability)
		}
		createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			return Directory{}, fmt.Errorf("freelances[%d].createdAt: %w", i, err)
		}
		updatedAt := createdAt
		if p.UpdatedAt != "" {
			if updatedAt, err = time.Parse(time.RFC3339, p.UpdatedAt); err != nil {
				return Directory{}, fmt.Errorf("freelances[%d].updatedAt: %w", i, err)
			}
		}
		out.Freelances = append(out.Freelances, freelance.Profile{
			ID:           p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Email:        p.Email,
			Phone:        p.Phone,
			Title:        p.Title,
			Description:  p.Description,
			Location:     p.Location,
			Availability: av,
			HourlyRate:   p.HourlyRate,
			CreatedAt:    createdAt.UTC(),
			UpdatedAt:    updatedAt.UTC(),
		})
	}

	for i, a := range f.Assignments {
		lvl := skill.Level(a.Level)
		if a.FreelanceID == "" || a.SkillID == "" || !lvl.IsValid() {
			return Directory{}, fmt.Errorf("assignments[%d]: invalid key (%q, %q) or level %q", i, a.FreelanceID, a.SkillID, a.Level)
		}
		out.Assignments = append(out.Assignments, skill.Assignment{
			FreelanceID:       a.FreelanceID,
			SkillID:           a.SkillID,
			Level:             lvl,
			YearsOfExperience: a.YearsOfExperience,
		})
	}

	for i, l := range f.Links {
		pl := freelance.Platform(l.Platform)
		if l.ID == "" || !pl.IsValid() {
			return Directory{}, fmt.Errorf("links[%d]: invalid id %q or platform %q", i, l.ID, l.Platform)
		}
		out.Links = append(out.Links, freelance.Link{ID: l.ID, FreelanceID: l.FreelanceID, Platform: pl, URL: l.URL, Title: l.Title})
	}

	return out, nil
}
