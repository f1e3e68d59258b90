package gql

import (
	"time"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/usecase"

	"github.com/graphql-go/graphql"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type objectTypes struct {
	freelance        *graphql.Object
	skill            *graphql.Object
	freelanceSkill   *graphql.Object
	professionalLink *graphql.Object
}

// newObjectTypes builds the output types. Fields are thunks because the
// types reference each other.
func newObjectTypes(dir *usecase.Directory) *objectTypes {
	t := &objectTypes{}

	t.freelance = graphql.NewObject(graphql.ObjectConfig{
		Name:   "Freelance",
		Fields: graphql.FieldsThunk(func() graphql.Fields { return t.freelanceFields(dir) }),
	})
	t.skill = graphql.NewObject(graphql.ObjectConfig{
		Name:   "Skill",
		Fields: graphql.FieldsThunk(func() graphql.Fields { return t.skillFields(dir) }),
	})
	t.freelanceSkill = graphql.NewObject(graphql.ObjectConfig{
		Name:   "FreelanceSkill",
		Fields: graphql.FieldsThunk(func() graphql.Fields { return t.freelanceSkillFields(dir) }),
	})
	t.professionalLink = graphql.NewObject(graphql.ObjectConfig{
		Name:   "ProfessionalLink",
		Fields: graphql.FieldsThunk(func() graphql.Fields { return t.professionalLinkFields(dir) }),
	})

	return t
}

func nonNullList(of graphql.Type) graphql.Output {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(of)))
}

// field builds a resolver over a typed source value.
func field[S any](typ graphql.Output, fn func(S) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			src, ok := p.Source.(S)
			if !ok {
				return nil, nil
			}
			return fn(src), nil
		},
	}
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func (t *objectTypes) freelanceFields(dir *usecase.Directory) graphql.Fields {
	type P = freelance.Profile
	str := graphql.NewNonNull(graphql.String)

	return graphql.Fields{
		"id":           field(graphql.NewNonNull(graphql.ID), func(p P) any { return p.ID }),
		"firstName":    field(str, func(p P) any { return p.FirstName }),
		"lastName":     field(str, func(p P) any { return p.LastName }),
		"email":        field(str, func(p P) any { return p.Email }),
		"phone":        field(graphql.String, func(p P) any { return optional(p.Phone) }),
		"title":        field(str, func(p P) any { return p.Title }),
		"description":  field(graphql.String, func(p P) any { return optional(p.Description) }),
		"location":     field(graphql.String, func(p P) any { return optional(p.Location) }),
		"availability": field(graphql.NewNonNull(availabilityEnum), func(p P) any { return string(p.Availability) }),
		"hourlyRate":   field(graphql.Float, func(p P) any { return optional(p.HourlyRate) }),
		"createdAt":    field(str, func(p P) any { return timestamp(p.CreatedAt) }),
		"updatedAt":    field(str, func(p P) any { return timestamp(p.UpdatedAt) }),
		"fullName":     field(str, func(p P) any { return p.FullName() }),
		"isAvailable":  field(graphql.NewNonNull(graphql.Boolean), func(p P) any { return p.IsAvailable() }),
		"skills": field(nonNullList(t.freelanceSkill), func(p P) any {
			return dir.FreelanceSkills(p.ID)
		}),
		"professionalLinks": field(nonNullList(t.professionalLink), func(p P) any {
			return dir.FreelanceLinks(p.ID)
		}),
	}
}

func (t *objectTypes) skillFields(dir *usecase.Directory) graphql.Fields {
	type S = skill.Skill

	return graphql.Fields{
		"id":          field(graphql.NewNonNull(graphql.ID), func(s S) any { return s.ID }),
		"name":        field(graphql.NewNonNull(graphql.String), func(s S) any { return s.Name }),
		"category":    field(graphql.NewNonNull(skillCategoryEnum), func(s S) any { return string(s.Category) }),
		"description": field(graphql.String, func(s S) any { return optional(s.Description) }),
		"freelances": field(nonNullList(t.freelanceSkill), func(s S) any {
			return dir.SkillFreelances(s.ID)
		}),
	}
}

// The back-references are nullable: an assignment or link whose parent was
// removed resolves to null instead of failing the request.
func (t *objectTypes) freelanceSkillFields(dir *usecase.Directory) graphql.Fields {
	type A = skill.Assignment

	return graphql.Fields{
		"freelanceId":       field(graphql.NewNonNull(graphql.ID), func(a A) any { return a.FreelanceID }),
		"skillId":           field(graphql.NewNonNull(graphql.ID), func(a A) any { return a.SkillID }),
		"level":             field(graphql.NewNonNull(skillLevelEnum), func(a A) any { return string(a.Level) }),
		"yearsOfExperience": field(graphql.Int, func(a A) any { return optional(a.YearsOfExperience) }),
		"freelance": field(t.freelance, func(a A) any {
			if p, ok := dir.AssignmentFreelance(a); ok {
				return p
			}
			return nil
		}),
		"skill": field(t.skill, func(a A) any {
			if s, ok := dir.AssignmentSkill(a); ok {
				return s
			}
			return nil
		}),
	}
}

func (t *objectTypes) professionalLinkFields(dir *usecase.Directory) graphql.Fields {
	type L = freelance.Link

	return graphql.Fields{
		"id":          field(graphql.NewNonNull(graphql.ID), func(l L) any { return l.ID }),
		"freelanceId": field(graphql.NewNonNull(graphql.ID), func(l L) any { return l.FreelanceID }),
		"platform":    field(graphql.NewNonNull(platformEnum), func(l L) any { return string(l.Platform) }),
		"url":         field(graphql.NewNonNull(graphql.String), func(l L) any { return l.URL }),
		"title":       field(graphql.String, func(l L) any { return optional(l.Title) }),
		"freelance": field(t.freelance, func(l L) any {
			if p, ok := dir.LinkFreelance(l); ok {
				return p
			}
			return nil
		}),
	}
}
