package gql

import (
	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

var createFreelanceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateFreelanceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"location":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"availability": &graphql.InputObjectFieldConfig{
			Type:         availabilityEnum,
			DefaultValue: string(freelance.AvailabilityAvailable),
		},
		"hourlyRate": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var updateFreelanceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateFreelanceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"title":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"location":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"availability": &graphql.InputObjectFieldConfig{Type: availabilityEnum},
		"hourlyRate":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var createSkillInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateSkillInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"category":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(skillCategoryEnum)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var addSkillToFreelanceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AddSkillToFreelanceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"freelanceId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"skillId":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"level":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(skillLevelEnum)},
		"yearsOfExperience": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var createProfessionalLinkInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProfessionalLinkInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"freelanceId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"platform":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(platformEnum)},
		"url":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var freelanceFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FreelanceFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"skills":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"availability":  &graphql.InputObjectFieldConfig{Type: availabilityEnum},
		"location":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"minHourlyRate": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"maxHourlyRate": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

// Argument values arrive as the generic maps and scalars graphql-go coerces
// them to. The helpers below read them into domain inputs; a key that is
// absent or null yields nil.

func inputMap(args map[string]any, key string) map[string]any {
	m, _ := args[key].(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

func stringArg(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringPtr(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func floatPtr(m map[string]any, key string) *float64 {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

func intArg(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func intPtr(m map[string]any, key string) *int {
	if _, ok := m[key]; !ok || m[key] == nil {
		return nil
	}
	v := intArg(m, key, 0)
	return &v
}

func stringList(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// nullable reports whether key was supplied, distinguishing an explicit
// null (listed in nulls) from an omitted field.
func nullable[T any](m map[string]any, nulls map[string]bool, key string, read func(map[string]any, string) *T) freelance.Field[T] {
	if nulls[key] {
		return freelance.Null[T]()
	}
	if _, present := m[key]; !present {
		return freelance.Field[T]{}
	}
	return freelance.Field[T]{Set: true, Value: read(m, key)}
}

// explicitNulls lists the fields of input object argument arg that the
// request set to null, either as a literal or through a variable.
func explicitNulls(p graphql.ResolveParams, arg string) map[string]bool {
	nulls := map[string]bool{}
	if len(p.Info.FieldASTs) == 0 {
		return nulls
	}
	vars := rawVariables(p.Context)

	for _, a := range p.Info.FieldASTs[0].Arguments {
		if a.Name == nil || a.Name.Value != arg {
			continue
		}
		switch v := a.Value.(type) {
		case *ast.Variable:
			obj, _ := vars[v.Name.Value].(map[string]any)
			for k, val := range obj {
				if val == nil {
					nulls[k] = true
				}
			}
		case *ast.ObjectValue:
			for _, f := range v.Fields {
				if f.Name == nil || f.Value == nil {
					continue
				}
				if f.Value.GetKind() == "NullValue" {
					nulls[f.Name.Value] = true
					continue
				}
				if ref, ok := f.Value.(*ast.Variable); ok {
					if val, present := vars[ref.Name.Value]; present && val == nil {
						nulls[f.Name.Value] = true
					}
				}
			}
		}
	}
	return nulls
}

func availabilityPtr(m map[string]any, key string) *freelance.Availability {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	a := freelance.Availability(s)
	return &a
}

func decodeCreateFreelance(args map[string]any) freelance.CreateInput {
	in := inputMap(args, "input")
	out := freelance.CreateInput{
		FirstName:   stringArg(in, "firstName"),
		LastName:    stringArg(in, "lastName"),
		Email:       stringArg(in, "email"),
		Phone:       stringPtr(in, "phone"),
		Title:       stringArg(in, "title"),
		Description: stringPtr(in, "description"),
		Location:    stringPtr(in, "location"),
		HourlyRate:  floatPtr(in, "hourlyRate"),
	}
	if a := availabilityPtr(in, "availability"); a != nil {
		out.Availability = *a
	}
	return out
}

// decodeUpdateFreelance reads the update input. An explicit null clears a
// nullable attribute; on a required attribute it is ignored.
func decodeUpdateFreelance(args map[string]any, nulls map[string]bool) freelance.UpdateInput {
	in := inputMap(args, "input")
	return freelance.UpdateInput{
		FirstName:    stringPtr(in, "firstName"),
		LastName:     stringPtr(in, "lastName"),
		Email:        stringPtr(in, "email"),
		Phone:        nullable(in, nulls, "phone", stringPtr),
		Title:        stringPtr(in, "title"),
		Description:  nullable(in, nulls, "description", stringPtr),
		Location:     nullable(in, nulls, "location", stringPtr),
		Availability: availabilityPtr(in, "availability"),
		HourlyRate:   nullable(in, nulls, "hourlyRate", floatPtr),
	}
}

func decodeCreateSkill(args map[string]any) skill.CreateInput {
	in := inputMap(args, "input")
	return skill.CreateInput{
		Name:        stringArg(in, "name"),
		Category:    skill.Category(stringArg(in, "category")),
		Description: stringPtr(in, "description"),
	}
}

func decodeAssign(args map[string]any) skill.AssignInput {
	in := inputMap(args, "input")
	return skill.AssignInput{
		FreelanceID:       stringArg(in, "freelanceId"),
		SkillID:           stringArg(in, "skillId"),
		Level:             skill.Level(stringArg(in, "level")),
		YearsOfExperience: intPtr(in, "yearsOfExperience"),
	}
}

func decodeCreateLink(args map[string]any) freelance.CreateLinkInput {
	in := inputMap(args, "input")
	return freelance.CreateLinkInput{
		FreelanceID: stringArg(in, "freelanceId"),
		Platform:    freelance.Platform(stringArg(in, "platform")),
		URL:         stringArg(in, "url"),
		Title:       stringPtr(in, "title"),
	}
}

func decodeFilter(args map[string]any) usecase.FreelanceFilter {
	in := inputMap(args, "filter")
	return usecase.FreelanceFilter{
		Skills:        stringList(in, "skills"),
		Availability:  availabilityPtr(in, "availability"),
		Location:      stringPtr(in, "location"),
		MinHourlyRate: floatPtr(in, "minHourlyRate"),
		MaxHourlyRate: floatPtr(in, "maxHourlyRate"),
	}
}
