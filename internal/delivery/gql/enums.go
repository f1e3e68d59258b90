package gql

import (
	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"

	"github.com/graphql-go/graphql"
)

// Enum values are the upper-case domain strings; resolvers convert them back
// to domain types.
func newEnum[T ~string](name string, values []T) *graphql.Enum {
	cfg := graphql.EnumValueConfigMap{}
	for _, v := range values {
		cfg[string(v)] = &graphql.EnumValueConfig{Value: string(v)}
	}
	return graphql.NewEnum(graphql.EnumConfig{Name: name, Values: cfg})
}

var (
	availabilityEnum  = newEnum("Availability", freelance.Availabilities)
	skillCategoryEnum = newEnum("SkillCategory", skill.Categories)
	skillLevelEnum    = newEnum("SkillLevel", skill.Levels)
	platformEnum      = newEnum("Platform", freelance.Platforms)
)
