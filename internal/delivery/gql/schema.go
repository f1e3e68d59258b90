// Package gql exposes the freelancer directory as a GraphQL schema.
//
// Resolvers call the directory engines without locking; Executor holds the
// directory lock for the whole request.
package gql

import (
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/usecase"

	"github.com/graphql-go/graphql"
)

func NewSchema(dir *usecase.Directory) (graphql.Schema, error) {
	t := newObjectTypes(dir)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType(dir, t),
		Mutation: mutationType(dir, t),
	})
}

func idArgs(names ...string) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{}
	for _, n := range names {
		args[n] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}

func inputArg(typ *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(typ)},
	}
}

func queryType(dir *usecase.Directory, t *objectTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"freelance": &graphql.Field{
				Type: t.freelance,
				Args: idArgs("id"),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					if f, ok := dir.Freelance(stringArg(p.Args, "id")); ok {
						return f, nil
					}
					return nil, nil
				},
			},
			"freelances": &graphql.Field{
				Type: nonNullList(t.freelance),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: freelanceFilterInput},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: usecase.DefaultListLimit},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					limit := intArg(p.Args, "limit", usecase.DefaultListLimit)
					offset := intArg(p.Args, "offset", 0)
					return dir.ListFreelances(decodeFilter(p.Args), limit, offset), nil
				},
			},
			"searchFreelances": &graphql.Field{
				Type: nonNullList(t.freelance),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.SearchFreelances(stringArg(p.Args, "query")), nil
				},
			},
			"skill": &graphql.Field{
				Type: t.skill,
				Args: idArgs("id"),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					if s, ok := dir.Skill(stringArg(p.Args, "id")); ok {
						return s, nil
					}
					return nil, nil
				},
			},
			"skills": &graphql.Field{
				Type: nonNullList(t.skill),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: skillCategoryEnum},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var category *skill.Category
					if c, ok := p.Args["category"].(string); ok {
						cat := skill.Category(c)
						category = &cat
					}
					return dir.ListSkills(category), nil
				},
			},
			"freelanceCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return dir.FreelanceCount(), nil
				},
			},
			"skillCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return dir.SkillCount(), nil
				},
			},
			"availableFreelancesCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return dir.AvailableFreelanceCount(), nil
				},
			},
		},
	})
}

func mutationType(dir *usecase.Directory, t *objectTypes) *graphql.Object {
	updateArgs := idArgs("id")
	updateArgs["input"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateFreelanceInput)}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createFreelance": &graphql.Field{
				Type: graphql.NewNonNull(t.freelance),
				Args: inputArg(createFreelanceInput),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.CreateFreelance(decodeCreateFreelance(p.Args)), nil
				},
			},
			"updateFreelance": &graphql.Field{
				Type: graphql.NewNonNull(t.freelance),
				Args: updateArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					f, err := dir.UpdateFreelance(stringArg(p.Args, "id"), decodeUpdateFreelance(p.Args, explicitNulls(p, "input")))
					if err != nil {
						return nil, err
					}
					return f, nil
				},
			},
			"deleteFreelance": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArgs("id"),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.DeleteFreelance(stringArg(p.Args, "id")), nil
				},
			},
			"createSkill": &graphql.Field{
				Type: graphql.NewNonNull(t.skill),
				Args: inputArg(createSkillInput),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.CreateSkill(decodeCreateSkill(p.Args)), nil
				},
			},
			"addSkillToFreelance": &graphql.Field{
				Type: graphql.NewNonNull(t.freelanceSkill),
				Args: inputArg(addSkillToFreelanceInput),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.AddSkillToFreelance(decodeAssign(p.Args)), nil
				},
			},
			"removeSkillFromFreelance": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArgs("freelanceId", "skillId"),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.RemoveSkillFromFreelance(stringArg(p.Args, "freelanceId"), stringArg(p.Args, "skillId")), nil
				},
			},
			"createProfessionalLink": &graphql.Field{
				Type: graphql.NewNonNull(t.professionalLink),
				Args: inputArg(createProfessionalLinkInput),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.CreateProfessionalLink(decodeCreateLink(p.Args)), nil
				},
			},
			"deleteProfessionalLink": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArgs("id"),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return dir.DeleteProfessionalLink(stringArg(p.Args, "id")), nil
				},
			},
		},
	})
}
