package gql

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"freelance-directory/internal/repository"
	"freelance-directory/internal/seeder"
	"freelance-directory/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestExecutor(t *testing.T, opts ...ExecutorOption) (*Executor, *usecase.Directory) {
	t.Helper()

	store := repository.NewStore()
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults()}.Run(context.Background(), store))

	n := 0
	dir := usecase.NewDirectory(store,
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("new-%d", n)
		}),
	)

	exec, err := NewExecutor(dir, opts...)
	require.NoError(t, err)
	return exec, dir
}

func run(t *testing.T, e *Executor, query string, vars map[string]any) *graphql.Result {
	t.Helper()
	return e.Execute(context.Background(), Request{Query: query, Variables: vars})
}

func requireData(t *testing.T, res *graphql.Result, want string) {
	t.Helper()
	require.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)
	got, err := json.Marshal(res.Data)
	require.NoError(t, err)
	assert.JSONEq(t, want, string(got))
}

func TestSchema_FreelanceWithRelations(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `{
		freelance(id: "1") {
			id fullName isAvailable availability hourlyRate createdAt
			skills { level yearsOfExperience skill { name category } }
			professionalLinks { platform title freelance { lastName } }
		}
	}`, nil)

	requireData(t, res, `{"freelance": {
		"id": "1",
		"fullName": "Ouerghi Chaima",
		"isAvailable": true,
		"availability": "AVAILABLE",
		"hourlyRate": 60,
		"createdAt": "2024-01-15T00:00:00.000Z",
		"skills": [
			{"level": "EXPERT", "yearsOfExperience": 5, "skill": {"name": "JavaScript", "category": "TECHNICAL"}},
			{"level": "ADVANCED", "yearsOfExperience": 3, "skill": {"name": "React", "category": "TECHNICAL"}},
			{"level": "INTERMEDIATE", "yearsOfExperience": 2, "skill": {"name": "Node.js", "category": "TECHNICAL"}}
		],
		"professionalLinks": [
			{"platform": "GITHUB", "title": "Portfolio GitHub", "freelance": {"lastName": "Chaima"}},
			{"platform": "LINKEDIN", "title": "Profil LinkedIn", "freelance": {"lastName": "Chaima"}}
		]
	}}`)
}

func TestSchema_MissingEntitiesAreNull(t *testing.T) {
	e, _ := newTestExecutor(t)
	res := run(t, e, `{ freelance(id: "404") { id } skill(id: "404") { id } }`, nil)
	requireData(t, res, `{"freelance": null, "skill": null}`)
}

func TestSchema_ListAndCounts(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `{
		available: freelances(filter: {availability: AVAILABLE}) { id }
		band: freelances(filter: {minHourlyRate: 50, maxHourlyRate: 70}) { id }
		bySkill: freelances(filter: {skills: ["anglais"]}) { id }
		paged: freelances(limit: 1, offset: 1) { id }
		beyond: freelances(offset: 5) { id }
		freelanceCount
		skillCount
		availableFreelancesCount
	}`, nil)

	requireData(t, res, `{
		"available": [{"id": "1"}],
		"band": [{"id": "1"}],
		"bySkill": [{"id": "2"}],
		"paged": [{"id": "2"}],
		"beyond": [],
		"freelanceCount": 2,
		"skillCount": 6,
		"availableFreelancesCount": 1
	}`)
}

func TestSchema_SearchIgnoresCase(t *testing.T) {
	e, _ := newTestExecutor(t)

	for _, q := range []string{"design", "DESIGN", "Design"} {
		res := run(t, e, `query($q: String!) { searchFreelances(query: $q) { title } }`, map[string]any{"q": q})
		requireData(t, res, `{"searchFreelances": [{"title": "Designer UX/UI"}]}`)
	}
}

func TestSchema_SkillsByCategory(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `{ skills(category: LANGUAGE) { name freelances { freelanceId level } } }`, nil)
	requireData(t, res, `{"skills": [{"name": "Anglais", "freelances": [{"freelanceId": "2", "level": "ADVANCED"}]}]}`)

	res = run(t, e, `{ skills { id } }`, nil)
	require.False(t, res.HasErrors())
	assert.Len(t, res.Data.(map[string]any)["skills"], 6)
}

func TestSchema_CreateFreelanceDefaultsAvailability(t *testing.T) {
	e, dir := newTestExecutor(t)

	res := run(t, e, `mutation {
		createFreelance(input: {firstName: "Lina", lastName: "Haddad", email: "lina@example.com", title: "Traductrice", hourlyRate: 30}) {
			id fullName availability isAvailable phone createdAt updatedAt skills { skillId }
		}
	}`, nil)

	requireData(t, res, `{"createFreelance": {
		"id": "new-1",
		"fullName": "Lina Haddad",
		"availability": "AVAILABLE",
		"isAvailable": true,
		"phone": null,
		"createdAt": "2024-03-01T12:00:00.000Z",
		"updatedAt": "2024-03-01T12:00:00.000Z",
		"skills": []
	}}`)
	assert.Equal(t, 3, dir.FreelanceCount())
}

func TestSchema_UpdateFreelance(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `mutation($in: UpdateFreelanceInput!) {
		updateFreelance(id: "2", input: $in) { title availability hourlyRate location createdAt updatedAt }
	}`, map[string]any{"in": map[string]any{"title": "Lead Designer", "availability": "NOT_AVAILABLE"}})

	requireData(t, res, `{"updateFreelance": {
		"title": "Lead Designer",
		"availability": "NOT_AVAILABLE",
		"hourlyRate": 45,
		"location": "Tunis, Tunisie",
		"createdAt": "2024-02-01T00:00:00.000Z",
		"updatedAt": "2024-03-01T12:00:00.000Z"
	}}`)
}

func TestSchema_UpdateFreelanceClearsExplicitNulls(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `mutation($in: UpdateFreelanceInput!) {
		updateFreelance(id: "2", input: $in) { title phone hourlyRate location description }
	}`, map[string]any{"in": map[string]any{"phone": nil, "hourlyRate": nil, "title": nil}})

	requireData(t, res, `{"updateFreelance": {
		"title": "Designer UX/UI",
		"phone": null,
		"hourlyRate": null,
		"location": "Tunis, Tunisie",
		"description": "Designer créatif spécialisé en expérience utilisateur."
	}}`)

	res = run(t, e, `{ freelances(filter: {maxHourlyRate: 100}) { id } }`, nil)
	requireData(t, res, `{"freelances": [{"id": "1"}]}`)
}

func TestSchema_UpdateFreelanceNullThroughFieldVariable(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `mutation($loc: String, $phone: String) {
		updateFreelance(id: "1", input: {location: $loc, phone: $phone}) { location phone }
	}`, map[string]any{"loc": nil})

	requireData(t, res, `{"updateFreelance": {"location": null, "phone": "+93176660"}}`)
}

func TestSchema_UpdateUnknownFreelanceFails(t *testing.T) {
	e, dir := newTestExecutor(t)

	res := run(t, e, `mutation { updateFreelance(id: "404", input: {firstName: "Ghost"}) { id } }`, nil)

	require.True(t, res.HasErrors())
	assert.Equal(t, usecase.ErrFreelanceNotFound.Error(), res.Errors[0].Message)
	assert.Equal(t, 2, dir.FreelanceCount())
}

func TestSchema_DeleteFreelanceCascades(t *testing.T) {
	e, _ := newTestExecutor(t)

	requireData(t, run(t, e, `mutation { deleteFreelance(id: "1") }`, nil), `{"deleteFreelance": true}`)
	requireData(t, run(t, e, `mutation { deleteFreelance(id: "1") }`, nil), `{"deleteFreelance": false}`)

	res := run(t, e, `{
		freelance(id: "1") { id }
		skill(id: "1") { freelances { freelanceId } }
		freelanceCount
	}`, nil)
	requireData(t, res, `{"freelance": null, "skill": {"freelances": []}, "freelanceCount": 1}`)
}

func TestSchema_SkillAssignments(t *testing.T) {
	e, _ := newTestExecutor(t)

	add := `mutation($lvl: SkillLevel!) {
		addSkillToFreelance(input: {freelanceId: "2", skillId: "1", level: $lvl, yearsOfExperience: 1}) { level }
	}`
	requireData(t, run(t, e, add, map[string]any{"lvl": "BEGINNER"}), `{"addSkillToFreelance": {"level": "BEGINNER"}}`)
	requireData(t, run(t, e, add, map[string]any{"lvl": "EXPERT"}), `{"addSkillToFreelance": {"level": "EXPERT"}}`)

	res := run(t, e, `{ skill(id: "1") { freelances { freelanceId level } } }`, nil)
	requireData(t, res, `{"skill": {"freelances": [
		{"freelanceId": "1", "level": "EXPERT"},
		{"freelanceId": "2", "level": "EXPERT"}
	]}}`)

	remove := `mutation { removeSkillFromFreelance(freelanceId: "2", skillId: "1") }`
	requireData(t, run(t, e, remove, nil), `{"removeSkillFromFreelance": true}`)
	requireData(t, run(t, e, remove, nil), `{"removeSkillFromFreelance": false}`)
}

func TestSchema_OrphanReferencesResolveToNull(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `mutation {
		addSkillToFreelance(input: {freelanceId: "ghost", skillId: "none", level: ADVANCED}) {
			freelanceId yearsOfExperience freelance { id } skill { id }
		}
		createProfessionalLink(input: {freelanceId: "ghost", platform: OTHER, url: "https://example.com"}) {
			id title freelance { id }
		}
	}`, nil)

	requireData(t, res, `{
		"addSkillToFreelance": {"freelanceId": "ghost", "yearsOfExperience": null, "freelance": null, "skill": null},
		"createProfessionalLink": {"id": "new-1", "title": null, "freelance": null}
	}`)
}

func TestSchema_SkillAndLinkLifecycle(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := run(t, e, `mutation {
		createSkill(input: {name: "Go", category: TECHNICAL}) { id name category description }
	}`, nil)
	requireData(t, res, `{"createSkill": {"id": "new-1", "name": "Go", "category": "TECHNICAL", "description": null}}`)

	res = run(t, e, `mutation {
		createProfessionalLink(input: {freelanceId: "2", platform: DRIBBBLE, url: "https://dribbble.com/ahmed", title: "Shots"}) { id platform }
	}`, nil)
	requireData(t, res, `{"createProfessionalLink": {"id": "new-2", "platform": "DRIBBBLE"}}`)

	requireData(t, run(t, e, `mutation { deleteProfessionalLink(id: "new-2") }`, nil), `{"deleteProfessionalLink": true}`)
	requireData(t, run(t, e, `mutation { deleteProfessionalLink(id: "new-2") }`, nil), `{"deleteProfessionalLink": false}`)
}

func TestSchema_RejectsUnknownEnumValue(t *testing.T) {
	e, _ := newTestExecutor(t)
	res := run(t, e, `{ freelances(filter: {availability: SOMETIMES}) { id } }`, nil)
	assert.True(t, res.HasErrors())
}

func TestOperationType(t *testing.T) {
	tests := []struct {
		query string
		name  string
		want  string
	}{
		{query: `{ freelanceCount }`, want: "query"},
		{query: `query Q { freelanceCount }`, want: "query"},
		{query: `mutation { deleteFreelance(id: "1") }`, want: "mutation"},
		{query: `query A { skillCount } mutation B { deleteFreelance(id: "1") }`, name: "B", want: "mutation"},
		{query: `query A { skillCount } mutation B { deleteFreelance(id: "1") }`, want: ""},
		{query: `query A { skillCount }`, name: "Z", want: ""},
		{query: `{ broken`, want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OperationType(tt.query, tt.name), tt.query)
	}
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = b
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := pattern[:len(pattern)-1]
	for k := range m.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.items, k)
		}
	}
	return nil
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recordingObserver) ObserveOperation(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, operation+":"+outcome)
}

func TestExecutor_CachesQueriesUntilMutation(t *testing.T) {
	cache := &memoryCache{items: map[string][]byte{}}
	obs := &recordingObserver{}
	e, _ := newTestExecutor(t, WithQueryCache(cache, "test"), WithObserver(obs))

	q := `{ freelanceCount }`
	requireData(t, run(t, e, q, nil), `{"freelanceCount": 2}`)
	requireData(t, run(t, e, q, nil), `{"freelanceCount": 2}`)
	assert.Len(t, cache.items, 1)

	requireData(t, run(t, e, `mutation { deleteFreelance(id: "2") }`, nil), `{"deleteFreelance": true}`)
	assert.Empty(t, cache.items)

	requireData(t, run(t, e, q, nil), `{"freelanceCount": 1}`)

	assert.Equal(t, []string{"query:ok", "query:cached", "mutation:ok", "query:ok"}, obs.outcomes)
}

func TestExecutor_DoesNotCacheErrors(t *testing.T) {
	cache := &memoryCache{items: map[string][]byte{}}
	e, _ := newTestExecutor(t, WithQueryCache(cache, "test"))

	res := run(t, e, `{ nope }`, nil)
	assert.True(t, res.HasErrors())
	assert.Empty(t, cache.items)
}

func TestExecutor_Introspect(t *testing.T) {
	e, _ := newTestExecutor(t)

	out, err := e.Introspect(context.Background())
	require.NoError(t, err)

	s := string(out)
	for _, name := range []string{"FreelanceFilter", "UpdateFreelanceInput", "Availability", "DRIBBBLE", "availableFreelancesCount"} {
		assert.Contains(t, s, name)
	}
}

func TestExecutor_CacheKeepsStringArgumentsApart(t *testing.T) {
	cache := &memoryCache{items: map[string][]byte{}}
	e, _ := newTestExecutor(t, WithQueryCache(cache, "test"))

	requireData(t, run(t, e, `{ searchFreelances(query: "Full Stack") { id } }`, nil),
		`{"searchFreelances": [{"id": "1"}]}`)
	requireData(t, run(t, e, `{ searchFreelances(query: "Full  Stack") { id } }`, nil),
		`{"searchFreelances": []}`)
	assert.Len(t, cache.items, 2)
}

func TestExecutor_CacheSharesLayoutVariants(t *testing.T) {
	cache := &memoryCache{items: map[string][]byte{}}
	obs := &recordingObserver{}
	e, _ := newTestExecutor(t, WithQueryCache(cache, "test"), WithObserver(obs))

	requireData(t, run(t, e, "{ skillCount }", nil), `{"skillCount": 6}`)
	requireData(t, run(t, e, "{\n  skillCount\n}", nil), `{"skillCount": 6}`)

	assert.Len(t, cache.items, 1)
	assert.Equal(t, []string{"query:ok", "query:cached"}, obs.outcomes)
}
