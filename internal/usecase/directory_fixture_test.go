package usecase

import (
	"fmt"
	"sync"
	"time"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/repository"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type recordingPublisher struct {
	mu     sync.Mutex
	events []DirectoryEvent
}

func (r *recordingPublisher) Publish(evt DirectoryEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingPublisher) snapshot() []DirectoryEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DirectoryEvent(nil), r.events...)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// seededStore mirrors the example directory: two profiles, six skills,
// five assignments and three links.
func seededStore() *repository.Store {
	s := repository.NewStore()

	for _, sk := range []skill.Skill{
		{ID: "1", Name: "JavaScript", Category: skill.CategoryTechnical},
		{ID: "2", Name: "React", Category: skill.CategoryTechnical},
		{ID: "3", Name: "Node.js", Category: skill.CategoryTechnical},
		{ID: "4", Name: "Design Graphique", Category: skill.CategoryCreative},
		{ID: "5", Name: "Marketing Digital", Category: skill.CategoryBusiness},
		{ID: "6", Name: "Anglais", Category: skill.CategoryLanguage},
	} {
		s.SaveSkill(sk)
	}

	s.SaveFreelance(freelance.Profile{
		ID:           "1",
		FirstName:    "Ouerghi",
		LastName:     "Chaima",
		Email:        "ouerghi@email.com",
		Phone:        ptr("+93176660"),
		Title:        "Développeuse Full Stack",
		Description:  ptr("Développeuse passionnée avec 5 ans d'expérience en JavaScript et React."),
		Location:     ptr("Paris, France"),
		Availability: freelance.AvailabilityAvailable,
		HourlyRate:   ptr(60.0),
		CreatedAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	s.SaveFreelance(freelance.Profile{
		ID:           "2",
		FirstName:    "Ahmed",
		LastName:     "Ben Ali",
		Email:        "ahmed.benali@email.com",
		Phone:        ptr("+216123456789"),
		Title:        "Designer UX/UI",
		Description:  ptr("Designer créatif spécialisé en expérience utilisateur."),
		Location:     ptr("Tunis, Tunisie"),
		Availability: freelance.AvailabilityBusy,
		HourlyRate:   ptr(45.0),
		CreatedAt:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	for _, a := range []skill.Assignment{
		{FreelanceID: "1", SkillID: "1", Level: skill.LevelExpert, YearsOfExperience: ptr(5)},
		{FreelanceID: "1", SkillID: "2", Level: skill.LevelAdvanced, YearsOfExperience: ptr(3)},
		{FreelanceID: "1", SkillID: "3", Level: skill.LevelIntermediate, YearsOfExperience: ptr(2)},
		{FreelanceID: "2", SkillID: "4", Level: skill.LevelExpert, YearsOfExperience: ptr(6)},
		{FreelanceID: "2", SkillID: "6", Level: skill.LevelAdvanced, YearsOfExperience: ptr(4)},
	} {
		s.SaveAssignment(a)
	}

	s.SaveLink(freelance.Link{ID: "1", FreelanceID: "1", Platform: freelance.PlatformGitHub, URL: "https://github.com/Ouerghi23", Title: ptr("Portfolio GitHub")})
	s.SaveLink(freelance.Link{ID: "2", FreelanceID: "1", Platform: freelance.PlatformLinkedIn, URL: "https://github.com/Ouerghi23", Title: ptr("Profil LinkedIn")})
	s.SaveLink(freelance.Link{ID: "3", FreelanceID: "2", Platform: freelance.PlatformBehance, URL: "https://behance.net/ahmedbenali", Title: ptr("Portfolio Behance")})

	return s
}

func newTestDirectory() (*Directory, *testClock, *recordingPublisher) {
	clock := &testClock{now: fixedNow}
	pub := &recordingPublisher{}
	d := NewDirectory(seededStore(),
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs("gen")),
		WithEventPublisher(pub),
	)
	return d, clock, pub
}

func profileIDs(ps []freelance.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
