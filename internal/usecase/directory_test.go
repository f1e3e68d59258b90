package usecase

import (
	"errors"
	"sync"
	"testing"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_NilStoreStartsEmpty(t *testing.T) {
	d := NewDirectory(nil)
	assert.Equal(t, repository.Stats{}, d.Stats())
	assert.Empty(t, d.ListFreelances(FreelanceFilter{}, DefaultListLimit, 0))
}

func TestDirectory_ViewAndUpdateReturnCallbackError(t *testing.T) {
	d, _, _ := newTestDirectory()
	boom := errors.New("boom")

	assert.ErrorIs(t, d.View(func() error { return boom }), boom)
	assert.ErrorIs(t, d.Update(func() error { return boom }), boom)
	assert.NoError(t, d.View(func() error { return nil }))
}

// Readers inside View never observe a profile whose cascade is half applied.
func TestDirectory_CascadeIsAtomicUnderLocks(t *testing.T) {
	d := NewDirectory(repository.NewStore())

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = d.Update(func() error {
				p := d.CreateFreelance(freelance.CreateInput{FirstName: "F"})
				d.AddSkillToFreelance(skill.AssignInput{FreelanceID: p.ID, SkillID: "s", Level: skill.LevelBeginner})
				d.CreateProfessionalLink(freelance.CreateLinkInput{FreelanceID: p.ID, Platform: freelance.PlatformOther, URL: "u"})
				return nil
			})
			_ = d.Update(func() error {
				for _, p := range d.ListFreelances(FreelanceFilter{}, 1, 0) {
					d.DeleteFreelance(p.ID)
				}
				return nil
			})
		}
	}()

	violations := 0
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = d.View(func() error {
				for _, a := range d.SkillFreelances("s") {
					if _, ok := d.AssignmentFreelance(a); !ok {
						violations++
					}
				}
				return nil
			})
		}
	}()

	wg.Wait()
	require.Zero(t, violations)
	assert.Equal(t, repository.Stats{}, d.Stats())
}
