package usecase

import (
	"errors"

	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
	"freelance-directory/internal/repository"
)

var ErrFreelanceNotFound = errors.New("freelance not found")

type DirectoryMutation struct {
	freelances  repository.FreelanceRepository
	skills      repository.SkillRepository
	assignments repository.AssignmentRepository
	links       repository.LinkRepository

	now    Clock
	newID  IDGenerator
	events EventPublisher
}

func NewDirectoryMutation(
	freelances repository.FreelanceRepository,
	skills repository.SkillRepository,
	assignments repository.AssignmentRepository,
	links repository.LinkRepository,
	now Clock,
	newID IDGenerator,
	events EventPublisher,
) *DirectoryMutation {
	return &DirectoryMutation{
		freelances:  freelances,
		skills:      skills,
		assignments: assignments,
		links:       links,
		now:         now,
		newID:       newID,
		events:      events,
	}
}

func (m *DirectoryMutation) CreateFreelance(in freelance.CreateInput) freelance.Profile {
	now := m.now()
	availability := in.Availability
	if availability == "" {
		availability = freelance.AvailabilityAvailable
	}

	p := freelance.Profile{
		ID:           m.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Availability: availability,
		HourlyRate:   in.HourlyRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.freelances.SaveFreelance(p)

	evt := newDirectoryEvent(now, ActionCreated, EntityFreelance)
	evt.ID = p.ID
	m.publish(evt)
	return p
}

// UpdateFreelance merges the supplied fields of in over the stored profile.
// It returns ErrFreelanceNotFound, leaving the store untouched, when id is unknown.
func (m *DirectoryMutation) UpdateFreelance(id string, in freelance.UpdateInput) (freelance.Profile, error) {
	current, ok := m.freelances.GetFreelance(id)
	if !ok {
		return freelance.Profile{}, ErrFreelanceNotFound
	}

	updated := in.Merge(current)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = m.now()
	m.freelances.SaveFreelance(updated)

	evt := newDirectoryEvent(updated.UpdatedAt, ActionUpdated, EntityFreelance)
	evt.ID = id
	m.publish(evt)
	return updated, nil
}

// DeleteFreelance removes the profile together with its skill assignments and
// professional links. It reports false when no profile had that id.
func (m *DirectoryMutation) DeleteFreelance(id string) bool {
	if !m.freelances.DeleteFreelance(id) {
		return false
	}
	m.assignments.DeleteAssignmentsByFreelanceID(id)
	m.links.DeleteLinksByFreelanceID(id)

	evt := newDirectoryEvent(m.now(), ActionDeleted, EntityFreelance)
	evt.ID = id
	m.publish(evt)
	return true
}

func (m *DirectoryMutation) CreateSkill(in skill.CreateInput) skill.Skill {
	s := skill.Skill{
		ID:          m.newID(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	}
	m.skills.SaveSkill(s)

	evt := newDirectoryEvent(m.now(), ActionCreated, EntitySkill)
	evt.ID = s.ID
	m.publish(evt)
	return s
}

// AddSkillToFreelance stores the assignment, replacing any existing one for
// the same freelancer and skill. Neither id is checked for existence.
func (m *DirectoryMutation) AddSkillToFreelance(in skill.AssignInput) skill.Assignment {
	a := skill.Assignment{
		FreelanceID:       in.FreelanceID,
		SkillID:           in.SkillID,
		Level:             in.Level,
		YearsOfExperience: in.YearsOfExperience,
	}
	m.assignments.SaveAssignment(a)

	evt := newDirectoryEvent(m.now(), ActionCreated, EntityFreelanceSkill)
	evt.FreelanceID = a.FreelanceID
	evt.SkillID = a.SkillID
	m.publish(evt)
	return a
}

func (m *DirectoryMutation) RemoveSkillFromFreelance(freelanceID, skillID string) bool {
	if !m.assignments.DeleteAssignment(skill.AssignmentKey{FreelanceID: freelanceID, SkillID: skillID}) {
		return false
	}

	evt := newDirectoryEvent(m.now(), ActionDeleted, EntityFreelanceSkill)
	evt.FreelanceID = freelanceID
	evt.SkillID = skillID
	m.publish(evt)
	return true
}

func (m *DirectoryMutation) CreateProfessionalLink(in freelance.CreateLinkInput) freelance.Link {
	l := freelance.Link{
		ID:          m.newID(),
		FreelanceID: in.FreelanceID,
		Platform:    in.Platform,
		URL:         in.URL,
		Title:       in.Title,
	}
	m.links.SaveLink(l)

	evt := newDirectoryEvent(m.now(), ActionCreated, EntityProfessionalLink)
	evt.ID = l.ID
	evt.FreelanceID = l.FreelanceID
	m.publish(evt)
	return l
}

func (m *DirectoryMutation) DeleteProfessionalLink(id string) bool {
	if !m.links.DeleteLink(id) {
		return false
	}

	evt := newDirectoryEvent(m.now(), ActionDeleted, EntityProfessionalLink)
	evt.ID = id
	m.publish(evt)
	return true
}

func (m *DirectoryMutation) publish(evt DirectoryEvent) {
	if m.events == nil {
		return
	}
	m.events.Publish(evt)
}
