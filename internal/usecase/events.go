package usecase

import "time"

const EventDirectoryUpdated = "directory_updated"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	EntityFreelance        = "freelance"
	EntitySkill            = "skill"
	EntityFreelanceSkill   = "freelance_skill"
	EntityProfessionalLink = "professional_link"
)

// DirectoryEvent describes one applied mutation.
type DirectoryEvent struct {
	Type        string `json:"type"`
	Action      string `json:"action"`
	Entity      string `json:"entity"`
	ID          string `json:"id,omitempty"`
	FreelanceID string `json:"freelanceId,omitempty"`
	SkillID     string `json:"skillId,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// EventPublisher receives events after a mutation has been applied. Publish
// is called while the directory write lock is held and must not block.
type EventPublisher interface {
	Publish(evt DirectoryEvent)
}

func newDirectoryEvent(at time.Time, action, entity string) DirectoryEvent {
	return DirectoryEvent{
		Type:      EventDirectoryUpdated,
		Action:    action,
		Entity:    entity,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}
