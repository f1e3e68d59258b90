package usecase

import (
	"freelance-directory/internal/domain/freelance"
	"freelance-directory/internal/domain/skill"
)

// Relation lookups join one collection against another at read time.
// A reference to a row that no longer exists resolves to absence.

func (q *DirectoryQuery) FreelanceSkills(freelanceID string) []skill.Assignment {
	return q.assignments.FindAssignmentsByFreelanceID(freelanceID)
}

func (q *DirectoryQuery) FreelanceLinks(freelanceID string) []freelance.Link {
	return q.links.FindLinksByFreelanceID(freelanceID)
}

func (q *DirectoryQuery) SkillFreelances(skillID string) []skill.Assignment {
	return q.assignments.FindAssignmentsBySkillID(skillID)
}

func (q *DirectoryQuery) AssignmentFreelance(a skill.Assignment) (freelance.Profile, bool) {
	return q.freelances.GetFreelance(a.FreelanceID)
}

func (q *DirectoryQuery) AssignmentSkill(a skill.Assignment) (skill.Skill, bool) {
	return q.skills.GetSkill(a.SkillID)
}

func (q *DirectoryQuery) LinkFreelance(l freelance.Link) (freelance.Profile, bool) {
	return q.freelances.GetFreelance(l.FreelanceID)
}
