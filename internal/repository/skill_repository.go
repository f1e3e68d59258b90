package repository

import "freelance-directory/internal/domain/skill"

type SkillRepository interface {
	GetSkill(id string) (skill.Skill, bool)
	ListSkills() []skill.Skill
	SaveSkill(s skill.Skill)
	CountSkills() int
}

type AssignmentRepository interface {
	GetAssignment(key skill.AssignmentKey) (skill.Assignment, bool)
	FindAssignmentsByFreelanceID(freelanceID string) []skill.Assignment
	FindAssignmentsBySkillID(skillID string) []skill.Assignment
	SaveAssignment(a skill.Assignment)
	DeleteAssignment(key skill.AssignmentKey) bool
	DeleteAssignmentsByFreelanceID(freelanceID string) int
}

func (s *Store) GetSkill(id string) (skill.Skill, bool) {
	return s.skills.get(id)
}

func (s *Store) ListSkills() []skill.Skill {
	return s.skills.values()
}

func (s *Store) SaveSkill(sk skill.Skill) {
	s.skills.put(sk.ID, sk)
}

func (s *Store) CountSkills() int {
	return s.skills.len()
}

func (s *Store) GetAssignment(key skill.AssignmentKey) (skill.Assignment, bool) {
	return s.assignments.get(key)
}

func (s *Store) FindAssignmentsByFreelanceID(freelanceID string) []skill.Assignment {
	return s.assignments.filter(func(a skill.Assignment) bool { return a.FreelanceID == freelanceID })
}

func (s *Store) FindAssignmentsBySkillID(skillID string) []skill.Assignment {
	return s.assignments.filter(func(a skill.Assignment) bool { return a.SkillID == skillID })
}

// SaveAssignment upserts by (FreelanceID, SkillID).
func (s *Store) SaveAssignment(a skill.Assignment) {
	s.assignments.put(a.Key(), a)
}

func (s *Store) DeleteAssignment(key skill.AssignmentKey) bool {
	return s.assignments.delete(key)
}

func (s *Store) DeleteAssignmentsByFreelanceID(freelanceID string) int {
	return s.assignments.deleteWhere(func(a skill.Assignment) bool { return a.FreelanceID == freelanceID })
}
