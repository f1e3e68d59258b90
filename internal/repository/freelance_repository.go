package repository

import "freelance-directory/internal/domain/freelance"

type FreelanceRepository interface {
	GetFreelance(id string) (freelance.Profile, bool)
	ListFreelances() []freelance.Profile
	SaveFreelance(p freelance.Profile)
	DeleteFreelance(id string) bool
	CountFreelances() int
}

type LinkRepository interface {
	GetLink(id string) (freelance.Link, bool)
	FindLinksByFreelanceID(freelanceID string) []freelance.Link
	SaveLink(l freelance.Link)
	DeleteLink(id string) bool
	DeleteLinksByFreelanceID(freelanceID string) int
}

func (s *Store) GetFreelance(id string) (freelance.Profile, bool) {
	return s.freelances.get(id)
}

func (s *Store) ListFreelances() []freelance.Profile {
	return s.freelances.values()
}

func (s *Store) SaveFreelance(p freelance.Profile) {
	s.freelances.put(p.ID, p)
}

func (s *Store) DeleteFreelance(id string) bool {
	return s.freelances.delete(id)
}

func (s *Store) CountFreelances() int {
	return s.freelances.len()
}

func (s *Store) GetLink(id string) (freelance.Link, bool) {
	return s.links.get(id)
}

func (s *Store) FindLinksByFreelanceID(freelanceID string) []freelance.Link {
	return s.links.filter(func(l freelance.Link) bool { return l.FreelanceID == freelanceID })
}

func (s *Store) SaveLink(l freelance.Link) {
	s.links.put(l.ID, l)
}

func (s *Store) DeleteLink(id string) bool {
	return s.links.delete(id)
}

func (s *Store) DeleteLinksByFreelanceID(freelanceID string) int {
	return s.links.deleteWhere(func(l freelance.Link) bool { return l.FreelanceID == freelanceID })
}
