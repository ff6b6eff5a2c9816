// Package catalog holds the static project/service dataset and the
// pure filtering logic over it. The data is compile-time-embedded and
// never mutated at runtime.
package catalog

import (
	"github.com/alexchen-dev/portfolio-backend/models"
)

// Store is the immutable in-memory catalog.
type Store struct {
	projects     []models.Project
	services     []models.Service
	testimonials []models.Testimonial
	projectIndex map[string]int
}

// NewStore builds a catalog over the given records. Callers must not
// mutate the slices afterwards.
func NewStore(projects []models.Project, services []models.Service, testimonials []models.Testimonial) *Store {
	idx := make(map[string]int, len(projects))
	for i, p := range projects {
		idx[p.ID] = i
	}
	return &Store{
		projects:     projects,
		services:     services,
		testimonials: testimonials,
		projectIndex: idx,
	}
}

var defaultStore = NewStore(projectData, serviceData, testimonialData)

// Default returns the embedded catalog.
func Default() *Store {
	return defaultStore
}

// Projects returns all projects in catalog order.
func (s *Store) Projects() []models.Project {
	return s.projects
}

// Services returns all services in catalog order.
func (s *Store) Services() []models.Service {
	return s.services
}

func (s *Store) Testimonials() []models.Testimonial {
	return s.testimonials
}

// ProjectByID looks up a project by identifier. The second return is
// false when the id is unknown.
func (s *Store) ProjectByID(id string) (models.Project, bool) {
	i, ok := s.projectIndex[id]
	if !ok {
		return models.Project{}, false
	}
	return s.projects[i], true
}
