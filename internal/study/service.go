package study

import (
	"sort"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
)

type Config struct {
	Catalog map[string]domain.StudyResource
}

type Service struct {
	catalog map[string]domain.StudyResource
}

func NewService(c Config) *Service {
	return &Service{catalog: c.Catalog}
}

// Describe looks up a study resource by its exact title.
func (s *Service) Describe(title string) (*domain.StudyResource, error) {
	r, ok := s.catalog[title]
	if !ok {
		return nil, errors.New(errors.CodeNotFound,
			errors.WithMessagef("study resource %q not found", title))
	}

	return &r, nil
}

// List returns all resources sorted by title.
func (s *Service) List() []domain.StudyResource {
	resources := make([]domain.StudyResource, 0, len(s.catalog))
	for _, r := range s.catalog {
		resources = append(resources, r)
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Title < resources[j].Title
	})

	return resources
}
