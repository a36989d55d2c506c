package services

import (
	"errors"
	"fmt"

	"showcase.dev/internal/models"
	"showcase.dev/internal/render"
)

// ErrProjectNotFound is returned when a lookup matches no project
var ErrProjectNotFound = errors.New("project not found")

// SiteSource provides the content currently being served
type SiteSource interface {
	Current() *models.Site
}

// StaticSource serves a fixed site
type StaticSource struct {
	Site *models.Site
}

// Current returns the fixed site
func (s StaticSource) Current() *models.Site { return s.Site }

// Version is constant because the site never changes
func (s StaticSource) Version() uint64 { return 1 }

// ProjectService handles project-related operations
type ProjectService struct {
	source SiteSource
}

// NewProjectService creates a new ProjectService
func NewProjectService(source SiteSource) *ProjectService {
	return &ProjectService{source: source}
}

// GetAll returns the featured projects and the remaining projects, with
// anything featured removed from the latter
func (s *ProjectService) GetAll() models.ProjectList {
	site := s.source.Current()
	return models.ProjectList{
		Featured: nonNil(site.Featured),
		Projects: nonNil(render.ExcludeFeatured(site.Featured, site.Projects)),
	}
}

// GetByID returns a project by key or by its slug
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	list := s.GetAll()
	for _, group := range [][]models.Project{list.Featured, list.Projects} {
		for i := range group {
			if group[i].Key() == id || render.Slug(group[i].Key()) == id {
				p := group[i]
				return &p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

func nonNil(ps []models.Project) []models.Project {
	if ps == nil {
		return []models.Project{}
	}
	return ps
}
