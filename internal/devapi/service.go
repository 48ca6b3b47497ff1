// Package devapi serves a local copy of the projects API for development and tests.
// It reproduces the response envelope the portfolio consumes and nothing more.
package devapi

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Zachkp/portfolio/internal/models"
)

// ProjectService handles project lookups over a fixed list
type ProjectService struct {
	projects models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// LoadFile reads a JSON array of projects from path
func LoadFile(path string) (*ProjectService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return NewProjectService(projects), nil
}

// GetAll returns all projects
func (s *ProjectService) GetAll() models.ProjectList {
	return s.projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for _, p := range s.projects.All() {
		if p.ID.String() == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}
