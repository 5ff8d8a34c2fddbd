package services

import (
	"context"
	"errors"
	"fmt"

	"dconn.dev/folio/internal/models"
)

// ErrProjectNotFound is returned when an index is outside the project list.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFetcher retrieves the project list from a resource location.
type ProjectFetcher interface {
	Fetch(ctx context.Context, location string) ([]models.Project, error)
}

// ProjectService handles project-related operations
type ProjectService struct {
	fetcher  ProjectFetcher
	location string
}

// NewProjectService creates a new ProjectService reading from location
func NewProjectService(fetcher ProjectFetcher, location string) *ProjectService {
	return &ProjectService{fetcher: fetcher, location: location}
}

// GetAll returns all projects in source order.
// The source is read on every call; nothing is cached.
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	projects, err := s.fetcher.Fetch(ctx, s.location)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetByIndex returns the project at position index
func (s *ProjectService) GetByIndex(ctx context.Context, index int) (*models.Project, error) {
	projects, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(projects) {
		return nil, fmt.Errorf("%w: index %d", ErrProjectNotFound, index)
	}
	return &projects[index], nil
}
