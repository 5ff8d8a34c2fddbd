package render

import "errors"

var (
	// ErrFetch is returned when the project resource cannot be retrieved.
	ErrFetch = errors.New("fetch projects")
	// ErrDecode is returned when the resource body is not a JSON array of projects.
	ErrDecode = errors.New("decode projects")
	// ErrContainerNotFound is returned when the page has no grid container.
	ErrContainerNotFound = errors.New("grid container not found")
	// ErrInvalidProject is returned in strict mode when a record fails validation.
	ErrInvalidProject = errors.New("invalid project")
)
