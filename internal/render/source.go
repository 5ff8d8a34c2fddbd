package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"dconn.dev/folio/internal/models"
)

// Fetch issues a single request for location and decodes the body as an
// ordered list of projects. Locations with an http or https scheme are
// requested over the network; absolute file:/// URLs and bare paths are read
// from disk.
func (r *Renderer) Fetch(ctx context.Context, location string) ([]models.Project, error) {
	ctx, span := r.tracer.Start(ctx, "projects.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("projects.location", location))

	body, err := r.read(ctx, location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}

	projects, err := decodeProjects(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("projects.count", len(projects)))
	return projects, nil
}

func (r *Renderer) read(ctx context.Context, location string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	u, err := url.Parse(location)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return r.get(ctx, u.String())
		case "file":
			// Only absolute file:///path or file://localhost/path URLs; in
			// file://relative/path the first segment would parse as a host.
			if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
				return nil, fmt.Errorf("%w: file URL %q has host %q, want file:///absolute/path", ErrFetch, location, u.Host)
			}
			return readFile(u.Path)
		}
	}
	return readFile(location)
}

func (r *Renderer) get(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, location, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return data, nil
}

// decodeProjects parses a JSON array of projects. A literal null is treated
// as an empty list.
func decodeProjects(data []byte) ([]models.Project, error) {
	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}
