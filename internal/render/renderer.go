// Package render fills the projects grid of an HTML page with one card per
// portfolio project.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"dconn.dev/folio/internal/models"
)

// DefaultSelector locates the grid inside the projects section.
const DefaultSelector = "#projects .grid"

// Options configures a Renderer. The zero value is usable.
type Options struct {
	Client  *http.Client
	Logger  *slog.Logger
	Timeout time.Duration
	Strict  bool
}

// Renderer fetches project lists and mounts them as cards into a container.
type Renderer struct {
	client   *http.Client
	logger   *slog.Logger
	timeout  time.Duration
	validate *validator.Validate
	tracer   trace.Tracer
}

// New creates a Renderer
func New(opts Options) *Renderer {
	r := &Renderer{
		client:  opts.Client,
		logger:  opts.Logger,
		timeout: opts.Timeout,
		tracer:  otel.Tracer("dconn.dev/folio/internal/render"),
	}
	if r.client == nil {
		r.client = http.DefaultClient
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if opts.Strict {
		r.validate = newValidator()
	}
	return r
}

// Render fetches the projects at location and replaces the children of
// container with one card per project. It returns the number of cards.
// On any error the container is left untouched.
func (r *Renderer) Render(ctx context.Context, location string, container *html.Node) (int, error) {
	if container == nil {
		return 0, ErrContainerNotFound
	}

	projects, err := r.Fetch(ctx, location)
	if err != nil {
		return 0, err
	}
	return r.Mount(ctx, container, projects)
}

// RenderPage is Render with the container located in doc by a CSS selector.
func (r *Renderer) RenderPage(ctx context.Context, location string, doc *html.Node, selector string) (int, error) {
	projects, err := r.Fetch(ctx, location)
	if err != nil {
		return 0, err
	}

	container, err := LocateContainer(doc, selector)
	if err != nil {
		return 0, err
	}
	return r.Mount(ctx, container, projects)
}

// Mount replaces the children of container with cards built from projects.
func (r *Renderer) Mount(ctx context.Context, container *html.Node, projects []models.Project) (int, error) {
	_, span := r.tracer.Start(ctx, "projects.render")
	defer span.End()

	if container == nil {
		return 0, ErrContainerNotFound
	}

	if err := r.validateProjects(projects); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return 0, err
	}

	cards := buildCards(projects)

	clearChildren(container)
	for _, card := range cards {
		container.AppendChild(card)
	}

	span.SetAttributes(attribute.Int("projects.cards", len(cards)))
	r.logger.Debug("rendered project grid", "cards", len(cards))
	return len(cards), nil
}

// LocateContainer returns the first element in doc matching selector.
func LocateContainer(doc *html.Node, selector string) (*html.Node, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, selector)
	}

	container := sel.MatchFirst(doc)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, selector)
	}
	return container, nil
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}
