package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/html"

	"dconn.dev/folio/internal/render"
)

// Values of the X-Projects-State header on page responses.
const (
	stateRendered = "rendered"
	stateFallback = "fallback"
)

// PageConfig locates the page and the project source for PageHandler.
type PageConfig struct {
	PagePath string
	Source   string
	Selector string
}

// PageHandler serves the index page with the projects grid filled in.
type PageHandler struct {
	renderer *render.Renderer
	cfg      PageConfig
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *render.Renderer, cfg PageConfig, logger *slog.Logger) *PageHandler {
	return &PageHandler{renderer: renderer, cfg: cfg, logger: logger}
}

// ServePage handles GET /. Each request parses its own copy of the page.
// If the grid cannot be rendered the page is served as written on disk.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(h.cfg.PagePath)
	if err != nil {
		h.logger.Error("reading page", "path", h.cfg.PagePath, "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		h.logger.Error("parsing page", "path", h.cfg.PagePath, "error", err)
		h.writePage(w, raw, stateFallback)
		return
	}

	n, err := h.renderer.RenderPage(r.Context(), h.cfg.Source, doc, h.cfg.Selector)
	if err != nil {
		h.logger.Warn("rendering projects grid", "source", h.cfg.Source, "error", err)
		h.writePage(w, raw, stateFallback)
		return
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		h.logger.Error("serialising page", "error", err)
		h.writePage(w, raw, stateFallback)
		return
	}

	h.logger.Debug("rendered page", "cards", n)
	h.writePage(w, buf.Bytes(), stateRendered)
}

func (h *PageHandler) writePage(w http.ResponseWriter, body []byte, state string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Projects-State", state)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("writing page", "error", err)
	}
}
