package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"dconn.dev/folio/internal/config"
	"dconn.dev/folio/internal/render"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: render <page.html> <projects-source> [output.html]")
		fmt.Println("       projects-source may be a file path or an http(s) URL")
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// run renders the projects grid into the page named by args[0] using the
// source in args[1], writing to args[2] or stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)

	pagePath, source := args[0], args[1]

	raw, err := os.ReadFile(pagePath)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	renderer := render.New(render.Options{
		Logger:  logger,
		Timeout: cfg.FetchTimeout,
		Strict:  cfg.StrictProjects,
	})

	n, err := renderer.RenderPage(ctx, source, doc, cfg.GridSelector)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return fmt.Errorf("serialise page: %w", err)
	}

	if len(args) < 3 {
		_, err := stdout.Write(out.Bytes())
		return err
	}

	if err := os.WriteFile(args[2], out.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("rendered projects", "cards", n, "output", args[2])
	return nil
}
