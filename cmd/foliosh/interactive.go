package main

import (
	"github.com/Cyclone1070/foliosh/internal/ui"
	"github.com/Cyclone1070/foliosh/internal/ui/services"
)

// runInteractive runs the terminal UI until the visitor exits.
func runInteractive(opts *options) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	stop := a.serveMetrics()
	defer stop()

	sess, err := a.newSession()
	if err != nil {
		return err
	}

	var renderer services.MarkdownRenderer
	if a.cfg.UI.RenderMarkdown {
		renderer = services.NewGlamourRenderer("")
	}

	// The UI owns the terminal and handles Ctrl+C itself.
	return ui.NewUI(sess, a.cfg.UI, renderer).Start()
}
