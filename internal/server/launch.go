package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/browser"
)

// openBrowser points the default system browser at url. It runs detached
// after the listener is already bound, so the browser's first request cannot
// race server startup. Failures (headless environments) only warn; the
// server keeps running either way.
func openBrowser(ctx context.Context, url string) {
	if ctx.Err() != nil {
		return
	}

	// Some platform openers chatter on stdout/stderr.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	if err := browser.OpenURL(url); err != nil {
		slog.Warn("Could not open browser", "url", url, "error", err)
	}
}
