package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/pulsenet"
	"github.com/aretw0/pulsenet/internal/presentation/tui"
	"github.com/aretw0/pulsenet/pkg/adapters/file"
)

// Watch handles the 'watch' command: run a fixed simulation, then run it again
// every time the network file changes, until ctx is cancelled.
// Build and run errors are reported and the watcher waits for a fix.
func Watch(ctx context.Context, opts Options) error {
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)
	w := opts.out()

	watchCh, err := file.New(opts.Path).Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.Path, err)
	}
	logger.Info("Starting Watcher", "path", opts.Path)
	if !opts.plain() {
		tui.PrintBanner(w, pulsenet.Version)
	}

	for {
		if err := RunFixed(ctx, opts); err != nil {
			logger.Error("Run failed", "err", err)
			printSystemMessage(w, "Error: %v", err)
		}
		printSystemMessage(w, "Waiting for changes...")

		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case name, ok := <-watchCh:
			if !ok {
				return nil
			}
			logger.Info("Change detected, triggering reload", "file", name)
			printSystemMessage(w, "Change detected in '%s'.", name)
		}
	}
}
