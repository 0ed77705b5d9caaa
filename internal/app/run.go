package app

import (
	"context"
	"fmt"

	"github.com/vk/schoolregistry/internal/console"
	"github.com/vk/schoolregistry/internal/ctxlog"
)

// Run drives the interactive console until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	c := console.New(a.in, a.outW, a.registry, a.config.ExportPath)
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}

	a.logger.Info("Session finished.",
		"students", len(a.registry.Students()),
		"teachers", len(a.registry.Teachers()),
		"sections", len(a.registry.Sections()),
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}
