package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/activity"
	"github.com/abhisek/calmly/internal/app"
	"github.com/abhisek/calmly/internal/content"
)

// loadCatalog loads the embedded content and builds the activity catalog.
func loadCatalog() (*content.Library, *activity.Catalog, error) {
	lib, err := content.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}
	cat := activity.NewCatalog(lib, activity.WithDefaultMinutes(cfg.Activities.MeditationMinutes))
	return lib, cat, nil
}

// runApp builds dependencies and launches the TUI.
func runApp() error {
	lib, cat, err := loadCatalog()
	if err != nil {
		return err
	}

	logger.Info("starting tui",
		zap.Bool("splash", cfg.UI.Splash),
		zap.Bool("sound_cues", cfg.Activities.SoundCues))

	return app.Run(app.Options{
		Config:  cfg,
		Library: lib,
		Catalog: cat,
		Logger:  logger,
	})
}
