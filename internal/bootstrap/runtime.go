// Package bootstrap wires up runtime dependencies before the server starts.
package bootstrap

import (
	"fmt"

	"github.com/fjnwajei/story-reader-app/internal/config"
	"github.com/fjnwajei/story-reader-app/internal/database"
	"github.com/fjnwajei/story-reader-app/internal/seed"

	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoStories bool
}

// InitRuntime opens the database, runs migrations and optionally seeds the
// demo stories. It must complete before the listen socket opens so no
// request can race the seed check.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.SeedDemoStories {
		if err := seed.Stories(db); err != nil {
			return nil, fmt.Errorf("failed to seed demo stories: %w", err)
		}
	}

	return db, nil
}
