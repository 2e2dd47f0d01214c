package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanctumos/clawedroad/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// MigrationResult summarises an atlas migrate apply run.
type MigrationResult struct {
	Applied []string
	Current string
	Target  string
}

// Migrate applies pending files from cfg.Migrate.Dir using the atlas CLI.
// The directory must carry an up-to-date atlas.sum.
func Migrate(ctx context.Context, cfg config.Config) (*MigrationResult, error) {
	dir, err := filepath.Abs(cfg.Migrate.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations dir: %w", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "atlas.sum")); err != nil {
		return nil, fmt.Errorf("migrations dir %s has no atlas.sum: %w", dir, err)
	}

	client, err := atlasexec.NewClient(dir, cfg.Migrate.AtlasBin)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + dir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	out := &MigrationResult{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
	}
	return out, nil
}
