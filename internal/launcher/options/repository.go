package options

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/permadeath/launcher/internal/logging"
)

const (
	launcherOptionsFile = "launcher_options.json"
	gameOptionsFile     = "game_options.json"
)

// Repository reads and writes options files under a launcher directory.
// Missing or corrupt files are replaced with defaults rather than treated
// as fatal, so a damaged install still starts.
type Repository struct {
	log logging.Logger
	dir string
}

func NewRepository(dir string, log logging.Logger) *Repository {
	return &Repository{dir: dir, log: log}
}

// LoadLauncher returns the persisted launcher options, falling back to
// defaults when the file is absent or unreadable.
func (r *Repository) LoadLauncher(ctx context.Context) *LauncherOptions {
	opts := DefaultLauncherOptions(r.dir)
	r.load(ctx, launcherOptionsFile, opts)
	return opts
}

// LoadGame returns the persisted game options, falling back to defaults
// when the file is absent or unreadable.
func (r *Repository) LoadGame(ctx context.Context) *GameOptions {
	opts := DefaultGameOptions()
	r.load(ctx, gameOptionsFile, opts)
	return opts
}

// SaveLauncher persists the launcher options, creating the directory if needed.
func (r *Repository) SaveLauncher(opts *LauncherOptions) error {
	return r.save(launcherOptionsFile, opts)
}

// SaveGame persists the game options, creating the directory if needed.
func (r *Repository) SaveGame(opts *GameOptions) error {
	return r.save(gameOptionsFile, opts)
}

func (r *Repository) load(ctx context.Context, name string, dst any) {
	path := filepath.Join(r.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn(ctx, "error reading options file, using defaults", "path", path, "error", err)
		}
		return
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Warn(ctx, "corrupt options file, using defaults", "path", path, "error", err)
	}
}

func (r *Repository) save(name string, src any) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("error creating options directory: %w", err)
	}

	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding options: %w", err)
	}

	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing options file: %w", err)
	}

	return nil
}
