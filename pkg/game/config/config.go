// Package config stores user preferences between runs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Defaults
const (
	DefaultTileSize    = 64
	DefaultGridSize    = 10
	DefaultAssetDir    = "assets"
	DefaultLocaleDir   = "locales"
	DefaultLanguage    = "en_GB"
	DefaultWindowScale = 1.0
	DefaultBackend     = "ebiten"

	MinWindowScale = 0.5
	MaxWindowScale = 3.0
)

// Preferences are the persisted user settings
type Preferences struct {
	TileSize    int     `json:"tile_size"`
	GridSize    int     `json:"grid_size"`
	AssetDir    string  `json:"asset_dir"`
	LocaleDir   string  `json:"locale_dir"`
	Language    string  `json:"language"`
	WindowScale float64 `json:"window_scale"`
	Backend     string  `json:"backend"`
	Seed        uint64  `json:"seed"`

	mu   sync.Mutex
	path string
}

var (
	current     *Preferences
	currentOnce sync.Once
)

// Defaults returns preferences with every field at its default, not bound
// to a file
func Defaults() *Preferences {
	return &Preferences{
		TileSize:    DefaultTileSize,
		GridSize:    DefaultGridSize,
		AssetDir:    DefaultAssetDir,
		LocaleDir:   DefaultLocaleDir,
		Language:    DefaultLanguage,
		WindowScale: DefaultWindowScale,
		Backend:     DefaultBackend,
	}
}

// Current returns the process-wide preferences, loading them from the user
// config directory on first use. A missing or unreadable file yields the
// defaults.
func Current() *Preferences {
	currentOnce.Do(func() {
		path, err := DefaultPath()
		if err != nil {
			current = Defaults()
			return
		}
		p, err := Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load preferences: %v\n", err)
		}
		current = p
	})
	return current
}

// DefaultPath returns where preferences live for this user
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "chress", "preferences.json"), nil
}

// Load reads preferences from path. A missing file is not an error. The
// returned preferences are always usable and remember path for Save.
func Load(path string) (*Preferences, error) {
	p := Defaults()
	p.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, p); err != nil {
		return Defaults().withPath(path), fmt.Errorf("parsing %s: %w", path, err)
	}
	p.normalize()
	return p, nil
}

func (p *Preferences) withPath(path string) *Preferences {
	p.path = path
	return p
}

// normalize replaces out-of-range values with their defaults
func (p *Preferences) normalize() {
	if p.TileSize <= 0 {
		p.TileSize = DefaultTileSize
	}
	if p.GridSize <= 0 {
		p.GridSize = DefaultGridSize
	}
	if p.AssetDir == "" {
		p.AssetDir = DefaultAssetDir
	}
	if p.LocaleDir == "" {
		p.LocaleDir = DefaultLocaleDir
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.WindowScale <= 0 {
		p.WindowScale = DefaultWindowScale
	}
	p.WindowScale = min(max(p.WindowScale, MinWindowScale), MaxWindowScale)
	if p.Backend != "tui" {
		p.Backend = DefaultBackend
	}
}

// Save writes the preferences back to the file they were loaded from.
// Preferences not bound to a file are not saved.
func (p *Preferences) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveLocked()
}

func (p *Preferences) saveLocked() error {
	if p.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(p.path), err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}

// SetTileSize stores a new tile size and saves
func (p *Preferences) SetTileSize(size int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if size <= 0 {
		return fmt.Errorf("tile size %d must be positive", size)
	}
	p.TileSize = size
	return p.saveLocked()
}

// SetWindowScale stores a new window zoom, clamped to the allowed range,
// and saves
func (p *Preferences) SetWindowScale(scale float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.WindowScale = min(max(scale, MinWindowScale), MaxWindowScale)
	return p.saveLocked()
}
