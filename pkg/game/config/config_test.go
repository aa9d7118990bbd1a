package config

import (
	"os"
	"path/filepath"
	"testing"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "chress", "preferences.json")
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	p, err := Load(tempPath(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.TileSize != DefaultTileSize || p.GridSize != DefaultGridSize || p.Backend != DefaultBackend {
		t.Errorf("Load() = %+v, want defaults", p)
	}
}

func TestSetTileSize_PersistsAcrossLoads(t *testing.T) {
	path := tempPath(t)
	p, _ := Load(path)
	if err := p.SetTileSize(48); err != nil {
		t.Fatalf("SetTileSize() error = %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again.TileSize != 48 {
		t.Errorf("TileSize = %d, want 48", again.TileSize)
	}
}

func TestSetTileSize_RejectsNonPositive(t *testing.T) {
	p, _ := Load(tempPath(t))
	if err := p.SetTileSize(0); err == nil {
		t.Error("SetTileSize(0) error = nil, want error")
	}
	if p.TileSize != DefaultTileSize {
		t.Errorf("TileSize = %d after rejected set", p.TileSize)
	}
}

func TestSetWindowScale_Clamps(t *testing.T) {
	p, _ := Load(tempPath(t))
	_ = p.SetWindowScale(10)
	if p.WindowScale != MaxWindowScale {
		t.Errorf("WindowScale = %v, want %v", p.WindowScale, MaxWindowScale)
	}
	_ = p.SetWindowScale(0.1)
	if p.WindowScale != MinWindowScale {
		t.Errorf("WindowScale = %v, want %v", p.WindowScale, MinWindowScale)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := tempPath(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := `{"tile_size": -3, "backend": "vt100", "language": "", "seed": 7}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.TileSize != DefaultTileSize || p.Backend != DefaultBackend || p.Language != DefaultLanguage {
		t.Errorf("Load() = %+v, want bad fields defaulted", p)
	}
	if p.Seed != 7 {
		t.Errorf("Seed = %d, want 7", p.Seed)
	}
}

func TestLoad_CorruptFileStillUsable(t *testing.T) {
	path := tempPath(t)
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	_ = os.WriteFile(path, []byte("{not json"), 0o644)

	p, err := Load(path)
	if err == nil {
		t.Error("Load() error = nil for corrupt file")
	}
	if p == nil || p.TileSize != DefaultTileSize {
		t.Fatalf("Load() = %+v, want defaults", p)
	}
	if err := p.SetTileSize(32); err != nil {
		t.Errorf("SetTileSize() on recovered prefs error = %v", err)
	}
}

func TestDefaults_NotBoundToFile(t *testing.T) {
	if err := Defaults().Save(); err != nil {
		t.Errorf("Save() on unbound prefs error = %v", err)
	}
}
