package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCache_IsLoaded(t *testing.T) {
	c := NewCache()
	if c.IsLoaded("dirt") {
		t.Error("IsLoaded on empty cache = true")
	}
	c.Put("empty", image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	if c.IsLoaded("empty") {
		t.Error("IsLoaded for zero-size image = true")
	}
	c.Put("dirt", image.NewNRGBA(image.Rect(0, 0, 16, 16)))
	if !c.IsLoaded("dirt") {
		t.Error("IsLoaded(dirt) = false")
	}
}

func TestKeyFor(t *testing.T) {
	if got := KeyFor("fx/splode/splode_3.png"); got != "fx/splode/splode_3" {
		t.Errorf("KeyFor = %q, want fx/splode/splode_3", got)
	}
}

func TestLoader_LoadsPNGsAndSkipsBroken(t *testing.T) {
	fsys := fstest.MapFS{
		"dirt.png":               {Data: encodePNG(t, 16, 16)},
		"fx/splode/splode_1.png": {Data: encodePNG(t, 8, 8)},
		"broken.png":             {Data: []byte("not a png")},
		"readme.txt":             {Data: []byte("hi")},
	}
	c := NewCache()
	l := &Loader{FS: fsys, Cache: c, Workers: 2}

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if !c.IsLoaded("fx/splode/splode_1") {
		t.Error("nested sprite not loaded")
	}
	if c.IsLoaded("broken") {
		t.Error("broken PNG loaded")
	}
}

func TestLoader_LoadAsync(t *testing.T) {
	c := NewCache()
	l := &Loader{FS: fstest.MapFS{"wall.png": {Data: encodePNG(t, 4, 4)}}, Cache: c}
	if err := <-l.LoadAsync(context.Background()); err != nil {
		t.Fatalf("LoadAsync() error = %v", err)
	}
	if !c.IsLoaded("wall") {
		t.Error("wall not loaded")
	}
}
