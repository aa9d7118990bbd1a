package ebiten

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadMonoFont parses the embedded Go Mono face
func loadMonoFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading mono font: %w", err)
	}
	return src, nil
}

// fontCache keeps one face per pixel size. Sizes are rounded to whole
// pixels so zooming does not grow the cache without bound.
type fontCache struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

func newFontCache(source *text.GoTextFaceSource) *fontCache {
	return &fontCache{source: source, faces: make(map[int]*text.GoTextFace)}
}

// face returns a cached face for the size
func (f *fontCache) face(size float64) *text.GoTextFace {
	px := max(int(math.Round(size)), 1)
	if face, ok := f.faces[px]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: float64(px)}
	f.faces[px] = face
	return face
}

