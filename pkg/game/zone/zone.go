// Package zone identifies the 10×10 screens of the world and derives the
// values the renderer keys off: the canonical zone key and the zone level.
package zone

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dimension selects which layer of the world a zone belongs to
type Dimension int

// Dimensions
const (
	Surface     Dimension = 0
	Interior    Dimension = 1
	Underground Dimension = 2
)

// DefaultDepth is the depth assumed for an underground zone that omits one
const DefaultDepth = 1

// ErrInvalidKey is wrapped by every ParseKey failure
var ErrInvalidKey = errors.New("invalid zone key")

// Zone addresses one screen of the world. Depth is only meaningful when
// Dimension is Underground.
type Zone struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Dimension Dimension `json:"dimension"`
	Depth     int       `json:"depth,omitempty"`
}

// UnmarshalJSON coerces the dimension to a number. Serialized state may
// carry it as a string ("2").
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Dimension(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dimension: expected number or numeric string: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("dimension %q: %w", s, err)
	}
	*d = Dimension(n)
	return nil
}

// IsUnderground reports whether the zone is in the underground dimension
func (z Zone) IsUnderground() bool {
	return z.Dimension == Underground
}

// EffectiveDepth returns the zone depth, defaulting to DefaultDepth
// underground and 0 elsewhere
func (z Zone) EffectiveDepth() int {
	if z.Dimension != Underground {
		return 0
	}
	if z.Depth <= 0 {
		return DefaultDepth
	}
	return z.Depth
}

// Key returns the canonical zone key
func (z Zone) Key() string {
	return CreateKey(z.X, z.Y, z.Dimension, z.Depth)
}

// String implements fmt.Stringer
func (z Zone) String() string {
	return z.Key()
}

// CreateKey serializes a zone address as "x,y:dimension", or
// "x,y:2:z-depth" underground. A non-positive depth underground becomes
// DefaultDepth.
func CreateKey(x, y int, dim Dimension, depth int) string {
	if dim == Underground {
		if depth <= 0 {
			depth = DefaultDepth
		}
		return fmt.Sprintf("%d,%d:%d:z-%d", x, y, dim, depth)
	}
	return fmt.Sprintf("%d,%d:%d", x, y, dim)
}

// ParseKey is the inverse of CreateKey. The returned zone has Depth set to
// the parsed depth underground and 0 otherwise.
func ParseKey(key string) (Zone, error) {
	coords, rest, found := strings.Cut(key, ":")
	if !found {
		return Zone{}, fmt.Errorf("%w %q: missing dimension", ErrInvalidKey, key)
	}

	xs, ys, found := strings.Cut(coords, ",")
	if !found {
		return Zone{}, fmt.Errorf("%w %q: missing y coordinate", ErrInvalidKey, key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Zone{}, fmt.Errorf("%w %q: x coordinate: %v", ErrInvalidKey, key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Zone{}, fmt.Errorf("%w %q: y coordinate: %v", ErrInvalidKey, key, err)
	}

	dimStr, depthStr, hasDepth := strings.Cut(rest, ":")
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		return Zone{}, fmt.Errorf("%w %q: dimension: %v", ErrInvalidKey, key, err)
	}

	z := Zone{X: x, Y: y, Dimension: Dimension(dim)}
	if z.Dimension != Underground {
		if hasDepth {
			return Zone{}, fmt.Errorf("%w %q: depth only allowed underground", ErrInvalidKey, key)
		}
		return z, nil
	}

	z.Depth = DefaultDepth
	if hasDepth {
		digits, ok := strings.CutPrefix(depthStr, "z-")
		if !ok {
			return Zone{}, fmt.Errorf("%w %q: depth must look like z-N", ErrInvalidKey, key)
		}
		depth, err := strconv.Atoi(digits)
		if err != nil {
			return Zone{}, fmt.Errorf("%w %q: depth: %v", ErrInvalidKey, key, err)
		}
		z.Depth = depth
	}
	return z, nil
}

// IsValidKey reports whether key parses
func IsValidKey(key string) bool {
	_, err := ParseKey(key)
	return err == nil
}
