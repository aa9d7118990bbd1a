package autotile

import "fmt"

// Texture names the image and clockwise rotation (degrees) that draws a
// variant. Every variant of a shape shares one image drawn at a different
// rotation.
type Texture struct {
	Key      string
	Rotation int
}

// Shape suffixes appended to a background family name
const (
	shapeTunnel  = "tunnel"
	shapeCorner2 = "corner2"
	shapeEdge    = "edge"
	shapeCorner  = "corner"
)

var textures = map[Variant]struct {
	shape    string
	rotation int
}{
	TunnelHorizontal: {shapeTunnel, 0},
	TunnelVertical:   {shapeTunnel, 90},
	Corner2NorthWest: {shapeCorner2, 0},
	Corner2NorthEast: {shapeCorner2, 90},
	Corner2SouthEast: {shapeCorner2, 180},
	Corner2SouthWest: {shapeCorner2, 270},
	EdgeNorth:        {shapeEdge, 0},
	EdgeEast:         {shapeEdge, 90},
	EdgeSouth:        {shapeEdge, 180},
	EdgeWest:         {shapeEdge, 270},
	CornerNorthWest:  {shapeCorner, 0},
	CornerNorthEast:  {shapeCorner, 90},
	CornerSouthEast:  {shapeCorner, 180},
	CornerSouthWest:  {shapeCorner, 270},
}

// Texture returns the image key (e.g. "dirt_corner2") and rotation for the
// variant within a background family. Plain returns the bare family key.
func (v Variant) Texture(family string) Texture {
	t, ok := textures[v]
	if !ok {
		return Texture{Key: family}
	}
	return Texture{Key: fmt.Sprintf("%s_%s", family, t.shape), Rotation: t.rotation}
}

// String returns a readable variant name
func (v Variant) String() string {
	names := [...]string{
		"plain", "tunnel-horizontal", "tunnel-vertical",
		"corner2-nw", "corner2-ne", "corner2-se", "corner2-sw",
		"edge-n", "edge-e", "edge-s", "edge-w",
		"corner-nw", "corner-ne", "corner-se", "corner-sw",
	}
	if v < 0 || int(v) >= len(names) {
		return "unknown"
	}
	return names[v]
}
