package renderer

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"chress/pkg/game/autotile"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// CheckerPreset is the faint parity tint laid over open cells: a white wash
// on even cells and a black wash on odd ones
type CheckerPreset struct {
	Even float64
	Odd  float64
}

// Checkerboard presets. Frontier deserts are bright enough to swallow the
// default tint.
var (
	DefaultChecker  = CheckerPreset{Even: 0.05, Odd: 0.08}
	FrontierChecker = CheckerPreset{Even: 0.12, Odd: 0.18}
)

// CheckerFor returns the tint preset for a zone level
func CheckerFor(level zone.Level) CheckerPreset {
	if level == zone.LevelFrontier {
		return FrontierChecker
	}
	return DefaultChecker
}

// TileRenderer draws grid cells. It dispatches on the cell's effective type
// to the floor, wall, item or structure family.
type TileRenderer struct {
	tex      Textures
	tileSize float64

	// warned dedups warnings so a bad sheet does not log every frame
	warned mapset.Set[string]
}

// NewTileRenderer creates a tile renderer
func NewTileRenderer(tex Textures, tileSize float64) *TileRenderer {
	return &TileRenderer{tex: tex, tileSize: tileSize, warned: mapset.New[string]()}
}

// SetTileSize changes the cell edge in pixels
func (r *TileRenderer) SetTileSize(ts float64) {
	r.tileSize = ts
}

// RenderGrid draws every cell of the grid
func (r *TileRenderer) RenderGrid(c Canvas, grid *gameworld.Grid, level zone.Level) {
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			r.RenderTile(c, x, y, grid, level)
		}
	}
}

// RenderTile draws one cell and its checkerboard tint. A panic while
// drawing is contained to the cell, which is filled flat instead.
func (r *TileRenderer) RenderTile(c Canvas, x, y int, grid *gameworld.Grid, level zone.Level) {
	tile, ok := grid.At(x, y)
	if !ok {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.warnOnce(fmt.Sprintf("cell:%d,%d:%d", x, y, tile.Effective()),
				"Warning: drawing cell (%d,%d) %s failed: %v", x, y, tile.Effective(), rec)
			px, py := r.origin(x, y)
			c.FillRect(px, py, r.tileSize, r.tileSize, colorCellError)
		}
	}()

	structural := r.draw(c, x, y, tile, grid, level)
	if !structural && tile.Effective().Family() != gameworld.FamilyWall {
		r.checkerboard(c, x, y, level)
	}
}

// draw performs the family-specific drawing. Returns true if the cell was
// drawn as part of a multi-tile structure.
func (r *TileRenderer) draw(c Canvas, x, y int, tile gameworld.Tile, grid *gameworld.Grid, level zone.Level) bool {
	t := tile.Effective()
	switch t.Family() {
	case gameworld.FamilyWall:
		r.drawBackground(c, x, y, grid, level)
		r.sprite(c, x, y, wallKey(t, level), t)
		return false
	case gameworld.FamilyItem:
		r.drawBackground(c, x, y, grid, level)
		r.drawItem(c, x, y, tile)
		return false
	case gameworld.FamilyStructure:
		if t == gameworld.Port {
			return r.drawPort(c, x, y, tile, grid, level)
		}
		return r.drawStructure(c, x, y, t, grid, level)
	default:
		r.drawBackground(c, x, y, grid, level)
		if key, ok := floorOverlays[t]; ok {
			r.sprite(c, x, y, key, t)
		}
		return false
	}
}

// floorOverlays are the walkable types drawn over the background
var floorOverlays = map[gameworld.TileType]string{
	gameworld.Grass:   "grass",
	gameworld.Exit:    "exit",
	gameworld.Pitfall: "pitfall",
}

func wallKey(t gameworld.TileType, level zone.Level) string {
	if t == gameworld.Wall && level == zone.LevelInterior {
		return "housewall"
	}
	return t.String()
}

// drawBackground draws the zone's floor texture. Dirt floors pick a
// directional variant from the surrounding walls.
func (r *TileRenderer) drawBackground(c Canvas, x, y int, grid *gameworld.Grid, level zone.Level) {
	bg := level.Background()
	family := string(bg)
	tex := autotile.Texture{Key: family}
	if bg == zone.BackgroundDirt {
		tex = autotile.Detect(x, y, grid).Texture(family)
	}

	op := r.tileOp(x, y)
	op.Rotation = float64(tex.Rotation) * math.Pi / 180
	if drawKey(c, r.tex, tex.Key, op) {
		return
	}
	if tex.Key != family && drawKey(c, r.tex, family, r.tileOp(x, y)) {
		return
	}
	px, py := r.origin(x, y)
	c.FillRect(px, py, r.tileSize, r.tileSize, backgroundColors[bg])
}

// drawItem draws a pickup or doodad
func (r *TileRenderer) drawItem(c Canvas, x, y int, tile gameworld.Tile) {
	t := tile.Effective()
	for _, key := range itemKeys(tile) {
		if drawKey(c, r.tex, key, r.tileOp(x, y)) {
			return
		}
	}
	r.fallback(c, x, y, t)
}

// itemKeys lists the sprite keys for an item, most specific first
func itemKeys(tile gameworld.Tile) []string {
	t := tile.Effective()
	if t.IsObstacle() {
		return []string{"doodads/" + t.String()}
	}
	base := "items/" + t.String()
	switch {
	case t == gameworld.Food && tile.FoodType != "":
		return []string{base + "/" + tile.FoodType, base}
	case t == gameworld.Bomb && tile.JustPlaced:
		return []string{base + "_lit", base}
	}
	return []string{base}
}

// drawStructure draws this cell's slice of a structure sheet. A body cell
// that is not part of any valid footprint is drawn flat and counts as
// ordinary ground.
func (r *TileRenderer) drawStructure(c Canvas, x, y int, t gameworld.TileType, grid *gameworld.Grid, level zone.Level) bool {
	r.drawBackground(c, x, y, grid, level)
	k, ok := structure.KindOf(t)
	if !ok {
		r.fallback(c, x, y, t)
		return false
	}
	a, ok := structure.Find(k, x, y, grid, true)
	if !ok {
		r.fallback(c, x, y, t)
		return false
	}
	r.drawPart(c, x, y, k, a)
	return true
}

// drawPort resolves what a Port cell is: an interior door, a stair, a
// structure doorway, a grate or a plain hole
func (r *TileRenderer) drawPort(c Canvas, x, y int, tile gameworld.Tile, grid *gameworld.Grid, level zone.Level) bool {
	r.drawBackground(c, x, y, grid, level)
	if level == zone.LevelInterior {
		return false
	}

	switch tile.PortKind {
	case gameworld.PortStairDown, gameworld.PortStairUp:
		r.decal(c, x, y, "doodads/"+string(tile.PortKind), portGlyphs[tile.PortKind])
		return false
	}

	if k, a, ok := structure.ResolvePort(x, y, grid); ok {
		r.drawPart(c, x, y, k, a)
		return true
	}

	if tile.PortKind == gameworld.PortGrate {
		r.decal(c, x, y, "doodads/grate", portGlyphs[gameworld.PortGrate])
		return false
	}
	r.decal(c, x, y, "doodads/hole", portGlyphs[gameworld.PortHole])
	return false
}

// drawPart slices the structure sheet into width×height equal parts and
// draws the one under (x, y)
func (r *TileRenderer) drawPart(c Canvas, x, y int, k structure.Kind, a structure.Anchor) {
	key := "structures/" + k.String()
	if !r.tex.IsLoaded(key) {
		r.fallback(c, x, y, k.Body())
		return
	}
	img, _ := r.tex.Image(key)
	w, h := k.Size()
	b := img.Bounds()
	pw, ph := b.Dx()/w, b.Dy()/h
	if pw == 0 || ph == 0 {
		r.warnOnce("sheet:"+key,
			"Warning: structure sheet %s is %dx%d, too small for %dx%d parts", key, b.Dx(), b.Dy(), w, h)
		r.marker(c, x, y, k)
		return
	}

	col, row := a.Part(x, y)
	src := image.Rect(b.Min.X+col*pw, b.Min.Y+row*ph, b.Min.X+(col+1)*pw, b.Min.Y+(row+1)*ph)
	c.DrawImage(img, src, r.tileOp(x, y))
}

// marker fills the cell flat and stamps the structure's initial on it
func (r *TileRenderer) marker(c Canvas, x, y int, k structure.Kind) {
	px, py := r.origin(x, y)
	c.FillRect(px, py, r.tileSize, r.tileSize, tileColors[k.Body()])
	c.DrawText(strings.ToUpper(k.String()[:1]), px+r.tileSize/2, py+r.tileSize/2, r.tileSize*0.5, colorGlyph)
}

// decal draws a full-tile overlay or its glyph
func (r *TileRenderer) decal(c Canvas, x, y int, key, glyph string) {
	if drawKey(c, r.tex, key, r.tileOp(x, y)) {
		return
	}
	px, py := r.origin(x, y)
	c.DrawText(glyph, px+r.tileSize/2, py+r.tileSize/2, r.tileSize*0.6, colorGlyph)
}

// sprite draws the image under key over the cell, or the type's flat
// fallback
func (r *TileRenderer) sprite(c Canvas, x, y int, key string, t gameworld.TileType) {
	if drawKey(c, r.tex, key, r.tileOp(x, y)) {
		return
	}
	r.fallback(c, x, y, t)
}

// fallback fills the cell with the type's colour and glyph
func (r *TileRenderer) fallback(c Canvas, x, y int, t gameworld.TileType) {
	px, py := r.origin(x, y)
	col, ok := tileColors[t]
	if !ok {
		col = tileColors[gameworld.Floor]
	}
	c.FillRect(px, py, r.tileSize, r.tileSize, col)
	if glyph := tileGlyphs[t]; glyph != "" {
		c.DrawText(glyph, px+r.tileSize/2, py+r.tileSize/2, r.tileSize*0.6, colorGlyph)
	}
}

// checkerboard lays the parity tint over the cell
func (r *TileRenderer) checkerboard(c Canvas, x, y int, level zone.Level) {
	px, py := r.origin(x, y)
	c.FillRect(px, py, r.tileSize, r.tileSize, checkerColor(CheckerFor(level), x, y))
}

func checkerColor(p CheckerPreset, x, y int) color.NRGBA {
	if (x+y)%2 == 0 {
		return fade(colorWhite, p.Even)
	}
	return fade(colorBlack, p.Odd)
}

func (r *TileRenderer) origin(x, y int) (float64, float64) {
	return float64(x) * r.tileSize, float64(y) * r.tileSize
}

func (r *TileRenderer) tileOp(x, y int) DrawOp {
	px, py := r.origin(x, y)
	return opaque(px, py, r.tileSize, r.tileSize)
}

func (r *TileRenderer) warnOnce(key string, format string, args ...any) {
	if r.warned.Has(key) {
		return
	}
	r.warned.Put(key)
	log.Printf(format, args...)
}
