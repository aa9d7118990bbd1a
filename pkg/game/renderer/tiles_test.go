package renderer_test

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"chress/pkg/game/renderer"
	"chress/pkg/game/renderer/canvastest"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

const ts = renderer.DefaultTileSize

func tintAlpha(a float64) uint8 {
	return uint8(255*a + 0.5)
}

// isTint reports whether op is a checkerboard wash over the cell (x, y)
func isTint(op canvastest.Op, x, y int) bool {
	if op.Kind != canvastest.FillRect || op.X != float64(x*ts) || op.Y != float64(y*ts) {
		return false
	}
	c := op.Color
	return (c.R == 255 && c.G == 255 && c.B == 255 || c.R == 0 && c.G == 0 && c.B == 0) && c.A < 64
}

func renderCell(t *testing.T, tex *canvastest.Textures, grid *gameworld.Grid, x, y int, level zone.Level) *canvastest.Recorder {
	t.Helper()
	rec := canvastest.NewRecorder(grid.Cols()*ts, grid.Rows()*ts)
	renderer.NewTileRenderer(tex, ts).RenderTile(rec, x, y, grid, level)
	return rec
}

// shackGrid is all floor with a 3×3 shack at cols 2-4, rows 2-4
func shackGrid(t *testing.T) *gameworld.Grid {
	t.Helper()
	g := gameworld.NewGrid(10)
	if !structure.Paint(structure.Shack, structure.Anchor{StartX: 2, StartY: 2}, g) {
		t.Fatal("could not paint shack")
	}
	return g
}

func TestCheckerboard_Presets(t *testing.T) {
	grid := gameworld.NewGrid(10)
	cases := []struct {
		level  zone.Level
		preset renderer.CheckerPreset
	}{
		{zone.LevelHome, renderer.DefaultChecker},
		{zone.LevelWilds, renderer.DefaultChecker},
		{zone.LevelFrontier, renderer.FrontierChecker},
	}
	for _, tc := range cases {
		for _, pt := range [][2]int{{4, 4}, {4, 5}} {
			rec := renderCell(t, canvastest.NewTextures(), grid, pt[0], pt[1], tc.level)
			last := rec.Ops[len(rec.Ops)-1]
			if !isTint(last, pt[0], pt[1]) {
				t.Fatalf("level %v cell %v: last op %+v is not a tint", tc.level, pt, last)
			}
			want := color.NRGBA{R: 255, G: 255, B: 255, A: tintAlpha(tc.preset.Even)}
			if (pt[0]+pt[1])%2 == 1 {
				want = color.NRGBA{A: tintAlpha(tc.preset.Odd)}
			}
			if last.Color != want {
				t.Errorf("level %v cell %v: tint = %v, want %v", tc.level, pt, last.Color, want)
			}
		}
	}
}

func TestCheckerboard_SkipsWallsAndStructures(t *testing.T) {
	grid := shackGrid(t)
	grid.Set(7, 7, gameworld.T(gameworld.Rock))

	for _, pt := range [][2]int{{7, 7}, {3, 3}, {3, 4}} {
		rec := renderCell(t, canvastest.NewTextures(), grid, pt[0], pt[1], zone.LevelHome)
		for _, op := range rec.Ops {
			if isTint(op, pt[0], pt[1]) {
				t.Errorf("cell %v got a checkerboard tint", pt)
			}
		}
	}
}

func TestBackground_DirtVariants(t *testing.T) {
	grid := gameworld.NewGrid(10)
	grid.Set(5, 4, gameworld.T(gameworld.Rock))
	grid.Set(5, 6, gameworld.T(gameworld.Rock))
	tex := canvastest.NewTextures("dirt", "dirt_tunnel")

	rec := renderCell(t, tex, grid, 5, 5, zone.LevelHome)
	if imgs := rec.Images(); len(imgs) == 0 || imgs[0] != "dirt_tunnel" {
		t.Fatalf("images = %v, want dirt_tunnel first", imgs)
	}

	grid = gameworld.NewGrid(10)
	grid.Set(4, 5, gameworld.T(gameworld.Rock))
	grid.Set(6, 5, gameworld.T(gameworld.Rock))
	rec = renderCell(t, tex, grid, 5, 5, zone.LevelHome)
	op := rec.Filter(canvastest.Image)[0]
	if op.Image != "dirt_tunnel" || math.Abs(op.Draw.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("vertical tunnel drew %s at %v rad, want dirt_tunnel at π/2", op.Image, op.Draw.Rotation)
	}
}

func TestBackground_VariantFallsBackToPlain(t *testing.T) {
	grid := gameworld.NewGrid(10)
	grid.Set(5, 4, gameworld.T(gameworld.Rock))
	rec := renderCell(t, canvastest.NewTextures("dirt"), grid, 5, 5, zone.LevelHome)
	if imgs := rec.Images(); len(imgs) != 1 || imgs[0] != "dirt" {
		t.Errorf("images = %v, want [dirt]", imgs)
	}
}

func TestBackground_NonDirtLevelsArePlain(t *testing.T) {
	grid := gameworld.NewGrid(10)
	grid.Set(5, 4, gameworld.T(gameworld.Rock))
	tex := canvastest.NewTextures("desert", "desert_edge", "housetile", "gravel")

	for level, want := range map[zone.Level]string{
		zone.LevelFrontier:    "desert",
		zone.LevelInterior:    "housetile",
		zone.LevelUnderground: "gravel",
	} {
		rec := renderCell(t, tex, grid, 5, 5, level)
		if imgs := rec.Images(); len(imgs) == 0 || imgs[0] != want {
			t.Errorf("level %v images = %v, want %s", level, imgs, want)
		}
	}
}

func TestPort_Dispatch(t *testing.T) {
	tex := canvastest.NewTextures("dirt", "housetile", "doodads/hole", "doodads/stairdown", "doodads/stairup", "doodads/grate")
	tex.PutSize("structures/shack", 96, 96)
	tex.PutSize("structures/cistern", 32, 64)

	shack := shackGrid(t)
	structure.Paint(structure.Cistern, structure.Anchor{StartX: 7, StartY: 1}, shack)
	shack.Set(7, 7, gameworld.T(gameworld.Port))
	shack.Set(8, 7, gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortStairDown})
	shack.Set(1, 7, gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortGrate})

	cases := []struct {
		name  string
		x, y  int
		level zone.Level
		want  string
	}{
		{"shack door", 3, 4, zone.LevelHome, "structures/shack"},
		{"cistern door", 7, 2, zone.LevelHome, "structures/cistern"},
		{"hole", 7, 7, zone.LevelHome, "doodads/hole"},
		{"stair", 8, 7, zone.LevelHome, "doodads/stairdown"},
		{"grate", 1, 7, zone.LevelHome, "doodads/grate"},
	}
	for _, tc := range cases {
		rec := renderCell(t, tex, shack, tc.x, tc.y, tc.level)
		if !rec.DrewImage(tc.want) {
			t.Errorf("%s: images = %v, want %s", tc.name, rec.Images(), tc.want)
		}
	}

	interior := gameworld.NewGrid(10)
	interior.Set(5, 9, gameworld.T(gameworld.Port))
	rec := renderCell(t, tex, interior, 5, 9, zone.LevelInterior)
	if imgs := rec.Images(); len(imgs) != 1 || imgs[0] != "housetile" {
		t.Errorf("interior door images = %v, want plain floor", imgs)
	}
}

func TestStructure_SlicesSheet(t *testing.T) {
	tex := canvastest.NewTextures()
	tex.PutSize("structures/shack", 96, 96)
	grid := shackGrid(t)

	for _, tc := range []struct {
		x, y int
		src  image.Rectangle
	}{
		{2, 2, image.Rect(0, 0, 32, 32)},
		{3, 3, image.Rect(32, 32, 64, 64)},
		{3, 4, image.Rect(32, 64, 64, 96)},
		{4, 4, image.Rect(64, 64, 96, 96)},
	} {
		rec := renderCell(t, tex, grid, tc.x, tc.y, zone.LevelHome)
		ops := rec.Filter(canvastest.Image)
		if len(ops) != 1 || ops[0].Src != tc.src {
			t.Errorf("cell (%d,%d) drew %+v, want src %v", tc.x, tc.y, ops, tc.src)
		}
	}
}

func TestStructure_MalformedSheetFallsBackWithMarker(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tex := canvastest.NewTextures()
	tex.PutSize("structures/shack", 2, 2)
	grid := shackGrid(t)
	tr := renderer.NewTileRenderer(tex, ts)
	rec := canvastest.NewRecorder(640, 640)

	tr.RenderTile(rec, 3, 3, grid, zone.LevelHome)
	tr.RenderTile(rec, 2, 2, grid, zone.LevelHome)

	if !rec.DrewText("S") {
		t.Error("malformed sheet drew no S marker")
	}
	if len(rec.Filter(canvastest.Image)) != 0 {
		t.Error("malformed sheet was sliced anyway")
	}
	if n := strings.Count(buf.String(), "Warning: structure sheet"); n != 1 {
		t.Errorf("logged %d warnings, want 1", n)
	}
}

func TestRenderGrid_MissingTexturesStillFillsEveryCell(t *testing.T) {
	grid := shackGrid(t)
	grid.Set(0, 0, gameworld.T(gameworld.Wall))
	grid.Set(6, 6, gameworld.Tile{Type: gameworld.Food, FoodType: "apple"})
	rec := canvastest.NewRecorder(640, 640)
	renderer.NewTileRenderer(canvastest.NewTextures(), ts).RenderGrid(rec, grid, zone.LevelWoods)

	covered := make(map[[2]float64]bool)
	for _, op := range rec.Filter(canvastest.FillRect) {
		if op.Color.A == 255 {
			covered[[2]float64{op.X, op.Y}] = true
		}
	}
	if len(covered) != 100 {
		t.Errorf("%d cells got an opaque fill, want 100", len(covered))
	}
}

// panicky textures blow up when a particular key is fetched
type panicky struct {
	*canvastest.Textures
	key string
}

func (p panicky) Image(key string) (image.Image, bool) {
	if key == p.key {
		panic("decoder exploded")
	}
	return p.Textures.Image(key)
}

func TestRenderTile_PanicIsContainedToTheCell(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	grid := gameworld.NewGrid(10)
	grid.Set(3, 3, gameworld.T(gameworld.Rock))
	tex := panicky{Textures: canvastest.NewTextures("dirt", "rock"), key: "rock"}
	tr := renderer.NewTileRenderer(tex, ts)

	for frame := 0; frame < 2; frame++ {
		rec := canvastest.NewRecorder(640, 640)
		tr.RenderGrid(rec, grid, zone.LevelHome)

		dirt := 0
		for _, name := range rec.Images() {
			if name == "dirt" {
				dirt++
			}
		}
		if dirt != 100 {
			t.Errorf("frame %d: %d dirt backgrounds, want 100", frame, dirt)
		}
		idx := rec.IndexOf(func(op canvastest.Op) bool {
			return op.Kind == canvastest.FillRect && op.X == 3*ts && op.Y == 3*ts && op.Color.A == 255
		})
		if idx < 0 {
			t.Errorf("frame %d: failed cell not filled flat", frame)
		}
	}
	if n := strings.Count(buf.String(), "Warning: drawing cell"); n != 1 {
		t.Errorf("logged %d cell failures, want 1", n)
	}
}

func TestItem_FoodTypeAndLitBomb(t *testing.T) {
	tex := canvastest.NewTextures("items/food/apple", "items/food", "items/bomb_lit", "items/bomb")
	grid := gameworld.NewGrid(10)
	grid.Set(1, 1, gameworld.Tile{Type: gameworld.Food, FoodType: "apple"})
	grid.Set(2, 1, gameworld.Tile{Type: gameworld.Food, FoodType: "pear"})
	grid.Set(3, 1, gameworld.Tile{Type: gameworld.Bomb, JustPlaced: true})

	for _, tc := range []struct {
		x    int
		want string
	}{{1, "items/food/apple"}, {2, "items/food"}, {3, "items/bomb_lit"}} {
		rec := renderCell(t, tex, grid, tc.x, 1, zone.LevelHome)
		if !rec.DrewImage(tc.want) {
			t.Errorf("cell %d images = %v, want %s", tc.x, rec.Images(), tc.want)
		}
	}
}
