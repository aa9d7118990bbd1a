// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"chress/pkg/game/state"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
)

const zoneDumpFilename = "zone.txt"

// tileSymbols are the single-character map symbols for each tile type
var tileSymbols = map[gameworld.TileType]rune{
	gameworld.Floor:     '.',
	gameworld.Wall:      '#',
	gameworld.Grass:     ',',
	gameworld.Exit:      'E',
	gameworld.Rock:      'R',
	gameworld.House:     'H',
	gameworld.Water:     '~',
	gameworld.Food:      'f',
	gameworld.Axe:       'a',
	gameworld.Hammer:    'h',
	gameworld.Spear:     's',
	gameworld.Note:      'n',
	gameworld.Horse:     'k',
	gameworld.Bomb:      'b',
	gameworld.Heart:     'v',
	gameworld.Sign:      '!',
	gameworld.Port:      'O',
	gameworld.Shrubbery: '%',
	gameworld.Well:      'W',
	gameworld.DeadTree:  'T',
	gameworld.Table:     't',
	gameworld.Shack:     'S',
	gameworld.Cistern:   'C',
	gameworld.Bow:       ')',
	gameworld.Pitfall:   '_',
	gameworld.Statue:    '&',
}

// symbolAt returns the map symbol for (x, y): the player, an enemy glyph or
// the tile underneath
func symbolAt(g *state.Game, x, y int) string {
	if g.Player != nil && g.Player.X == x && g.Player.Y == y {
		return "@"
	}
	if e, ok := g.Enemies.FindAt(x, y); ok {
		return e.Kind.Info().Glyph
	}
	t, ok := gameworld.TypeAt(g.Grid, x, y)
	if !ok {
		return " "
	}
	if r, ok := tileSymbols[t]; ok {
		return string(r)
	}
	return "?"
}

// WriteZoneDump writes a debug dump of the current zone: metadata, legend,
// the map, the structures found on it and the enemies with their turn
// order
func WriteZoneDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	pw := &dumpWriter{w: w}

	pw.println("=== ZONE DUMP ===")
	pw.println()
	pw.println("--- Metadata ---")
	pw.printf("zone_key: %s\n", g.Zone.Key())
	pw.printf("level: %s\n", g.Zone.Level())
	pw.printf("background: %s\n", g.Zone.Level().Background())
	pw.printf("grid_cols: %d\n", cols)
	pw.printf("grid_rows: %d\n", rows)
	pw.printf("coordinate_system: x,y (0-based, x=column, y=row)\n")
	pw.printf("player: %d,%d\n", g.Player.X, g.Player.Y)
	pw.printf("health: %d/%d\n", g.Player.Health, g.Player.MaxHealth)
	pw.printf("points: %d\n", g.Player.Points)
	pw.printf("zones_visited: %d\n", g.Visited.Size())
	pw.println()

	pw.println("--- Legend ---")
	types := make([]gameworld.TileType, 0, len(tileSymbols))
	for t := range tileSymbols {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		pw.printf("%c = %s  ", tileSymbols[t], t)
	}
	pw.println()
	pw.println("@ = player  enemy glyphs as drawn in fallback mode")
	pw.println()

	pw.println("--- Map ---")
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pw.printf("%s", symbolAt(g, x, y))
		}
		pw.println()
	}
	pw.println()

	pw.println("--- Structures ---")
	writeStructures(pw, g.Grid)
	pw.println()

	pw.println("--- Ports ---")
	g.Grid.ForEach(func(x, y int, tile gameworld.Tile) {
		if tile.Effective() != gameworld.Port {
			return
		}
		if k, a, ok := structure.ResolvePort(x, y, g.Grid); ok {
			pw.printf("  x: %d y: %d owner: %s anchor: %d,%d\n", x, y, k, a.StartX, a.StartY)
			return
		}
		kind := string(tile.PortKind)
		if kind == "" {
			kind = "hole"
		}
		pw.printf("  x: %d y: %d freestanding: %s\n", x, y, kind)
	})
	pw.println()

	pw.println("--- Enemies ---")
	pw.printf("phase: %v\n", phaseName(g.Turn.Phase))
	for _, e := range g.Enemies.All() {
		order := "-"
		if n, ok := g.Turn.QueuePosition(e); ok {
			order = fmt.Sprint(n)
		}
		pw.printf("  id: %d kind: %s x: %d y: %d health: %d frozen_turns: %d alive: %v queue: %s\n",
			e.ID, e.Kind.Info().Name, e.X, e.Y, e.Health, e.FrozenTurns, e.IsAlive(), order)
	}
	pw.println()

	pw.println("--- Messages ---")
	for _, msg := range g.Messages {
		pw.printf("  %s\n", msg)
	}
	return pw.err
}

// writeStructures lists every whole structure once, by anchor. Broken
// footprints are reported cell by cell.
func writeStructures(pw *dumpWriter, grid *gameworld.Grid) {
	type found struct {
		kind   structure.Kind
		anchor structure.Anchor
	}
	seen := mapset.New[found]()
	var ordered []found

	grid.ForEach(func(x, y int, tile gameworld.Tile) {
		k, ok := structure.KindOf(tile.Effective())
		if !ok {
			return
		}
		a, ok := structure.Find(k, x, y, grid, true)
		if !ok {
			pw.printf("  x: %d y: %d %s: malformed footprint\n", x, y, k)
			return
		}
		f := found{kind: k, anchor: a}
		if !seen.Has(f) {
			seen.Put(f)
			ordered = append(ordered, f)
		}
	})

	for _, f := range ordered {
		w, h := f.kind.Size()
		pw.printf("  %s anchor: %d,%d size: %dx%d\n", f.kind, f.anchor.StartX, f.anchor.StartY, w, h)
	}
}

func phaseName(p state.Phase) string {
	if p == state.EnemyTurn {
		return "enemy"
	}
	return "player"
}

// dumpWriter keeps the first write error so the dump can be written
// without checking every line
type dumpWriter struct {
	w   io.Writer
	err error
}

func (d *dumpWriter) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumpWriter) println(a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, a...)
}

// DumpZoneToFile writes WriteZoneDump's output to zone.txt in the working
// directory and returns its absolute path
func DumpZoneToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(zoneDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteZoneDump(f, g); err != nil {
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	return absPath, nil
}
