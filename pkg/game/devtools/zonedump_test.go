package devtools

import (
	"bytes"
	"strings"
	"testing"

	"chress/pkg/game/entities"
	"chress/pkg/game/state"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

func TestWriteZoneDump(t *testing.T) {
	grid := gameworld.NewGrid(10)
	structure.Paint(structure.Shack, structure.Anchor{StartX: 2, StartY: 2}, grid)
	grid.Set(8, 8, gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortStairDown})
	grid.Set(0, 0, gameworld.T(gameworld.Rock))

	g := state.NewGame(zone.Zone{X: 3, Y: 0}, grid)
	g.Enemies.Add(entities.NewEnemy(entities.Zard, 7, 1))

	var buf bytes.Buffer
	if err := WriteZoneDump(&buf, g); err != nil {
		t.Fatalf("WriteZoneDump() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"zone_key: 3,0:0",
		"shack anchor: 2,2 size: 3x3",
		"x: 3 y: 4 owner: shack anchor: 2,2",
		"x: 8 y: 8 freestanding: stairdown",
		"kind: Zard x: 7 y: 1",
		"phase: player",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	var mapRows []string
	for i, l := range lines {
		if l == "--- Map ---" {
			mapRows = lines[i+1 : i+11]
			break
		}
	}
	if len(mapRows) != 10 {
		t.Fatalf("map has %d rows, want 10", len(mapRows))
	}
	if mapRows[0][0] != 'R' {
		t.Errorf("map[0][0] = %c, want R", mapRows[0][0])
	}
	if mapRows[5][5] != '@' {
		t.Errorf("map[5][5] = %c, want @", mapRows[5][5])
	}
	if mapRows[1][7] != 'z' {
		t.Errorf("map[1][7] = %c, want z", mapRows[1][7])
	}
}

func TestWriteZoneDump_ReportsBrokenStructure(t *testing.T) {
	grid := gameworld.NewGrid(10)
	grid.Set(4, 4, gameworld.T(gameworld.Well))
	g := state.NewGame(zone.Zone{}, grid)

	var buf bytes.Buffer
	if err := WriteZoneDump(&buf, g); err != nil {
		t.Fatalf("WriteZoneDump() error = %v", err)
	}
	if !strings.Contains(buf.String(), "x: 4 y: 4 well: malformed footprint") {
		t.Errorf("dump does not report the lone well cell:\n%s", buf.String())
	}
}
