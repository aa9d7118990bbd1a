package world

import (
	"encoding/json"
	"testing"
)

func TestTile_EffectiveBareAndTaggedEqual(t *testing.T) {
	bare := T(Port)
	tagged := Tile{Type: Port, PortKind: PortStairDown}

	if bare.Effective() != tagged.Effective() {
		t.Errorf("Effective() differs: %v vs %v", bare.Effective(), tagged.Effective())
	}
	if !tagged.Is(House, Port) {
		t.Error("Is(House, Port) = false for a port tile")
	}
}

func TestTile_UnmarshalBareCode(t *testing.T) {
	var tile Tile
	if err := json.Unmarshal([]byte("5"), &tile); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if tile.Effective() != House || tile.IsTagged() {
		t.Errorf("got %+v, want bare House", tile)
	}
}

func TestTile_UnmarshalTaggedObject(t *testing.T) {
	var tile Tile
	if err := json.Unmarshal([]byte(`{"type":16,"portKind":"stairup"}`), &tile); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if tile.Effective() != Port || tile.PortKind != PortStairUp {
		t.Errorf("got %+v, want Port/stairup", tile)
	}
}

func TestTile_UnmarshalRejectsGarbage(t *testing.T) {
	var tile Tile
	if err := json.Unmarshal([]byte(`"wall"`), &tile); err == nil {
		t.Error("Unmarshal(\"wall\") err = nil, want error")
	}
}

func TestTile_MarshalKeepsBareForm(t *testing.T) {
	data, err := json.Marshal([]Tile{T(Wall), {Type: Bomb, JustPlaced: true}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[1,{"type":13,"justPlaced":true}]`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestTileType_Properties(t *testing.T) {
	if !Wall.IsObstacle() || Floor.IsObstacle() {
		t.Error("obstacle flags wrong for Wall/Floor")
	}
	if !Port.IsFloorLike() || !Exit.IsFloorLike() {
		t.Error("Port and Exit must be floor-like")
	}
	if TileType(999).Family() != FamilyFloor {
		t.Error("unknown type should fall back to floor family")
	}
	if Shack.Family() != FamilyStructure {
		t.Error("Shack family should be structure")
	}
}

func TestTypeAt_OutsideGrid(t *testing.T) {
	g := NewGrid(10)
	if _, ok := TypeAt(g, 10, 0); ok {
		t.Error("TypeAt outside grid ok = true")
	}
	g.Set(3, 4, T(Rock))
	if tt, ok := TypeAt(g, 3, 4); !ok || tt != Rock {
		t.Errorf("TypeAt(3,4) = %v, %v, want Rock, true", tt, ok)
	}
}
