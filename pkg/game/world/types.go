package world

// Family groups tile types by which renderer draws them
type Family int

// Tile families
const (
	FamilyFloor Family = iota
	FamilyWall
	FamilyItem
	FamilyStructure
)

type tileInfo struct {
	name     string
	family   Family
	obstacle bool
}

var tileInfos = [tileTypeCount]tileInfo{
	Floor:     {"floor", FamilyFloor, false},
	Wall:      {"wall", FamilyWall, true},
	Grass:     {"grass", FamilyFloor, false},
	Exit:      {"exit", FamilyFloor, false},
	Rock:      {"rock", FamilyWall, true},
	House:     {"house", FamilyStructure, true},
	Water:     {"water", FamilyItem, false},
	Food:      {"food", FamilyItem, false},
	Axe:       {"axe", FamilyItem, false},
	Hammer:    {"hammer", FamilyItem, false},
	Spear:     {"spear", FamilyItem, false},
	Note:      {"note", FamilyItem, false},
	Horse:     {"horse", FamilyItem, false},
	Bomb:      {"bomb", FamilyItem, false},
	Heart:     {"heart", FamilyItem, false},
	Sign:      {"sign", FamilyItem, true},
	Port:      {"port", FamilyStructure, false},
	Shrubbery: {"shrubbery", FamilyWall, true},
	Well:      {"well", FamilyStructure, true},
	DeadTree:  {"deadtree", FamilyStructure, true},
	Table:     {"table", FamilyItem, true},
	Shack:     {"shack", FamilyStructure, true},
	Cistern:   {"cistern", FamilyStructure, true},
	Bow:       {"bow", FamilyItem, false},
	Pitfall:   {"pitfall", FamilyFloor, false},
	Statue:    {"statue", FamilyItem, true},
}

// IsValid reports whether t is a known tile type code
func (t TileType) IsValid() bool {
	return t >= 0 && t < tileTypeCount
}

// String returns the lowercase name of the tile type
func (t TileType) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return tileInfos[t].name
}

// Family returns which renderer family draws this type. Unknown codes draw
// as floor.
func (t TileType) Family() Family {
	if !t.IsValid() {
		return FamilyFloor
	}
	return tileInfos[t].family
}

// IsObstacle reports whether the type blocks movement
func (t TileType) IsObstacle() bool {
	if !t.IsValid() {
		return true
	}
	return tileInfos[t].obstacle
}

// IsFloorLike reports whether auto-tiling treats the type as open ground.
// Ports and exits count as floor; every obstacle counts as wall.
func (t TileType) IsFloorLike() bool {
	return !t.IsObstacle()
}

// IsItem reports whether the type is a pickup the player can collect
func (t TileType) IsItem() bool {
	switch t {
	case Food, Axe, Hammer, Spear, Note, Horse, Bomb, Heart, Bow, Water:
		return true
	}
	return false
}
