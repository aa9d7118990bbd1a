package zone

// Level is the biome/difficulty tier of a zone
type Level int

// Zone levels
const (
	LevelHome        Level = 1
	LevelWoods       Level = 2
	LevelWilds       Level = 3
	LevelFrontier    Level = 4
	LevelInterior    Level = 5
	LevelUnderground Level = 6
)

// Distance thresholds (Chebyshev, from the origin zone) for surface levels
const (
	homeRadius  = 2
	woodsRadius = 8
	wildsRadius = 16
)

// Background names the floor texture family a zone level draws with
type Background string

// Background families
const (
	BackgroundDirt      Background = "dirt"
	BackgroundDesert    Background = "desert"
	BackgroundHouseTile Background = "housetile"
	BackgroundGravel    Background = "gravel"
)

// Level derives the zone level from coordinates and dimension. It is a pure
// function; callers recompute it every frame rather than caching it.
func (z Zone) Level() Level {
	switch z.Dimension {
	case Interior:
		return LevelInterior
	case Underground:
		return LevelUnderground
	}

	dist := max(abs(z.X), abs(z.Y))
	switch {
	case dist <= homeRadius:
		return LevelHome
	case dist <= woodsRadius:
		return LevelWoods
	case dist <= wildsRadius:
		return LevelWilds
	default:
		return LevelFrontier
	}
}

// Background returns the floor texture family for the level
func (l Level) Background() Background {
	switch l {
	case LevelFrontier:
		return BackgroundDesert
	case LevelInterior:
		return BackgroundHouseTile
	case LevelUnderground:
		return BackgroundGravel
	default:
		return BackgroundDirt
	}
}

// String returns the level's biome name
func (l Level) String() string {
	switch l {
	case LevelHome:
		return "home"
	case LevelWoods:
		return "woods"
	case LevelWilds:
		return "wilds"
	case LevelFrontier:
		return "frontier"
	case LevelInterior:
		return "interior"
	case LevelUnderground:
		return "underground"
	default:
		return "unknown"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
