package entities

// Kind identifies an enemy species
type Kind string

// Enemy kinds, each moving like a chess piece
const (
	Lizardy    Kind = "lizardy"    // one orthogonal step
	Lizardo    Kind = "lizardo"    // king
	Zard       Kind = "zard"       // bishop
	Lizardeaux Kind = "lizardeaux" // rook
	Lizord     Kind = "lizord"     // knight
	Lazerd     Kind = "lazerd"     // queen
)

// KindInfo contains the static properties of an enemy kind
type KindInfo struct {
	Name    string
	Glyph   string // fallback marker drawn when the sprite is missing
	Pattern Pattern
	Health  int
	Points  int
	// PixelPerfect sprites are small enough that any non-integer scaling
	// blurs them, so they are blitted 1:1 when nothing animates them.
	PixelPerfect bool
}

var kindInfos = map[Kind]KindInfo{
	Lizardy:    {Name: "Lizardy", Glyph: "y", Pattern: StepOrthogonal, Health: 1, Points: 1, PixelPerfect: true},
	Lizardo:    {Name: "Lizardo", Glyph: "o", Pattern: King, Health: 1, Points: 2, PixelPerfect: true},
	Zard:       {Name: "Zard", Glyph: "z", Pattern: Bishop, Health: 1, Points: 3, PixelPerfect: true},
	Lizardeaux: {Name: "Lizardeaux", Glyph: "x", Pattern: Rook, Health: 2, Points: 4},
	Lizord:     {Name: "Lizord", Glyph: "d", Pattern: Knight, Health: 2, Points: 5},
	Lazerd:     {Name: "Lazerd", Glyph: "q", Pattern: Queen, Health: 3, Points: 9},
}

// AllKinds returns every enemy kind from weakest to strongest
func AllKinds() []Kind {
	return []Kind{Lizardy, Lizardo, Zard, Lizardeaux, Lizord, Lazerd}
}

// Info returns the kind's properties. Unknown kinds behave like a lizardy.
func (k Kind) Info() KindInfo {
	if info, ok := kindInfos[k]; ok {
		return info
	}
	return kindInfos[Lizardy]
}

// SpriteKey returns the image key of the kind's sprite
func (k Kind) SpriteKey() string {
	return "fauna/" + string(k)
}

// PixelPerfect reports whether the kind is eligible for the 1:1 blit path
func (k Kind) PixelPerfect() bool {
	return k.Info().PixelPerfect
}
