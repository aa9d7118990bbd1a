package renderer

import (
	"image/color"

	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// DefaultTileSize is the edge of one grid cell in pixels
const DefaultTileSize = 64

// Color palette
var (
	colorBackground = color.RGBA{18, 16, 22, 255}
	colorCellError  = color.RGBA{90, 20, 60, 255}
	colorGlyph      = color.RGBA{245, 240, 230, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorPlayer     = color.RGBA{80, 200, 120, 255}
	colorSmoke      = color.RGBA{150, 150, 160, 255}
	colorSplode     = color.RGBA{255, 150, 40, 255}
	colorArrow      = color.RGBA{220, 200, 150, 255}
	colorCharge     = color.RGBA{240, 220, 120, 255}
	colorPoints     = color.RGBA{255, 230, 90, 255}
	colorMultiplier = color.RGBA{255, 120, 60, 255}
	colorTap        = color.RGBA{255, 255, 255, 255}
	colorHold       = color.RGBA{120, 200, 255, 255}
	colorRange      = color.RGBA{230, 50, 50, 255}
	colorBombCell   = color.RGBA{255, 80, 40, 255}
	colorTurnOrder  = color.RGBA{255, 255, 255, 255}
	colorFog        = color.RGBA{170, 175, 190, 255}
	colorDarkness   = color.RGBA{0, 0, 8, 255}
)

// backgroundColors are the flat fills used while a floor texture loads
var backgroundColors = map[zone.Background]color.RGBA{
	zone.BackgroundDirt:      {120, 90, 60, 255},
	zone.BackgroundDesert:    {214, 190, 130, 255},
	zone.BackgroundHouseTile: {140, 100, 70, 255},
	zone.BackgroundGravel:    {80, 80, 86, 255},
}

// tileColors are the flat fallback fills per tile type
var tileColors = map[gameworld.TileType]color.RGBA{
	gameworld.Floor:     {120, 90, 60, 255},
	gameworld.Wall:      {70, 60, 70, 255},
	gameworld.Grass:     {70, 140, 60, 255},
	gameworld.Exit:      {200, 180, 90, 255},
	gameworld.Rock:      {110, 110, 115, 255},
	gameworld.House:     {150, 70, 50, 255},
	gameworld.Water:     {60, 110, 200, 255},
	gameworld.Food:      {200, 80, 80, 255},
	gameworld.Axe:       {160, 160, 170, 255},
	gameworld.Hammer:    {160, 140, 120, 255},
	gameworld.Spear:     {170, 170, 150, 255},
	gameworld.Note:      {235, 225, 200, 255},
	gameworld.Horse:     {150, 100, 60, 255},
	gameworld.Bomb:      {40, 40, 40, 255},
	gameworld.Heart:     {220, 40, 70, 255},
	gameworld.Sign:      {150, 110, 70, 255},
	gameworld.Port:      {20, 15, 15, 255},
	gameworld.Shrubbery: {40, 100, 50, 255},
	gameworld.Well:      {100, 100, 120, 255},
	gameworld.DeadTree:  {90, 70, 50, 255},
	gameworld.Table:     {130, 90, 60, 255},
	gameworld.Shack:     {120, 90, 70, 255},
	gameworld.Cistern:   {90, 110, 120, 255},
	gameworld.Bow:       {150, 110, 60, 255},
	gameworld.Pitfall:   {30, 25, 20, 255},
	gameworld.Statue:    {180, 180, 175, 255},
}

// tileGlyphs are drawn over the flat fallback fill
var tileGlyphs = map[gameworld.TileType]string{
	gameworld.Wall:      "▒",
	gameworld.Grass:     "\"",
	gameworld.Exit:      "⇲",
	gameworld.Rock:      "●",
	gameworld.House:     "⌂",
	gameworld.Water:     "~",
	gameworld.Food:      "%",
	gameworld.Axe:       "⚒",
	gameworld.Hammer:    "T",
	gameworld.Spear:     "/",
	gameworld.Note:      "✉",
	gameworld.Horse:     "♞",
	gameworld.Bomb:      "💣",
	gameworld.Heart:     "♥",
	gameworld.Sign:      "¶",
	gameworld.Port:      "○",
	gameworld.Shrubbery: "♣",
	gameworld.Well:      "◎",
	gameworld.DeadTree:  "¥",
	gameworld.Table:     "π",
	gameworld.Shack:     "⌂",
	gameworld.Cistern:   "▥",
	gameworld.Bow:       ")",
	gameworld.Pitfall:   "▪",
	gameworld.Statue:    "♜",
}

// Port decal glyphs
var portGlyphs = map[gameworld.PortKind]string{
	gameworld.PortHole:      "○",
	gameworld.PortStairDown: "▼",
	gameworld.PortStairUp:   "▲",
	gameworld.PortGrate:     "#",
}

// enemyColors fill the fallback disc of an enemy whose sprite is missing
var enemyColors = map[entities.Kind]color.RGBA{
	entities.Lizardy:    {110, 190, 90, 255},
	entities.Lizardo:    {90, 170, 170, 255},
	entities.Zard:       {170, 110, 200, 255},
	entities.Lizardeaux: {200, 150, 70, 255},
	entities.Lizord:     {200, 80, 80, 255},
	entities.Lazerd:     {230, 210, 80, 255},
}

// Overlay alphas
const (
	darknessAlpha = 0.35
	fogAlpha      = 0.45
	fogFallback   = 0.25
	rangeAlpha    = 0.3
	bombCellAlpha = 0.45
)
