package ebiten

import "image/color"

// Panel colors
var (
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
)

// Zoom limits, in pixels per tile
const (
	minTileSize  = 16
	maxTileSize  = 128
	tileSizeStep = 8
)

// Key repeat timing in milliseconds
const (
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 120
)

// holdThreshold separates a tap from a long press
const holdThreshold = 300 // ms

// Message panel timing in milliseconds
const (
	messageLifetime  = 6000
	messageFadeStart = messageLifetime * 7 / 10
	maxVisibleLines  = 3
)

// imageCacheSize caps how many converted textures stay on the GPU
const imageCacheSize = 512
