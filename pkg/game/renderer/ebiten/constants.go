// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorWall          = color.RGBA{60, 60, 80, 255}    // Wall blocks
	colorFloor         = color.RGBA{200, 200, 210, 255} // Open floor
	colorExit          = color.RGBA{0, 200, 0, 255}     // Exit cell
	colorPlayer        = color.RGBA{220, 40, 40, 255}   // Player token
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red
	colorSuccess       = color.RGBA{100, 255, 150, 255} // Green
	colorOverlay       = color.RGBA{0, 0, 0, 160}       // Dim the maze under the finished panel
	colorPanelBackdrop = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout
const (
	frameMargin   = 20 // Gap around the maze
	headerHeight  = 40 // Title and countdown
	messageLines  = 3  // Most recent messages shown under the maze
	baseFontSize  = 16.0
	minUIFontSize = 12.0
	playerInset   = 0.15 // Fraction of a cell left around the player token
)

// Window size used before the first maze is known
const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 640
)
