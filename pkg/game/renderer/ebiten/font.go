package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getUIFontSize returns the font size for UI text, scaled with the cell size
func (e *EbitenRenderer) getUIFontSize() float64 {
	// Default cell size is 30
	size := baseFontSize * float64(e.cellSize) / 30.0
	if size < minUIFontSize {
		size = minUIFontSize
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	e.refreshFontCache()
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   e.cachedUIFontSize,
		}
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace font face for the countdown
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.refreshFontCache()
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   e.cachedUIFontSize,
		}
	}
	return e.cachedMonoFace
}

// refreshFontCache drops cached faces when the UI font size changed
func (e *EbitenRenderer) refreshFontCache() {
	size := e.getUIFontSize()
	if size != e.cachedUIFontSize {
		e.cachedUIFontSize = size
		e.cachedSansFace = nil
		e.cachedMonoFace = nil
	}
}

// messagesHeight returns the height of the message lines under the maze
func (e *EbitenRenderer) messagesHeight() int {
	return int(e.getUIFontSize()*1.5) * messageLines
}
