// Package layers provides utility functions for positioning UI layers
package layers

import "charm.land/lipgloss/v2"

// Z order of overlays above the base view
const (
	ZModal        = 1
	ZNotification = 2
	ZDragGhost    = 3
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y := centeredOrigin(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZModal)
}

// CreateTopRightLayer anchors content to the top-right corner, below a
// header of headerHeight rows
func CreateTopRightLayer(content string, screenWidth int, headerHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max(screenWidth-lipgloss.Width(content)-1, 0)
	return lipgloss.NewLayer(content).X(x).Y(headerHeight).Z(ZNotification)
}

// CreatePointerLayer places content just right of the pointer, kept on screen
func CreatePointerLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y = pointerOrigin(lipgloss.Width(content), lipgloss.Height(content), x, y, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZDragGhost)
}

func centeredOrigin(w, h, screenWidth, screenHeight int) (int, int) {
	return max((screenWidth-w)/2, 0), max((screenHeight-h)/2, 0)
}

func pointerOrigin(w, h, x, y, screenWidth, screenHeight int) (int, int) {
	x = min(x+1, max(screenWidth-w, 0))
	y = min(y, max(screenHeight-h, 0))
	return max(x, 0), max(y, 0)
}
