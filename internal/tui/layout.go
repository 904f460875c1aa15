package tui

import "github.com/flke/flke/internal/models"

// Screen geometry shared by the renderer and mouse hit testing
const (
	HeaderHeight = 1
	FooterHeight = 1
	SidebarWidth = 22

	// CardHeight is the fixed height of a task card, borders included
	CardHeight = 6
	// columnChrome is the top border, title line and indicator line above the first card
	columnChrome = 3
	// columnFooter is the bottom indicator line and bottom border
	columnFooter = 2

	MinColumnWidth = 20
	// menuTop is the first sidebar item row: header, border, title
	menuTop = HeaderHeight + 2
)

// Layout computes where the board, its columns and cards land on screen
type Layout struct {
	Width  int
	Height int
}

func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// BodyHeight is the height between header and footer
func (l Layout) BodyHeight() int {
	return max(l.Height-HeaderHeight-FooterHeight, 0)
}

// ContentWidth is the width right of the sidebar
func (l Layout) ContentWidth() int {
	return max(l.Width-SidebarWidth, 0)
}

// ColumnWidth is the outer width of one status column
func (l Layout) ColumnWidth() int {
	return max(l.ContentWidth()/len(models.Statuses()), MinColumnWidth)
}

// ColumnX is the leftmost cell of column i
func (l Layout) ColumnX(i int) int {
	return SidebarWidth + i*l.ColumnWidth()
}

// CardsTop is the first row of the first visible card
func (l Layout) CardsTop() int {
	return HeaderHeight + columnChrome
}

// VisibleCards is how many cards fit in a column
func (l Layout) VisibleCards() int {
	return max((l.BodyHeight()-columnChrome-columnFooter)/CardHeight, 1)
}

// ColumnAt returns the status column under x, y. Points on the sidebar,
// header or footer are outside every column.
func (l Layout) ColumnAt(x, y int) (models.Status, bool) {
	if y < HeaderHeight || y >= HeaderHeight+l.BodyHeight() || x < SidebarWidth {
		return "", false
	}
	i := (x - SidebarWidth) / l.ColumnWidth()
	statuses := models.Statuses()
	if i < 0 || i >= len(statuses) {
		return "", false
	}
	return statuses[i], true
}

// CardAt returns the column and card index under x, y given the column's
// scroll offset. The index may be past the end of the column.
func (l Layout) CardAt(x, y int, offset func(models.Status) int) (models.Status, int, bool) {
	status, ok := l.ColumnAt(x, y)
	if !ok || y < l.CardsTop() {
		return "", 0, false
	}
	slot := (y - l.CardsTop()) / CardHeight
	if slot >= l.VisibleCards() {
		return "", 0, false
	}
	return status, offset(status) + slot, true
}

// MenuItemAt returns the sidebar entry index under x, y
func (l Layout) MenuItemAt(x, y, items int) (int, bool) {
	if x >= SidebarWidth || y < menuTop || y >= menuTop+items {
		return 0, false
	}
	return y - menuTop, true
}
