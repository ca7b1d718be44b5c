package logic

// Navigator handles cursor movement and viewport management on the gallery grid.
// The viewport is measured in rows of cards.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	columns        int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, columns, totalItems int) {
	if columns < 1 {
		columns = 1
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.columns = columns
	n.totalItems = totalItems
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clampSelection()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move moves the cursor in direction and returns the new index and viewport offset.
// Directions: up, down, left, right, pageup, pagedown, home, end.
func (n *Navigator) Move(direction string) (int, int) {
	if n.totalItems == 0 {
		n.selectedIndex, n.viewportOffset = 0, 0
		return 0, 0
	}

	idx := n.selectedIndex
	last := n.totalItems - 1
	page := n.columns * n.viewportHeight

	switch direction {
	case "up":
		if idx-n.columns >= 0 {
			idx -= n.columns
		}
	case "down":
		if idx+n.columns <= last {
			idx += n.columns
		} else if RowOf(idx, n.columns) < RowOf(last, n.columns) {
			// Partial last row: land on its last card
			idx = last
		}
	case "left":
		if idx > 0 {
			idx--
		}
	case "right":
		if idx < last {
			idx++
		}
	case "pageup":
		idx -= page
		if idx < 0 {
			// Keep the column on the first row
			idx = n.selectedIndex % n.columns
		}
	case "pagedown":
		idx += page
		if idx > last {
			idx = last
		}
	case "home":
		idx = 0
	case "end":
		idx = last
	}

	return n.SetSelectedIndex(idx)
}

// MaxOffset returns the largest useful viewport offset
func (n *Navigator) MaxOffset() int {
	max := RowCount(n.totalItems, n.columns) - n.viewportHeight
	if max < 0 {
		return 0
	}
	return max
}

func (n *Navigator) clampSelection() {
	if n.selectedIndex > n.totalItems-1 {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	row := RowOf(n.selectedIndex, n.columns)

	if row < n.viewportOffset {
		n.viewportOffset = row
	}
	if row >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = row - n.viewportHeight + 1
	}

	if n.viewportOffset > n.MaxOffset() {
		n.viewportOffset = n.MaxOffset()
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// RowOf returns the grid row of index
func RowOf(index, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return index / columns
}

// RowCount returns the number of rows needed for total cards
func RowCount(total, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return (total + columns - 1) / columns
}

// ColumnsForWidth picks how many cards of cardWidth fit in width
func ColumnsForWidth(width, cardWidth int) int {
	if cardWidth < 1 {
		return 1
	}
	cols := width / cardWidth
	if cols < 1 {
		return 1
	}
	return cols
}
