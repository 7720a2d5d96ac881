// Package components provides reusable TUI components for sweetcakes.
package components

// cursor tracks the selected row of a list and keeps it inside a
// scrolling window of height rows.
type cursor struct {
	selected    int
	scrollStart int
	height      int
	count       int
}

func newCursor() cursor {
	return cursor{height: 10}
}

// setCount updates the number of rows and clamps the selection.
func (c *cursor) setCount(n int) {
	c.count = n
	if c.selected >= n {
		c.selected = n - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
	c.updateScroll()
}

func (c *cursor) setHeight(h int) {
	if h < 1 {
		h = 1
	}
	c.height = h
	c.updateScroll()
}

func (c *cursor) up() {
	if c.selected > 0 {
		c.selected--
		c.updateScroll()
	}
}

func (c *cursor) down() {
	if c.selected < c.count-1 {
		c.selected++
		c.updateScroll()
	}
}

func (c *cursor) top() {
	c.selected = 0
	c.updateScroll()
}

func (c *cursor) bottom() {
	if c.count > 0 {
		c.selected = c.count - 1
		c.updateScroll()
	}
}

// window returns the half-open range of visible rows.
func (c *cursor) window() (start, end int) {
	end = c.scrollStart + c.height
	if end > c.count {
		end = c.count
	}
	return c.scrollStart, end
}

// updateScroll ensures the selected row is visible.
func (c *cursor) updateScroll() {
	if c.selected < c.scrollStart {
		c.scrollStart = c.selected
	}
	if c.selected >= c.scrollStart+c.height {
		c.scrollStart = c.selected - c.height + 1
	}
	if c.scrollStart < 0 {
		c.scrollStart = 0
	}
}
