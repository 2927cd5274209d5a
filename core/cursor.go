package core

// Cursor is the logical editing position: a grapheme column and a row,
// independent of the viewport.
type Cursor struct {
	Location
}

// MoveLeft moves the cursor one grapheme left, wrapping to the end of the
// previous line at column 0.
func (c *Cursor) MoveLeft(b *Buffer) {
	if c.X > 0 {
		c.X--
		return
	}
	if c.Y > 0 {
		c.Y--
		c.X = b.GraphemeLenAt(c.Y)
	}
}

// MoveRight moves the cursor one grapheme right, wrapping to the start of
// the next line at end of line.
func (c *Cursor) MoveRight(b *Buffer) {
	if c.X < b.GraphemeLenAt(c.Y) {
		c.X++
		return
	}
	if c.Y+1 < b.LineCount() {
		c.Y++
		c.X = 0
	}
}

// MoveUp moves the cursor one row up, clamping the column to the destination
// line's grapheme length.
func (c *Cursor) MoveUp(b *Buffer) {
	if c.Y == 0 {
		return
	}
	c.Y--
	if n := b.GraphemeLenAt(c.Y); c.X > n {
		c.X = n
	}
}

// MoveDown moves the cursor one row down, clamping the column to the
// destination line's grapheme length.
func (c *Cursor) MoveDown(b *Buffer) {
	if c.Y+1 >= b.LineCount() {
		return
	}
	c.Y++
	if n := b.GraphemeLenAt(c.Y); c.X > n {
		c.X = n
	}
}

// Scroll returns view adjusted so that the cursor is visible: a cursor above
// the viewport pulls the top to the cursor row, one below pushes the top so
// the cursor sits on the last visible row, and horizontally likewise per
// axis. The offsets are then clamped: OffsetX never exceeds the grapheme
// length of the line at the updated OffsetY, and OffsetY never exceeds
// lineCount - height. Calling Scroll again without moving the cursor returns
// the same viewport.
func (c Cursor) Scroll(b *Buffer, view Viewport) Viewport {
	offX, offY := view.OffsetX, view.OffsetY

	if c.Y < offY {
		offY = c.Y
	} else if view.Height > 0 && c.Y >= offY+view.Height {
		offY = c.Y - view.Height + 1
	}

	if c.X < offX {
		offX = c.X
	} else if view.Width > 0 && c.X >= offX+view.Width {
		offX = c.X - view.Width + 1
	}

	if n := b.GraphemeLenAt(offY); offX > n {
		offX = n
	}
	maxY := b.LineCount() - view.Height
	if maxY < 0 {
		maxY = 0
	}
	if offY > maxY {
		offY = maxY
	}
	if offY < 0 {
		offY = 0
	}

	view.OffsetX = offX
	view.OffsetY = offY
	return view
}

// validate trips an assertion when the cursor has drifted outside the
// buffer. Violations indicate a dispatcher bug, not a user-facing error.
func (c Cursor) validate(b *Buffer) {
	assertf(c.Y >= 0 && c.Y < b.LineCount(),
		"cursor row %d out of range [0, %d)", c.Y, b.LineCount())
	assertf(c.X >= 0 && c.X <= b.GraphemeLenAt(c.Y),
		"cursor column %d out of range [0, %d]", c.X, b.GraphemeLenAt(c.Y))
}
