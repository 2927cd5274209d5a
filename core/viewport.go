package core

// Viewport is the rectangular window of the buffer currently visible,
// described by its top-left offset in grapheme columns and rows.
type Viewport struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// VisibleLines produces the rows to draw: one per visible buffer line, each
// the slice spanning grapheme columns [OffsetX, OffsetX+Width). Rows past
// the end of the buffer are omitted. The result is recomputed from scratch
// on every call; the viewport holds no render state.
func (v Viewport) VisibleLines(b *Buffer) []string {
	end := v.OffsetY + v.Height
	if end > b.LineCount() {
		end = b.LineCount()
	}
	if v.OffsetY >= end {
		return nil
	}
	rows := make([]string, 0, end-v.OffsetY)
	for y := v.OffsetY; y < end; y++ {
		rows = append(rows, b.lines[y].Slice(v.OffsetX, v.OffsetX+v.Width))
	}
	return rows
}

// ScreenPosition maps the cursor to offset-relative viewport coordinates.
func (v Viewport) ScreenPosition(c Cursor) (x, y int) {
	return c.X - v.OffsetX, c.Y - v.OffsetY
}
