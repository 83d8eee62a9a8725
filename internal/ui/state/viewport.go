// Package state holds UI-side bookkeeping that the menu itself does not
// track, such as which rows of a long level are on screen.
package state

// Viewport is the window of row indices currently drawn for one level.
// Offset is the lowest visible index.
type Viewport struct {
	Offset int
}

// Ensure adjusts the offset so cursor stays within the visible window and
// returns the half-open index range [start, end) to draw. maxVisible <= 0
// shows every row.
func (v *Viewport) Ensure(cursor, total, maxVisible int) (start, end int) {
	if total <= 0 {
		v.Offset = 0
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	if maxVisible <= 0 || maxVisible >= total {
		v.Offset = 0
		return 0, total
	}
	maxOffset := total - maxVisible
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	upper := v.Offset + maxVisible - 1
	if cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
	return v.Offset, v.Offset + maxVisible
}

// Reset scrolls back to the first row.
func (v *Viewport) Reset() {
	v.Offset = 0
}
