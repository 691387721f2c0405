package state

// Rect is an axis-aligned box in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Side is where a tooltip sits relative to its anchor.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Placement is the resolved tooltip position.
type Placement struct {
	Side Side
	X, Y int
	// Flipped is true when the preferred side overflowed and the opposite was used.
	Flipped bool
}

// PlaceTooltip positions a tooltip of size tip next to anchor, gap cells away,
// on the preferred side. If that overflows the viewport and the opposite side
// does not, the tooltip flips. The result is then clamped into the viewport.
func PlaceTooltip(anchor Rect, tip Size, viewport Rect, preferred Side, gap int) Placement {
	gap = max(gap, 0)

	side := preferred
	x, y := position(anchor, tip, side, gap)
	flipped := false
	if overflows(x, y, tip, viewport, side) {
		alt := side.Opposite()
		ax, ay := position(anchor, tip, alt, gap)
		if !overflows(ax, ay, tip, viewport, alt) {
			side, x, y, flipped = alt, ax, ay, true
		}
	}

	return Placement{
		Side:    side,
		X:       clampAxis(x, tip.Width, viewport.X, viewport.Width),
		Y:       clampAxis(y, tip.Height, viewport.Y, viewport.Height),
		Flipped: flipped,
	}
}

func position(anchor Rect, tip Size, side Side, gap int) (int, int) {
	centerX := anchor.X + (anchor.Width-tip.Width)/2
	centerY := anchor.Y + (anchor.Height-tip.Height)/2
	switch side {
	case SideTop:
		return centerX, anchor.Y - gap - tip.Height
	case SideBottom:
		return centerX, anchor.Y + anchor.Height + gap
	case SideLeft:
		return anchor.X - gap - tip.Width, centerY
	default:
		return anchor.X + anchor.Width + gap, centerY
	}
}

// overflows only checks the axis the side pushes along.
func overflows(x, y int, tip Size, viewport Rect, side Side) bool {
	switch side {
	case SideTop:
		return y < viewport.Y
	case SideBottom:
		return y+tip.Height > viewport.Y+viewport.Height
	case SideLeft:
		return x < viewport.X
	default:
		return x+tip.Width > viewport.X+viewport.Width
	}
}

func clampAxis(pos, length, start, extent int) int {
	limit := start + extent - length
	if limit < start {
		return start
	}
	return min(max(pos, start), limit)
}
