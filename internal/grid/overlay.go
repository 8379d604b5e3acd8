package grid

// Placement geometry for the date-picker overlay: preferred position is just
// below the edited cell, flipping above it when that would run past the
// bottom of the viewport, and clamped away from the right edge.

const (
	overlayGap         = 5
	overlayRightMargin = 20
)

type Point struct {
	X, Y int
}

type Size struct {
	W, H int
}

// Rect is the on-screen box of the edited cell.
type Rect struct {
	X, Y, W, H int
}

// OverlayPosition returns the top-left corner for an overlay of the given
// size anchored to cell inside viewport.
func OverlayPosition(cell Rect, overlay Size, viewport Size) Point {
	top := cell.Y + cell.H + overlayGap
	left := cell.X

	if top+overlay.H > viewport.H {
		top = cell.Y - overlay.H - overlayGap
	}
	if left+overlay.W > viewport.W {
		left = viewport.W - overlay.W - overlayRightMargin
	}
	return Point{X: left, Y: top}
}
