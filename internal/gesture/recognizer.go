// Package gesture turns pointer coordinates into discrete swipe events.
package gesture

// Thresholds in pixels. A drag must exceed them strictly.
const (
	DismissThreshold   = 100
	WordSwipeThreshold = 50
)

// Direction is the outcome of a recognized swipe.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Axis selects which coordinate a recognizer measures.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// State is the recognizer state.
type State int

const (
	Idle State = iota
	Tracking
)

// Point is a pointer position in pixels.
type Point struct {
	X, Y int
}

// Recognizer is a two-state machine: Down starts tracking, Move records the
// latest position, Up measures start minus end and returns to Idle.
type Recognizer struct {
	Axis      Axis
	Threshold int

	state State
	start Point
	last  Point
}

// NewVertical returns a recognizer for vertical swipes (sheet dismissal and
// verse paging).
func NewVertical() *Recognizer {
	return &Recognizer{Axis: Vertical, Threshold: DismissThreshold}
}

// NewHorizontal returns a recognizer for horizontal word swipes.
func NewHorizontal() *Recognizer {
	return &Recognizer{Axis: Horizontal, Threshold: WordSwipeThreshold}
}

// State reports whether a gesture is being tracked.
func (r *Recognizer) State() State {
	return r.state
}

// Down starts tracking at p.
func (r *Recognizer) Down(p Point) {
	r.state = Tracking
	r.start = p
	r.last = p
}

// Move records p as the latest position.
func (r *Recognizer) Move(p Point) {
	if r.state != Tracking {
		return
	}
	r.last = p
}

// Up ends the gesture at p. It reports the swipe direction when the drag
// along the axis exceeds the threshold.
func (r *Recognizer) Up(p Point) (Direction, bool) {
	if r.state != Tracking {
		return None, false
	}
	r.last = p
	r.state = Idle

	var delta int
	if r.Axis == Vertical {
		delta = r.start.Y - r.last.Y
	} else {
		delta = r.start.X - r.last.X
	}

	if abs(delta) <= r.Threshold {
		return None, false
	}

	switch {
	case r.Axis == Vertical && delta > 0:
		return Up, true
	case r.Axis == Vertical:
		return Down, true
	case delta > 0:
		return Left, true
	default:
		return Right, true
	}
}

// Cancel drops any tracked gesture.
func (r *Recognizer) Cancel() {
	r.state = Idle
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// CellMetrics converts terminal cell coordinates into pixels so thresholds
// keep their pixel meaning in a terminal.
type CellMetrics struct {
	Width  int
	Height int
}

// DefaultCellMetrics matches a common 8x16 terminal font.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// Point converts a cell position to the pixel at the cell's origin.
func (m CellMetrics) Point(col, row int) Point {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = DefaultCellMetrics.Width
	}
	if h <= 0 {
		h = DefaultCellMetrics.Height
	}
	return Point{X: col * w, Y: row * h}
}
