package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerticalThreshold(t *testing.T) {
	tests := []struct {
		name  string
		endY  int
		dir   Direction
		fired bool
	}{
		{"99 up", 401, None, false},
		{"100 up", 400, None, false},
		{"101 up", 399, Up, true},
		{"99 down", 599, None, false},
		{"100 down", 600, None, false},
		{"101 down", 601, Down, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewVertical()
			r.Down(Point{X: 10, Y: 500})
			r.Move(Point{X: 10, Y: tt.endY})
			dir, ok := r.Up(Point{X: 10, Y: tt.endY})
			assert.Equal(t, tt.fired, ok)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, Idle, r.State())
		})
	}
}

func TestHorizontalThreshold(t *testing.T) {
	tests := []struct {
		name  string
		endX  int
		dir   Direction
		fired bool
	}{
		{"49 left", 151, None, false},
		{"50 left", 150, None, false},
		{"51 left", 149, Left, true},
		{"50 right", 250, None, false},
		{"51 right", 251, Right, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewHorizontal()
			r.Down(Point{X: 200, Y: 0})
			dir, ok := r.Up(Point{X: tt.endX, Y: 0})
			assert.Equal(t, tt.fired, ok)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

func TestHorizontalIgnoresVerticalTravel(t *testing.T) {
	r := NewHorizontal()
	r.Down(Point{X: 0, Y: 0})
	dir, ok := r.Up(Point{X: 0, Y: 500})
	assert.False(t, ok)
	assert.Equal(t, None, dir)
}

func TestUpWhileIdleIsIgnored(t *testing.T) {
	r := NewVertical()
	dir, ok := r.Up(Point{Y: 1000})
	assert.False(t, ok)
	assert.Equal(t, None, dir)

	r.Move(Point{Y: 5})
	assert.Equal(t, Idle, r.State())
}

func TestCancel(t *testing.T) {
	r := NewVertical()
	r.Down(Point{Y: 500})
	r.Cancel()
	_, ok := r.Up(Point{Y: 0})
	assert.False(t, ok)
}

func TestCellMetrics(t *testing.T) {
	assert.Equal(t, Point{X: 80, Y: 48}, DefaultCellMetrics.Point(10, 3))
	assert.Equal(t, Point{X: 16, Y: 32}, CellMetrics{}.Point(2, 2))
	assert.Equal(t, Point{X: 30, Y: 20}, CellMetrics{Width: 10, Height: 20}.Point(3, 1))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "none", None.String())
}
