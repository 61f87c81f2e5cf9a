package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Floor is the ground strip. It scrolls left and wraps every Width pixels,
// drawn twice side by side to look endless.
type Floor struct {
	X, Y  float64
	W, H  float64
	speed float64
}

// NewFloor creates a floor spanning the canvas width at its bottom edge.
func NewFloor(canvasW, canvasH, height float64) *Floor {
	f := &Floor{
		W:     canvasW,
		H:     height,
		Y:     canvasH - height,
		speed: 1,
	}
	f.Reset()
	return f
}

// Reset moves the floor back to its starting scroll position.
func (f *Floor) Reset() {
	f.X = 0
}

// SetSpeed sets the horizontal scroll speed in pixels per frame.
func (f *Floor) SetSpeed(speed float64) {
	f.speed = speed
}

// Update scrolls the floor by one frame.
func (f *Floor) Update() {
	if f.X <= -f.W {
		f.X = 0
		return
	}
	f.X = math.Floor(f.X - f.speed)
}

// Rect returns the floor strip in canvas coordinates.
func (f *Floor) Rect() core.Rect {
	return core.NewRect(0, f.Y, f.W, f.H)
}

// Draw blits the two floor tiles.
func (f *Floor) Draw(s Surface) {
	s.DrawImage(SpriteFloor, f.X, f.Y, f.W, f.H)
	s.DrawImage(SpriteFloor, f.X+f.W, f.Y, f.W, f.H)
}
