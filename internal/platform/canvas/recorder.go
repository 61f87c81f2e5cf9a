// Package canvas records the draw calls of one game frame so pixel
// frontends can replay them from their own render callback.
package canvas

import "github.com/vovakirdan/tui-flappy/internal/flappy"

// OpKind is the kind of a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpImage
	OpText
)

// Op is one recorded draw call in canvas pixels.
type Op struct {
	Kind       OpKind
	Sprite     flappy.Sprite
	X, Y, W, H float64
	Text       string
}

// Recorder is a flappy.Surface that keeps the calls of the current frame.
// A clear covering the whole canvas starts a new frame.
type Recorder struct {
	width  float64
	height float64
	ops    []Op
}

var _ flappy.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// ClearRegion drops everything recorded so far when the region covers the
// canvas, and records a clear otherwise.
func (r *Recorder) ClearRegion(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= r.width && y+h >= r.height {
		r.ops = r.ops[:0]
		return
	}
	r.ops = append(r.ops, Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

// DrawImage records a sprite blit.
func (r *Recorder) DrawImage(s flappy.Sprite, x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpImage, Sprite: s, X: x, Y: y, W: w, H: h})
}

// DrawText records text centered on x.
func (r *Recorder) DrawText(text string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: text})
}

// Ops returns the calls of the current frame in draw order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Size returns the canvas size.
func (r *Recorder) Size() (w, h float64) {
	return r.width, r.height
}
