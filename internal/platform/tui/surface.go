package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/canvas"
)

// glyph is how a sprite looks in a terminal cell.
type glyph struct {
	r rune
	c core.Color
}

var spriteGlyphs = map[flappy.Sprite]glyph{
	flappy.SpriteBlueBirdDown:     {'▼', core.ColorBrightBlue},
	flappy.SpriteBlueBirdMid:      {'■', core.ColorBrightBlue},
	flappy.SpriteBlueBirdUp:       {'▲', core.ColorBrightBlue},
	flappy.SpriteRedBirdDown:      {'▼', core.ColorBrightRed},
	flappy.SpriteRedBirdMid:       {'■', core.ColorBrightRed},
	flappy.SpriteRedBirdUp:        {'▲', core.ColorBrightRed},
	flappy.SpriteYellowBirdDown:   {'▼', core.ColorBrightYellow},
	flappy.SpriteYellowBirdMid:    {'■', core.ColorBrightYellow},
	flappy.SpriteYellowBirdUp:     {'▲', core.ColorBrightYellow},
	flappy.SpritePipeGreen:        {'█', core.ColorGreen},
	flappy.SpritePipeGreenRotated: {'█', core.ColorGreen},
	flappy.SpritePipeRed:          {'█', core.ColorRed},
	flappy.SpritePipeRedRotated:   {'█', core.ColorRed},
	flappy.SpriteBackgroundDay:    {' ', core.ColorDefault},
	flappy.SpriteBackgroundNight:  {'·', core.ColorNavy},
	flappy.SpriteFloor:            {'▒', core.ColorTan},
	flappy.SpriteHeart:            {'♥', core.ColorBrightRed},
}

// ScreenSurface draws the game canvas into a terminal cell buffer.
// Canvas pixels are scaled to cells so the whole canvas fits the screen.
type ScreenSurface struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64
}

var _ flappy.Surface = (*ScreenSurface)(nil)

// NewScreenSurface creates a surface over screen for a canvas of the given size.
func NewScreenSurface(screen *core.Screen, canvasW, canvasH float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, canvasW: canvasW, canvasH: canvasH}
}

// CellRect maps a canvas rectangle to the cells it touches.
func (s *ScreenSurface) CellRect(x, y, w, h float64) (cx, cy, cw, ch int) {
	sx := float64(s.screen.Width()) / s.canvasW
	sy := float64(s.screen.Height()) / s.canvasH

	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := int(math.Ceil((x + w) * sx))
	y1 := int(math.Ceil((y + h) * sy))
	return x0, y0, x1 - x0, y1 - y0
}

// ClearRegion blanks the cells under a canvas rectangle.
func (s *ScreenSurface) ClearRegion(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.canvasW && y+h >= s.canvasH {
		s.screen.Clear()
		return
	}
	cx, cy, cw, ch := s.CellRect(x, y, w, h)
	s.screen.FillRect(cx, cy, cw, ch, ' ', core.ColorDefault)
}

// DrawImage fills the cells under a sprite with its glyph. Overlay messages
// are drawn as a box with their text.
func (s *ScreenSurface) DrawImage(sp flappy.Sprite, x, y, w, h float64) {
	if lines := canvas.MessageLines(sp); lines != nil {
		s.drawMessage(lines, x, y, w, h)
		return
	}
	g, ok := spriteGlyphs[sp]
	if !ok {
		return
	}
	cx, cy, cw, ch := s.CellRect(x, y, w, h)
	s.screen.FillRect(cx, cy, cw, ch, g.r, g.c)
}

func (s *ScreenSurface) drawMessage(lines []string, x, y, w, h float64) {
	cx, cy, cw, ch := s.CellRect(x, y, w, h)

	// Grow the box to fit its text on small terminals.
	minW, minH := 0, len(lines)+2
	for _, l := range lines {
		minW = max(minW, len([]rune(l))+4)
	}
	if cw < minW {
		cx -= (minW - cw) / 2
		cw = minW
	}
	if ch < minH {
		cy -= (minH - ch) / 2
		ch = minH
	}

	s.screen.FillRect(cx, cy, cw, ch, ' ', core.ColorDefault)
	s.screen.DrawBox(cx, cy, cw, ch, core.ColorBrightYellow)
	top := cy + (ch-len(lines))/2
	for i, l := range lines {
		lx := cx + (cw-len([]rune(l)))/2
		s.screen.DrawColorText(lx, top+i, l, core.ColorBrightWhite)
	}
}

// DrawText writes text centered on the canvas x coordinate.
func (s *ScreenSurface) DrawText(text string, x, y float64) {
	cx, cy, _, _ := s.CellRect(x, y, 0, 0)
	s.screen.DrawColorText(cx-len([]rune(text))/2, cy, text, core.ColorBrightWhite)
}
