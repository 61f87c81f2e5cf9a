package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/menu"
	"github.com/vovakirdan/tui-flappy/internal/platform/canvas"
)

const (
	scoreTextSize   = 32
	messageTextSize = 14
	menuTextSize    = 14
	menuRowHeight   = 90
	menuItemWidth   = 170
	menuItemHeight  = 40
)

var (
	menuBackground = color.RGBA{0x10, 0x10, 0x20, 0xff}
	menuCursor     = color.RGBA{0x5f, 0x00, 0xff, 0xff}
	menuSelected   = color.RGBA{0x1e, 0xc8, 0x0f, 0xff}
	menuIdle       = color.RGBA{0x30, 0x30, 0x40, 0xff}
	borderColor    = color.RGBA{0xff, 0xd0, 0x40, 0xff}
)

func (g *Game) drawOp(screen *ebiten.Image, op canvas.Op) {
	switch op.Kind {
	case canvas.OpClear:
		fillRect(screen, op.X, op.Y, op.W, op.H, canvas.Sky)
	case canvas.OpImage:
		g.drawImage(screen, op)
	case canvas.OpText:
		g.drawText(screen, op.Text, op.X, op.Y, scoreTextSize)
	}
}

func (g *Game) drawImage(screen *ebiten.Image, op canvas.Op) {
	c, ok := canvas.Color(op.Sprite)
	if !ok {
		return
	}
	fillRect(screen, op.X, op.Y, op.W, op.H, c)

	lines := canvas.MessageLines(op.Sprite)
	if lines == nil {
		return
	}
	vector.StrokeRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), 3, borderColor, false)
	lineHeight := float64(messageTextSize) * 2
	top := op.Y + (op.H-lineHeight*float64(len(lines)))/2
	for i, l := range lines {
		g.drawText(screen, l, op.X+op.W/2, top+lineHeight*float64(i), messageTextSize)
	}
}

// drawText draws text horizontally centered on x.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, &text.GoTextFace{Source: g.font, Size: size}, op)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	cx := g.cfg.Canvas.Width / 2
	g.drawText(screen, "FLAPPY", cx, 60, scoreTextSize)
	g.drawText(screen, "Pick one of each", cx, 120, menuTextSize)

	row, col := g.picker.Cursor()
	for r, items := range flappy.Catalog {
		y := 180 + float64(r)*menuRowHeight
		g.drawText(screen, menu.CategoryLabels[r], cx, y, menuTextSize)

		total := float64(len(items))*menuItemWidth + float64(len(items)-1)*10
		x := cx - total/2
		for c, id := range items {
			bg := menuIdle
			if g.picker.IsSelected(id) {
				bg = menuSelected
			}
			fillRect(screen, x, y+24, menuItemWidth, menuItemHeight, bg)
			if r == row && c == col {
				vector.StrokeRect(screen, float32(x), float32(y+24), menuItemWidth, menuItemHeight, 3, menuCursor, false)
			}
			g.drawText(screen, menu.Label(id), x+menuItemWidth/2, y+36, 10)
			x += menuItemWidth + 10
		}
	}

	if g.best > 0 {
		g.drawText(screen, "Best: "+flappy.FormatScore(g.best), cx, 500, menuTextSize)
	}
	g.drawText(screen, "Arrows: move  Enter: select", cx, 600, 10)
	g.drawText(screen, "Esc: quit", cx, 630, 10)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
