package flappy

// Surface is the drawing sink a frontend provides. Coordinates are canvas pixels.
// The game never reads back from it.
type Surface interface {
	ClearRegion(x, y, w, h float64)
	DrawImage(s Sprite, x, y, w, h float64)
	// DrawText draws text horizontally centered on x.
	DrawText(text string, x, y float64)
}

// Audio plays sound effects, fire-and-forget.
type Audio interface {
	Play(s Sound)
}

// Menu is the customization menu as seen by the game.
type Menu interface {
	// Selection returns the configuration record once one item of every
	// category is selected; ok is false until then.
	Selection() (sel Selection, ok bool)
	Show()
	Hide()
	// ClearSelection drops all current selections and their highlighting.
	ClearSelection()
}

// NopAudio discards every sound. Used for muted and SSH sessions.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Sound) {}

type nopSurface struct{}

func (nopSurface) ClearRegion(float64, float64, float64, float64) {}

func (nopSurface) DrawImage(Sprite, float64, float64, float64, float64) {}

func (nopSurface) DrawText(string, float64, float64) {}
