package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Overlaps is the strict AABB test used for player-vs-pipe and player-vs-heart.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// OutOfBounds reports whether the player has left the play field: below the
// floor top, or above the canvas top with half its height as tolerance.
func OutOfBounds(player core.Rect, floorY float64) bool {
	return player.Bottom() > floorY || player.Y-player.H/2 < 0
}

// PassedBy reports whether the player has fully crossed the pipe: its x is at
// or beyond the pipe's right edge.
func PassedBy(player core.Rect, pipe core.Rect) bool {
	return player.X >= pipe.Right()
}
