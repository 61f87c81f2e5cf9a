package menu

import "github.com/vovakirdan/tui-flappy/internal/flappy"

var itemLabels = map[flappy.ItemID]string{
	flappy.ItemBlueBird:        "Blue bird",
	flappy.ItemRedBird:         "Red bird",
	flappy.ItemYellowBird:      "Yellow bird",
	flappy.ItemDayBackground:   "Day",
	flappy.ItemNightBackground: "Night",
	flappy.ItemGreenPipe:       "Green pipes",
	flappy.ItemRedPipe:         "Red pipes",
}

// CategoryLabels are the row captions, in flappy.Catalog order.
var CategoryLabels = []string{"Bird", "Background", "Pipes"}

// Label returns the caption of a menu item.
func Label(id flappy.ItemID) string {
	if l, ok := itemLabels[id]; ok {
		return l
	}
	return string(id)
}
