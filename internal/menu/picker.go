// Package menu implements the customization menu: a grid of avatar, backdrop
// and pipe items where the player picks exactly one item per category.
package menu

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var _ flappy.Menu = (*Picker)(nil)

// Picker is the menu state shared by the terminal and window frontends.
// Rows are categories, columns are the items of a category.
type Picker struct {
	row, col int
	selected []flappy.ItemID // In selection order
	visible  bool
}

// New creates a hidden picker with the cursor on the first item.
func New() *Picker {
	return &Picker{}
}

// Toggle selects or deselects an item. While the selection is incomplete an
// unselected item is added if its category is still free, and a selected item
// is removed. A complete selection is frozen until ClearSelection.
// Returns true if the selection changed.
func (p *Picker) Toggle(id flappy.ItemID) bool {
	cat := flappy.CategoryOf(id)
	if cat == flappy.CategoryNone || len(p.selected) >= flappy.CategoryCount {
		return false
	}

	if i := p.index(id); i >= 0 {
		p.selected = append(p.selected[:i], p.selected[i+1:]...)
		return true
	}
	for _, s := range p.selected {
		if flappy.CategoryOf(s) == cat {
			return false
		}
	}
	p.selected = append(p.selected, id)
	return true
}

func (p *Picker) index(id flappy.ItemID) int {
	for i, s := range p.selected {
		if s == id {
			return i
		}
	}
	return -1
}

// IsSelected reports whether an item is highlighted.
func (p *Picker) IsSelected(id flappy.ItemID) bool {
	return p.index(id) >= 0
}

// Items returns the selected items in selection order.
func (p *Picker) Items() []flappy.ItemID {
	out := make([]flappy.ItemID, len(p.selected))
	copy(out, p.selected)
	return out
}

// Selection returns the configuration record once every category has an item.
func (p *Picker) Selection() (flappy.Selection, bool) {
	if len(p.selected) < flappy.CategoryCount {
		return flappy.Selection{}, false
	}
	return flappy.SelectionFromItems(p.selected), true
}

// Show makes the menu visible.
func (p *Picker) Show() {
	p.visible = true
}

// Hide hides the menu.
func (p *Picker) Hide() {
	p.visible = false
}

// Visible reports whether the menu is shown.
func (p *Picker) Visible() bool {
	return p.visible
}

// ClearSelection drops every selected item.
func (p *Picker) ClearSelection() {
	p.selected = p.selected[:0]
}

// Cursor returns the cursor row and column.
func (p *Picker) Cursor() (row, col int) {
	return p.row, p.col
}

// SetCursor moves the cursor, clamped to the grid.
func (p *Picker) SetCursor(row, col int) {
	p.row = core.Clamp(row, 0, len(flappy.Catalog)-1)
	p.col = core.Clamp(col, 0, len(flappy.Catalog[p.row])-1)
}

// Current returns the item under the cursor.
func (p *Picker) Current() flappy.ItemID {
	return flappy.Catalog[p.row][p.col]
}

// HandleAction applies a navigation or select action while the menu is visible.
// Returns true if the action was consumed.
func (p *Picker) HandleAction(a core.Action) bool {
	if !p.visible {
		return false
	}
	switch a {
	case core.ActionUp:
		p.SetCursor(p.row-1, p.col)
	case core.ActionDown:
		p.SetCursor(p.row+1, p.col)
	case core.ActionLeft:
		p.SetCursor(p.row, p.col-1)
	case core.ActionRight:
		p.SetCursor(p.row, p.col+1)
	case core.ActionSelect:
		p.Toggle(p.Current())
	default:
		return false
	}
	return true
}
