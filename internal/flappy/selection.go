package flappy

// Avatar is the bird skin chosen in the customization menu.
type Avatar int

const (
	AvatarBlue Avatar = iota
	AvatarRed
	AvatarYellow
)

// String returns the avatar name.
func (a Avatar) String() string {
	switch a {
	case AvatarBlue:
		return "blue"
	case AvatarRed:
		return "red"
	case AvatarYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Backdrop is the background chosen in the customization menu.
// It also selects the speed multiplier and whether bonuses spawn.
type Backdrop int

const (
	BackdropDay Backdrop = iota
	BackdropNight
)

// String returns the backdrop name.
func (b Backdrop) String() string {
	switch b {
	case BackdropDay:
		return "day"
	case BackdropNight:
		return "night"
	default:
		return "unknown"
	}
}

// PipeSkin is the obstacle color chosen in the customization menu.
type PipeSkin int

const (
	PipeGreen PipeSkin = iota
	PipeRed
)

// String returns the pipe skin name.
func (p PipeSkin) String() string {
	switch p {
	case PipeGreen:
		return "green"
	case PipeRed:
		return "red"
	default:
		return "unknown"
	}
}

// Category groups menu items; one item per category makes a complete selection.
type Category int

const (
	CategoryNone Category = iota
	CategoryAvatar
	CategoryBackdrop
	CategoryPipe
)

// CategoryCount is the number of categories a complete selection covers.
const CategoryCount = 3

// ItemID identifies a customization menu item.
type ItemID string

// Menu item identifiers.
const (
	ItemBlueBird        ItemID = "menu-blue-bird"
	ItemRedBird         ItemID = "menu-red-bird"
	ItemYellowBird      ItemID = "menu-yellow-bird"
	ItemDayBackground   ItemID = "menu-day-background"
	ItemNightBackground ItemID = "menu-night-background"
	ItemGreenPipe       ItemID = "menu-green-pipe"
	ItemRedPipe         ItemID = "menu-red-pipe"
)

// Catalog lists the menu items of each category in display order.
var Catalog = [][]ItemID{
	{ItemBlueBird, ItemRedBird, ItemYellowBird},
	{ItemDayBackground, ItemNightBackground},
	{ItemGreenPipe, ItemRedPipe},
}

// CategoryOf returns the category of a menu item, or CategoryNone if unknown.
func CategoryOf(id ItemID) Category {
	switch id {
	case ItemBlueBird, ItemRedBird, ItemYellowBird:
		return CategoryAvatar
	case ItemDayBackground, ItemNightBackground:
		return CategoryBackdrop
	case ItemGreenPipe, ItemRedPipe:
		return CategoryPipe
	default:
		return CategoryNone
	}
}

// Selection is the configuration record produced by the customization menu.
type Selection struct {
	Avatar   Avatar
	Backdrop Backdrop
	Pipe     PipeSkin
}

// DefaultSelection is used until the menu reports a choice.
func DefaultSelection() Selection {
	return Selection{
		Avatar:   AvatarBlue,
		Backdrop: BackdropDay,
		Pipe:     PipeGreen,
	}
}

// Apply updates the selection from one menu item.
// Unknown items leave the selection untouched and return false.
func (s *Selection) Apply(id ItemID) bool {
	switch id {
	case ItemBlueBird:
		s.Avatar = AvatarBlue
	case ItemRedBird:
		s.Avatar = AvatarRed
	case ItemYellowBird:
		s.Avatar = AvatarYellow
	case ItemDayBackground:
		s.Backdrop = BackdropDay
	case ItemNightBackground:
		s.Backdrop = BackdropNight
	case ItemGreenPipe:
		s.Pipe = PipeGreen
	case ItemRedPipe:
		s.Pipe = PipeRed
	default:
		return false
	}
	return true
}

// SelectionFromItems applies items over the default selection in order.
func SelectionFromItems(items []ItemID) Selection {
	sel := DefaultSelection()
	for _, id := range items {
		sel.Apply(id)
	}
	return sel
}

// Night reports whether the night backdrop is selected.
func (s Selection) Night() bool {
	return s.Backdrop == BackdropNight
}
