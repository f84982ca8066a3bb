package domain

// ItemKind distinguishes toggleable list entries from the fixed action rows.
type ItemKind int

const (
	KindEntry ItemKind = iota
	KindAction
)

// ActionKind identifies one of the two action rows at the bottom of the catalog.
type ActionKind int

const (
	ActionSave ActionKind = iota
	ActionCancel
)

// Entry represents one selectable list file
type Entry struct {
	Name     string // filename within the lists directory
	Selected bool
}

// Item is one row of the catalog: either a real entry or an action row.
// Action rows are never toggleable and never persisted.
type Item struct {
	Kind   ItemKind
	Entry  Entry      // valid when Kind == KindEntry
	Action ActionKind // valid when Kind == KindAction
}

// EntryItem wraps a list file as a catalog item
func EntryItem(name string, selected bool) Item {
	return Item{Kind: KindEntry, Entry: Entry{Name: name, Selected: selected}}
}

// ActionItem wraps an action as a catalog item
func ActionItem(kind ActionKind) Item {
	return Item{Kind: KindAction, Action: kind}
}
