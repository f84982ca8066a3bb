package catalog

import (
	"sort"

	"listpick/internal/domain"
)

// Catalog is the ordered sequence of items shown in the UI: all real entries
// sorted lexicographically, followed by the save and cancel action rows, plus
// a cursor into that sequence. The cursor is always within bounds.
type Catalog struct {
	items  []domain.Item
	cursor int
}

// Build constructs a catalog from discovered list file names and the
// previously persisted selection. An entry starts selected iff its name
// appears verbatim in the persisted selection; persisted names that match no
// discovered file are ignored.
func Build(names []string, persisted []string) *Catalog {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	selected := make(map[string]bool, len(persisted))
	for _, name := range persisted {
		selected[name] = true
	}

	items := make([]domain.Item, 0, len(sorted)+2)
	for _, name := range sorted {
		items = append(items, domain.EntryItem(name, selected[name]))
	}
	items = append(items, domain.ActionItem(domain.ActionSave))
	items = append(items, domain.ActionItem(domain.ActionCancel))

	return &Catalog{items: items}
}

// Len returns the number of items including the two action rows
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the items in display order
func (c *Catalog) Items() []domain.Item {
	return c.items
}

// Cursor returns the current cursor index
func (c *Catalog) Cursor() int {
	return c.cursor
}

// CursorItem returns the item under the cursor
func (c *Catalog) CursorItem() domain.Item {
	return c.items[c.cursor]
}

// MoveUp moves the cursor up one row. At the top it is a no-op, not a wrap.
func (c *Catalog) MoveUp() bool {
	if c.cursor > 0 {
		c.cursor--
		return true
	}
	return false
}

// MoveDown moves the cursor down one row. At the bottom it is a no-op.
func (c *Catalog) MoveDown() bool {
	if c.cursor < len(c.items)-1 {
		c.cursor++
		return true
	}
	return false
}

// Toggle flips the selected flag of the entry under the cursor. Action rows
// cannot be toggled; Toggle reports whether anything changed.
func (c *Catalog) Toggle() bool {
	item := &c.items[c.cursor]
	if item.Kind != domain.KindEntry {
		return false
	}
	item.Entry.Selected = !item.Entry.Selected
	return true
}

// SelectedNames returns the names of all selected entries in catalog order
func (c *Catalog) SelectedNames() []string {
	names := []string{}
	for _, item := range c.items {
		if item.Kind == domain.KindEntry && item.Entry.Selected {
			names = append(names, item.Entry.Name)
		}
	}
	return names
}
