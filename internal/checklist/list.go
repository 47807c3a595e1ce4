// Package checklist holds the ordered list of items a session works on.
package checklist

import "github.com/Makepad-fr/tada/internal/model"

// List is an ordered sequence of items. Insertion order is display order.
// It does not persist itself; callers save a snapshot after each mutation.
type List struct {
	items []model.Item
}

func New() *List { return &List{} }

// GetList returns a copy of the current items in order.
func (l *List) GetList() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// AddItemToList appends it to the end. Id uniqueness is up to the caller.
func (l *List) AddItemToList(it model.Item) {
	l.items = append(l.items, it)
}

// RemoveItemFromList drops the first item with the given id and reports
// whether one was found. An unknown id leaves the list unchanged.
func (l *List) RemoveItemFromList(id int) (model.Item, bool) {
	for i, it := range l.items {
		if it.ID() == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return it, true
		}
	}
	return model.Item{}, false
}

func (l *List) ClearList() { l.items = nil }

func (l *List) Len() int { return len(l.items) }

// Find returns the item with the given id, if present.
func (l *List) Find(id int) (model.Item, bool) {
	for _, it := range l.items {
		if it.ID() == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// NextID is one past the highest id in the list, or 1 when it is empty.
func (l *List) NextID() int {
	top := 0
	for _, it := range l.items {
		if it.ID() > top {
			top = it.ID()
		}
	}
	return top + 1
}
