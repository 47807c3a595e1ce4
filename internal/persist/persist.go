// Package persist moves a checklist in and out of a key/value store as a
// JSON array of {"id","text"} objects under StorageKey.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Makepad-fr/tada/internal/checklist"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

const StorageKey = "myToDoList"

// Encode serializes items in order.
func Encode(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored value back into items. A JSON null decodes to an
// empty slice.
func Decode(s string) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save writes the snapshot under StorageKey.
func Save(ctx context.Context, s store.Store, items []model.Item) error {
	v, err := Encode(items)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, StorageKey, v); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	return nil
}

// Load hydrates l from the store and returns how many items it added.
// It never fails: an absent, unreadable or malformed value leaves l as is.
// Entries without a positive id, with blank text, or repeating an id are
// skipped.
func Load(ctx context.Context, s store.Store, l *checklist.List, log *slog.Logger) int {
	v, ok, err := s.Get(ctx, StorageKey)
	if err != nil {
		log.Warn("read stored list", "key", StorageKey, "err", err)
		return 0
	}
	if !ok {
		log.Debug("no stored list", "key", StorageKey)
		return 0
	}
	items, err := Decode(v)
	if err != nil {
		log.Warn("stored list is malformed, starting empty", "key", StorageKey, "err", err)
		return 0
	}
	n := 0
	for _, it := range items {
		text := strings.TrimSpace(it.Item())
		if it.ID() <= 0 || text == "" {
			log.Warn("skipping stored item", "id", it.ID(), "text", it.Item())
			continue
		}
		if _, dup := l.Find(it.ID()); dup {
			log.Warn("skipping stored item with duplicate id", "id", it.ID())
			continue
		}
		item := model.New()
		item.SetID(it.ID())
		item.SetItem(text)
		l.AddItemToList(*item)
		n++
	}
	log.Debug("hydrated list", "items", n)
	return n
}
