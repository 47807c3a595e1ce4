// Package app ties a checklist to its store. A Session is what the CLI and
// the TUI drive: every mutation is followed by a save of the full snapshot.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Makepad-fr/tada/internal/checklist"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/persist"
	"github.com/Makepad-fr/tada/internal/store"
)

// Session owns one list and the store it is persisted to. It is not safe
// for concurrent use; callers drive it from a single goroutine.
type Session struct {
	list   *checklist.List
	store  store.Store
	log    *slog.Logger
	loaded bool
	status string
}

func NewSession(st store.Store, log *slog.Logger) *Session {
	return &Session{list: checklist.New(), store: st, log: log}
}

// Init hydrates the list from the store. Only the first call has an effect.
func (s *Session) Init(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	persist.Load(ctx, s.store, s.list, s.log)
}

// Submit adds raw as a new entry. Blank input is ignored and reported
// with ok=false.
func (s *Session) Submit(ctx context.Context, raw string) (model.Item, bool, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.Item{}, false, nil
	}
	it := model.New()
	it.SetID(s.list.NextID())
	it.SetItem(text)
	s.list.AddItemToList(*it)
	s.announce(text, "added")
	return *it, true, s.save(ctx)
}

// Check removes the entry with the given id. An unknown id is a no-op
// reported with ok=false.
func (s *Session) Check(ctx context.Context, id int) (model.Item, bool, error) {
	it, ok := s.list.RemoveItemFromList(id)
	if !ok {
		return model.Item{}, false, nil
	}
	s.announce(it.Item(), "removed from list")
	return it, true, s.save(ctx)
}

// Clear empties the list when it has entries and confirm agrees. A nil
// confirm means yes.
func (s *Session) Clear(ctx context.Context, confirm func() bool) (bool, error) {
	if s.list.Len() == 0 {
		return false, nil
	}
	if confirm != nil && !confirm() {
		return false, nil
	}
	s.list.ClearList()
	s.status = ""
	return true, s.save(ctx)
}

// Snapshot is a copy of the current entries in display order.
func (s *Session) Snapshot() []model.Item { return s.list.GetList() }

func (s *Session) NextID() int { return s.list.NextID() }

func (s *Session) Len() int { return s.list.Len() }

// Status is the last confirmation line, e.g. "Buy milk added."
func (s *Session) Status() string { return s.status }

// Export returns the list exactly as it would be written to the store.
func (s *Session) Export() (string, error) {
	return persist.Encode(s.list.GetList())
}

func (s *Session) announce(text, verb string) {
	s.status = fmt.Sprintf("%s %s.", text, verb)
}

func (s *Session) save(ctx context.Context) error {
	if err := persist.Save(ctx, s.store, s.list.GetList()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
