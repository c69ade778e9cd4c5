// Package custom manages the user's own PAO items: the in-memory
// collection, its validation rules, and the CSV and JSON formats it is
// exchanged in.
package custom

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/validation"
)

// ID prefixes record where an item came from.
const (
	PrefixCustom   = "custom"
	PrefixImported = "imported"
	PrefixCreated  = "create"
)

var (
	// ErrDuplicateNumber is returned when a number is already taken within
	// the same type.
	ErrDuplicateNumber = errors.New("number already used for this type")

	// ErrNotFound is returned for an unknown item id.
	ErrNotFound = errors.New("item not found")
)

// Persister receives the full collection after every change.
type Persister interface {
	SaveCustomItems(ctx context.Context, items []pao.CustomItem) error
}

// Draft is the editable part of an item.
type Draft struct {
	Number   int    `validate:"min=0,max=99"`
	Title    string `validate:"required"`
	ImageURL string `validate:"omitempty,url"`
}

// Store is the in-process owner of the custom collection. Every mutation
// rewrites the whole collection through the persister before it is
// applied in memory.
type Store struct {
	items     []pao.CustomItem
	persister Persister
	now       func() time.Time
}

// NewStore creates a store seeded with items loaded at startup.
func NewStore(items []pao.CustomItem, p Persister) *Store {
	return &Store{
		items:     append([]pao.CustomItem(nil), items...),
		persister: p,
		now:       time.Now,
	}
}

// NewID returns "<prefix>_<unix millis>_<random suffix>".
func NewID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []pao.CustomItem {
	return append([]pao.CustomItem(nil), s.items...)
}

// Count returns the number of items.
func (s *Store) Count() int { return len(s.items) }

// CountByKind returns the number of items of kind k.
func (s *Store) CountByKind(k pao.Kind) int {
	c := 0
	for _, it := range s.items {
		if it.Type == k {
			c++
		}
	}
	return c
}

// ByKind returns the items of kind k ordered by number.
func (s *Store) ByKind(k pao.Kind) []pao.CustomItem {
	var out []pao.CustomItem
	for _, it := range s.items {
		if it.Type == k {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Get returns the item with id.
func (s *Store) Get(id string) (pao.CustomItem, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return pao.CustomItem{}, false
	}
	return s.items[i], true
}

// LookupKind returns the title of the most recent item of kind k bound to n.
func (s *Store) LookupKind(k pao.Kind, n int) (string, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if it := s.items[i]; it.Type == k && it.Number == n {
			return it.Title, true
		}
	}
	return "", false
}

// Add validates d and appends it as a new item of kind k.
func (s *Store) Add(ctx context.Context, k pao.Kind, d Draft) (pao.CustomItem, error) {
	d, err := s.check(k, d, "")
	if err != nil {
		return pao.CustomItem{}, err
	}
	item := pao.CustomItem{
		ID:       NewID(PrefixCustom, s.now()),
		Number:   d.Number,
		Title:    d.Title,
		ImageURL: d.ImageURL,
		Type:     k,
	}
	next := append(s.All(), item)
	if err := s.commit(ctx, next); err != nil {
		return pao.CustomItem{}, err
	}
	return item, nil
}

// Edit replaces the number, title and picture of item id.
func (s *Store) Edit(ctx context.Context, id string, d Draft) (pao.CustomItem, error) {
	i := s.indexOf(id)
	if i < 0 {
		return pao.CustomItem{}, ErrNotFound
	}
	item := s.items[i]
	d, err := s.check(item.Type, d, id)
	if err != nil {
		return pao.CustomItem{}, err
	}
	item.Number = d.Number
	item.Title = d.Title
	item.ImageURL = d.ImageURL

	next := s.All()
	next[i] = item
	if err := s.commit(ctx, next); err != nil {
		return pao.CustomItem{}, err
	}
	return item, nil
}

// Delete removes item id.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	next := s.All()
	next = append(next[:i], next[i+1:]...)
	return s.commit(ctx, next)
}

// Import appends items. Items without an id get one with prefix and items
// without an image get the placeholder for their title. Duplicates are not
// checked.
func (s *Store) Import(ctx context.Context, prefix string, items []pao.CustomItem) (int, error) {
	now := s.now()
	next := s.All()
	for _, it := range items {
		if it.ID == "" {
			it.ID = NewID(prefix, now)
		}
		if strings.TrimSpace(it.ImageURL) == "" {
			it.ImageURL = pao.PlaceholderImage(it.Title)
		}
		next = append(next, it)
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return len(items), nil
}

// Replace swaps in a whole new collection.
func (s *Store) Replace(ctx context.Context, items []pao.CustomItem) error {
	return s.commit(ctx, append([]pao.CustomItem(nil), items...))
}

// Clear removes every item.
func (s *Store) Clear(ctx context.Context) error {
	return s.commit(ctx, nil)
}

func (s *Store) check(k pao.Kind, d Draft, selfID string) (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	if err := validation.Struct(d); err != nil {
		return d, err
	}
	for _, it := range s.items {
		if it.Type == k && it.Number == d.Number && it.ID != selfID {
			return d, fmt.Errorf("%w: %s %s is already %q", ErrDuplicateNumber, k, pao.FormatNumber(d.Number), it.Title)
		}
	}
	if d.ImageURL == "" {
		d.ImageURL = pao.PlaceholderImage(d.Title)
	}
	return d, nil
}

func (s *Store) commit(ctx context.Context, next []pao.CustomItem) error {
	if s.persister != nil {
		if err := s.persister.SaveCustomItems(ctx, next); err != nil {
			return fmt.Errorf("save custom items: %w", err)
		}
	}
	s.items = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
