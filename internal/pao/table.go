package pao

import (
	"net/url"
	"sort"
)

// Images holds one picture URL per slot.
type Images struct {
	Person string `json:"person"`
	Action string `json:"action"`
	Object string `json:"object"`
}

// Entry is one row of the lookup table.
type Entry struct {
	Person string `json:"person"`
	Action string `json:"action"`
	Object string `json:"object"`
	Images Images `json:"images"`
}

// Field returns the value stored in the given slot.
func (e Entry) Field(k Kind) string {
	switch k {
	case Person:
		return e.Person
	case Action:
		return e.Action
	case Object:
		return e.Object
	}
	return ""
}

// Image returns the picture URL for the given slot.
func (e Entry) Image(k Kind) string {
	switch k {
	case Person:
		return e.Images.Person
	case Action:
		return e.Images.Action
	case Object:
		return e.Images.Object
	}
	return ""
}

// Table maps a number in 0-99 to its entry. A Table is never mutated after
// construction.
type Table map[int]Entry

// Lookup returns the row for n.
func (t Table) Lookup(n int) (Entry, bool) {
	e, ok := t[n]
	return e, ok
}

// Keys returns the table's numbers in ascending order.
func (t Table) Keys() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// LookupKind returns the value of slot k for n.
func (t Table) LookupKind(k Kind, n int) (string, bool) {
	e, ok := t[n]
	if !ok {
		return "", false
	}
	return e.Field(k), true
}

// NewEntry builds an entry with placeholder pictures for each slot.
func NewEntry(person, action, object string) Entry {
	return Entry{
		Person: person,
		Action: action,
		Object: object,
		Images: Images{
			Person: PlaceholderImage(person),
			Action: PlaceholderImage(action),
			Object: PlaceholderImage(object),
		},
	}
}

// PlaceholderImage returns a generated picture URL labelled with text.
func PlaceholderImage(text string) string {
	return "https://placehold.co/400x400?text=" + url.QueryEscape(text)
}
