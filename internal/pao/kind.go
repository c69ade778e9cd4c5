package pao

import (
	"fmt"
	"strings"
)

// Kind selects one slot of a PAO triple.
type Kind string

const (
	Person Kind = "person"
	Action Kind = "action"
	Object Kind = "object"
)

// Kinds returns the three kinds in triple order.
func Kinds() []Kind {
	return []Kind{Person, Action, Object}
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Person, Action, Object:
		return k, nil
	}
	return "", fmt.Errorf("unknown PAO type %q (must be person, action, or object)", s)
}

// Label returns the capitalized display name.
func (k Kind) Label() string {
	switch k {
	case Person:
		return "Person"
	case Action:
		return "Action"
	case Object:
		return "Object"
	}
	return string(k)
}
