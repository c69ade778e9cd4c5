package pao

// Unknown is the display text for a slot that did not resolve.
const Unknown = "unknown"

// Source answers single-slot lookups. Table and the custom item store both
// satisfy it.
type Source interface {
	LookupKind(k Kind, n int) (string, bool)
}

// NumberInputs holds the raw text typed for each slot.
type NumberInputs struct {
	Person string
	Action string
	Object string
}

// Input returns the raw text for slot k.
func (in NumberInputs) Input(k Kind) string {
	switch k {
	case Person:
		return in.Person
	case Action:
		return in.Action
	case Object:
		return in.Object
	}
	return ""
}

// Field is the outcome of resolving one slot. Resolved distinguishes a miss
// from a value that happens to be empty.
type Field struct {
	Number   int
	Value    string
	Resolved bool
}

// Display returns the value, or Unknown when the slot did not resolve.
func (f Field) Display() string {
	if !f.Resolved {
		return Unknown
	}
	return f.Value
}

// Triple is the resolved person, action and object.
type Triple struct {
	Person Field
	Action Field
	Object Field
}

// Field returns the resolved slot k.
func (t Triple) Field(k Kind) Field {
	switch k {
	case Person:
		return t.Person
	case Action:
		return t.Action
	}
	return t.Object
}

// Complete reports whether all three slots resolved.
func (t Triple) Complete() bool {
	return t.Person.Resolved && t.Action.Resolved && t.Object.Resolved
}

// Resolver turns number inputs into a triple. The table is consulted first;
// Fallback, when set, is only asked about numbers the table does not hold.
type Resolver struct {
	Table    Table
	Fallback Source
}

// NewResolver creates a resolver over table with an optional fallback.
func NewResolver(table Table, fallback Source) *Resolver {
	return &Resolver{Table: table, Fallback: fallback}
}

// Resolve resolves each slot independently. Inputs that are not numerals in
// 0-99, or that no source knows, leave their slot unresolved.
func (r *Resolver) Resolve(in NumberInputs) Triple {
	return Triple{
		Person: r.Preview(Person, in.Person),
		Action: r.Preview(Action, in.Action),
		Object: r.Preview(Object, in.Object),
	}
}

// Preview resolves a single slot.
func (r *Resolver) Preview(k Kind, input string) Field {
	n, ok := ParseNumber(input)
	if !ok {
		return Field{}
	}
	if v, ok := r.Table.LookupKind(k, n); ok {
		return Field{Number: n, Value: v, Resolved: true}
	}
	if r.Fallback != nil {
		if v, ok := r.Fallback.LookupKind(k, n); ok {
			return Field{Number: n, Value: v, Resolved: true}
		}
	}
	return Field{Number: n}
}
