package pao

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableCoversAllNumbers(t *testing.T) {
	table := Default()
	require.Len(t, table, 100)
	for n := MinNumber; n <= MaxNumber; n++ {
		e, ok := table.Lookup(n)
		require.True(t, ok, "missing row %02d", n)
		assert.NotEmpty(t, e.Person)
		assert.NotEmpty(t, e.Action)
		assert.NotEmpty(t, e.Object)
		assert.True(t, strings.HasPrefix(e.Image(Person), "https://"))
	}
	assert.Equal(t, 0, table.Keys()[0])
	assert.Equal(t, 99, table.Keys()[99])
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2", 2, true},
		{"02", 2, true},
		{" 42 ", 42, true},
		{"0", 0, true},
		{"00", 0, true},
		{"99", 99, true},
		{"100", 0, false},
		{"-1", 0, false},
		{"+5", 0, false},
		{"abc", 0, false},
		{"4a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseNumber(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseNumber(%q)", tt.in)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "00", FormatNumber(0))
	assert.Equal(t, "07", FormatNumber(7))
	assert.Equal(t, "42", FormatNumber(42))
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"person", "Action", " OBJECT "} {
		_, err := ParseKind(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseKind("place")
	assert.Error(t, err)
}

func TestResolveEveryNumber(t *testing.T) {
	table := Default()
	r := NewResolver(table, nil)
	for n := 0; n <= 99; n++ {
		for _, in := range []string{fmt.Sprint(n), FormatNumber(n)} {
			tr := r.Resolve(NumberInputs{Person: in, Action: in, Object: in})
			e := table[n]
			assert.Equal(t, Field{Number: n, Value: e.Person, Resolved: true}, tr.Person)
			assert.Equal(t, Field{Number: n, Value: e.Action, Resolved: true}, tr.Action)
			assert.Equal(t, Field{Number: n, Value: e.Object, Resolved: true}, tr.Object)
		}
	}
}

func TestResolveMissesAreIndependent(t *testing.T) {
	r := NewResolver(Default(), nil)
	tr := r.Resolve(NumberInputs{Person: "2", Action: "xyz", Object: "150"})

	assert.True(t, tr.Person.Resolved)
	assert.Equal(t, "Ballerina", tr.Person.Value)
	assert.False(t, tr.Action.Resolved)
	assert.False(t, tr.Object.Resolved)
	assert.Equal(t, Unknown, tr.Action.Display())
	assert.Equal(t, Unknown, tr.Object.Display())
	assert.False(t, tr.Complete())
}

func TestResolveEmptyValueIsNotUnknown(t *testing.T) {
	table := Table{5: {Person: "", Action: "running", Object: "rope"}}
	tr := NewResolver(table, nil).Resolve(NumberInputs{Person: "5", Action: "5", Object: "5"})

	assert.True(t, tr.Person.Resolved)
	assert.Equal(t, "", tr.Person.Display())
}

type mapSource map[Kind]map[int]string

func (m mapSource) LookupKind(k Kind, n int) (string, bool) {
	v, ok := m[k][n]
	return v, ok
}

func TestResolveFallbackOnlyOnTableMiss(t *testing.T) {
	table := Table{1: NewEntry("Archer", "aiming", "arrow")}
	fallback := mapSource{
		Person: {1: "Custom One", 7: "Custom Seven"},
	}
	r := NewResolver(table, fallback)

	tr := r.Resolve(NumberInputs{Person: "1", Action: "7", Object: "7"})
	assert.Equal(t, "Archer", tr.Person.Value)
	assert.False(t, tr.Action.Resolved)

	f := r.Preview(Person, "07")
	assert.True(t, f.Resolved)
	assert.Equal(t, "Custom Seven", f.Value)
}

func TestStoryFromDefaultInputs(t *testing.T) {
	r := NewResolver(Default(), nil)
	tr := r.Resolve(NumberInputs{Person: "2", Action: "2", Object: "2"})
	require.True(t, tr.Complete())

	teller := NewStoryteller(rand.New(rand.NewPCG(1, 2)))
	for range 20 {
		story, ok := teller.Tell(tr)
		require.True(t, ok)
		assert.Contains(t, story, "Ballerina")
		assert.Contains(t, story, "bouncing")
		assert.Contains(t, story, "ball")
		assert.Contains(t, renderedTemplates("Ballerina", "bouncing", "ball"), story)
	}
}

func TestStoryRefusedWhenUnresolved(t *testing.T) {
	r := NewResolver(Default(), nil)
	tr := r.Resolve(NumberInputs{Person: "2", Action: "", Object: "2"})

	story, ok := NewStoryteller(rand.New(rand.NewPCG(1, 2))).Tell(tr)
	assert.False(t, ok)
	assert.Empty(t, story)
}

type fixedPicker int

func (f fixedPicker) IntN(int) int { return int(f) }

func TestStoryUsesPickedTemplate(t *testing.T) {
	tr := Triple{
		Person: Field{Value: "Chef", Resolved: true},
		Action: Field{Value: "chopping", Resolved: true},
		Object: Field{Value: "carrot", Resolved: true},
	}
	for i, tmpl := range Templates() {
		story, ok := NewStoryteller(fixedPicker(i)).Tell(tr)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf(tmpl, "Chef", "chopping", "carrot"), story)
	}
}

func renderedTemplates(p, a, o string) []string {
	var out []string
	for _, tmpl := range Templates() {
		out = append(out, fmt.Sprintf(tmpl, p, a, o))
	}
	return out
}
