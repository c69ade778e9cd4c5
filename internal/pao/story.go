package pao

import "fmt"

// Picker supplies uniform random indices.
type Picker interface {
	IntN(n int) int
}

// storyTemplates take person, action and object in that order.
var storyTemplates = []string{
	"The %s is %s with a %s",
	"I see a %s %s around a %s",
	"A %s starts %s near the %s",
	"The %s carefully %s using the %s",
	"Imagine a %s %s while holding a %s",
}

// StoryPlaceholder is shown in place of a story while a slot is unresolved.
const StoryPlaceholder = "Enter numbers to generate your memory story"

// Templates returns the sentence templates stories are drawn from.
func Templates() []string {
	out := make([]string, len(storyTemplates))
	copy(out, storyTemplates)
	return out
}

// Storyteller composes one-sentence stories from resolved triples.
type Storyteller struct {
	rng Picker
}

// NewStoryteller creates a Storyteller drawing templates from rng.
func NewStoryteller(rng Picker) *Storyteller {
	return &Storyteller{rng: rng}
}

// Tell picks a template uniformly at random and fills it in. It refuses
// when any slot of t is unresolved.
func (s *Storyteller) Tell(t Triple) (string, bool) {
	if !t.Complete() {
		return "", false
	}
	tmpl := storyTemplates[s.rng.IntN(len(storyTemplates))]
	return fmt.Sprintf(tmpl, t.Person.Value, t.Action.Value, t.Object.Value), true
}
