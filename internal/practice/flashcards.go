package practice

import "github.com/abhisek/paomind/internal/pao"

// Deck steps through table rows one slot at a time. The front of a card is
// the number; flipping shows the slot's value.
type Deck struct {
	table   pao.Table
	numbers []int
	kind    pao.Kind
	index   int
	flipped bool
}

// NewDeck creates a deck over every table row, showing kind.
func NewDeck(table pao.Table, kind pao.Kind) *Deck {
	return &Deck{table: table, numbers: table.Keys(), kind: kind}
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.numbers) }

// Position returns the zero-based index of the current card.
func (d *Deck) Position() int { return d.index }

// Kind returns the slot being drilled.
func (d *Deck) Kind() pao.Kind { return d.kind }

// Flipped reports whether the answer side is showing.
func (d *Deck) Flipped() bool { return d.flipped }

// Current returns the number and slot value of the current card.
func (d *Deck) Current() (int, string, bool) {
	if len(d.numbers) == 0 {
		return 0, "", false
	}
	n := d.numbers[d.index]
	return n, d.table[n].Field(d.kind), true
}

// Flip turns the current card over.
func (d *Deck) Flip() { d.flipped = !d.flipped }

// Next moves forward, wrapping to the first card.
func (d *Deck) Next() {
	if len(d.numbers) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.numbers)
	d.flipped = false
}

// Prev moves back, wrapping to the last card.
func (d *Deck) Prev() {
	if len(d.numbers) == 0 {
		return
	}
	d.index = (d.index - 1 + len(d.numbers)) % len(d.numbers)
	d.flipped = false
}

// SetKind switches the drilled slot and returns to the first card.
func (d *Deck) SetKind(k pao.Kind) {
	d.kind = k
	d.index = 0
	d.flipped = false
}

// Shuffle randomizes the card order.
func (d *Deck) Shuffle(rng Rand) {
	rng.Shuffle(len(d.numbers), func(i, j int) { d.numbers[i], d.numbers[j] = d.numbers[j], d.numbers[i] })
	d.index = 0
	d.flipped = false
}
