package components

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var tickerIDs atomic.Int64

// TickMsg is delivered once per interval to the screen owning the ticker.
type TickMsg struct {
	Owner int64
	Gen   int
	At    time.Time
}

// Ticker is a restartable one-second style timer for Bubble Tea. Each tick
// carries the ticker's id and generation, so ticks from a stopped, restarted
// or disposed ticker are recognized as stale and dropped.
type Ticker struct {
	id       int64
	gen      int
	running  bool
	interval time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{id: tickerIDs.Add(1), interval: interval}
}

// Start (re)starts the ticker and returns the first tick command.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	return t.next()
}

// Stop invalidates outstanding ticks.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
}

func (t *Ticker) Running() bool { return t.running }

// Owns reports whether msg is a live tick of this ticker.
func (t *Ticker) Owns(msg TickMsg) bool {
	return t.running && msg.Owner == t.id && msg.Gen == t.gen
}

// Next schedules the following tick. Call it after handling an owned tick.
func (t *Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.next()
}

// Msg returns the tick message the ticker would currently deliver.
func (t *Ticker) Msg(at time.Time) TickMsg {
	return TickMsg{Owner: t.id, Gen: t.gen, At: at}
}

func (t *Ticker) next() tea.Cmd {
	live := t.Msg(time.Time{})
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		live.At = at
		return live
	})
}
