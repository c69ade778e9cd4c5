package practice

// Countdown counts whole seconds down to zero.
type Countdown struct {
	Remaining int
}

// NewCountdown starts a countdown of seconds.
func NewCountdown(seconds int) Countdown {
	return Countdown{Remaining: seconds}
}

// Tick consumes one second and reports whether the countdown has reached
// zero. Ticking an expired countdown keeps reporting true.
func (c *Countdown) Tick() bool {
	if c.Remaining > 0 {
		c.Remaining--
	}
	return c.Remaining == 0
}

// Expired reports whether no time is left.
func (c Countdown) Expired() bool {
	return c.Remaining <= 0
}
