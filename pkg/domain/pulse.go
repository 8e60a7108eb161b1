package domain

import "fmt"

// Level is the value carried by a pulse.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// ParseLevel accepts "low" or "high".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "low":
		return Low, nil
	case "high":
		return High, nil
	}
	return Low, fmt.Errorf("invalid level %q (want low or high)", s)
}

// Pulse is one signal travelling over a wire.
type Pulse struct {
	From  string
	To    string
	Level Level
}

// String renders the pulse the way traces print it: "a -high-> b".
func (p Pulse) String() string {
	return fmt.Sprintf("%s -%s-> %s", p.From, p.Level, p.To)
}

// Counts aggregates pulses by level.
type Counts struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Record counts one pulse of the given level.
func (c *Counts) Record(l Level) {
	if l {
		c.High++
	} else {
		c.Low++
	}
}

// Add returns the sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{Low: c.Low + o.Low, High: c.High + o.High}
}

// Scale multiplies both counters by k.
func (c Counts) Scale(k int) Counts {
	return Counts{Low: c.Low * k, High: c.High * k}
}

// Total is the number of pulses of either level.
func (c Counts) Total() int {
	return c.Low + c.High
}

// Product is low times high.
func (c Counts) Product() int {
	return c.Low * c.High
}

// PressReport summarises one button press.
type PressReport struct {
	// Press is the 1-based index of the press since the last reset.
	Press  int
	Counts Counts
	// Pulses is filled only when tracing is requested.
	Pulses []Pulse
}
