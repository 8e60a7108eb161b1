package tui

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/muesli/termenv"
)

// TraceWriter prints pulses one per line, colouring the level.
type TraceWriter struct {
	w     io.Writer
	out   *termenv.Output
	plain bool
}

// NewTraceWriter writes to w. With plain set, no escape sequences are emitted.
func NewTraceWriter(w io.Writer, plain bool) *TraceWriter {
	return &TraceWriter{w: w, out: termenv.NewOutput(w), plain: plain}
}

// Press writes a header for the press followed by its pulses.
func (t *TraceWriter) Press(report domain.PressReport) {
	header := fmt.Sprintf("# press %d (low %d, high %d)", report.Press, report.Counts.Low, report.Counts.High)
	if !t.plain {
		header = t.out.String(header).Bold().String()
	}
	fmt.Fprintln(t.w, header)
	for _, p := range report.Pulses {
		t.Pulse(p)
	}
}

// Pulse writes "from -level-> to".
func (t *TraceWriter) Pulse(p domain.Pulse) {
	arrow := fmt.Sprintf("-%s->", p.Level)
	if !t.plain {
		color := "#60a5fa"
		if p.Level == domain.High {
			color = "#f87171"
		}
		arrow = t.out.String(arrow).Foreground(t.out.Color(color)).String()
	}
	fmt.Fprintf(t.w, "%s %s %s\n", p.From, arrow, p.To)
}

// Changes writes one line per node whose state moved during the press.
func (t *TraceWriter) Changes(changes []domain.StateChange) {
	if len(changes) == 0 {
		fmt.Fprintln(t.w, "  state unchanged")
		return
	}
	for _, c := range changes {
		fmt.Fprintf(t.w, "  ~ %s: %s\n", c.Name, describe(c))
	}
}

func describe(c domain.StateChange) string {
	var parts []string
	if c.On != nil {
		if *c.On {
			parts = append(parts, "on")
		} else {
			parts = append(parts, "off")
		}
	}
	if len(c.Memory) > 0 {
		var mem []string
		for _, in := range slices.Sorted(maps.Keys(c.Memory)) {
			mem = append(mem, fmt.Sprintf("%s=%s", in, c.Memory[in]))
		}
		parts = append(parts, "memory "+strings.Join(mem, " "))
	}
	if c.Received != nil {
		parts = append(parts, fmt.Sprintf("received low %d, high %d", c.Received.Low, c.Received.High))
	}
	return strings.Join(parts, "; ")
}
