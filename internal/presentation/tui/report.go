package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// Report is the Markdown summary of a run.
type Report struct {
	Network  *domain.Network
	Title    string
	Rows     [][2]string
	Duration time.Duration
}

// NewReport starts a report about net.
func NewReport(net *domain.Network, title string) *Report {
	return &Report{Network: net, Title: title}
}

// Add appends a result row.
func (r *Report) Add(key string, value any) *Report {
	r.Rows = append(r.Rows, [2]string{key, fmt.Sprint(value)})
	return r
}

// Markdown renders the report.
func (r *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Title)
	fmt.Fprintf(&sb, "Network **%s**: %s.\n\n", r.Network.Name, KindSummary(r.Network))

	sb.WriteString("| Result | Value |\n|---|---|\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&sb, "| %s | %s |\n", row[0], row[1])
	}
	if r.Duration > 0 {
		fmt.Fprintf(&sb, "\n_Took %s._\n", r.Duration.Round(time.Microsecond))
	}
	return sb.String()
}

// KindSummary counts the nodes of each kind, e.g. "1 broadcaster, 4 flip-flop, 2 conjunction, 1 sink".
func KindSummary(net *domain.Network) string {
	counts := map[domain.Kind]int{}
	for _, n := range net.Nodes() {
		counts[n.Kind]++
	}
	parts := make([]string, 0, 4)
	for _, k := range []domain.Kind{domain.Broadcaster, domain.FlipFlop, domain.Conjunction, domain.Sink} {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
	}
	return strings.Join(parts, ", ")
}
