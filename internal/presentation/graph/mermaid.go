package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	// On lists flip-flops currently on.
	On []string
	// AllHigh lists conjunctions whose remembered inputs are all high.
	AllHigh []string
}

// OverlayFrom captures the current state of net.
func OverlayFrom(net *domain.Network) *Overlay {
	o := &Overlay{}
	for _, n := range net.Nodes() {
		switch n.Kind {
		case domain.FlipFlop:
			if n.On {
				o.On = append(o.On, n.Name)
			}
		case domain.Conjunction:
			if n.AllHigh() {
				o.AllHigh = append(o.AllHigh, n.Name)
			}
		}
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the network.
// Shapes follow the node kind:
// - Broadcaster: ((Circle))
// - Flip-flop: [Rectangle]
// - Conjunction: {{Hexagon}}
// - Sink: [/Parallelogram/]
// The button is drawn as a stadium feeding the broadcaster.
func GenerateMermaid(net *domain.Network, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	fmt.Fprintf(&sb, "    %s([\"%s\"])\n", domain.ButtonName, domain.ButtonName)
	fmt.Fprintf(&sb, "    %s -- low --> %s\n", domain.ButtonName, sanitizeMermaidID(domain.BroadcasterName))

	for _, node := range net.Nodes() {
		safeID := sanitizeMermaidID(node.Name)

		opener, closer := "[", "]"
		switch node.Kind {
		case domain.Broadcaster:
			opener, closer = "((", "))"
		case domain.Conjunction:
			opener, closer = "{{", "}}"
		case domain.Sink:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s%s\"%s\n", safeID, opener, node.Kind.Prefix(), node.Name, closer)

		for _, to := range node.Destinations {
			fmt.Fprintf(&sb, "    %s --> %s\n", safeID, sanitizeMermaidID(to))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef on fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef high fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, name := range overlay.On {
			fmt.Fprintf(&sb, "    class %s on;\n", sanitizeMermaidID(name))
		}
		for _, name := range overlay.AllHigh {
			fmt.Fprintf(&sb, "    class %s high;\n", sanitizeMermaidID(name))
		}
	}

	return sb.String()
}

// Mermaid reserves a few words as node ids.
var reserved = map[string]bool{"end": true, "graph": true, "subgraph": true, "class": true, "style": true}

func sanitizeMermaidID(id string) string {
	if reserved[id] {
		return "n_" + id
	}
	return id
}
