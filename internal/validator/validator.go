package validator

import (
	"fmt"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// Finding is a structural oddity that does not prevent simulation.
type Finding struct {
	Node    string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Node, f.Message)
}

// Reachable crawls the network breadth-first from the broadcaster and
// returns the set of nodes a pulse can ever reach.
func Reachable(net *domain.Network) map[string]bool {
	visited := make(map[string]bool)
	queue := []string{domain.BroadcasterName}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		node := net.Node(current)
		if node == nil {
			continue
		}
		for _, to := range node.Destinations {
			if !visited[to] {
				queue = append(queue, to)
			}
		}
	}
	return visited
}

// ValidateNetwork reports nodes that can never receive a pulse and
// conjunctions with no inputs, which are permanently all-high.
// Findings follow declaration order.
func ValidateNetwork(net *domain.Network) []Finding {
	reached := Reachable(net)

	var findings []Finding
	for _, n := range net.Nodes() {
		if !reached[n.Name] {
			findings = append(findings, Finding{Node: n.Name, Message: "unreachable from broadcaster"})
		}
		if n.Kind == domain.Conjunction && len(n.Inputs) == 0 {
			findings = append(findings, Finding{Node: n.Name, Message: "conjunction without inputs always sends low"})
		}
	}
	return findings
}
