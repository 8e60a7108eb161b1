package runtime

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// EstimatePeriod predicts the first press at which target receives a low pulse for networks
// shaped as independent counters feeding one conjunction ("hub") that feeds target.
//
// It presses until every hub input has sent the hub a high pulse on two different presses,
// checks that each input fires with a pure period (second firing at exactly twice the first),
// and returns the least common multiple of the periods. Any other shape yields
// domain.ErrNotPeriodic. The network is reset before and after the estimate.
func (e *Engine) EstimatePeriod(ctx context.Context, target string) (int, error) {
	node := e.net.Node(target)
	if node == nil {
		return 0, &domain.UnreachableTargetError{Target: target}
	}
	if len(node.Inputs) != 1 {
		return 0, fmt.Errorf("%q has %d inputs, want 1: %w", target, len(node.Inputs), domain.ErrNotPeriodic)
	}
	hub := e.net.Node(node.Inputs[0])
	if hub.Kind != domain.Conjunction || len(hub.Inputs) == 0 {
		return 0, fmt.Errorf("%q is fed by %s %q, want a conjunction: %w", target, hub.Kind, hub.Name, domain.ErrNotPeriodic)
	}

	e.Reset()
	defer e.Reset()

	first := make(map[string]int, len(hub.Inputs))
	second := make(map[string]int, len(hub.Inputs))
	press := 0
	observe := func(p domain.Pulse, to *domain.Node) {
		if to != hub || p.Level != domain.High {
			return
		}
		switch f, ok := first[p.From]; {
		case !ok:
			first[p.From] = press
		case f != press:
			if _, done := second[p.From]; !done {
				second[p.From] = press
			}
		}
	}

	for len(second) < len(hub.Inputs) {
		press++
		if press > e.maxPresses {
			return 0, &domain.BoundExceededError{Bound: domain.BoundPresses, Limit: e.maxPresses}
		}
		if _, err := e.press(ctx, false, observe); err != nil {
			return 0, err
		}
	}

	period := 1
	for _, in := range hub.Inputs {
		f, s := first[in], second[in]
		if s != 2*f {
			return 0, fmt.Errorf("input %q fires at presses %d and %d: %w", in, f, s, domain.ErrNotPeriodic)
		}
		var err error
		if period, err = lcm(period, f); err != nil {
			return 0, err
		}
	}
	e.logger.Debug("Period estimated", "target", target, "hub", hub.Name, "press", period)
	return period, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) (int, error) {
	hi, lo := bits.Mul64(uint64(a/gcd(a, b)), uint64(b))
	if hi != 0 || lo > uint64(^uint(0)>>1) {
		return 0, fmt.Errorf("period overflows int")
	}
	return int(lo), nil
}
