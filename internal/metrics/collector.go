package metrics

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector records simulation metrics in its own Prometheus registry.
type Collector struct {
	Registry *prometheus.Registry

	pulses      *prometheus.CounterVec
	presses     prometheus.Counter
	perPress    prometheus.Histogram
	flipFlopsOn prometheus.Gauge
}

// NewCollector creates and registers the pulsenet collectors.
func NewCollector() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		pulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsenet_pulses_total",
				Help: "Total number of delivered pulses",
			},
			[]string{"level", "kind"},
		),
		presses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pulsenet_presses_total",
			Help: "Total number of simulated button presses",
		}),
		perPress: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pulsenet_pulses_per_press",
			Help:    "Pulses delivered by a single press",
			Buckets: prometheus.ExponentialBuckets(4, 4, 8),
		}),
		flipFlopsOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pulsenet_flipflops_on",
			Help: "Flip-flops in the on state after the last press",
		}),
	}
	c.Registry.MustRegister(c.pulses, c.presses, c.perPress, c.flipFlopsOn)
	return c
}

// Hooks returns lifecycle hooks that feed the collector.
// net is read at the end of each press to update the flip-flop gauge.
func (c *Collector) Hooks(net *domain.Network) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPulse: func(ctx context.Context, e *domain.PulseEvent) {
			c.pulses.WithLabelValues(e.Pulse.Level.String(), e.Kind.String()).Inc()
		},
		OnPressEnd: func(ctx context.Context, e *domain.PressEvent) {
			c.presses.Inc()
			c.perPress.Observe(float64(e.Counts.Total()))
			if net == nil {
				return
			}
			on := 0
			for _, n := range net.Nodes() {
				if n.Kind == domain.FlipFlop && n.On {
					on++
				}
			}
			c.flipFlopsOn.Set(float64(on))
		},
	}
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
