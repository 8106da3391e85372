package fanin

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the collectors updated by producers and the consumer.
type metrics struct {
	produced *prometheus.CounterVec
	consumed prometheus.Counter
	failures prometheus.Counter
	depth    prometheus.GaugeFunc
}

// newMetrics builds the collectors and registers them on reg when non-nil.
// The depth gauge reads q under its lock at collection time.
func newMetrics(reg prometheus.Registerer, q *Queue[Msg]) (*metrics, error) {
	m := &metrics{
		produced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanin_messages_produced_total",
			Help: "Messages pushed into the queue, by producer index.",
		}, []string{"producer"}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanin_messages_consumed_total",
			Help: "Messages popped and printed by the consumer.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanin_producer_failures_total",
			Help: "Producers that stopped because a send failed.",
		}),
		depth: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "fanin_queue_depth",
			Help: "Messages waiting in the queue.",
		}, func() float64 { return float64(q.Len()) }),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.produced, m.consumed, m.failures, m.depth} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("fanin: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *metrics) messageProduced(idx int) {
	m.produced.WithLabelValues(strconv.Itoa(idx)).Inc()
}

func (m *metrics) messageConsumed() { m.consumed.Inc() }

func (m *metrics) producerFailed() { m.failures.Inc() }
