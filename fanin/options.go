// SPDX-License-Identifier: MIT

// Package fanin: functional configuration for Run. This file defines:
//   - documented defaults (constants),
//   - Option and WithX constructors,
//   - gatherOptions, the single place where defaults and user options merge.
//
// Invalid values never panic: the first bad option is remembered and Run
// returns it wrapped with ErrBadOption before starting any goroutine.
package fanin

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultProducers is the number of concurrent producers.
	DefaultProducers = 4

	// DefaultInterval is the pause between two sends of one producer.
	DefaultInterval = 1000 * time.Millisecond
)

// Option configures Run.
type Option func(*options)

// options is the resolved configuration; fields are unexported on purpose.
type options struct {
	producers  int
	interval   time.Duration
	clock      clockwork.Clock
	out        io.Writer
	logger     *zap.Logger
	seed       uint64
	seeded     bool
	registerer prometheus.Registerer
	queue      *Queue[Msg]

	err error // first invalid option, reported by gatherOptions
}

// fail records the first invalid option.
func (o *options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadOption)
	}
}

// WithProducers sets the number of producers (n > 0).
func WithProducers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.fail("WithProducers(%d)", n)
			return
		}
		o.producers = n
	}
}

// WithInterval sets the pause between two sends of one producer (d > 0).
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			o.fail("WithInterval(%s)", d)
			return
		}
		o.interval = d
	}
}

// WithClock replaces the wall clock; tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c == nil {
			o.fail("WithClock(nil)")
			return
		}
		o.clock = c
	}
}

// WithOutput sets where the consumer prints messages (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			o.fail("WithOutput(nil)")
			return
		}
		o.out = w
	}
}

// WithLogger sets the structured logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.fail("WithLogger(nil)")
			return
		}
		o.logger = l
	}
}

// WithSeed makes every producer draw from its own deterministic PCG stream
// derived from (seed, idx). Without it producers use the runtime's global source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRegisterer registers the fan-in metrics on r. Metrics are still
// collected internally when no registerer is supplied, just not exported.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithQueue makes Run use q instead of a private queue, so callers can
// observe its depth. Run closes q on return.
func WithQueue(q *Queue[Msg]) Option {
	return func(o *options) {
		if q == nil {
			o.fail("WithQueue(nil)")
			return
		}
		o.queue = q
	}
}

// gatherOptions applies user options on top of the defaults.
// Last writer wins; the first invalid option is returned as an error.
func gatherOptions(user ...Option) (options, error) {
	o := options{
		producers: DefaultProducers,
		interval:  DefaultInterval,
		clock:     clockwork.NewRealClock(),
		out:       os.Stdout,
		logger:    zap.NewNop(),
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return options{}, o.err
	}
	if o.queue == nil {
		o.queue = NewQueue[Msg]()
	}

	return o, nil
}
