// SPDX-License-Identifier: MIT

package fanin

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runner holds the resolved configuration shared by producers and the consumer.
type runner struct {
	opts    options
	metrics *metrics
	log     *zap.Logger
}

// newRunner resolves options and builds the metric set.
func newRunner(opts ...Option) (*runner, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(o.registerer, o.queue)
	if err != nil {
		return nil, err
	}

	return &runner{opts: o, metrics: m, log: o.logger.Named("fanin")}, nil
}

// Run starts the configured producers and one consumer and blocks until ctx
// is cancelled or the consumer fails.
// Implementation:
//   - Stage 1: resolve options (ErrBadOption on invalid values).
//   - Stage 2: start N producers and the consumer in one errgroup.
//   - Stage 3: a consumer error cancels the group context, stopping the
//     producers; Wait joins everyone and the queue is closed.
//
// Behavior highlights:
//   - Producer failures are logged and counted; the remaining producers keep going.
//   - A consumer failure (write error or panic) stops everything and is returned
//     wrapped with ErrConsumerFailed.
//   - Cancellation of ctx is the normal way out and returns nil.
func Run(ctx context.Context, opts ...Option) error {
	r, err := newRunner(opts...)
	if err != nil {
		return err
	}

	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.log.Info("fan-in started",
		zap.Int("producers", r.opts.producers),
		zap.Duration("interval", r.opts.interval))

	// Producers report their own failures and always return nil, so the
	// group error is the consumer's alone.
	g, gctx := errgroup.WithContext(ctx)
	for idx := 0; idx < r.opts.producers; idx++ {
		g.Go(func() error {
			r.superviseProducer(gctx, idx)
			return nil
		})
	}
	g.Go(func() error {
		if err := r.superviseConsumer(gctx); err != nil {
			return fmt.Errorf("%w: %w", ErrConsumerFailed, err)
		}
		// Clean consumer exit: ctx is done or the queue was closed under us.
		cancel()
		return nil
	})

	err := g.Wait()
	r.opts.queue.Close()
	if err != nil {
		r.log.Error("consumer stopped", zap.Error(err))
		return err
	}
	r.log.Info("fan-in stopped")

	return nil
}
