// SPDX-License-Identifier: MIT

package fanin

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// source returns the value generator for producer idx.
// Seeded runs give each producer an independent, reproducible PCG stream;
// otherwise the goroutine-safe global source is used.
func (r *runner) source(idx int) func() uint64 {
	if !r.opts.seeded {
		return rand.Uint64
	}
	rng := rand.New(rand.NewPCG(r.opts.seed, uint64(idx)))

	return rng.Uint64
}

// produce sends one Msg, then sleeps one interval, until ctx is cancelled.
// Implementation:
//   - Stage 1: stop if ctx is already done.
//   - Stage 2: push Msg{idx, random}; a failed push ends the producer.
//   - Stage 3: wait interval on the configured clock, or stop on ctx.
//
// Returns:
//   - nil on cancellation.
//   - wrapped ErrQueueClosed when the queue rejected a send.
func (r *runner) produce(ctx context.Context, idx int) error {
	next := r.source(idx)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := r.opts.queue.Push(NewMsg(idx, next())); err != nil {
			return fmt.Errorf("producer %d: send: %w", idx, err)
		}
		r.metrics.messageProduced(idx)

		select {
		case <-ctx.Done():
			return nil
		case <-r.opts.clock.After(r.opts.interval):
		}
	}
}

// superviseProducer runs produce and reports a failure instead of dropping it.
// A send failure after cancellation is part of shutdown and stays silent.
func (r *runner) superviseProducer(ctx context.Context, idx int) {
	err := r.produce(ctx, idx)
	if err == nil || ctx.Err() != nil {
		return
	}
	r.metrics.producerFailed()
	r.log.Error("producer stopped", zap.Int("idx", idx), zap.Error(err))
}
