// SPDX-License-Identifier: MIT

package fanin

import (
	"context"
	"errors"
	"fmt"
)

// consumerPrefix starts every line written by the consumer.
const consumerPrefix = "Consumer: "

// consume drains the queue, printing one "Consumer: <msg>" line per message.
// It suspends while the queue is empty.
//
// Returns:
//   - nil on cancellation or once the queue is closed and drained.
//   - the write error when the output rejects a line.
func (r *runner) consume(ctx context.Context) error {
	for {
		msg, err := r.opts.queue.Pop(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrQueueClosed), ctx.Err() != nil:
			return nil
		default:
			return err
		}
		if _, err := fmt.Fprintf(r.opts.out, "%s%v\n", consumerPrefix, msg); err != nil {
			return fmt.Errorf("consumer: write: %w", err)
		}
		r.metrics.messageConsumed()
	}
}

// superviseConsumer runs consume, converting a panic into an error so an
// abnormal consumer exit always reaches Run's caller.
func (r *runner) superviseConsumer(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("consumer: panic: %v", p)
		}
	}()

	return r.consume(ctx)
}
