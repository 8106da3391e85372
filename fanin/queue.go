// SPDX-License-Identifier: MIT

// Package fanin - unbounded multi-producer/single-consumer FIFO.
//
// Purpose:
//   - Push never blocks, so a slow consumer never stalls producers.
//   - Pop suspends the single consumer while the queue is empty.
//   - Global FIFO: items leave in the order they were enqueued across all producers.
//
// Complexity quicksheet:
//   - Push: amortized O(1); Pop: O(1); Len: O(1).

package fanin

import (
	"context"
	"sync"
)

// compactThreshold is the consumed-prefix length that triggers compaction in Pop.
const compactThreshold = 1024

// Queue is an unbounded FIFO safe for any number of concurrent Push callers
// and exactly one Pop caller. The zero value is not usable; call NewQueue.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int           // index of the next item to pop
	closed bool          // guarded by mu
	ready  chan struct{} // cap 1; signaled after each Push
	done   chan struct{} // closed by Close
}

// NewQueue returns an empty, open queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push appends v. It never blocks and fails only with ErrQueueClosed.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	// Wake the consumer; a pending signal already covers this item.
	select {
	case q.ready <- struct{}{}:
	default:
	}

	return nil
}

// Pop removes and returns the oldest item, blocking while the queue is empty.
// It returns ctx.Err() on cancellation and ErrQueueClosed once the queue is
// closed and drained. Items pushed before Close are still delivered.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	var zero T
	for {
		q.mu.Lock()
		if q.head < len(q.items) {
			v := q.items[q.head]
			q.items[q.head] = zero // release reference
			q.head++
			if q.head == len(q.items) {
				// Drained: reuse the backing array from the start.
				q.items = q.items[:0]
				q.head = 0
			} else if q.head >= compactThreshold && q.head*2 >= len(q.items) {
				// Mostly consumed prefix: slide the live tail down.
				n := copy(q.items, q.items[q.head:])
				clear(q.items[n:])
				q.items = q.items[:n]
				q.head = 0
			}
			q.mu.Unlock()
			return v, nil
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return zero, ErrQueueClosed
		}

		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}

// Close rejects further pushes and wakes a blocked Pop. Idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}
