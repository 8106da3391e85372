// SPDX-License-Identifier: MIT
// Package fanin: sentinel error set.
// Every message is prefixed with "fanin: ..." for easy grepping across logs.

package fanin

import "errors"

var (
	// ErrQueueClosed is returned by Push after Close, and by Pop once the
	// queue is closed and fully drained.
	ErrQueueClosed = errors.New("fanin: queue closed")

	// ErrBadOption indicates an invalid Option value (non-positive count or interval, nil collaborator).
	ErrBadOption = errors.New("fanin: invalid option")

	// ErrConsumerFailed is returned by Run when the consumer stopped abnormally
	// (write failure or panic). The cause is wrapped alongside it.
	ErrConsumerFailed = errors.New("fanin: consumer failed")
)
