// Package fanin runs a multi-producer/single-consumer demo.
//
// N producers each push a randomly valued, tagged Msg into one shared,
// unbounded Queue at a fixed interval; a single consumer drains the queue and
// prints every message as
//
//	Consumer: Msg { idx: 2, value: 1844674407370955161 }
//
// Ordering:
//
//	Messages reach the consumer in global enqueue order (FIFO across all
//	producers). Relative order between producers is whatever the independent
//	send-then-sleep timing yields.
//
// Lifecycle:
//
//	Run blocks until its context is cancelled; the demo binary wires that to
//	SIGINT/SIGTERM. Producer send failures are logged and counted without
//	stopping the others; a consumer failure ends Run with ErrConsumerFailed.
//
// Usage:
//
//	err := fanin.Run(ctx,
//		fanin.WithProducers(4),
//		fanin.WithInterval(time.Second),
//		fanin.WithLogger(logger),
//	)
package fanin
