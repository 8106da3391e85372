// Package matfan is a small toolkit of two independent pieces.
//
//	matrix/ : generic dense row-major matrices (Matrix[T]) with validated
//	          construction, the classic i-j-k product and a compact
//	          display/debug formatting ("{1 2}, {3 4}" and
//	          "Matrix(rows=2, cols=2, {1 2}, {3 4})"). float64 matrices
//	          convert to and from gonum's mat.Dense.
//	fanin/  : a many-producers/one-consumer demo built on an unbounded FIFO
//	          queue. Each producer tags random values with its index, the
//	          consumer prints every message as it arrives.
//
// Binaries live under cmd/:
//
//	cmd/matmul : prints the canonical 2x3 * 3x2 product and a mismatch error.
//	cmd/fanin  : runs the fan-in demo until SIGINT/SIGTERM.
//
// Runtime settings come from MATFAN_* environment variables
// (internal/config); logs are structured zap output on stderr
// (internal/logging).
package matfan
