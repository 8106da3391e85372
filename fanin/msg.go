// SPDX-License-Identifier: MIT

package fanin

import "strconv"

// Msg is one tagged value emitted by a producer.
//   - Idx identifies the producer in [0, producers).
//   - Value is an unsigned random number.
type Msg struct {
	Idx   int
	Value uint64
}

// NewMsg builds a Msg for producer idx.
func NewMsg(idx int, value uint64) Msg {
	return Msg{Idx: idx, Value: value}
}

// String renders the structural form "Msg { idx: <n>, value: <n> }".
func (m Msg) String() string {
	b := make([]byte, 0, 48)
	b = append(b, "Msg { idx: "...)
	b = strconv.AppendInt(b, int64(m.Idx), 10)
	b = append(b, ", value: "...)
	b = strconv.AppendUint(b, m.Value, 10)
	b = append(b, " }"...)

	return string(b)
}
