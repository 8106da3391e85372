// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "{"
	_fmtRowClose = "}"
	_fmtElemSep  = " "
	_fmtRowSep   = ", "
	_fmtNil      = "<nil>"
)

// String renders the matrix as brace-delimited rows: a 2×3 matrix holding
// 1..6 renders as "{1 2 3}, {4 5 6}". Elements use their %v form. A 0×n
// matrix renders as the empty string, an n×0 one as n empty groups "{}".
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	m.writeRows(&b, "")

	return b.String()
}

// writeRows streams the display form into w in fixed i→j order.
// Elements are printed with elemFmt, or with their %v form when it is empty.
func (m *Matrix[T]) writeRows(w io.Writer, elemFmt string) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			io.WriteString(w, _fmtRowSep)
		}
		io.WriteString(w, _fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				io.WriteString(w, _fmtElemSep)
			}
			if elemFmt == "" {
				fmt.Fprint(w, m.data[base+j])
			} else {
				fmt.Fprintf(w, elemFmt, m.data[base+j])
			}
		}
		io.WriteString(w, _fmtRowClose)
	}
}

// Debug renders the shape-annotated form "Matrix(rows=<r>, cols=<c>, <String()>)".
func (m *Matrix[T]) Debug() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	b.WriteString("Matrix(rows=")
	b.WriteString(strconv.Itoa(m.r))
	b.WriteString(", cols=")
	b.WriteString(strconv.Itoa(m.c))
	b.WriteString(", ")
	m.writeRows(&b, "")
	b.WriteString(")")

	return b.String()
}

// GoString implements fmt.GoStringer with the Debug form.
func (m *Matrix[T]) GoString() string { return m.Debug() }

// Format implements fmt.Formatter.
//   - %v, %s: display form (String).
//   - %+v, %#v: debug form (Debug).
//   - %q: quoted display form.
//   - any other verb, and %v with a width or precision, is applied to each
//     element inside the display layout: %.2f on {1 2.5} gives {1.00 2.50}.
//     A verb the element type rejects prints fmt's own %!verb(type=value).
func (m *Matrix[T]) Format(f fmt.State, verb rune) {
	if m == nil {
		io.WriteString(f, _fmtNil)
		return
	}
	_, hasWidth := f.Width()
	_, hasPrec := f.Precision()
	switch {
	case verb == 'v' && (f.Flag('+') || f.Flag('#')):
		io.WriteString(f, m.Debug())
	case verb == 's', verb == 'v' && !hasWidth && !hasPrec:
		io.WriteString(f, m.String())
	case verb == 'q':
		io.WriteString(f, strconv.Quote(m.String()))
	default:
		m.writeRows(f, fmt.FormatString(f, verb))
	}
}
