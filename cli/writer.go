// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/writer.go
// Summary: Writer wraps the caller's byte sink with CRLF discipline,
// dirty-line tracking and ANSI cursor helpers.

package cli

import (
	"io"
	"strconv"
	"strings"
)

// Flusher is implemented by sinks that buffer output. The engine
// flushes at event boundaries so the terminal stays current.
type Flusher interface {
	Flush() error
}

// Writer adapts the caller-provided sink. All engine output funnels
// through it: it normalizes bare LF to CRLF, tracks whether the current
// terminal line has unterminated output (dirty), and emits the ANSI
// sequences used for reconciliation. Short writes are errors.
type Writer struct {
	w     io.Writer
	dirty bool
	last  [2]byte
	num   [8]byte
}

// NewWriter wraps sink.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{w: sink}
}

// Dirty reports whether output has been written since the last CRLF.
// The session uses it to decide if a fresh line is needed before the
// prompt is re-emitted.
func (w *Writer) Dirty() bool {
	return w.dirty && (w.last[0] != byteCarriageReturn || w.last[1] != byteLineFeed)
}

// WriteString writes text, replacing every bare LF with CRLF.
func (w *Writer) WriteString(text string) error {
	for len(text) > 0 {
		i := strings.IndexByte(text, byteLineFeed)
		if i < 0 {
			return w.writeRaw([]byte(text))
		}
		if err := w.writeRaw([]byte(text[:i])); err != nil {
			return err
		}
		nl := seqCRLF
		if w.last[1] == byteCarriageReturn {
			// already preceded by CR: not a bare LF
			nl = seqCRLF[1:]
		}
		if err := w.writeRaw([]byte(nl)); err != nil {
			return err
		}
		text = text[i+1:]
	}
	return nil
}

// WriteLine writes text followed by CRLF.
func (w *Writer) WriteLine(text string) error {
	if err := w.WriteString(text); err != nil {
		return err
	}
	return w.writeRaw([]byte(seqCRLF))
}

// Bell emits the terminal bell.
func (w *Writer) Bell() error {
	return w.writeRaw([]byte{byteBell})
}

// CRLF moves to the start of a fresh line.
func (w *Writer) CRLF() error {
	return w.writeRaw([]byte(seqCRLF))
}

// CarriageReturn returns the cursor to column zero of the current line.
func (w *Writer) CarriageReturn() error {
	return w.writeRaw([]byte{byteCarriageReturn})
}

// EraseToEnd clears from the cursor to the end of the line.
func (w *Writer) EraseToEnd() error {
	return w.writeRaw([]byte(seqEraseToEnd))
}

// CursorBack moves the cursor cols columns left.
func (w *Writer) CursorBack(cols int) error {
	return w.cursorMove(cols, 'D')
}

// CursorForward moves the cursor cols columns right.
func (w *Writer) CursorForward(cols int) error {
	return w.cursorMove(cols, 'C')
}

func (w *Writer) cursorMove(cols int, final byte) error {
	if cols <= 0 {
		return nil
	}
	if cols == 1 {
		return w.writeRaw([]byte{byteEscape, '[', final})
	}
	seq := append(w.num[:0], byteEscape, '[')
	seq = strconv.AppendUint(seq, uint64(cols), 10)
	seq = append(seq, final)
	return w.writeRaw(seq)
}

// Flush flushes the underlying sink if it buffers.
func (w *Writer) Flush() error {
	if f, ok := w.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// writeRaw writes bytes verbatim and updates the dirty tracking.
func (w *Writer) writeRaw(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if n > 0 {
		w.dirty = true
		if n > 1 {
			w.last[0] = p[n-2]
		} else {
			w.last[0] = w.last[1]
		}
		w.last[1] = p[n-1]
		if w.last[0] == byteCarriageReturn && w.last[1] == byteLineFeed {
			w.dirty = false
		}
	}
	return err
}

// writeListItem renders one row of a command listing, name padded to
// the longest name so descriptions align.
func (w *Writer) writeListItem(name, desc string, longest int) error {
	if err := w.WriteString("  "); err != nil {
		return err
	}
	if err := w.WriteString(name); err != nil {
		return err
	}
	for i := len(name); i < longest; i++ {
		if err := w.WriteString(" "); err != nil {
			return err
		}
	}
	if err := w.WriteString("  "); err != nil {
		return err
	}
	return w.WriteLine(desc)
}
