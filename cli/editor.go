// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/editor.go
// Summary: LineEditor manages the current (unsubmitted) command line.
// It is the single source of truth for line content and cursor position,
// stored in a caller-provided fixed-size buffer.

package cli

import "unicode/utf8"

// LineEditor holds the edited command line in a fixed-capacity byte
// buffer together with a cursor. The cursor is a byte offset and always
// sits on a codepoint boundary in [0, Len()].
//
// The buffer is caller-provided and never grows. Insertions that would
// exceed its capacity fail and leave the line unchanged.
type LineEditor struct {
	buf    []byte
	n      int // bytes used
	cursor int // byte offset, codepoint boundary
}

// NewLineEditor wraps the given buffer. len(buf) is the line capacity.
func NewLineEditor(buf []byte) *LineEditor {
	return &LineEditor{buf: buf}
}

// Len returns the current line length in bytes.
func (e *LineEditor) Len() int { return e.n }

// Cap returns the line capacity in bytes.
func (e *LineEditor) Cap() int { return len(e.buf) }

// Cursor returns the cursor position as a byte offset.
func (e *LineEditor) Cursor() int { return e.cursor }

// Text returns the current line. The slice aliases the underlying buffer
// and is valid only until the next mutation.
func (e *LineEditor) Text() []byte { return e.buf[:e.n] }

// Head returns the bytes before the cursor.
func (e *LineEditor) Head() []byte { return e.buf[:e.cursor] }

// Tail returns the bytes at and after the cursor.
func (e *LineEditor) Tail() []byte { return e.buf[e.cursor:e.n] }

// Spare returns the unused capacity past the line. Autocompletion uses
// it as scratch space for the candidate merge.
func (e *LineEditor) Spare() []byte { return e.buf[e.n:] }

// Insert places text at the cursor, shifting the tail right, and
// advances the cursor past it. Returns false (buffer unchanged) when the
// new length would exceed capacity.
func (e *LineEditor) Insert(text []byte) bool {
	if e.n+len(text) > len(e.buf) {
		return false
	}
	copy(e.buf[e.cursor+len(text):], e.buf[e.cursor:e.n])
	copy(e.buf[e.cursor:], text)
	e.n += len(text)
	e.cursor += len(text)
	return true
}

// Backspace removes the codepoint before the cursor and returns its
// byte count, or 0 when the cursor is at the start.
func (e *LineEditor) Backspace() int {
	if e.cursor == 0 {
		return 0
	}
	start := prevBoundary(e.buf[:e.n], e.cursor)
	w := e.cursor - start
	copy(e.buf[start:], e.buf[e.cursor:e.n])
	e.n -= w
	e.cursor = start
	return w
}

// DeleteForward removes the codepoint at the cursor and returns its
// byte count, or 0 when the cursor is at the end.
func (e *LineEditor) DeleteForward() int {
	if e.cursor >= e.n {
		return 0
	}
	end := nextBoundary(e.buf[:e.n], e.cursor)
	w := end - e.cursor
	copy(e.buf[e.cursor:], e.buf[end:e.n])
	e.n -= w
	return w
}

// MoveLeft steps the cursor one codepoint left and returns the bytes of
// the codepoint crossed. Returns nil at the start of the line.
func (e *LineEditor) MoveLeft() []byte {
	if e.cursor == 0 {
		return nil
	}
	start := prevBoundary(e.buf[:e.n], e.cursor)
	crossed := e.buf[start:e.cursor]
	e.cursor = start
	return crossed
}

// MoveRight steps the cursor one codepoint right and returns the bytes
// of the codepoint crossed. Returns nil at the end of the line.
func (e *LineEditor) MoveRight() []byte {
	if e.cursor >= e.n {
		return nil
	}
	end := nextBoundary(e.buf[:e.n], e.cursor)
	crossed := e.buf[e.cursor:end]
	e.cursor = end
	return crossed
}

// MoveHome places the cursor at the start of the line.
func (e *LineEditor) MoveHome() { e.cursor = 0 }

// MoveEnd places the cursor at the end of the line.
func (e *LineEditor) MoveEnd() { e.cursor = e.n }

// SetText replaces the line content, truncating to capacity, and places
// the cursor at the end. Used by history recall.
func (e *LineEditor) SetText(text []byte) {
	n := copy(e.buf, text)
	e.n = n
	e.cursor = n
}

// Grow extends the line by n bytes that were already written into
// Spare(), moving the cursor to the end. Used after an autocompletion
// merge wrote its extension in place.
func (e *LineEditor) Grow(n int) {
	e.n += n
	if e.n > len(e.buf) {
		e.n = len(e.buf)
	}
	e.cursor = e.n
}

// Clear empties the line.
func (e *LineEditor) Clear() {
	e.n = 0
	e.cursor = 0
}

// prevBoundary returns the byte offset of the codepoint boundary
// immediately before pos. UTF-8 continuation bytes have the form
// 10xxxxxx; the scan is bounded by the 4-byte maximum encoding.
func prevBoundary(b []byte, pos int) int {
	pos--
	for pos > 0 && isContinuation(b[pos]) {
		pos--
	}
	return pos
}

// nextBoundary returns the byte offset of the codepoint boundary
// immediately after pos.
func nextBoundary(b []byte, pos int) int {
	_, size := utf8.DecodeRune(b[pos:])
	if size == 0 {
		return pos
	}
	return pos + size
}

func isContinuation(b byte) bool { return b&0xC0 == 0x80 }
