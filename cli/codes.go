// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/codes.go
// Summary: Control bytes and ANSI escape sequences used by the engine.

package cli

// Control bytes recognized on input, plus the bell, which is only
// emitted.
const (
	byteBell           = 0x07
	byteBackspace      = 0x08
	byteTab            = 0x09
	byteLineFeed       = 0x0A
	byteCarriageReturn = 0x0D
	byteEscape         = 0x1B
	byteDelete         = 0x7F
)

// Sequences emitted on output. The terminal is assumed VT100/ANSI
// compatible (CSI A/B/C/D cursor motion, CSI K erase to end of line).
const (
	seqCRLF       = "\r\n"
	seqEraseToEnd = "\x1b[K"
	csiPrefix     = "\x1b["
)
