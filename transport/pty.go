// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transport/pty.go
// Summary: Pseudo-terminal endpoint for local and test sessions.

package transport

import (
	"fmt"
	"os"

	"github.com/creack/pty"
	"github.com/hashicorp/go-multierror"
)

// Endpoint is an open pty pair. The session runs against Tty (reading
// input from it, writing output to it) while the peer — a test harness
// or a local terminal program — talks to Ptmx.
type Endpoint struct {
	Ptmx *os.File
	Tty  *os.File
}

// OpenPty opens a fresh pty pair.
func OpenPty() (*Endpoint, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	return &Endpoint{Ptmx: ptmx, Tty: tty}, nil
}

// Resize sets the terminal size on the pty.
func (e *Endpoint) Resize(rows, cols uint16) error {
	return pty.Setsize(e.Ptmx, &pty.Winsize{Rows: rows, Cols: cols})
}

// Close closes both ends, reporting every failure.
func (e *Endpoint) Close() error {
	var result *multierror.Error
	if err := e.Tty.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close tty: %w", err))
	}
	if err := e.Ptmx.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close ptmx: %w", err))
	}
	return result.ErrorOrNil()
}
