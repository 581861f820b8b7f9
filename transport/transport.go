// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transport/transport.go
// Summary: Byte-feed loop connecting an input stream to a session.

// Package transport connects a cli.Session to concrete byte streams: a
// generic read loop for any io.Reader (serial port, socket, stdin) and
// a pty endpoint for local and test sessions.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/framegrace/serialcli/cli"
)

// Serve reads bytes from r and feeds them to the session one at a
// time, until r reaches EOF, ctx is cancelled, or the session's writer
// fails. The read itself is not interruptible; cancellation is observed
// between reads, so closing r is the prompt way to stop a blocked loop.
func Serve(ctx context.Context, r io.Reader, s *cli.Session) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if perr := s.ProcessByte(b); perr != nil {
				return fmt.Errorf("session write: %w", perr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("transport read: %w", err)
		}
	}
}
