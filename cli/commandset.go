// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/commandset.go
// Summary: Contract between the engine and the command layer.

package cli

import (
	"errors"
	"iter"
)

// ErrUnknownCommand is returned by a CommandSet when dispatch names a
// command it does not know. The session reports it as a diagnostic and
// keeps running.
var ErrUnknownCommand = errors.New("unknown command")

// CommandSet describes the embedder's command surface. The engine
// treats it as opaque: names and completions are consumed lazily, one
// candidate at a time, and never stored.
//
// Implementations are bound once at session construction; see the
// command package for a ready-made registry.
type CommandSet interface {
	// Names yields the top-level command names in stable order.
	Names() iter.Seq[string]

	// HelpShort returns the one-line description for name, or "" when
	// the command is unknown.
	HelpShort(name string) string

	// HelpLong returns the detailed help text for name, or "" when the
	// command is unknown.
	HelpLong(name string) string

	// Complete yields completion candidates for the token following
	// args. args holds the completed tokens so far, starting with the
	// command name; the engine filters candidates against the partial
	// token itself.
	Complete(args []string) iter.Seq[string]

	// Dispatch runs the submitted line. args is the full token list,
	// args[0] the command name. Returned errors are written to the
	// terminal as diagnostics; they do not end the session.
	Dispatch(h *Handle, args []string) error
}

// Handle is passed to dispatched commands. It exposes the session
// writer for command output and allows swapping the prompt.
type Handle struct {
	w *Writer
	s *Session
}

// Writer returns the session writer. Output is CRLF-normalized.
func (h *Handle) Writer() *Writer { return h.w }

// SetPrompt changes the prompt emitted after this command returns.
func (h *Handle) SetPrompt(prompt string) { h.s.prompt = prompt }
