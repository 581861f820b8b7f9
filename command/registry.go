// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: command/registry.go
// Summary: Static command registry implementing cli.CommandSet.

// Package command provides a ready-made cli.CommandSet: a registry of
// named commands with help text, completion candidates and a handler.
package command

import (
	"iter"

	"github.com/framegrace/serialcli/cli"
)

// ErrUnknown is returned by Dispatch for an unregistered command name.
var ErrUnknown = cli.ErrUnknownCommand

// Command describes one registered command.
type Command struct {
	// Short is the one-line description shown in the command listing.
	Short string

	// Long is the detailed help text shown for `help <name>` and
	// `<name> --help`. Falls back to Short when empty.
	Long string

	// Complete returns completion candidates for the token following
	// args (args[0] is the command name). May be nil.
	Complete func(args []string) []string

	// Run executes the command. args is the full token list including
	// the command name.
	Run func(h *cli.Handle, args []string) error
}

// Registry maps names to commands, preserving registration order for
// listings and completion.
type Registry struct {
	names    []string
	commands map[string]Command
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds or replaces a command under name.
func (r *Registry) Register(name string, cmd Command) {
	if _, exists := r.commands[name]; !exists {
		r.names = append(r.names, name)
	}
	r.commands[name] = cmd
}

// Names yields the registered command names in registration order.
func (r *Registry) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.names {
			if !yield(name) {
				return
			}
		}
	}
}

// HelpShort returns the one-line description, or "" for unknown names.
func (r *Registry) HelpShort(name string) string {
	return r.commands[name].Short
}

// HelpLong returns the detailed help text, or "" for unknown names.
func (r *Registry) HelpLong(name string) string {
	cmd, ok := r.commands[name]
	if !ok {
		return ""
	}
	if cmd.Long != "" {
		return cmd.Long
	}
	return cmd.Short
}

// Complete yields candidates for the token following args: the
// command's own candidates plus the help flags when the command has
// help text.
func (r *Registry) Complete(args []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(args) == 0 {
			return
		}
		cmd, ok := r.commands[args[0]]
		if !ok {
			return
		}
		if cmd.Complete != nil {
			for _, cand := range cmd.Complete(args) {
				if !yield(cand) {
					return
				}
			}
		}
		if cmd.Short != "" || cmd.Long != "" {
			if !yield("--help") {
				return
			}
			yield("-h")
		}
	}
}

// Dispatch routes args[0] to its handler.
func (r *Registry) Dispatch(h *cli.Handle, args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, ok := r.commands[args[0]]
	if !ok || cmd.Run == nil {
		return ErrUnknown
	}
	return cmd.Run(h, args)
}

var _ cli.CommandSet = (*Registry)(nil)
