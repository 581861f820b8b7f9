// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/help.go
// Summary: Help router: recognizes help requests before dispatch and
// renders command listings and per-command help.

package cli

// helpRequest is a recognized help form. target == "" means the
// all-commands listing.
type helpRequest struct {
	target string
}

// parseHelpRequest inspects a tokenized line for the help forms:
//
//	help            list all commands
//	help <name>     detailed help for <name>
//	<name> -h       detailed help for <name>
//	<name> --help   detailed help for <name>
//
// The -h/--help flags are honored at any position after the command
// name. Returns ok=false when the line is an ordinary command.
func parseHelpRequest(args []string) (helpRequest, bool) {
	if len(args) == 0 {
		return helpRequest{}, false
	}
	if args[0] == "help" {
		if len(args) > 1 {
			return helpRequest{target: args[1]}, true
		}
		return helpRequest{}, true
	}
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			return helpRequest{target: args[0]}, true
		}
	}
	return helpRequest{}, false
}

// renderHelp writes the response for a help request. Unknown targets
// produce a diagnostic; the session continues either way.
func renderHelp(w *Writer, set CommandSet, req helpRequest) error {
	if req.target == "" {
		return listCommands(w, set)
	}
	long := set.HelpLong(req.target)
	if long == "" {
		if err := w.WriteString("error: unknown command: "); err != nil {
			return err
		}
		return w.WriteLine(req.target)
	}
	return w.WriteLine(long)
}

// listCommands renders every command with its short description,
// names padded so the descriptions align. The name sequence is
// consumed twice rather than buffered.
func listCommands(w *Writer, set CommandSet) error {
	longest := 0
	for name := range set.Names() {
		if len(name) > longest {
			longest = len(name)
		}
	}
	for name := range set.Names() {
		if err := w.writeListItem(name, set.HelpShort(name), longest); err != nil {
			return err
		}
	}
	return nil
}
