// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements an embedded command-line session: an ANSI
// input decoder, line editor, tokenizer, history ring and tab
// completion, driven one input byte at a time over a caller-provided
// byte sink. It is designed for serial consoles on small devices: all
// working memory lives in caller-provided fixed-size buffers and the
// editing and history paths do not allocate. Submitting a line, and
// completing an argument after the command name, convert tokens to
// strings and do allocate.
//
// A minimal session:
//
//	reg := command.New()
//	reg.Register("hello", command.Command{
//		Short: "say hello",
//		Run: func(h *cli.Handle, args []string) error {
//			return h.Writer().WriteLine("hello!")
//		},
//	})
//	s, err := cli.New(cli.Config{
//		Writer:        port,
//		CommandBuffer: make([]byte, 80),
//		HistoryBuffer: make([]byte, 256),
//		Prompt:        "$ ",
//		Commands:      reg,
//		Autocomplete:  true,
//		History:       true,
//		Help:          true,
//	})
//	...
//	for {
//		b, err := port.ReadByte()
//		...
//		if err := s.ProcessByte(b); err != nil {
//			return err
//		}
//	}
package cli
