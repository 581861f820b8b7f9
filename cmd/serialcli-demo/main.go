// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/serialcli-demo/main.go
// Summary: Interactive demo running a session on raw-mode stdin.
// Usage: Run `serialcli-demo`; type `help` for the command list,
// `exit` to quit.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/framegrace/serialcli/cli"
	"github.com/framegrace/serialcli/command"
	"github.com/framegrace/serialcli/histstore"
	"github.com/framegrace/serialcli/transport"
)

const historyKeep = 500

func main() {
	prompt := flag.String("prompt", "$ ", "prompt string")
	noPersist := flag.Bool("no-persist", false, "disable persistent history")
	flag.Parse()

	if err := run(*prompt, !*noPersist); err != nil {
		log.Fatal(err)
	}
}

func run(prompt string, persist bool) error {
	// led state shared by the get/set commands, standing in for real
	// device registers
	leds := map[string]string{"0": "off", "1": "off"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := command.New()
	reg.Register("hello", command.Command{
		Short: "greet the given name",
		Long:  "hello [NAME]\n\nGreet NAME, or the world when no name is given.",
		Run: func(h *cli.Handle, args []string) error {
			name := "world"
			if len(args) > 1 {
				name = strings.Join(args[1:], " ")
			}
			return h.Writer().WriteLine("Hello, " + name + "!")
		},
	})
	reg.Register("led", command.Command{
		Short: "query or set led state",
		Long:  "led get <ID>\nled set <ID> <on|off>",
		Complete: func(args []string) []string {
			switch len(args) {
			case 1:
				return []string{"get", "set"}
			case 2:
				ids := make([]string, 0, len(leds))
				for id := range leds {
					ids = append(ids, id)
				}
				return ids
			case 3:
				if args[1] == "set" {
					return []string{"on", "off"}
				}
			}
			return nil
		},
		Run: func(h *cli.Handle, args []string) error {
			if len(args) < 3 {
				return fmt.Errorf("usage: %s", "led get|set <ID> [on|off]")
			}
			id := args[2]
			state, ok := leds[id]
			if !ok {
				return fmt.Errorf("no such led: %s", id)
			}
			switch args[1] {
			case "get":
				return h.Writer().WriteLine("led " + id + ": " + state)
			case "set":
				if len(args) < 4 || (args[3] != "on" && args[3] != "off") {
					return fmt.Errorf("usage: %s", "led set <ID> <on|off>")
				}
				leds[id] = args[3]
				return nil
			default:
				return fmt.Errorf("unknown subcommand: %s", args[1])
			}
		},
	})
	reg.Register("clear", command.Command{
		Short: "clear the screen",
		Run: func(h *cli.Handle, args []string) error {
			return h.Writer().WriteString("\x1b[2J\x1b[H")
		},
	})
	reg.Register("exit", command.Command{
		Short: "leave the demo",
		Run: func(h *cli.Handle, args []string) error {
			cancel()
			return nil
		},
	})

	var store *histstore.Store
	var onSubmit func(string)
	if persist {
		path, err := historyPath()
		if err != nil {
			return err
		}
		store, err = histstore.Open(path)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer func() {
			if err := store.Prune(historyKeep); err != nil {
				log.Printf("prune history: %v", err)
			}
			store.Close()
		}()
		onSubmit = func(line string) {
			if err := store.Append(line); err != nil {
				log.Printf("persist history: %v", err)
			}
		}
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	session, err := cli.New(cli.Config{
		Writer:        os.Stdout,
		CommandBuffer: make([]byte, 120),
		HistoryBuffer: make([]byte, 1024),
		Prompt:        prompt,
		Commands:      reg,
		Autocomplete:  true,
		History:       true,
		Help:          true,
		OnSubmit:      onSubmit,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	if store != nil {
		lines, err := store.Tail(historyKeep)
		if err != nil {
			log.Printf("restore history: %v", err)
		} else {
			session.PreloadHistory(lines)
		}
	}

	err = transport.Serve(ctx, os.Stdin, session)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func historyPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache directory: %w", err)
	}
	return filepath.Join(dir, "serialcli", "history.db"), nil
}
