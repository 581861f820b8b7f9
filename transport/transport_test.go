// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/framegrace/serialcli/cli"
	"github.com/framegrace/serialcli/command"
)

func echoSession(t *testing.T, out io.Writer) *cli.Session {
	t.Helper()
	reg := command.New()
	reg.Register("hello", command.Command{
		Short: "greet",
		Run: func(h *cli.Handle, args []string) error {
			return h.Writer().WriteLine("Hello, world!")
		},
	})
	s, err := cli.New(cli.Config{
		Writer:        out,
		CommandBuffer: make([]byte, 64),
		Prompt:        "$ ",
		Commands:      reg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestServe_FeedsUntilEOF(t *testing.T) {
	var out bytes.Buffer
	s := echoSession(t, &out)

	err := Serve(context.Background(), strings.NewReader("hello\r"), s)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if !strings.Contains(out.String(), "Hello, world!\r\n") {
		t.Errorf("output %q", out.String())
	}
}

func TestServe_ContextCancelled(t *testing.T) {
	var out bytes.Buffer
	s := echoSession(t, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()
	defer pr.Close()

	err := Serve(ctx, pr, s)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestServe_ReadErrorWrapped(t *testing.T) {
	var out bytes.Buffer
	s := echoSession(t, &out)

	wantErr := errors.New("line noise")
	err := Serve(context.Background(), failingReader{wantErr}, s)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read(p []byte) (int, error) { return 0, r.err }

func TestServe_WriterErrorStopsLoop(t *testing.T) {
	wantErr := errors.New("sink gone")
	// empty prompt so construction writes nothing; the first echoed
	// byte hits the broken sink
	broken, err := cli.New(cli.Config{
		Writer:        errWriter{wantErr},
		CommandBuffer: make([]byte, 8),
		Commands:      command.New(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	serveErr := Serve(context.Background(), strings.NewReader("abc"), broken)
	if !errors.Is(serveErr, wantErr) {
		t.Errorf("err = %v, want wrapped %v", serveErr, wantErr)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }
