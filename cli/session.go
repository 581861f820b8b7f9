// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/session.go
// Summary: Session controller: routes decoded input events to the line
// editor, history and autocompletion, reconciles the terminal display
// and dispatches submitted lines.

package cli

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Config assembles a session. CommandBuffer and HistoryBuffer are owned
// by the session for its lifetime; their lengths fix the line and
// history capacities.
type Config struct {
	// Writer receives all terminal output. If it implements Flusher it
	// is flushed after every processed byte.
	Writer io.Writer

	// CommandBuffer holds the edited line. Its length is the maximum
	// line length in bytes.
	CommandBuffer []byte

	// HistoryBuffer backs the history ring. May be nil when History is
	// disabled.
	HistoryBuffer []byte

	// Prompt is written at the start of every input line.
	Prompt string

	// Commands is the command surface used for completion, help and
	// dispatch.
	Commands CommandSet

	// Feature toggles. A disabled feature turns the corresponding keys
	// into no-ops.
	Autocomplete bool
	History      bool
	Help         bool

	// OnSubmit, if set, observes every committed line that is not blank
	// (empty or spaces only) before it is tokenized. Embedders use it to persist history.
	OnSubmit func(line string)
}

// Session is the interactive state machine. It is strictly
// single-threaded: ProcessByte must not be called re-entrantly from a
// dispatched command.
type Session struct {
	w       *Writer
	editor  *LineEditor
	decoder *Decoder
	history *History
	set     CommandSet
	handle  *Handle

	prompt       string
	autocomplete bool
	useHistory   bool
	useHelp      bool
	onSubmit     func(string)

	// history navigation: 0 is the live draft, k>0 the k-th newest
	// entry currently recalled
	histPos int

	// draft saved on the first Up, restored when Down returns to 0
	draft      []byte
	draftLen   int
	draftSaved bool
}

// New builds a session and emits the initial prompt.
func New(cfg Config) (*Session, error) {
	if cfg.Writer == nil {
		return nil, errors.New("cli: Config.Writer is required")
	}
	if len(cfg.CommandBuffer) == 0 {
		return nil, errors.New("cli: Config.CommandBuffer is required")
	}
	s := &Session{
		w:            NewWriter(cfg.Writer),
		editor:       NewLineEditor(cfg.CommandBuffer),
		decoder:      NewDecoder(),
		set:          cfg.Commands,
		prompt:       cfg.Prompt,
		autocomplete: cfg.Autocomplete,
		useHistory:   cfg.History && len(cfg.HistoryBuffer) > 0,
		useHelp:      cfg.Help,
		onSubmit:     cfg.OnSubmit,
	}
	if s.useHistory {
		s.history = NewHistory(cfg.HistoryBuffer)
		s.draft = make([]byte, len(cfg.CommandBuffer))
	}
	s.handle = &Handle{w: s.w, s: s}

	if err := s.w.WriteString(s.prompt); err != nil {
		return nil, err
	}
	if err := s.w.Flush(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetPrompt replaces the prompt and redraws the current line with it.
func (s *Session) SetPrompt(prompt string) error {
	s.prompt = prompt
	if err := s.redrawLine(); err != nil {
		return err
	}
	return s.w.Flush()
}

// PreloadHistory seeds the history ring, oldest line first. Used to
// restore persisted history before the first byte arrives.
func (s *Session) PreloadHistory(lines []string) {
	if !s.useHistory {
		return
	}
	for _, line := range lines {
		s.history.Push([]byte(line))
	}
}

// ProcessByte feeds one input byte through the decoder and handles the
// event it completes, if any. Only writer errors are returned; all
// other conditions are handled locally (bell, diagnostic, or silent
// discard) and leave the session consistent.
func (s *Session) ProcessByte(b byte) error {
	ev := s.decoder.Feed(b)
	if err := s.handleEvent(ev); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *Session) handleEvent(ev Event) error {
	switch ev.Kind {
	case EventPrintable:
		return s.onPrintable(ev.Text)
	case EventEnter:
		return s.onEnter()
	case EventBackspace:
		return s.onBackspace()
	case EventDelete:
		return s.onDeleteForward()
	case EventLeft:
		return s.w.CursorBack(displayWidth(s.editor.MoveLeft()))
	case EventRight:
		return s.w.CursorForward(displayWidth(s.editor.MoveRight()))
	case EventHome:
		cols := displayWidth(s.editor.Head())
		s.editor.MoveHome()
		return s.w.CursorBack(cols)
	case EventEnd:
		cols := displayWidth(s.editor.Tail())
		s.editor.MoveEnd()
		return s.w.CursorForward(cols)
	case EventTab:
		if s.autocomplete {
			return s.onTab()
		}
	case EventUp:
		if s.useHistory {
			return s.onHistoryOlder()
		}
	case EventDown:
		if s.useHistory {
			return s.onHistoryNewer()
		}
	}
	return nil
}

func (s *Session) onPrintable(text []byte) error {
	s.dropDraft()
	wasInside := s.editor.Cursor() < s.editor.Len()
	if !s.editor.Insert(text) {
		return s.w.Bell()
	}
	if err := s.w.writeRaw(text); err != nil {
		return err
	}
	if wasInside {
		tail := s.editor.Tail()
		if err := s.w.writeRaw(tail); err != nil {
			return err
		}
		return s.w.CursorBack(displayWidth(tail))
	}
	return nil
}

func (s *Session) onBackspace() error {
	if s.editor.Cursor() == 0 {
		return nil
	}
	s.dropDraft()
	start := prevBoundary(s.editor.Text(), s.editor.Cursor())
	removed := displayWidth(s.editor.Text()[start:s.editor.Cursor()])
	s.editor.Backspace()
	if err := s.w.CursorBack(removed); err != nil {
		return err
	}
	return s.redrawTail()
}

func (s *Session) onDeleteForward() error {
	if s.editor.Cursor() >= s.editor.Len() {
		return nil
	}
	s.dropDraft()
	s.editor.DeleteForward()
	return s.redrawTail()
}

// redrawTail repaints everything at and after the cursor, erases what
// the previous content left behind, and returns the cursor.
func (s *Session) redrawTail() error {
	tail := s.editor.Tail()
	if err := s.w.writeRaw(tail); err != nil {
		return err
	}
	if err := s.w.EraseToEnd(); err != nil {
		return err
	}
	return s.w.CursorBack(displayWidth(tail))
}

// redrawLine repaints the whole line: prompt plus current content.
func (s *Session) redrawLine() error {
	if err := s.w.CarriageReturn(); err != nil {
		return err
	}
	if err := s.w.EraseToEnd(); err != nil {
		return err
	}
	if err := s.w.WriteString(s.prompt); err != nil {
		return err
	}
	return s.w.writeRaw(s.editor.Text())
}

// dropDraft is called on every edit: leaving history navigation makes
// the visible line the new draft and forgets the saved one.
func (s *Session) dropDraft() {
	s.histPos = 0
	s.draftSaved = false
}

func (s *Session) onHistoryOlder() error {
	entry, ok := s.history.At(s.histPos + 1)
	if !ok {
		return nil
	}
	if s.histPos == 0 {
		s.draftLen = copy(s.draft, s.editor.Text())
		s.draftSaved = true
	}
	s.histPos++
	s.editor.SetText(entry)
	return s.redrawLine()
}

func (s *Session) onHistoryNewer() error {
	if s.histPos == 0 {
		return nil
	}
	s.histPos--
	if s.histPos == 0 {
		if s.draftSaved {
			s.editor.SetText(s.draft[:s.draftLen])
			s.draftSaved = false
		} else {
			s.editor.Clear()
		}
	} else {
		entry, ok := s.history.At(s.histPos)
		if !ok {
			s.editor.Clear()
		} else {
			s.editor.SetText(entry)
		}
	}
	return s.redrawLine()
}

func (s *Session) onTab() error {
	if s.editor.Cursor() != s.editor.Len() {
		return nil
	}
	line := s.editor.Text()
	if len(line) == 0 {
		return nil
	}

	partialStart := lastTokenStart(line)
	partial := line[partialStart:]
	comp := NewCompletion(partial, s.editor.Spare())

	if blankBefore(line, partialStart) {
		// completing the command name itself
		if s.set != nil {
			for name := range s.set.Names() {
				comp.Offer(name)
			}
		}
		if s.useHelp {
			comp.Offer("help")
		}
	} else if s.set != nil {
		args := leadingArgs(line, partialStart)
		for cand := range s.set.Complete(args) {
			comp.Offer(cand)
		}
	}

	if comp.Matched() == 0 {
		return s.w.Bell()
	}

	// the extension bytes already sit in the spare area right past the
	// line; grow the line over them and echo
	ext := comp.Extension()
	prevLen := s.editor.Len()
	s.editor.Grow(len(ext))
	if comp.Unique() {
		s.editor.Insert([]byte{' '})
	}
	inserted := s.editor.Text()[prevLen:]
	if len(inserted) == 0 {
		return nil
	}
	return s.w.writeRaw(inserted)
}

func (s *Session) onEnter() error {
	s.dropDraft()
	if err := s.w.CRLF(); err != nil {
		return err
	}

	line := s.editor.Text()
	if isBlank(line) {
		s.editor.Clear()
		return s.w.WriteString(s.prompt)
	}

	if s.useHistory {
		s.history.Push(line)
	}
	if s.onSubmit != nil {
		s.onSubmit(string(line))
	}

	args := tokenStrings(line)
	err := s.submit(args)
	s.editor.Clear()
	if err != nil {
		return err
	}
	if s.w.Dirty() {
		if err := s.w.CRLF(); err != nil {
			return err
		}
	}
	return s.w.WriteString(s.prompt)
}

// submit routes a tokenized line to the help router or the dispatcher.
// Dispatch errors become diagnostics; only writer errors are returned.
func (s *Session) submit(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if s.useHelp && s.set != nil {
		if req, ok := parseHelpRequest(args); ok {
			return renderHelp(s.w, s.set, req)
		}
	}
	if s.set == nil {
		return s.writeDispatchError(ErrUnknownCommand)
	}
	if err := s.set.Dispatch(s.handle, args); err != nil {
		return s.writeDispatchError(err)
	}
	return nil
}

func (s *Session) writeDispatchError(err error) error {
	if werr := s.w.WriteString("error: "); werr != nil {
		return werr
	}
	return s.w.WriteLine(err.Error())
}

// tokenStrings tokenizes the line in place and converts the tokens to
// strings for the dispatcher. This is the one allocating step of the
// submit path; per-byte input handling stays allocation-free.
func tokenStrings(line []byte) []string {
	raw := SplitLine(line)
	if len(raw) == 0 {
		return nil
	}
	args := make([]string, len(raw))
	for i, tok := range raw {
		args[i] = string(tok)
	}
	return args
}

// leadingArgs returns the completed tokens preceding the partial token
// for a completion request.
func leadingArgs(line []byte, partialStart int) []string {
	head := make([]byte, partialStart)
	copy(head, line[:partialStart])
	return tokenStrings(head)
}

func blankBefore(line []byte, end int) bool {
	for i := 0; i < end; i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

func isBlank(line []byte) bool {
	return blankBefore(line, len(line))
}

// displayWidth returns the number of terminal columns the bytes render
// to, stepping codepoint by codepoint so no intermediate string is
// allocated.
func displayWidth(b []byte) int {
	cols := 0
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if size == 0 {
			break
		}
		cols += runewidth.RuneWidth(r)
		i += size
	}
	return cols
}
