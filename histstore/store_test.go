// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package histstore

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AppendAndTail(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"first", "second", "third"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	lines, err := s.Tail(10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("lines %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestStore_TailLimit(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"a", "b", "c", "d"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	lines, err := s.Tail(2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 2 || lines[0] != "c" || lines[1] != "d" {
		t.Errorf("lines %q, want [c d]", lines)
	}
}

func TestStore_TailEmpty(t *testing.T) {
	s := openTestStore(t)
	lines, err := s.Tail(5)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines %q", lines)
	}
}

func TestStore_Prune(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := s.Prune(2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	lines, err := s.Tail(10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 2 || lines[0] != "d" || lines[1] != "e" {
		t.Errorf("lines %q, want [d e]", lines)
	}
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Append("persisted"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	lines, err := s.Tail(10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 1 || lines[0] != "persisted" {
		t.Errorf("lines %q", lines)
	}
}
