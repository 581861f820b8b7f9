// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func merge(partial string, candidates ...string) *Completion {
	c := NewCompletion([]byte(partial), make([]byte, 64))
	for _, cand := range candidates {
		c.Offer(cand)
	}
	return c
}

func TestCompletion_NoCandidates(t *testing.T) {
	c := merge("he")
	if c.Matched() != 0 {
		t.Errorf("Matched = %d", c.Matched())
	}
	if len(c.Extension()) != 0 {
		t.Errorf("Extension = %q", c.Extension())
	}
}

func TestCompletion_Unique(t *testing.T) {
	c := merge("he", "hello")
	if !c.Unique() {
		t.Error("expected unique")
	}
	if string(c.Extension()) != "llo" {
		t.Errorf("Extension = %q, want llo", c.Extension())
	}
}

func TestCompletion_CommonPrefix(t *testing.T) {
	// he + {hello, help} extends to hel only
	c := merge("he", "hello", "help")
	if c.Unique() {
		t.Error("expected non-unique")
	}
	if string(c.Extension()) != "l" {
		t.Errorf("Extension = %q, want l", c.Extension())
	}
}

func TestCompletion_NonMatchingIgnored(t *testing.T) {
	c := merge("he", "world", "hello", "abc")
	if !c.Unique() {
		t.Errorf("Matched = %d, want 1", c.Matched())
	}
	if string(c.Extension()) != "llo" {
		t.Errorf("Extension = %q", c.Extension())
	}
}

func TestCompletion_ExactMatch(t *testing.T) {
	c := merge("hello", "hello")
	if !c.Unique() {
		t.Error("expected unique")
	}
	if len(c.Extension()) != 0 {
		t.Errorf("Extension = %q, want empty", c.Extension())
	}
}

func TestCompletion_DivergingCandidates(t *testing.T) {
	c := merge("", "abc", "def")
	if c.Matched() != 2 {
		t.Errorf("Matched = %d", c.Matched())
	}
	if len(c.Extension()) != 0 {
		t.Errorf("Extension = %q, want empty", c.Extension())
	}
}

func TestCompletion_PrefixExtensionProperty(t *testing.T) {
	// the result is always partial + prefix of some candidate
	partial := "se"
	candidates := []string{"set", "setup", "settle"}
	c := merge(partial, candidates...)
	got := partial + string(c.Extension())
	found := false
	for _, cand := range candidates {
		if len(cand) >= len(got) && cand[:len(got)] == got {
			found = true
		}
	}
	if !found {
		t.Errorf("merged %q is not a prefix of any candidate", got)
	}
	if string(c.Extension()) != "t" {
		t.Errorf("Extension = %q, want t", c.Extension())
	}
}

func TestCompletion_ScratchBounds(t *testing.T) {
	// a scratch buffer shorter than the extension truncates the merge
	c := NewCompletion([]byte("a"), make([]byte, 2))
	c.Offer("abcdef")
	if string(c.Extension()) != "bc" {
		t.Errorf("Extension = %q, want bc", c.Extension())
	}
}
