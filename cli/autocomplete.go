// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cli/autocomplete.go
// Summary: Prefix-merge autocompletion over a lazy candidate stream.

package cli

// Completion accumulates the merge of all candidates that extend a
// partial token. Candidates are consumed one at a time; the full list is
// never materialized. The merged extension is written into a scratch
// buffer (the spare capacity of the line buffer), so the merge itself
// does not allocate.
type Completion struct {
	partial []byte
	scratch []byte
	extLen  int
	matched int
}

// NewCompletion prepares a merge for the given partial token. scratch
// receives the extension bytes and bounds its length.
func NewCompletion(partial, scratch []byte) *Completion {
	return &Completion{partial: partial, scratch: scratch}
}

// Offer merges one candidate. Candidates that do not start with the
// partial token are ignored. The retained extension is the longest
// common prefix of all matching candidates' extensions, so the result
// is always a prefix extension of the partial token.
func (c *Completion) Offer(candidate string) {
	if !hasBytePrefix(candidate, c.partial) {
		return
	}
	ext := candidate[len(c.partial):]
	c.matched++
	if c.matched == 1 {
		c.extLen = copy(c.scratch, ext)
		return
	}
	// keep only the common prefix with the existing merge
	n := c.extLen
	if len(ext) < n {
		n = len(ext)
	}
	i := 0
	for i < n && c.scratch[i] == ext[i] {
		i++
	}
	c.extLen = i
}

// Extension returns the merged extension bytes, empty when no candidate
// matched or the candidates diverge immediately.
func (c *Completion) Extension() []byte { return c.scratch[:c.extLen] }

// Matched reports how many candidates matched the partial token.
func (c *Completion) Matched() int { return c.matched }

// Unique reports whether exactly one candidate matched, in which case
// the extension completes the token entirely.
func (c *Completion) Unique() bool { return c.matched == 1 }

func hasBytePrefix(s string, prefix []byte) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
