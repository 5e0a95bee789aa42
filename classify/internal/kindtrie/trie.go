/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kindtrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated error kinds.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. Lookups are longest-prefix-match (LPM) with segment boundaries,
// so a more specific rule wins over a shorter one.
//
// A Trie is mutable during construction (Insert) and read-only afterwards;
// concurrent lookups on a frozen trie are safe.
type Trie[T any] struct {
	root *node[T]
}

type node[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*node[T]
	// leaf marks that this node carries a value for the pattern ending here.
	leaf bool
	val  T
	// pattern is the canonical dotted pattern (with '*' if wildcard was used)
	// for this node, set only when leaf=true. Keeping it on the node means
	// Match can report which rule won without rebuilding strings per lookup.
	pattern string
}

var (
	// ErrInvalidPattern is returned when inserting a pattern that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPattern = errors.New("kindtrie: invalid pattern")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{root: newNode[T]()}
}

func newNode[T any]() *node[T] {
	return &node[T]{children: make(map[string]*node[T])}
}

// Insert adds a dot-separated pattern to the trie and associates it with val.
//
// Examples:
//
//	"book.publish"
//	"net.dns.resolve"
//	"io.*.missing"
//
// The wildcard "*" matches exactly one segment. A pattern made only of "*"
// segments is rejected, because it would catch everything.
// Returns ErrInvalidPattern on malformed input.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil || t.root == nil {
		return ErrInvalidPattern
	}
	segs, ok := split(pattern, true /* allowWildcard */)
	if !ok || len(segs) == 0 {
		return ErrInvalidPattern
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPattern
	}

	cur := t.root
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = newNode[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.leaf = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match finds the deepest pattern matching the given kind and returns its
// value together with the pattern that won.
//
// The kind is treated as a dot-separated sequence of segments; both exact
// branches and "*" wildcard branches are explored, and among all rules whose
// every segment matched, the one consuming the most segments wins.
// An invalid kind (empty segment, bad characters) matches nothing.
func (t *Trie[T]) Match(kind string) (val T, pattern string, ok bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, "", false
	}
	segs, valid := split(kind, false /* allowWildcard */)
	if !valid {
		return zero, "", false
	}

	best := -1
	var bestVal T
	var bestPat string

	// walk explores both the exact and the wildcard branch at every level and
	// records the deepest leaf seen anywhere on the way.
	var walk func(n *node[T], depth int)
	walk = func(n *node[T], depth int) {
		if n.leaf && depth > best {
			best = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if depth == len(segs) {
			return
		}
		if next, ok := n.children[segs[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, depth+1)
		}
	}
	walk(t.root, 0)

	if best < 0 {
		return zero, "", false
	}
	return bestVal, bestPat, true
}

// split breaks a dot-separated string into segments and validates each one.
// When allowWildcard=true, a segment that is exactly "*" is accepted.
// Returns (segments, true) on success, or (nil, false) on invalid input.
//
// Note: an empty string yields an empty (but valid) segment list so that
// matching "" against a trie is possible in callers.
func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
//
// These rules keep rule patterns simple, predictable and easy to normalize.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
