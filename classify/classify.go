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

package classify

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/diaglog/apis"
	"dirpx.dev/diaglog/class"
	"dirpx.dev/diaglog/classify/internal/kindtrie"
	"dirpx.dev/diaglog/kind"
)

// New constructs an immutable apis.Classifier snapshot.
//
// The resulting classifier is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance: no shared references
// to user-provided structures remain.
//
// Build process overview:
//
//  1. Start from an empty builder (default class = expected).
//  2. Apply user-provided options (sentinels, overrides, prefix rules).
//  3. Normalize and validate all kind patterns (via kind.Normalize/Parse).
//  4. Build a segment trie supporting longest-prefix-match with '*' as a
//     single-segment wildcard.
//  5. Freeze all rules into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid patterns, invalid
// classes, or configuration issues during normalization or trie construction.
func New(opts ...Option) (apis.Classifier, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if err := class.Validate(b.def); err != nil {
		return nil, fmt.Errorf("classify: invalid default class %q: %w", b.def, err)
	}
	for _, s := range b.sentinels {
		if err := class.Validate(s.cls); err != nil {
			return nil, fmt.Errorf("classify: invalid class %q for sentinel %q: %w", s.cls, s.target, err)
		}
	}

	overrides := make(map[kind.Kind]class.Class, len(b.overrides))
	for k, c := range b.overrides {
		if err := kind.Validate(k); err != nil || k == kind.Empty {
			return nil, fmt.Errorf("classify: invalid override kind %q: %w", k, errOr(err))
		}
		if err := class.Validate(c); err != nil {
			return nil, fmt.Errorf("classify: invalid class %q for kind %q: %w", c, k, err)
		}
		overrides[k] = c
	}

	trie := kindtrie.New[class.Class]()
	for _, r := range b.prefixes {
		p, err := normalizePattern(r.pattern)
		if err != nil {
			return nil, fmt.Errorf("classify: invalid kind pattern %q: %w", r.pattern, err)
		}
		if err := class.Validate(r.cls); err != nil {
			return nil, fmt.Errorf("classify: invalid class %q for pattern %q: %w", r.cls, p, err)
		}
		if err := trie.Insert(p, r.cls); err != nil {
			return nil, fmt.Errorf("classify: cannot insert pattern %q: %w", p, err)
		}
	}

	return &classifier{
		sentinels: append([]sentinelRule(nil), b.sentinels...),
		overrides: overrides,
		trie:      trie,
		def:       b.def,
	}, nil
}

// classifier is an immutable classifier implementation that combines
// sentinel identity rules, exact per-kind overrides and a segment-aware
// prefix trie. Lookups are O(chain + depth) and safe for concurrent use
// once constructed.
type classifier struct {
	// sentinels are errors.Is identity rules, checked first in order.
	sentinels []sentinelRule

	// overrides holds explicit classes for exact kinds.
	// These take precedence over prefix rules but sit below sentinels.
	overrides map[kind.Kind]class.Class

	// trie resolves classes based on kind prefixes (dot-separated, with "*"
	// for one-segment wildcards).
	trie *kindtrie.Trie[class.Class]

	// def is used when nothing matches. Defaults to class.Default.
	def class.Class
}

// Class resolves the classification of err.
//
// Resolution order (highest to lowest):
//  1. sentinel identity rule (errors.Is, registration order);
//  2. exact per-kind override on the error's kind;
//  3. longest-prefix-match rule on the error's kind;
//  4. the default class.
//
// A nil error resolves to the default class; Class never fails.
func (c *classifier) Class(err error) class.Class {
	cls, _, _ := c.resolve(err)
	return cls
}

// Explain produces a textual trace of how the classifier resolved the class
// for a particular error.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (sentinel, override, prefix, or default) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	err="file missing" kind="io.file.missing"
//	class: source=prefix pattern="io.file" -> expected
//
// Notes:
//   - source is one of sentinel, override, prefix, default;
//   - pattern is the rule as it was stored in the trie (may contain "*").
func (c *classifier) Explain(err error) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "err=%q kind=%q\n", message(err), apis.KindOf(err))
	_, _, detail := c.resolve(err)
	b.WriteString(detail)
	return b.String()
}

// resolve returns the class together with the matching tier and a formatted
// explain line. It is shared by Class and Explain so the two can never
// disagree about which rule won.
func (c *classifier) resolve(err error) (cls class.Class, source, detail string) {
	// 1) sentinel identity rules, in registration order
	if err != nil {
		for _, s := range c.sentinels {
			if errors.Is(err, s.target) {
				return s.cls, "sentinel", fmt.Sprintf("class: source=sentinel target=%q -> %s", s.target.Error(), s.cls)
			}
		}
	}

	k := apis.KindOf(err)

	// 2) exact per-kind override
	if k != kind.Empty {
		if v, ok := c.overrides[k]; ok {
			return v, "override", fmt.Sprintf("class: source=override kind=%q -> %s", k, v)
		}
	}

	// 3) LPM against the kind
	if k != kind.Empty {
		if v, pat, ok := c.trie.Match(string(k)); ok {
			return v, "prefix", fmt.Sprintf("class: source=prefix pattern=%q -> %s", pat, v)
		}
	}

	// 4) default
	return c.def, "default", fmt.Sprintf("class: source=default -> %s", c.def)
}

// normalizePattern ensures a kind pattern is canonical and valid.
// It forbids empty strings and delegates structural checks to the same
// segment rules the trie enforces, with "*" allowed as a full segment.
func normalizePattern(raw string) (string, error) {
	p := kind.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty pattern")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPatternSegment(seg) { // allows "*" or [a-z][a-z0-9_]*
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("pattern cannot consist of '*' only")
	}
	return p, nil
}

// validPatternSegment reports whether seg is a valid pattern segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
func validPatternSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
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

// message extracts the error message without risking a panic from a broken
// Error() implementation; Explain is a diagnostic and must stay harmless.
func message(err error) (msg string) {
	if err == nil {
		return "<nil>"
	}
	defer func() {
		if recover() != nil {
			msg = "<unprintable>"
		}
	}()
	return err.Error()
}

// errOr returns err when non-nil, or a generic empty-kind error otherwise.
// Override kinds must be non-empty, but kind.Validate accepts Empty, so the
// empty case needs its own message.
func errOr(err error) error {
	if err != nil {
		return err
	}
	return errors.New("kind must not be empty")
}
