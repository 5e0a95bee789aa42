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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated representation of an error kind.
//
// Kinds are dot-separated hierarchical identifiers with a small, fixed depth.
// Each segment narrows the category of the failure, from the subsystem down
// to the specific condition a demonstration script provokes.
//
// Example valid kinds:
//
//   - "book.publish.duplicate"
//   - "io.file.missing"
//   - "net.dns.resolve"
//   - "grpc.deadline_exceeded"
//   - "http.server"
//
// The intent is to let demo code name the failure it triggers on purpose, so
// that classifiers and log readers can tell deliberate errors apart from
// genuine defects without inspecting concrete Go types.
type Kind string

// Structural limits for a canonical kind string.
const (
	// MinLength is the minimum length for a non-empty kind.
	// We keep it at 3 so that trivial values like "x" are not considered
	// meaningful kinds. Remember: the empty string is still allowed and
	// means "no kind attached".
	MinLength = 3

	// MaxLength is the maximum length for a valid kind.
	MaxLength = 128

	// MaxSegments bounds the hierarchy depth. Three levels
	// (subsystem.component.condition) cover every kind this library mints
	// itself; the fourth is headroom for caller-defined vocabularies.
	MaxSegments = 4

	// MaxSegmentLength bounds one segment. Long enough for the wordiest
	// generated segments (HTTP status texts), short enough to keep head
	// lines readable.
	MaxSegmentLength = 32
)

// segmentFmt validates a single dot-separated segment: a lowercase ASCII
// letter, then lowercase letters, digits or underscores, never ending on an
// underscore. "not_found" and "v2" match; "Book", "4xx" and "dangling_"
// do not.
//
// NOTE: empty string ("") is treated separately as "no kind attached" and
// does not go through this regexp.
const segmentFmt = `^[a-z]([a-z0-9_]*[a-z0-9])?$`

var segmentRe = regexp.MustCompile(segmentFmt)

var (
	// ErrKindInvalidLength is returned when a kind is too short or too long.
	ErrKindInvalidLength = errors.New("diaglog: invalid kind length")
	// ErrKindInvalidDepth is returned when a kind has more than MaxSegments
	// dot-separated segments.
	ErrKindInvalidDepth = errors.New("diaglog: too many kind segments")
	// ErrKindInvalidSegment is returned when a segment is empty, too long,
	// or not in canonical form.
	ErrKindInvalidSegment = errors.New("diaglog: invalid kind segment")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It means "no kind attached" and is valid to
// carry around. Callers that require a non-empty, canonical kind should
// explicitly call Validate.
var Empty Kind = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build identifiers from paths)
//   - replace "-" with "_" (to align with identifier style)
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Kind value.
//
// Parse also accepts the empty string and returns kind.Empty without error.
// This is what makes Kind an "optional" marker on errors.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level kind constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string; passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if k == Empty {
		panic("diaglog: empty kind in MustParse")
	}
	return k
}

// Validate checks whether the provided Kind is in canonical form.
//
// The empty kind ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(k Kind) error {
	if k == Empty {
		return nil
	}
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty kind as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	if k == Empty {
		return []byte{}, nil
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce kind.Empty.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is the internal helper that checks length, depth and segment
// form.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrKindInvalidLength
	}
	segs := strings.Split(s, ".")
	if len(segs) > MaxSegments {
		return ErrKindInvalidDepth
	}
	for _, seg := range segs {
		if len(seg) > MaxSegmentLength || !segmentRe.MatchString(seg) {
			return ErrKindInvalidSegment
		}
	}
	return nil
}
