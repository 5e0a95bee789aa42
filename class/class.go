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

package class

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Class is the canonical, validated classification of a logged error.
//
// It is defined as a separate type (not just string or bool) so that other
// packages can explicitly declare which values they expect and so that the
// classification survives JSON/YAML round-trips in rule files.
//
// Exactly two canonical values exist: Expected and Unexpected. There is no
// third state: an error either was provoked on purpose by the demonstration
// script, or it was not.
type Class string

const (
	// Expected marks an error that the demonstration code triggered on
	// purpose, to illustrate a runtime or library behavior.
	Expected Class = "expected"

	// Unexpected marks an error that was NOT part of the demonstration;
	// a genuine defect in the demo script or its environment.
	Unexpected Class = "unexpected"
)

// Default is the class assumed when the caller does not say otherwise.
// Demo scripts overwhelmingly log errors they provoked themselves, so the
// default leans toward Expected.
const Default = Expected

var (
	// ErrClassInvalid is returned when a value cannot be parsed or validated
	// as a class.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about class format" vs "this is some other error".
	ErrClassInvalid = errors.New("diaglog: invalid class")
)

// Ensure Class implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Class)(nil)
	_ encoding.TextUnmarshaler = (*Class)(nil)
)

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Class value.
func Parse(s string) (Class, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Class(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Class {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical class form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//
// It does NOT guarantee that the result is valid; callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks whether the provided Class is one of the two canonical
// values. The empty class ("") is considered invalid.
func Validate(c Class) error {
	return validate(string(c))
}

// String returns the canonical string representation of the class.
func (c Class) String() string {
	return string(c)
}

// Tag returns the bracketed marker printed in front of a logged error line:
// "[EXPECTED]" or "[UNEXPECTED]".
//
// Tag never fails: any value that is not the canonical Unexpected renders as
// "[EXPECTED]", because the logger must stay a best-effort sink even when
// handed a zero or corrupted Class.
func (c Class) Tag() string {
	if c == Unexpected {
		return "[UNEXPECTED]"
	}
	return "[EXPECTED]"
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Class) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Class) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid class.
func validate(s string) error {
	switch Class(s) {
	case Expected, Unexpected:
		return nil
	}
	return ErrClassInvalid
}
