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
	"encoding"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Class
		wantErr bool
	}{
		{"expected", "expected", Expected, false},
		{"unexpected", "unexpected", Unexpected, false},
		{"trims and lowers", "  EXPECTED  ", Expected, false},
		{"empty", "", "", true},
		{"unknown", "maybe", "", true},
		{"bool-ish", "true", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
				}
				if err != ErrClassInvalid {
					t.Fatalf("Parse(%q) error = %v, want ErrClassInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid class")
		}
	}()
	_ = MustParse("sort_of_expected")
}

func TestValidate(t *testing.T) {
	if err := Validate(Expected); err != nil {
		t.Fatalf("Validate(Expected) unexpected error: %v", err)
	}
	if err := Validate(Unexpected); err != nil {
		t.Fatalf("Validate(Unexpected) unexpected error: %v", err)
	}
	if err := Validate(Class("")); err == nil {
		t.Fatalf("Validate(empty) expected error")
	}
	if err := Validate(Class("EXPECTED")); err == nil {
		t.Fatalf("Validate must reject non-normalized values")
	}
}

func TestTag(t *testing.T) {
	if got := Expected.Tag(); got != "[EXPECTED]" {
		t.Fatalf("Expected.Tag() = %q", got)
	}
	if got := Unexpected.Tag(); got != "[UNEXPECTED]" {
		t.Fatalf("Unexpected.Tag() = %q", got)
	}
	// Tag must not fail on the zero value; it degrades to the default.
	if got := Class("").Tag(); got != "[EXPECTED]" {
		t.Fatalf("zero Class Tag() = %q, want [EXPECTED]", got)
	}
}

func TestClass_TextRoundTrip(t *testing.T) {
	text, err := Unexpected.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	var c Class
	if err := c.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if c != Unexpected {
		t.Fatalf("round trip = %q, want %q", c, Unexpected)
	}

	if _, err := Class("nope").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid class must return error")
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText on invalid input must return error")
	}
}

func TestClass_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Class)(nil)
	var _ encoding.TextUnmarshaler = (*Class)(nil)
}
