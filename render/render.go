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

package render

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/diaglog/apis"
)

// Renderer turns arbitrary values into the text that ends up in a
// transcript. It is stateless between calls and safe for concurrent use.
//
// Rendering never fails and never panics: a value that cannot be rendered
// through its preferred path degrades to a generic representation instead.
type Renderer struct {
	// dump is the configured fallback for values that provide no Describer,
	// no Stringer and are not primitives. Pointer addresses and capacities
	// are suppressed so transcripts stay stable across runs.
	dump *spew.ConfigState
}

// New creates a Renderer with the library's standard configuration.
func New() *Renderer {
	return &Renderer{
		dump: &spew.ConfigState{
			Indent:                  "  ",
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		},
	}
}

// Text renders a single value.
//
// Resolution order:
//
//  1. nil -> "<nil>";
//  2. strings pass through unchanged;
//  3. apis.Describer -> type name plus ordered, indented field lines;
//  4. proto.Message -> type name plus indented prototext;
//  5. error -> its message (callers log errors via LogError for the tagged
//     form; this path only covers errors buried inside plain values);
//  6. primitives and fmt.Stringer -> their usual formatting;
//  7. everything else -> a deep spew dump.
//
// A panic anywhere on the preferred path (a broken Describe or String
// implementation) degrades to a generic Go-syntax representation.
func (r *Renderer) Text(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = fallback(v)
		}
	}()

	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case apis.Describer:
		body := r.FieldLines(x)
		if body == "" {
			return TypeName(v)
		}
		return TypeName(v) + "\n" + body
	}

	if m, ok := v.(proto.Message); ok {
		return r.protoText(m)
	}
	if err, ok := v.(error); ok {
		return ErrorMessage(err)
	}

	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return fmt.Sprintf("%v", v)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return strings.TrimRight(r.dump.Sdump(v), "\n")
}

// FieldLines renders a Describer's fields as indented "name: value" lines,
// one per field, in the order the Describer returned them. It returns the
// empty string when there are no fields.
//
// The header (type name) is intentionally not included, so LogError can
// append field lines under an error head line without repeating the type.
func (r *Renderer) FieldLines(d apis.Describer) string {
	fields := d.Describe()
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(r.fieldValue(f.Value))
	}
	return b.String()
}

// fieldValue renders a single field value on one line.
func (r *Renderer) fieldValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case error:
		return ErrorMessage(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}

// protoText renders a protobuf message as its type name followed by an
// indented prototext body. Note that prototext output is deliberately not
// byte-stable across protobuf-go releases; transcripts containing proto
// payloads should not be golden-tested verbatim.
func (r *Renderer) protoText(m proto.Message) string {
	opts := prototext.MarshalOptions{Multiline: true, Indent: "  "}
	body := strings.TrimRight(opts.Format(m), "\n")
	if body == "" {
		return TypeName(m)
	}
	return TypeName(m) + "\n" + indent(body, "  ")
}

// TypeName returns the concrete type of v without the leading pointer star,
// e.g. "book.Book" for *book.Book. Used as the header of structured dumps
// and as the fallback kind of errors that carry none.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}

// ErrorMessage returns err.Error() without risking a panic from a broken
// implementation. A nil error renders as "<nil>".
func ErrorMessage(err error) (msg string) {
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

// fallback is the last-resort representation used when the preferred
// rendering path panicked. %#v calls no user methods, so it cannot panic
// for the same reason again; the recover guards against exotic values.
func fallback(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = "<unrenderable>"
		}
	}()
	return fmt.Sprintf("%#v", v)
}

// indent prefixes every line of s with the given prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
