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

// Package diaglog is a diagnostic console logger for demonstration scripts.
//
// It writes readable transcripts: strings verbatim, structured values as
// ordered field dumps, errors as a tagged head line with an optional capture
// stack, and labeled separator lines between sections.
//
// Every operation is a best-effort sink. A Logger never returns an error and
// never panics: unrenderable values degrade to a generic representation and
// write failures are swallowed. Loggers keep no state between calls.
package diaglog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dirpx.dev/diaglog/apis"
	"dirpx.dev/diaglog/class"
	"dirpx.dev/diaglog/kind"
	"dirpx.dev/diaglog/render"
)

// Logger writes diagnostic transcripts to a single io.Writer.
//
// The zero value is not usable; construct with New. A Logger is immutable
// after construction and safe to share.
type Logger struct {
	// out receives one line-terminated chunk per operation. Defaults to
	// os.Stdout.
	out io.Writer

	// renderer turns logged values into text.
	renderer *render.Renderer

	// classifier, when set, decides the class of errors passed to Log.
	// LogError takes the class explicitly and never consults it.
	classifier apis.Classifier

	// color enables ANSI styling of the class tag.
	color bool
}

// New constructs a Logger writing to os.Stdout, with no classifier and no
// color, then applies the given options in order.
func New(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout, renderer: render.New()}
	for _, opt := range opts {
		opt(l)
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	return l
}

// Log writes a single value.
//
// Strings are written verbatim. Errors are routed through LogError with the
// class decided by the configured classifier (class.Default when none is
// configured). Everything else renders through the value renderer: Describer
// field dumps, prototext for protobuf messages, a deep dump as fallback.
func (l *Logger) Log(v any) {
	switch x := v.(type) {
	case nil:
		l.write("<nil>")
	case error:
		l.LogError(x, l.classOf(x))
	default:
		l.write(l.renderer.Text(v))
	}
}

// LogError writes an error under an explicit class.
//
// The head line is
//
//	[EXPECTED|UNEXPECTED] <kind>: <message>
//
// where <kind> is the chain's declared error kind when it carries one, and
// the concrete type name otherwise. If the chain exposes a Describer, its
// fields follow as indented lines; if it carries a pkg/errors capture stack,
// the frames follow last. A nil error writes "<nil>".
func (l *Logger) LogError(err error, c class.Class) {
	if err == nil {
		l.write("<nil>")
		return
	}

	var b strings.Builder
	b.WriteString(l.tag(c))
	b.WriteByte(' ')
	b.WriteString(errorKind(err))
	b.WriteString(": ")
	b.WriteString(render.ErrorMessage(err))

	if d := describerOf(err); d != nil {
		if lines := fieldLinesSafe(l.renderer, d); lines != "" {
			b.WriteByte('\n')
			b.WriteString(lines)
		}
	}
	if st, ok := render.Stack(err); ok {
		b.WriteByte('\n')
		b.WriteString(st)
	}

	l.write(b.String())
}

// tag renders the class tag, styled when color is enabled. An invalid class
// value tags as expected rather than failing.
func (l *Logger) tag(c class.Class) string {
	t := c.Tag()
	if !l.color {
		return t
	}
	if c == class.Unexpected {
		return unexpectedStyle.Render(t)
	}
	return expectedStyle.Render(t)
}

// classOf asks the configured classifier for the class of err, degrading to
// class.Default when there is no classifier, when it panics, or when it
// returns a value outside the canonical set.
func (l *Logger) classOf(err error) class.Class {
	if l.classifier == nil {
		return class.Default
	}
	c := classSafe(l.classifier, err)
	if class.Validate(c) != nil {
		return class.Default
	}
	return c
}

func classSafe(cl apis.Classifier, err error) (c class.Class) {
	defer func() {
		if recover() != nil {
			c = class.Default
		}
	}()
	return cl.Class(err)
}

func fieldLinesSafe(r *render.Renderer, d apis.Describer) (lines string) {
	defer func() {
		if recover() != nil {
			lines = ""
		}
	}()
	return r.FieldLines(d)
}

// describerOf walks the chain for a Describer. Walking calls user Unwrap
// implementations, so a panic along the way (a nil-receiver wrapper, say)
// means none.
func describerOf(err error) (d apis.Describer) {
	defer func() {
		if recover() != nil {
			d = nil
		}
	}()
	var target apis.Describer
	if errors.As(err, &target) {
		return target
	}
	return nil
}

// errorKind resolves the head-line kind of an error. Chains that declare a
// valid kind (apis.KindedError) win; otherwise the concrete type name is
// used, with the anonymous stdlib wrapper types collapsed to plain "error".
func errorKind(err error) string {
	if k := kindOf(err); k != kind.Empty && kind.Validate(k) == nil {
		return k.String()
	}
	name := render.TypeName(err)
	switch name {
	case "errors.errorString", "errors.joinError", "fmt.wrapError", "fmt.wrapErrors":
		return "error"
	}
	return name
}

// kindOf pulls the declared kind off the chain without trusting the
// implementation: a panicking or nil-receiver ErrorKind means no kind.
func kindOf(err error) (k kind.Kind) {
	defer func() {
		if recover() != nil {
			k = kind.Empty
		}
	}()
	return apis.KindOf(err)
}

// write emits one line-terminated chunk. Write errors are deliberately
// dropped; a panicking writer must not take the caller down either.
func (l *Logger) write(s string) {
	defer func() {
		_ = recover()
	}()
	fmt.Fprintln(l.out, s)
}
