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

package diaglog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/goleak"

	"dirpx.dev/diaglog/class"
	"dirpx.dev/diaglog/kind"
)

func TestMain(m *testing.M) {
	// The logger is strictly synchronous; no operation may leave a
	// goroutine behind.
	goleak.VerifyTestMain(m)
}

func newBufLogger(opts ...Option) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(append([]Option{WithOutput(&buf)}, opts...)...), &buf
}

func TestLogStringIdentity(t *testing.T) {
	for _, s := range []string{"hello, world", "", "tab\tand newline\nkept"} {
		l, buf := newBufLogger()
		l.Log(s)
		if got, want := buf.String(), s+"\n"; got != want {
			t.Fatalf("Log(%q) wrote %q, want %q", s, got, want)
		}
	}
}

func TestLogNil(t *testing.T) {
	l, buf := newBufLogger()
	l.Log(nil)
	if got := buf.String(); got != "<nil>\n" {
		t.Fatalf("Log(nil) wrote %q, want %q", got, "<nil>\n")
	}
}

func TestLogErrorTags(t *testing.T) {
	tests := []struct {
		cls  class.Class
		want string
	}{
		{class.Expected, "[EXPECTED] error: boom\n"},
		{class.Unexpected, "[UNEXPECTED] error: boom\n"},
	}
	for _, tt := range tests {
		l, buf := newBufLogger()
		l.LogError(errors.New("boom"), tt.cls)
		if got := buf.String(); got != tt.want {
			t.Fatalf("LogError(boom, %s) wrote %q, want %q", tt.cls, got, tt.want)
		}
	}
}

func TestLogErrorNil(t *testing.T) {
	l, buf := newBufLogger()
	l.LogError(nil, class.Unexpected)
	if got := buf.String(); got != "<nil>\n" {
		t.Fatalf("LogError(nil) wrote %q, want %q", got, "<nil>\n")
	}
}

func TestLogErrorKindInHeadLine(t *testing.T) {
	l, buf := newBufLogger()
	err := WithKind(errors.New("file missing"), kind.MustParse("io.file.missing"))
	l.LogError(err, class.Expected)
	if got, want := buf.String(), "[EXPECTED] io.file.missing: file missing\n"; got != want {
		t.Fatalf("LogError wrote %q, want %q", got, want)
	}
}

func TestLogErrorWrappedKindSurvives(t *testing.T) {
	l, buf := newBufLogger()
	inner := WithKind(errors.New("file missing"), kind.MustParse("io.file.missing"))
	l.LogError(pkgerrors.Wrap(inner, "load config"), class.Unexpected)
	head, _, _ := strings.Cut(buf.String(), "\n")
	if want := "[UNEXPECTED] io.file.missing: load config: file missing"; head != want {
		t.Fatalf("head line = %q, want %q", head, want)
	}
}

func TestLogErrorStackFrames(t *testing.T) {
	l, buf := newBufLogger()
	l.LogError(pkgerrors.New("boom"), class.Unexpected)
	out := buf.String()
	if !strings.HasPrefix(out, "[UNEXPECTED] error: boom\n") {
		t.Fatalf("missing head line in %q", out)
	}
	if !strings.Contains(out, ".go:") {
		t.Fatalf("missing stack frames in %q", out)
	}
}

type fixedClassifier struct{ cls class.Class }

func (f fixedClassifier) Class(error) class.Class { return f.cls }
func (f fixedClassifier) Explain(error) string    { return string(f.cls) }

type panicClassifier struct{}

func (panicClassifier) Class(error) class.Class { panic("classifier exploded") }
func (panicClassifier) Explain(error) string    { return "" }

func TestLogConsultsClassifier(t *testing.T) {
	l, buf := newBufLogger(WithClassifier(fixedClassifier{cls: class.Unexpected}))
	l.Log(errors.New("disk offline"))
	if got, want := buf.String(), "[UNEXPECTED] error: disk offline\n"; got != want {
		t.Fatalf("Log wrote %q, want %q", got, want)
	}
}

func TestLogWithoutClassifierUsesDefault(t *testing.T) {
	l, buf := newBufLogger()
	l.Log(errors.New("disk offline"))
	if got, want := buf.String(), "[EXPECTED] error: disk offline\n"; got != want {
		t.Fatalf("Log wrote %q, want %q", got, want)
	}
}

func TestLogClassifierPanicDegrades(t *testing.T) {
	l, buf := newBufLogger(WithClassifier(panicClassifier{}))
	l.Log(errors.New("disk offline"))
	if got, want := buf.String(), "[EXPECTED] error: disk offline\n"; got != want {
		t.Fatalf("Log wrote %q, want %q", got, want)
	}
}

func TestLogClassifierBogusClassDegrades(t *testing.T) {
	l, buf := newBufLogger(WithClassifier(fixedClassifier{cls: class.Class("catastrophic")}))
	l.Log(errors.New("disk offline"))
	if got, want := buf.String(), "[EXPECTED] error: disk offline\n"; got != want {
		t.Fatalf("Log wrote %q, want %q", got, want)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

type panicWriter struct{}

func (panicWriter) Write([]byte) (int, error) { panic("writer exploded") }

func TestWriteFailuresAreSwallowed(t *testing.T) {
	for _, l := range []*Logger{
		New(WithOutput(brokenWriter{})),
		New(WithOutput(panicWriter{})),
	} {
		l.Log("hello")
		l.LogError(errors.New("boom"), class.Unexpected)
		l.LineSeparator()
	}
}

type panicStringer struct{}

func (panicStringer) String() string { panic("string exploded") }

type panicKindError struct{}

func (panicKindError) Error() string        { return "kind carrier" }
func (panicKindError) ErrorKind() kind.Kind { panic("kind exploded") }

type invalidKindError struct{}

func (invalidKindError) Error() string        { return "bad kind" }
func (invalidKindError) ErrorKind() kind.Kind { return kind.Kind("Not A Kind!") }

func TestLogNeverPanics(t *testing.T) {
	type ring struct {
		Next *ring
	}
	cyclic := &ring{}
	cyclic.Next = cyclic

	values := []any{
		nil,
		"",
		panicStringer{},
		cyclic,
		make(chan int),
		panicKindError{},
		invalidKindError{},
		(*kindedError)(nil),
	}

	l, buf := newBufLogger()
	for _, v := range values {
		l.Log(v)
	}
	if got := buf.String(); strings.Count(got, "\n") < len(values) {
		t.Fatalf("expected one line per value, got %q", got)
	}
}

func TestLogErrorBadKindImplementations(t *testing.T) {
	tests := []struct {
		name string
		err  error
		cls  class.Class
		want string
	}{
		{
			name: "panicking ErrorKind falls back to the type name",
			err:  panicKindError{},
			cls:  class.Unexpected,
			want: "[UNEXPECTED] diaglog.panicKindError: kind carrier\n",
		},
		{
			name: "non-canonical kind falls back to the type name",
			err:  invalidKindError{},
			cls:  class.Expected,
			want: "[EXPECTED] diaglog.invalidKindError: bad kind\n",
		},
		{
			name: "typed-nil kinded error degrades without panicking",
			err:  (*kindedError)(nil),
			cls:  class.Expected,
			want: "[EXPECTED] diaglog.kindedError: <unprintable>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger()
			l.LogError(tt.err, tt.cls)
			if got := buf.String(); got != tt.want {
				t.Fatalf("LogError wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithColorKeepsTagText(t *testing.T) {
	// Styling degrades to plain text on non-TTY profiles, so only the tag
	// text itself is asserted.
	l, buf := newBufLogger(WithColor(true))
	l.LogError(errors.New("boom"), class.Unexpected)
	if !strings.Contains(buf.String(), "UNEXPECTED") {
		t.Fatalf("missing tag in %q", buf.String())
	}
}

func TestWithKindNil(t *testing.T) {
	if err := WithKind(nil, kind.MustParse("io.file.missing")); err != nil {
		t.Fatalf("WithKind(nil) = %v, want nil", err)
	}
}
