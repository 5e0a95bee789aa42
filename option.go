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
	"io"

	"dirpx.dev/diaglog/apis"
)

// Option is a functional option for constructing a Logger.
// Intended to be used with New(...).
type Option func(*Logger)

// WithOutput redirects the transcript to w. A nil w keeps the default
// (os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.out = w
		}
	}
}

// WithClassifier sets the classifier consulted by Log when it receives an
// error. Without one, errors logged through Log carry class.Default.
func WithClassifier(c apis.Classifier) Option {
	return func(l *Logger) {
		l.classifier = c
	}
}

// WithColor toggles ANSI styling of the class tag. Off by default so
// transcripts stay byte-stable.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		l.color = enabled
	}
}
