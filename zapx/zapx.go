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

// Package zapx forwards diaglog transcripts into a zap logger, so demo
// output can be captured by a structured logging pipeline instead of a
// terminal.
package zapx

import (
	"bytes"

	"go.uber.org/zap"
)

// Writer is an io.Writer that emits one zap entry per transcript line.
// Multi-line chunks (field dumps, stack traces) become one entry per line.
//
// Writer buffers incomplete lines between writes; call Flush to emit a
// trailing partial line. Not safe for concurrent use, matching the
// strictly synchronous Logger it is meant to back.
type Writer struct {
	log     *zap.Logger
	pending []byte
}

// NewWriter wraps log into a line-splitting writer. A nil log falls back
// to zap.NewNop.
func NewWriter(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log}
}

// Write never fails; it always reports the full chunk as written.
func (w *Writer) Write(p []byte) (int, error) {
	data := p
	if len(w.pending) > 0 {
		data = append(w.pending, p...)
	}
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		w.log.Info(string(data[:i]))
		data = data[i+1:]
	}
	w.pending = append(w.pending[:0], data...)
	return len(p), nil
}

// Flush emits any buffered partial line as its own entry.
func (w *Writer) Flush() {
	if len(w.pending) == 0 {
		return
	}
	w.log.Info(string(w.pending))
	w.pending = w.pending[:0]
}
