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

package zapx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/diaglog"
	"dirpx.dev/diaglog/class"
)

func newObserved(t *testing.T) (*Writer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	return NewWriter(zap.New(core)), logs
}

func TestWriterSplitsLines(t *testing.T) {
	w, logs := newObserved(t)

	n, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Message)
	assert.Equal(t, "two", entries[1].Message)
}

func TestWriterBuffersPartialLines(t *testing.T) {
	w, logs := newObserved(t)

	_, _ = w.Write([]byte("hel"))
	assert.Empty(t, logs.All())

	_, _ = w.Write([]byte("lo\nwor"))
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "hello", logs.All()[0].Message)

	w.Flush()
	require.Len(t, logs.All(), 2)
	assert.Equal(t, "wor", logs.All()[1].Message)

	// Flush on an empty buffer is a no-op.
	w.Flush()
	assert.Len(t, logs.All(), 2)
}

func TestNewWriterNilLogger(t *testing.T) {
	w := NewWriter(nil)
	_, err := w.Write([]byte("dropped\n"))
	assert.NoError(t, err)
}

func TestTranscriptThroughZap(t *testing.T) {
	w, logs := newObserved(t)
	l := diaglog.New(diaglog.WithOutput(w))

	l.LineSeparator(diaglog.WithInsert("HI"), diaglog.WithWidth(10))
	l.Log("hello")
	l.LogError(errors.New("boom"), class.Unexpected)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "--- HI ---", entries[0].Message)
	assert.Equal(t, "hello", entries[1].Message)
	assert.Equal(t, "[UNEXPECTED] error: boom", entries[2].Message)
}
