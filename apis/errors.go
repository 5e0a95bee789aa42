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

package apis

import (
	"errors"

	"dirpx.dev/diaglog/kind"
)

// KindedError represents an error that carries a machine-usable *kind*: a
// hierarchical, dot-separated category such as "book.publish.duplicate" or
// "net.dns.resolve".
//
// While the message answers "what happened?", the kind answers "which
// category of failure is this?". The logger prints the kind in front of the
// message, and classifiers match rules against it.
//
// Implementations are expected to return a *canonicalized* kind, i.e.
// normalized to the format enforced by the diaglog/kind package (lowercase,
// dot-separated, length limits, etc.). Callers should not try to "fix" the
// value here; an invalid kind simply falls back to type-based naming at the
// logging boundary.
type KindedError interface {
	error

	// ErrorKind returns the kind of the error.
	//
	// The returned value MAY be kind.Empty when the error does not carry a
	// more specific category. Callers should be prepared for the empty case.
	ErrorKind() kind.Kind
}

// KindOf extracts the kind from an error chain.
//
// It walks the chain with errors.As and returns the kind of the first
// KindedError encountered, or kind.Empty when the chain carries none.
// A nil error has no kind.
func KindOf(err error) kind.Kind {
	if err == nil {
		return kind.Empty
	}
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.ErrorKind()
	}
	return kind.Empty
}
