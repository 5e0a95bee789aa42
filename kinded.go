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

import "dirpx.dev/diaglog/kind"

// WithKind wraps err so the chain reports k as its error kind. The wrapper
// preserves the message and unwraps to err, so errors.Is / errors.As still
// see the original chain. A nil err returns nil.
func WithKind(err error, k kind.Kind) error {
	if err == nil {
		return nil
	}
	return &kindedError{err: err, kind: k}
}

type kindedError struct {
	err  error
	kind kind.Kind
}

func (e *kindedError) Error() string { return e.err.Error() }

func (e *kindedError) Unwrap() error { return e.err }

// ErrorKind reports the declared kind of the wrapped error.
func (e *kindedError) ErrorKind() kind.Kind { return e.kind }
