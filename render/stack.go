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
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is the contract github.com/pkg/errors attaches to errors
// created with errors.New / WithStack / Wrap. It is not exported there, so
// we re-declare it here the way that library documents.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack extracts and formats the capture stack of an error chain.
//
// It walks the chain with errors.As and formats the first stack found as
// one frame per pair of lines (function, then file:line), matching the
// "%+v" rendering of pkg/errors. It returns ("", false) when the chain
// carries no stack; plain stdlib errors never do.
func Stack(err error) (out string, ok bool) {
	if err == nil {
		return "", false
	}
	// Both the errors.As walk and StackTrace() run user code; a panic in
	// either means no stack.
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	var st stackTracer
	if !errors.As(err, &st) {
		return "", false
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return "", false
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", frames), "\n"), true
}
