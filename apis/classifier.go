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
	"dirpx.dev/diaglog/class"
)

// Classifier is an immutable, concurrency-safe view of classification rules.
// It decides whether an error appearing in a transcript was provoked on
// purpose (class.Expected) or is a genuine defect (class.Unexpected).
type Classifier interface {
	// Class returns the classification for the given error.
	// Implementations MUST return a valid class for every input, including
	// nil; a classifier never refuses to answer.
	Class(err error) class.Class

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(err error) string
}
