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

// Field is a single labeled value inside a structured dump.
//
// Fields are rendered one per line, indented, in exactly the order the
// Describer returned them. Keeping the order with the implementor (instead
// of sorting map keys at render time) is what makes transcripts stable
// across runs.
type Field struct {
	// Name is the label printed before the colon, e.g. "title" or
	// "page_count". Implementations SHOULD use lowercase, underscore-separated
	// names so dumps read uniformly across payload types.
	Name string

	// Value is the value printed after the colon. It is rendered with the
	// logger's usual value rendering, so it may itself be a Stringer or a
	// plain primitive.
	Value any
}

// Describer is implemented by payloads that can present themselves as an
// ordered list of labeled fields.
//
// This is the explicit alternative to reflection-based object dumps: a type
// that implements Describer controls exactly which fields appear in the
// transcript and in which order. Values that do not implement Describer are
// still renderable (the logger falls back to a generic deep dump), but
// demo payloads are expected to implement it.
type Describer interface {
	// Describe returns the fields to print, in display order. It may return
	// nil for "nothing to show". Implementations SHOULD NOT retain or mutate
	// the returned slice after handing it out.
	Describe() []Field
}
