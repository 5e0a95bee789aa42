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

package classify

import (
	"dirpx.dev/diaglog/class"
	"dirpx.dev/diaglog/kind"
)

// sentinelRule binds a target error (matched with errors.Is) to a class.
// Sentinel rules are checked in registration order; the first hit wins.
type sentinelRule struct {
	target error
	cls    class.Class
}

// prefixRule is a raw, dot-separated kind pattern (may contain "*") together
// with the class to apply when it matches. It is validated/normalized when
// the trie is built.
type prefixRule struct {
	pattern string
	cls     class.Class
}

type builder struct {
	// sentinels are identity rules, highest precedence.
	sentinels []sentinelRule

	// overrides holds exact per-kind classes (above prefix rules).
	overrides map[kind.Kind]class.Class

	// prefixes holds LPM rules, compiled into a segment trie in New().
	prefixes []prefixRule

	// def is the class used when no rule matches at all.
	def class.Class
}

// newBuilder creates an empty builder.
//
// The default class is class.Default (expected): demo scripts log errors
// they provoked themselves far more often than genuine defects.
func newBuilder() *builder {
	return &builder{
		overrides: make(map[kind.Kind]class.Class),
		def:       class.Default,
	}
}
