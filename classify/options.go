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

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Classifier.
type Option func(*builder)

// WithSentinel registers an identity rule: any error whose chain contains
// target (per errors.Is) gets class c. Sentinel rules have the highest
// precedence and are checked in registration order.
func WithSentinel(target error, c class.Class) Option {
	return func(b *builder) {
		if target == nil {
			return
		}
		b.sentinels = append(b.sentinels, sentinelRule{target: target, cls: c})
	}
}

// WithOverride registers an exact per-kind class for the given kind.
// Overrides take precedence over prefix rules but sit below sentinel rules.
func WithOverride(k kind.Kind, c class.Class) Option {
	return func(b *builder) { b.overrides[k] = c }
}

// WithPrefix adds a longest-prefix-match rule on the error kind. The rule is
// evaluated against the kind (dot-separated); a more specific pattern wins.
// Use "*" to match a single segment.
func WithPrefix(pattern string, c class.Class) Option {
	return func(b *builder) { b.prefixes = append(b.prefixes, prefixRule{pattern, c}) }
}

// WithDefault sets the class returned when no rule matches.
// Without this option the default is class.Default (expected).
func WithDefault(c class.Class) Option {
	return func(b *builder) { b.def = c }
}
