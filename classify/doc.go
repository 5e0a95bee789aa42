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

// Package classify provides deterministic, immutable classification of
// errors into "expected" (deliberately provoked by demonstration code) and
// "unexpected" (a genuine defect).
//
// # Overview
//
// In diaglog an error appearing in a transcript is described in two parts:
//
//  1. an optional hierarchical Kind (e.g. "book.publish.duplicate"),
//  2. the error identity itself (sentinel values, wrapped chains).
//
// Demo scripts usually know exactly which failures they trigger. Instead of
// passing an expected/unexpected flag at every call site, a script can build
// a Classifier once, list the failures it intends to provoke, and let
// Logger.Log consult it. The classifier is:
//
//   - immutable: a Classifier is a snapshot, safe for concurrent reuse;
//   - identity-aware: sentinel errors match through wrapped chains;
//   - prefix-aware: kind rules match whole subtrees of failure categories.
//
// # Resolution model
//
// A Classifier resolves the class in the following order:
//
//  1. sentinel rule (errors.Is against registered targets, in order);
//  2. exact override for the error's Kind;
//  3. longest-prefix-match (LPM) on the Kind;
//  4. the default class (expected, unless overridden).
//
// Prefix rules are segment-aware: kinds are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithPrefix("book.publish", class.Expected)
//	WithPrefix("io.*.missing", class.Expected)
//
// The more specific pattern wins.
//
// # Building a classifier
//
// A Classifier is created once and reused:
//
//	c, err := classify.New(
//	    classify.WithSentinel(book.ErrAlreadyPublished, class.Expected),
//	    classify.WithPrefix("net.dns", class.Unexpected),
//	)
//	if err != nil {
//	    // invalid pattern, etc.
//	}
//
//	l := diaglog.New(diaglog.WithClassifier(c))
//	l.Log(err) // tag picked by the classifier
//
// # Diagnostics
//
// For debugging and tests, Classifier.Explain returns a human-readable trace
// of how a particular error was resolved, including which tier matched and,
// for prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Classifier does not observe further changes to the caller's slices or
// maps. This makes it safe to share a single instance across demo scripts
// and goroutines.
package classify
