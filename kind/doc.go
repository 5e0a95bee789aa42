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

// Package kind provides parsing, normalization and validation for diaglog
// error kinds.
//
// A "kind" is a hierarchical, dot-separated classification of an error, such
// as "book.publish.duplicate" or "net.dns.resolve". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated within a segment (not dash-separated);
//   - suitable for use in JSON payloads and for prefix matching in
//     classification rules.
//
// Unlike a message, a kind is machine-usable: classifiers match on it, and
// the logger prints it in front of the message so a reader of a demo
// transcript can see at a glance which failure was triggered.
//
// The empty kind ("") is allowed and means "no kind attached". Errors without
// a kind are still loggable; they simply fall back to type-based naming.
package kind
