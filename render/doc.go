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

// Package render turns arbitrary values into transcript text.
//
// The preferred path for structured payloads is the explicit
// apis.Describer contract: the payload decides which fields appear and in
// which order, and render prints them one per line, indented. Values that
// implement neither Describer nor fmt.Stringer fall back to a configured
// go-spew dump, and protobuf messages render through prototext.
//
// The package also knows how to pull a pkg/errors capture stack out of an
// error chain, which is what gives logged errors their origin information.
//
// Every entry point is a sink: it may degrade the output, but it never
// returns an error and never panics.
package render
