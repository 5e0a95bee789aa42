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

// Package class defines the two-valued classification of logged errors.
//
// A "class" answers one question about an error appearing in a demo
// transcript: was it provoked on purpose ("expected") or is it a genuine
// defect ("unexpected")? The class changes nothing about control flow; it
// only changes the tag printed in front of the error line, for the benefit
// of a human reading the output.
//
// The type follows the same contract as the other validated value types in
// this module: Parse/MustParse/Normalize/Validate plus TextMarshaler /
// TextUnmarshaler, so a Class can be embedded in config structs and rule
// files without custom glue.
package class
