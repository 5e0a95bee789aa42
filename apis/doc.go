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

// Package apis holds the small, shared contracts of the diaglog module.
//
// It exists so that the logger core, the renderers and the transport
// adapters (grpcx, httpx, zapx) can talk about "a value that can describe
// itself", "an error with a kind" or "something that classifies errors"
// without importing each other's concrete implementations.
//
// Nothing in this package has behavior; it is interfaces and one value type.
package apis
