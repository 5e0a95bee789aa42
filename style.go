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

package diaglog

import "github.com/charmbracelet/lipgloss"

// Tag styles used when color output is enabled: green for expected
// outcomes, bold red for unexpected ones.
var (
	expectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unexpectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
