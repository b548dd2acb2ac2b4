// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import "regexp"

// Macro wire format: @tag|default@ where tag is an identifier and the
// default is the stock value verbatim, up to the closing delimiter.
// Only one span per line is supported; a second pair on the same line
// is undefined behavior and is left alone.
var macroRE = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)\|([^@]*)@`)

// 🎯 Macro is a single placeholder found in a line of text
type Macro struct {
	// Tag is the identifier keying into the rule table
	Tag string

	// Default is the literal stock value captured from the template
	Default string

	// Start/End delimit the full @tag|default@ span within the line,
	// for splicing the replacement in place
	Start int
	End   int
}

// 🔍 FindMacro returns the first macro span in a line, if any
func FindMacro(line string) (*Macro, bool) {
	m := macroRE.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, false
	}
	return &Macro{
		Tag:     line[m[2]:m[3]],
		Default: line[m[4]:m[5]],
		Start:   m[0],
		End:     m[1],
	}, true
}

// 🧵 Splice replaces the macro span in line with the given value,
// leaving the rest of the line untouched
func (m *Macro) Splice(line, value string) string {
	return line[:m.Start] + value + line[m.End:]
}
