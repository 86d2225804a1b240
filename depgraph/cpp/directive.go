// Package cpp recognizes and resolves C++ include directives.
package cpp

import "regexp"

// ws matches any Unicode whitespace, including NBSP and U+3000.
const ws = `[\s\x{0b}\x{1c}-\x{1f}\x{85}\p{Z}]`

// includeDirective matches a whole line holding a single include directive.
// Trailing comments or other text after the closing delimiter do not match.
var includeDirective = regexp.MustCompile(`^` + ws + `*#` + ws + `*include` + ws + `*([<"])([^>"]+)[>"]` + ws + `*$`)

// MatchDirective classifies line as an include directive. The line may carry
// its line terminator. Lines that are not strict directives report false.
func MatchDirective(line string) (Include, bool) {
	m := includeDirective.FindStringSubmatch(line)
	if m == nil {
		return Include{}, false
	}

	kind := IncludeLocal
	if m[1] == "<" {
		kind = IncludeSystem
	}
	return Include{Path: m[2], Kind: kind}, true
}
