package expander

import (
	"fmt"
	"strings"
)

// UnresolvableIncludeError reports a quoted include that matched no file in
// any search directory. All paths are display paths.
type UnresolvableIncludeError struct {
	Header   string
	From     string
	Searched []string
}

func (e *UnresolvableIncludeError) Error() string {
	return fmt.Sprintf("cannot resolve include %q from %s (searched: %s)",
		e.Header, e.From, strings.Join(e.Searched, ", "))
}
