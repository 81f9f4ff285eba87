package mystery

import (
	"fmt"
	"strings"
)

// UnknownNameError reports a candidate name outside the registered group.
// The session state is unchanged and the caller can retry.
type UnknownNameError struct {
	Group Group
	Name  string
}

func (err *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %v %q", err.Group, err.Name)
}

// AmbiguousNameError reports a partial name that matches several candidates
// of the group.
type AmbiguousNameError struct {
	Group   Group
	Name    string
	Matches []string
}

func (err *AmbiguousNameError) Error() string {
	return fmt.Sprintf("%v %q is ambiguous, matches: %v", err.Group, err.Name, strings.Join(err.Matches, ", "))
}
