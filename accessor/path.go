package accessor

import (
	"strings"
)

// ParsePath splits path on every occurrence of separator and drops empty
// segments, so "//a//" parses to ["a"] and "" to no segments at all. There
// is no escaping: a key containing the separator cannot be addressed.
func ParsePath(path, separator string) []string {
	if separator == "" {
		panic("accessor: empty separator")
	}

	segments := make([]string, 0, strings.Count(path, separator)+1)
	for _, segment := range strings.Split(path, separator) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}
