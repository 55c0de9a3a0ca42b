package strengthen

import (
	"strings"
)

// StrSplitSkipEmpty skip empty string
func StrSplitSkipEmpty(s string, sep byte, cap int) []string {
	sv := make([]string, 0, cap)
	var first, i int
	for ; i < len(s); i++ {
		if s[i] != sep {
			continue
		}
		if first != i {
			sv = append(sv, strings.TrimSpace(s[first:i]))
		}
		first = i + 1
	}
	if first < len(s) {
		sv = append(sv, strings.TrimSpace(s[first:]))
	}
	return sv
}

// SimpleAtob parses the common boolean spellings, returning dv for anything else.
func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}
