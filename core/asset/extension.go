package asset

import (
	"regexp"
	"strings"
)

// Extension returns the file extension of url, dot included.
// Path segments, the query string and the fragment are ignored; the case is preserved.
//
//	Extension("a/b/c.png?x=1#y") // ".png"
func Extension(url string) string {
	if idx := strings.LastIndex(url, "/"); idx != -1 {
		url = url[idx+1:]
	}
	if idx := strings.Index(url, "?"); idx != -1 {
		url = url[:idx]
	}
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	if idx := strings.LastIndex(url, "."); idx != -1 {
		return url[idx:]
	}
	return ""
}

// MatchPattern returns a matcher accepting extensions that end with the given
// alternation, case-insensitively. MatchPattern("jpe?g|png") accepts ".JPG".
func MatchPattern(alternation string) MatchFunc {
	re := regexp.MustCompile(`(?i)\.(` + alternation + `)$`)
	return re.MatchString
}

// MatchExtensions returns a matcher accepting any of exts, case-insensitively.
// Entries may be given with or without the leading dot.
func MatchExtensions(exts ...string) MatchFunc {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set["."+strings.TrimPrefix(strings.ToLower(ext), ".")] = struct{}{}
	}
	return func(ext string) bool {
		_, ok := set[strings.ToLower(ext)]
		return ok
	}
}
