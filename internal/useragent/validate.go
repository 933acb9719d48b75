package useragent

import "strings"

var (
	browserMarkers = []string{"Chrome", "Firefox", "Safari", "Edg"}
	osMarkers      = []string{"Windows", "Mac OS X", "Linux", "X11"}
)

// Valid reports whether ua passes the structural sanity checks applied
// to every synthesized string: a Mozilla/5.0 prefix, balanced
// parentheses, a minimum length, and at least one known browser and OS
// marker.
func Valid(ua string) bool {
	if !strings.HasPrefix(ua, "Mozilla/5.0") {
		return false
	}
	if strings.Count(ua, "(") != strings.Count(ua, ")") {
		return false
	}
	if len(ua) < 30 {
		return false
	}
	if !containsAny(ua, browserMarkers) {
		return false
	}
	return containsAny(ua, osMarkers)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
