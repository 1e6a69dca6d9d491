package export

import "strings"

// SelectTarget picks at most one clipboard type identifier from the
// advertised set. Any image/* target beats any text target; among
// images the first in enumeration order wins (the owner's order, not a
// quality ranking). With no image present, the first identifier equal
// to text/plain or UTF8_STRING is chosen. ok is false when neither
// scan matches.
func SelectTarget(targets []string) (target string, ok bool) {
	for _, t := range targets {
		if strings.HasPrefix(t, "image/") {
			return t, true
		}
	}
	for _, t := range targets {
		if t == "text/plain" || t == "UTF8_STRING" {
			return t, true
		}
	}
	return "", false
}
