package reconcile

import "strings"

// TeamDelimiter separates player names inside a roster string.
const TeamDelimiter = "|"

// ParseTeam parses a roster string of the form "[Name1|Name2|Name3]".
// One layer of enclosing brackets is removed when both are present, names are
// trimmed and empty names dropped. Order and duplicates are preserved.
func ParseTeam(raw string) []string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	names := []string{}
	for _, part := range strings.Split(s, TeamDelimiter) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
