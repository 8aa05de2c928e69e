package graph

import "strings"

// ParseLabel splits a raw vertex/edge label into a name and an extras map,
// per §6's grammar: the first line is the name; each subsequent line is
// either "key=value" (trimmed on both sides) or a bare "key", which is
// recorded as "true". Grounded on graph.py: parse_name.
//
// A label with no newline is just a name with nil extras.
func ParseLabel(label string) (name string, extras map[string]string) {
	if !strings.Contains(label, "\n") {
		return label, nil
	}

	lines := strings.Split(label, "\n")
	name = lines[0]
	extras = make(map[string]string, len(lines)-1)

	for _, line := range lines[1:] {
		if k, v, ok := strings.Cut(line, "="); ok {
			extras[strings.TrimSpace(k)] = strings.TrimSpace(v)
		} else {
			extras[strings.TrimSpace(line)] = "true"
		}
	}

	return name, extras
}
