package main

import "strings"

// parsedSpec is the result of parsing a plugin spec string
// ("module.Class:a,b,kw=val,kw2=val2" per spec.md §6). Grounded on
// codeloader.py: parse_spec, with module/class dynamic loading replaced by
// a built-in name lookup against plan.Registry / halt.Registry (per the
// DESIGN NOTES guidance SPEC_FULL.md's DRIVER CLI section cites): Name is
// the last dotted segment, used as a registry key instead of an import path.
type parsedSpec struct {
	Name   string
	Args   []string
	Kwargs map[string]string
}

// parseSpec parses spec into a parsedSpec. Grounded on codeloader.py:
// parse_spec's name/args split and its positional-vs-keyword argument
// partitioning ("=" present means keyword).
func parseSpec(spec string) parsedSpec {
	name, rest, _ := strings.Cut(spec, ":")

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	out := parsedSpec{Name: name, Kwargs: map[string]string{}}
	if rest == "" {
		return out
	}

	for _, part := range strings.Split(rest, ",") {
		if part == "" {
			continue
		}
		if k, v, ok := strings.Cut(part, "="); ok {
			out.Kwargs[k] = v
		} else {
			out.Args = append(out.Args, part)
		}
	}

	return out
}
