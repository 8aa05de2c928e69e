package plan

import (
	"fmt"
	"strconv"
)

// Constructor builds a Planner from a spec string's positional and
// keyword arguments (see cmd/graphwalker/spec.go's parser, grounded on
// codeloader.py: parse_spec), mirroring halt.Constructor/halt.Registry.
type Constructor func(args []string, kwargs map[string]string) (Planner, error)

// Registry maps a planner's name (as used in --planner=Name:...) to its
// Constructor. MasterPlan is deliberately absent: it is built by chaining
// multiple resolved planners, not constructed from a single spec string.
var Registry = map[string]Constructor{
	"EvenRandom": func(args []string, kwargs map[string]string) (Planner, error) {
		seed, err := seedArg(args, kwargs)
		if err != nil {
			return nil, fmt.Errorf("plan: EvenRandom: %w", err)
		}
		return NewEvenRandom(seed), nil
	},
	"Random": func(args []string, kwargs map[string]string) (Planner, error) {
		seed, err := seedArg(args, kwargs)
		if err != nil {
			return nil, fmt.Errorf("plan: Random: %w", err)
		}
		return NewRandom(seed), nil
	},
	"Euler": func([]string, map[string]string) (Planner, error) {
		return NewEuler(), nil
	},
	"Goto": func(args []string, kwargs map[string]string) (Planner, error) {
		repeat := 1
		if raw, ok := kwargs["repeat"]; ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("plan: Goto: bad repeat %q: %w", raw, err)
			}
			repeat = n
		}
		seed, err := seedArg(nil, kwargs)
		if err != nil {
			return nil, fmt.Errorf("plan: Goto: %w", err)
		}
		return NewGoto(args, repeat, seed), nil
	},
	"Interactive": func([]string, map[string]string) (Planner, error) {
		return NewInteractive(), nil
	},
}

func seedArg(args []string, kwargs map[string]string) (int64, error) {
	raw, ok := firstArg(args, kwargs, "seed")
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad seed %q: %w", raw, err)
	}
	return n, nil
}

// firstArg returns args[0] if present, else kwargs[key].
func firstArg(args []string, kwargs map[string]string, key string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	v, ok := kwargs[key]
	return v, ok
}
