package halt

import (
	"fmt"
	"strconv"
	"time"
)

// Constructor builds a Condition from a spec string's positional and
// keyword arguments (see cmd/graphwalker/spec.go's parser, grounded on
// codeloader.py: parse_spec). This is the "built-in registry keyed by
// name" the DESIGN NOTES recommend in place of Python's dynamic class
// loading.
type Constructor func(args []string, kwargs map[string]string) (Condition, error)

// Registry maps a halt condition's name (as used in --stopcond=Name:...)
// to its Constructor.
var Registry = map[string]Constructor{
	"Never": func([]string, map[string]string) (Condition, error) {
		return &Never{}, nil
	},
	"Seconds": func(args []string, kwargs map[string]string) (Condition, error) {
		timeout := DefaultTimeout
		if raw, ok := firstArg(args, kwargs, "timeout"); ok {
			secs, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("halt: Seconds: bad timeout %q: %w", raw, err)
			}
			timeout = time.Duration(secs * float64(time.Second))
		}
		return NewSeconds(timeout), nil
	},
	"SeenSteps": func(args []string, kwargs map[string]string) (Condition, error) {
		return NewSeenSteps(args...), nil
	},
	"CountSteps": func(args []string, kwargs map[string]string) (Condition, error) {
		n := DefaultSteps
		if raw, ok := firstArg(args, kwargs, "steps"); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("halt: CountSteps: bad steps %q: %w", raw, err)
			}
			n = parsed
		}
		return NewCountSteps(n), nil
	},
	"Coverage": func(args []string, kwargs map[string]string) (Condition, error) {
		opts := CoverageOptions{}
		if raw, ok := kwargs["edges"]; ok {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("halt: Coverage: bad edges %q: %w", raw, err)
			}
			opts.Edges = v
		}
		if raw, ok := kwargs["vertices"]; ok {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("halt: Coverage: bad vertices %q: %w", raw, err)
			}
			opts.Vertices = v
		}
		return NewCoverage(opts)
	},
}

// firstArg returns args[0] if present, else kwargs[key].
func firstArg(args []string, kwargs map[string]string, key string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	v, ok := kwargs[key]
	return v, ok
}
