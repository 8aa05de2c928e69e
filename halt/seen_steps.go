package halt

import (
	"context"
	"fmt"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

// SeenSteps stops once every target name has been visited at least once.
// An empty target set is done immediately (Testable Property 11).
type SeenSteps struct {
	Targets map[string]struct{}

	seen map[string]struct{}
}

// NewSeenSteps constructs a SeenSteps halt condition over the given target
// names.
func NewSeenSteps(targets ...string) *SeenSteps {
	t := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		t[name] = struct{}{}
	}
	return &SeenSteps{Targets: t}
}

func (s *SeenSteps) Start(context.Context, *graph.Graph) error {
	s.seen = make(map[string]struct{})
	return nil
}

func (s *SeenSteps) Add(st step.Step) { s.seen[st.Name] = struct{}{} }

func (s *SeenSteps) IsDone() bool {
	for name := range s.Targets {
		if _, ok := s.seen[name]; !ok {
			return false
		}
	}
	return true
}

func (s *SeenSteps) Progress() string {
	hit := 0
	for name := range s.Targets {
		if _, ok := s.seen[name]; ok {
			hit++
		}
	}
	return fmt.Sprintf("%d/%d", hit, len(s.Targets))
}
