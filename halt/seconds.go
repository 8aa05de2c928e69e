package halt

import (
	"context"
	"fmt"
	"time"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

// DefaultTimeout is Seconds' default timeout when a spec string omits one
// (§4.2's parameter table: "timeout (default 30s)").
const DefaultTimeout = 30 * time.Second

// Seconds stops once Timeout has elapsed since Start, the only time-based
// halt condition (§5's cooperative-cancellation model: checked
// opportunistically once per emitted step, never preemptively).
type Seconds struct {
	Timeout time.Duration

	now func() time.Time
	t1  time.Time
}

// NewSeconds constructs a Seconds halt condition with the given timeout,
// taken literally — callers wanting the spec default pass
// halt.DefaultTimeout explicitly, so Seconds(0) still means "done
// immediately" (Testable Property 9).
func NewSeconds(timeout time.Duration) *Seconds {
	return &Seconds{Timeout: timeout, now: time.Now}
}

func (s *Seconds) Start(_ context.Context, _ *graph.Graph) error {
	if s.now == nil {
		s.now = time.Now
	}
	s.t1 = s.now().Add(s.Timeout)
	return nil
}

func (s *Seconds) Add(step.Step) {}

func (s *Seconds) IsDone() bool { return !s.now().Before(s.t1) }

func (s *Seconds) Progress() string {
	if s.Timeout <= 0 {
		return "100%"
	}
	elapsed := s.Timeout - s.t1.Sub(s.now())
	return fmt.Sprintf("%d%%", int(100*elapsed/s.Timeout))
}
