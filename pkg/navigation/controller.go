package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrBusy            = errors.New("navigation in progress")
	ErrStaleTransition = errors.New("transition is no longer pending")
	ErrUnknownPage     = errors.New("unknown page")
)

// DefaultMinDisplay is how long the loading indicator stays up on forward
// navigation.
const DefaultMinDisplay = 500 * time.Millisecond

// Transition is a forward navigation that has started but not landed.
type Transition struct {
	id   uint64
	dest Destination
}

func (t *Transition) Page() Page {
	return t.dest.page
}

// Controller owns the navigation State. At most one transition is pending
// at a time.
type Controller struct {
	mu         sync.Mutex
	state      State
	pending    *Transition
	seq        uint64
	minDisplay time.Duration
	logger     *zap.Logger
}

func NewController(minDisplay time.Duration, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if minDisplay < 0 {
		minDisplay = 0
	}
	return &Controller{
		state:      State{Page: Home},
		minDisplay: minDisplay,
		logger:     logger,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Page() Page {
	return c.State().Page
}

func (c *Controller) MinDisplay() time.Duration {
	return c.minDisplay
}

// Busy reports whether a forward transition is pending.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// BackVisible is false exactly on the home page.
func (c *Controller) BackVisible() bool {
	return c.Page() != Home
}

// Begin starts a forward transition. The caller shows the loading
// indicator, waits MinDisplay and then calls Commit or Abort.
func (c *Controller) Begin(dest Destination) (*Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return nil, ErrBusy
	}
	if err := dest.validate(); err != nil {
		c.logger.Warn("navigation aborted",
			zap.Stringer("from", c.state.Page),
			zap.Stringer("to", dest.page),
			zap.Error(err))
		return nil, fmt.Errorf("navigate to %s: %w", dest.page, err)
	}

	c.seq++
	c.pending = &Transition{id: c.seq, dest: dest}
	c.logger.Debug("navigation started", zap.Stringer("from", c.state.Page), zap.Stringer("to", dest.page))
	return c.pending, nil
}

// Commit lands a pending transition and returns the new state.
func (c *Controller) Commit(t *Transition) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t == nil || c.pending == nil || c.pending.id != t.id {
		return c.state, ErrStaleTransition
	}
	c.state = t.dest.apply(c.state)
	c.pending = nil
	return c.state, nil
}

// Abort drops a pending transition without touching the state.
func (c *Controller) Abort(t *Transition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t != nil && c.pending != nil && c.pending.id == t.id {
		c.pending = nil
	}
}

// Navigate runs a whole forward transition and returns once it has landed.
// Cancelling ctx aborts it with the state untouched.
func (c *Controller) Navigate(ctx context.Context, dest Destination) (State, error) {
	t, err := c.Begin(dest)
	if err != nil {
		return c.State(), err
	}

	timer := time.NewTimer(c.minDisplay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		c.Abort(t)
		return c.State(), ctx.Err()
	case <-timer.C:
	}
	return c.Commit(t)
}

// Back follows the back edge of the current page. It applies immediately,
// without a loading phase.
func (c *Controller) Back() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return c.state, ErrBusy
	}

	from := c.state.Page
	edge, ok := BackEdge(from)
	if !ok {
		c.state = State{Page: Home}
		return c.state, nil
	}

	target := edge.Target
	switch edge.Requires {
	case RequiresCourse:
		if c.state.Course == nil {
			target = Home
		}
	case RequiresTeacher:
		if c.state.Teacher == nil {
			target = Home
		}
	}

	switch target {
	case Home:
		c.state = State{Page: Home}
	case Teachers:
		c.state.Teacher = nil
		c.state.Lecture = nil
	case Teacher:
		c.state.Lecture = nil
	case Exams:
		c.state.Subject = nil
	}
	c.state.Page = target

	c.logger.Debug("navigated back", zap.Stringer("from", from), zap.Stringer("to", target))
	return c.state, nil
}
