package profile

import (
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/profwrap/callable"
)

// Registration is a target known to a Counter.
type Registration struct {
	ID   string
	Name string
	Kind callable.Kind
}

// Stats is a point-in-time copy of a Counter's state.
type Stats struct {
	Registrations []Registration
	Enables       int
	Disables      int
	Depth         int
	// Spans holds one entry per closed enabled period, oldest first.
	Spans []timespan.TimeSpan
}

// Enabled reports whether counting was active when the snapshot was taken.
func (s Stats) Enabled() bool {
	return s.Depth > 0
}

// Busy sums the durations of all closed enabled periods.
func (s Stats) Busy() time.Duration {
	var total time.Duration
	for _, span := range s.Spans {
		total += span.Duration()
	}
	return total
}

// Counter is a LineProfiler that records registrations and enabled periods
// instead of instrumenting code. Nested enables collapse into one period:
// it opens on the first enable and closes when the last one is disabled.
type Counter struct {
	mu     sync.Mutex
	logger *zap.Logger
	now    func() time.Time

	registrations map[uint64]Registration
	order         []uint64

	enables  int
	disables int
	depth    int
	openedAt time.Time
	spans    []timespan.TimeSpan
}

// CounterOption customizes a Counter built by NewCounter.
type CounterOption func(*Counter)

// WithLogger sets the logger used for debug lifecycle messages.
func WithLogger(logger *zap.Logger) CounterOption {
	return func(c *Counter) {
		c.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CounterOption {
	return func(c *Counter) {
		c.now = now
	}
}

// NewCounter returns a Counter with no registrations, logging to a no-op logger.
func NewCounter(opts ...CounterOption) *Counter {
	c := &Counter{
		logger:        zap.NewNop(),
		now:           time.Now,
		registrations: make(map[uint64]Registration),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func registrationKey(target callable.Target) uint64 {
	return xxhash.Sum64String(
		strconv.FormatUint(uint64(target.ID()), 16) + "/" + target.Name() + "/" + target.Kind().String(),
	)
}

// AddFunction registers target. Targets are told apart by the code they run,
// name and kind; registering the same target again keeps the first registration.
func (c *Counter) AddFunction(target callable.Target) {
	key := registrationKey(target)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.registrations[key]; ok {
		return
	}
	reg := Registration{
		ID:   uuid.New().String(),
		Name: target.Name(),
		Kind: target.Kind(),
	}
	c.registrations[key] = reg
	c.order = append(c.order, key)
	c.logger.Sugar().Debugf("registered function for profiling: id: %v, name: %v, kind: %v", reg.ID, reg.Name, reg.Kind)
}

// Registration looks target up.
func (c *Counter) Registration(target callable.Target) (Registration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reg, ok := c.registrations[registrationKey(target)]
	return reg, ok
}

// EnableByCount opens an enabled period unless one is already open.
func (c *Counter) EnableByCount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enables++
	c.depth++
	if c.depth == 1 {
		c.openedAt = c.now()
		c.logger.Sugar().Debugf("profiling enabled at %v", c.openedAt)
	}
}

// DisableByCount is ignored when counting is not active.
func (c *Counter) DisableByCount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth == 0 {
		return
	}
	c.disables++
	c.depth--
	if c.depth == 0 {
		span := timespan.BetweenTimes(c.openedAt, c.now())
		c.spans = append(c.spans, span)
		c.logger.Sugar().Debugf("profiling disabled after %v", span.Duration())
	}
}

// Enabled reports whether counting is active.
func (c *Counter) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth > 0
}

// Stats returns a snapshot of the counter.
func (c *Counter) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	regs := make([]Registration, 0, len(c.order))
	for _, key := range c.order {
		regs = append(regs, c.registrations[key])
	}
	return Stats{
		Registrations: regs,
		Enables:       c.enables,
		Disables:      c.disables,
		Depth:         c.depth,
		Spans:         append([]timespan.TimeSpan(nil), c.spans...),
	}
}

// Reset clears counts and closed spans. Registrations and an open period,
// if any, are kept, and Enables restarts at the depth of that open period.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enables = c.depth
	c.disables = 0
	c.spans = nil
}
