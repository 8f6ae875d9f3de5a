package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Driver is the single owner of a grid while a search animates over it.
//
// All methods are safe for concurrent use. Hooks run after the driver lock
// is released, so they may call back into the Driver.
type Driver struct {
	mu    sync.Mutex
	grid  *grid.Grid
	opts  Options
	state State

	searcher search.Searcher
	trace    search.Trace
	result   search.Result
	finished bool // result is valid

	rateCh chan struct{} // wakes Run after SetRate
}

// New returns an Idle driver over g.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - ErrOptionViolation for an invalid option.
//   - search.ErrUnknownAlgorithm for an unknown algorithm.
func New(g *grid.Grid, opts ...Option) (*Driver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := checkAlgorithm(cfg.Algorithm); err != nil {
		return nil, err
	}

	return &Driver{
		grid:   g,
		opts:   cfg,
		rateCh: make(chan struct{}, 1),
	}, nil
}

// Grid returns the driven grid. Mutate it through the Driver's edit methods;
// direct writes bypass the busy check.
func (d *Driver) Grid() *grid.Grid { return d.grid }

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Algorithm returns the algorithm used by the next Start.
func (d *Driver) Algorithm() search.Algorithm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts.Algorithm
}

// Result returns the outcome of the last finished search and whether one exists.
func (d *Driver) Result() (search.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result, d.finished
}

// Trace returns a copy of the steps applied so far by the current search.
func (d *Driver) Trace() search.Trace {
	d.mu.Lock()
	defer d.mu.Unlock()
	steps := make([]search.Step, len(d.trace.Steps))
	copy(steps, d.trace.Steps)
	return search.Trace{Steps: steps}
}

// Snapshot returns an immutable copy of the grid for rendering.
func (d *Driver) Snapshot() *grid.Snapshot {
	return d.grid.Snapshot()
}

//-------------------------------------------------------------------------//
// Controls
//-------------------------------------------------------------------------//

// Start clears previous annotations and begins a new search.
// Allowed from Idle and Finished. On a configuration error the driver stays
// (or becomes) Idle and the error from search.New is returned.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Active() {
		return fmt.Errorf("%w: start while %v", ErrInvalidTransition, d.state)
	}
	d.discardLocked()

	s, err := search.New(d.opts.Algorithm, d.grid.Snapshot())
	if err != nil {
		Logger().Debug("driver: start rejected", "err", err)
		return err
	}
	d.searcher = s
	d.state = Running
	Logger().Info("driver: search started",
		"algorithm", d.opts.Algorithm.String(),
		"rows", d.grid.Rows(), "cols", d.grid.Cols(), "conn", d.grid.Conn().String())

	return nil
}

// Pause suspends a Running search.
func (d *Driver) Pause() error {
	return d.transition(Running, Paused)
}

// Resume continues a Paused search.
func (d *Driver) Resume() error {
	return d.transition(Paused, Running)
}

// TogglePause pauses a Running search or resumes a Paused one and returns
// the new state.
func (d *Driver) TogglePause() (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Running:
		d.state = Paused
	case Paused:
		d.state = Running
	default:
		return d.state, fmt.Errorf("%w: toggle pause while %v", ErrInvalidTransition, d.state)
	}
	return d.state, nil
}

// Clear abandons any search, removes all annotations and returns to Idle.
// Walls and endpoints are kept. Clear is valid in every state.
func (d *Driver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.discardLocked()
}

// SetAlgorithm selects the algorithm for the next Start.
// Rejected with ErrBusy while a search is active; from Finished the old
// search is discarded.
func (d *Driver) SetAlgorithm(a search.Algorithm) error {
	if err := checkAlgorithm(a); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("set algorithm"); err != nil {
		return err
	}
	d.opts.Algorithm = a
	return nil
}

// SetRate changes the ticks per second. It is accepted in every state and
// takes effect on the next tick of Run without restarting the search.
func (d *Driver) SetRate(r float64) error {
	if err := validateRate(r); err != nil {
		return err
	}
	d.mu.Lock()
	d.opts.Rate = r
	d.mu.Unlock()

	select {
	case d.rateCh <- struct{}{}:
	default:
	}
	return nil
}

// Rate returns the ticks per second.
func (d *Driver) Rate() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts.Rate
}

// Interval returns the time between ticks: one second divided by Rate,
// never less than one nanosecond.
func (d *Driver) Interval() time.Duration {
	iv := time.Duration(float64(time.Second) / d.Rate())
	if iv < 1 {
		iv = 1
	}
	return iv
}

// SetStepsPerTick changes how many search steps each tick applies.
func (d *Driver) SetStepsPerTick(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: StepsPerTick must be ≥ 1 (%d)", ErrOptionViolation, n)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opts.StepsPerTick = n
	return nil
}

//-------------------------------------------------------------------------//
// Ticking
//-------------------------------------------------------------------------//

// Tick applies up to StepsPerTick steps of a Running search to the grid and
// returns how many were applied along with the resulting state. Outside
// Running it does nothing. The search becomes Finished as soon as the
// searcher reports Done.
func (d *Driver) Tick() (int, State) {
	d.mu.Lock()
	if d.state != Running {
		st := d.state
		d.mu.Unlock()
		return 0, st
	}
	return d.advance(d.opts.StepsPerTick)
}

// Step applies exactly one search step while Running or Paused, leaving
// the state unchanged unless the search finishes. Single-stepping a Paused
// search is the usual use.
func (d *Driver) Step() (State, error) {
	d.mu.Lock()
	if !d.state.Active() {
		st := d.state
		d.mu.Unlock()
		return st, fmt.Errorf("%w: step while %v", ErrInvalidTransition, st)
	}
	_, st := d.advance(1)
	return st, nil
}

// advance applies up to n steps; the caller holds d.mu, which advance
// releases before running hooks.
func (d *Driver) advance(n int) (int, State) {
	var applied []search.Step
	for i := 0; i < n; i++ {
		step, ok := d.searcher.Next()
		if ok {
			d.grid.Apply(step.Changes...)
			d.trace.Append(step)
			applied = append(applied, step)
		}
		if !ok || d.searcher.Done() {
			d.finishLocked()
			break
		}
	}
	st := d.state
	res, justFinished := d.result, st == Finished
	onStep, onFinish := d.opts.OnStep, d.opts.OnFinish
	d.mu.Unlock()

	Logger().Debug("driver: advance", "steps", len(applied), "state", st.String())
	for _, step := range applied {
		onStep(step)
	}
	if justFinished {
		onFinish(res)
	}

	return len(applied), st
}

// Run ticks the driver at its current Rate until ctx is done, and returns
// ctx.Err(). Rate changes take effect immediately: the pending tick is
// rescheduled with the new interval.
func (d *Driver) Run(ctx context.Context) error {
	timer := time.NewTimer(d.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.rateCh:
			timer.Reset(d.Interval())
		case <-timer.C:
			d.Tick()
			timer.Reset(d.Interval())
		}
	}
}

//-------------------------------------------------------------------------//
// Edits
//-------------------------------------------------------------------------//

// ToggleWall flips p between Open and Wall. It reports whether the grid
// changed (endpoints and out-of-bounds cells are left alone).
func (d *Driver) ToggleWall(p grid.Pos) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("toggle wall"); err != nil {
		return false, err
	}
	return d.grid.ToggleWall(p), nil
}

// SetWall makes p a wall (wall=true) or open (wall=false).
func (d *Driver) SetWall(p grid.Pos, wall bool) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("set wall"); err != nil {
		return false, err
	}
	return d.grid.SetWall(p, wall), nil
}

// SetStart moves Start to p.
func (d *Driver) SetStart(p grid.Pos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("set start"); err != nil {
		return err
	}
	return d.grid.SetStart(p)
}

// SetEnd moves End to p.
func (d *Driver) SetEnd(p grid.Pos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("set end"); err != nil {
		return err
	}
	return d.grid.SetEnd(p)
}

// ClearWalls opens every wall.
func (d *Driver) ClearWalls() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("clear walls"); err != nil {
		return err
	}
	d.grid.ClearWalls()
	return nil
}

// Reset opens every cell, keeping Start and End.
func (d *Driver) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("reset"); err != nil {
		return err
	}
	d.grid.Reset()
	return nil
}

// Edit runs fn against the grid under the driver lock, subject to the same
// busy rule as the other edits. Bulk producers such as maze generators use it.
func (d *Driver) Edit(fn func(g *grid.Grid) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.editableLocked("edit"); err != nil {
		return err
	}
	return fn(d.grid)
}

//-------------------------------------------------------------------------//
// Internals (caller holds d.mu)
//-------------------------------------------------------------------------//

// editableLocked rejects edits while a search is active and discards a
// finished search so the edited grid never shows stale annotations.
func (d *Driver) editableLocked(op string) error {
	if d.state.Active() {
		Logger().Debug("driver: edit rejected", "op", op, "state", d.state.String())
		return fmt.Errorf("%w: %s while %v", ErrBusy, op, d.state)
	}
	if d.state == Finished {
		d.discardLocked()
	}
	return nil
}

func (d *Driver) discardLocked() {
	d.grid.ClearSearch()
	d.searcher = nil
	d.trace = search.Trace{}
	d.result = search.Result{}
	d.finished = false
	d.state = Idle
}

func (d *Driver) finishLocked() {
	d.result = d.searcher.Result()
	d.finished = true
	d.state = Finished
	Logger().Info("driver: search finished",
		"algorithm", d.searcher.Algorithm().String(),
		"outcome", d.result.Outcome.String(),
		"cost", d.result.Cost,
		"moves", d.result.Moves(),
		"visited", d.trace.Visited())
}

func (d *Driver) transition(from, to State) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != from {
		return fmt.Errorf("%w: %v → %v while %v", ErrInvalidTransition, from, to, d.state)
	}
	d.state = to
	return nil
}

func checkAlgorithm(a search.Algorithm) error {
	for _, known := range search.Algorithms() {
		if a == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, a)
}
