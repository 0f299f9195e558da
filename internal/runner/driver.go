package runner

import (
	"time"

	"github.com/vovakirdan/dashrun/internal/core"
)

// Driver turns host timestamps into Run steps. Hosts call Tick from their own
// frame callback; the driver computes elapsed time from the previous call.
type Driver struct {
	run  *Run
	last time.Time
}

// NewDriver wraps run.
func NewDriver(run *Run) *Driver {
	return &Driver{run: run}
}

// Run returns the driven run.
func (d *Driver) Run() *Run {
	return d.run
}

// Start begins a fresh run at now.
func (d *Driver) Start(now time.Time) {
	d.run.Start()
	d.last = now
}

// Tick steps the run by the time since the previous Tick or Start. It returns
// false without stepping when no run is active. Clock regressions count as
// zero elapsed.
func (d *Driver) Tick(now time.Time) (StepResult, bool) {
	if !d.run.Running() {
		d.last = now
		return StepResult{Phase: d.run.Phase(), Score: d.run.Score()}, false
	}

	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	return d.run.Step(elapsed), true
}

// Jump forwards a jump request to the run.
func (d *Driver) Jump() bool {
	return d.run.Jump()
}

// Apply routes one frame of host actions, then ticks to now. Start always
// begins a fresh run; Restart does so only while no run is active. Jump
// applies to the active run and is ignored otherwise.
func (d *Driver) Apply(in core.InputFrame, now time.Time) (StepResult, bool) {
	switch {
	case in.Has(core.ActionStart):
		d.Start(now)
	case in.Has(core.ActionRestart) && !d.run.Running():
		d.Start(now)
	}

	if in.Has(core.ActionJump) {
		d.run.Jump()
	}

	return d.Tick(now)
}
