package sim

import "math/rand"

// process is a resumable state machine driving one order through an
// architecture's stage sequence. The episode invokes resume only when the
// condition the process suspended on is satisfied: a timer set via
// Episode.advance elapsed, or a ResourcePool slot was granted. Processes
// never yield anywhere else.
type process interface {
	resume(ep *Episode)
}

// resumeEvent wakes a suspended process. It serves both suspension
// primitives: timers schedule it at now+duration, pools schedule it at the
// current time when a slot transfers to the head waiter.
type resumeEvent struct {
	time float64
	proc process
}

func (e *resumeEvent) Timestamp() float64 {
	return e.time
}

func (e *resumeEvent) Execute(ep *Episode) {
	e.proc.resume(ep)
}

// uniform draws from U(r.Min, r.Max).
func uniform(rng *rand.Rand, r Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
