package sim

import "github.com/sirupsen/logrus"

// monoState names the stage a monolithic process is currently in. A
// process in state Queued is waiting for the shared worker slot; in any
// stage state it is advancing through that stage's service time.
type monoState string

const (
	monoQueued      monoState = "Queued"
	monoCredit      monoState = "Credit"
	monoInventory   monoState = "Inventory"
	monoFulfillment monoState = "Fulfillment"
	monoBilling     monoState = "Billing"
	monoDone        monoState = "Done"
	monoRejected    monoState = "Rejected"
)

// monolithicProcess is the sequential lock-based pipeline: the single
// shared pool is acquired once and held across all four stages, so a slow
// stage blocks a worker for the entire chain. A failed credit check
// releases the slot and rejects the order outright.
type monolithicProcess struct {
	order *Order
	state monoState
}

func startMonolithic(ep *Episode, o *Order) {
	p := &monolithicProcess{order: o, state: monoQueued}
	if ep.pools.workers.Acquire(ep, p) {
		p.resume(ep)
	}
}

// resume is invoked exactly when the awaited condition holds: the worker
// slot was granted (state Queued) or the running stage's service time
// elapsed (stage states).
func (p *monolithicProcess) resume(ep *Episode) {
	t := ep.cfg.Monolithic
	switch p.state {
	case monoQueued:
		// Worker slot granted; the whole chain runs while holding it.
		p.order.StartProcessTime = ep.Now()
		p.state = monoCredit
		ep.advance(p, uniform(ep.rng, t.Credit))

	case monoCredit:
		if ep.rng.Float64() < ep.cfg.FailureProb {
			p.state = monoRejected
			ep.pools.workers.Release(ep)
			ep.stats.recordRejection()
			logrus.Debugf("monolithic: order %d rejected at credit", p.order.ID)
			return
		}
		p.state = monoInventory
		ep.advance(p, uniform(ep.rng, t.Inventory))

	case monoInventory:
		p.state = monoFulfillment
		ep.advance(p, uniform(ep.rng, t.Fulfillment))

	case monoFulfillment:
		p.state = monoBilling
		ep.advance(p, uniform(ep.rng, t.Billing))

	case monoBilling:
		p.state = monoDone
		ep.pools.workers.Release(ep)
		ep.stats.recordCompletion(p.order, ep.Now())
		logrus.Debugf("monolithic: order %d done at %.3f", p.order.ID, ep.Now())
	}
}
