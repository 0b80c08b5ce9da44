package sim

import "github.com/sirupsen/logrus"

// rpaState tracks the staged pipeline position. Each stage has a queued
// sub-state (waiting for that stage's dedicated pool) and a running
// sub-state (advancing through its service time).
type rpaState string

const (
	rpaCreditQueued      rpaState = "CreditQueued"
	rpaCredit            rpaState = "Credit"
	rpaInventoryQueued   rpaState = "InventoryQueued"
	rpaInventory         rpaState = "Inventory"
	rpaFulfillmentQueued rpaState = "FulfillmentQueued"
	rpaFulfillment       rpaState = "Fulfillment"
	rpaBillingQueued     rpaState = "BillingQueued"
	rpaBilling           rpaState = "Billing"
	rpaDone              rpaState = "Done"
	rpaRejected          rpaState = "Rejected"
)

// rpaProcess is the staged agent pipeline: every stage acquires and
// releases its own dedicated pool, holding at most one slot at a time.
// The rule set is rigid: a failed credit check rejects immediately and
// the remaining three pools are never touched.
type rpaProcess struct {
	order *Order
	state rpaState
}

func startRPA(ep *Episode, o *Order) {
	p := &rpaProcess{order: o, state: rpaCreditQueued}
	o.StartProcessTime = ep.Now()
	if ep.pools.credit.Acquire(ep, p) {
		p.resume(ep)
	}
}

func (p *rpaProcess) resume(ep *Episode) {
	t := ep.cfg.RPA
	switch p.state {
	case rpaCreditQueued:
		p.state = rpaCredit
		ep.advance(p, uniform(ep.rng, t.Credit))

	case rpaCredit:
		failed := ep.rng.Float64() < ep.cfg.FailureProb
		ep.pools.credit.Release(ep)
		if failed {
			p.state = rpaRejected
			ep.stats.recordRejection()
			logrus.Debugf("rpa: order %d rejected at credit", p.order.ID)
			return
		}
		p.state = rpaInventoryQueued
		if ep.pools.inventory.Acquire(ep, p) {
			p.resume(ep)
		}

	case rpaInventoryQueued:
		p.state = rpaInventory
		ep.advance(p, uniform(ep.rng, t.Inventory))

	case rpaInventory:
		ep.pools.inventory.Release(ep)
		p.state = rpaFulfillmentQueued
		if ep.pools.fulfillment.Acquire(ep, p) {
			p.resume(ep)
		}

	case rpaFulfillmentQueued:
		p.state = rpaFulfillment
		ep.advance(p, uniform(ep.rng, t.Fulfillment))

	case rpaFulfillment:
		ep.pools.fulfillment.Release(ep)
		p.state = rpaBillingQueued
		if ep.pools.billing.Acquire(ep, p) {
			p.resume(ep)
		}

	case rpaBillingQueued:
		p.state = rpaBilling
		ep.advance(p, uniform(ep.rng, t.Billing))

	case rpaBilling:
		ep.pools.billing.Release(ep)
		p.state = rpaDone
		ep.stats.recordCompletion(p.order, ep.Now())
		logrus.Debugf("rpa: order %d done at %.3f", p.order.ID, ep.Now())
	}
}
