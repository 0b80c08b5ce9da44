package sim

import "github.com/sirupsen/logrus"

type masState string

const (
	masCreditQueued masState = "CreditQueued"
	masCredit       masState = "Credit"
	masPipeline     masState = "PipelinedExecution"
	masDone         masState = "Done"
	masRejected     masState = "Rejected"
)

// masProcess is the optimistic pipelined multi-agent model. Only the
// credit pool is ever acquired; inventory and fulfillment are modeled as
// one combined pipelined-execution advance with no further contention.
// On a failed credit check the order is pushed through anyway with the
// configured override probability and flagged as an error: a dirty
// completion that counts toward throughput and toward the error rate.
type masProcess struct {
	order *Order
	state masState
}

func startMAS(ep *Episode, o *Order) {
	p := &masProcess{order: o, state: masCreditQueued}
	o.StartProcessTime = ep.Now()
	if ep.pools.credit.Acquire(ep, p) {
		p.resume(ep)
	}
}

func (p *masProcess) resume(ep *Episode) {
	t := ep.cfg.MAS
	switch p.state {
	case masCreditQueued:
		p.state = masCredit
		ep.advance(p, uniform(ep.rng, t.Credit))

	case masCredit:
		if ep.rng.Float64() < ep.cfg.FailureProb {
			if ep.rng.Float64() < ep.cfg.OverrideProb {
				// Optimistic override: approve the marginal case to keep
				// throughput high; it becomes a downstream error.
				p.order.IsError = true
			} else {
				ep.pools.credit.Release(ep)
				p.state = masRejected
				ep.stats.recordRejection()
				logrus.Debugf("mas: order %d rejected at credit", p.order.ID)
				return
			}
		}
		ep.pools.credit.Release(ep)
		p.state = masPipeline
		ep.advance(p, uniform(ep.rng, t.Pipeline))

	case masPipeline:
		p.state = masDone
		ep.stats.recordCompletion(p.order, ep.Now())
		logrus.Debugf("mas: order %d done at %.3f (error=%v)", p.order.ID, ep.Now(), p.order.IsError)
	}
}
