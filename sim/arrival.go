package sim

import "github.com/sirupsen/logrus"

// arrivalEvent creates one order, hands it to a freshly started process
// model instance, and reschedules itself after an exponential gap. The
// generator never terminates on its own; it is cut off by the episode
// horizon like every other event.
type arrivalEvent struct {
	time float64
}

func (e *arrivalEvent) Timestamp() float64 {
	return e.time
}

func (e *arrivalEvent) Execute(ep *Episode) {
	order := ep.newOrder(e.time)
	logrus.Debugf("<< arrival: order %d at %.3f", order.ID, e.time)
	ep.spawn(ep, order)
	ep.scheduleNextArrival()
}

// scheduleNextArrival draws the next inter-arrival gap from Exp(λ), i.e.
// mean 1/ArrivalRate, and schedules the arrival. Raising the rate shortens
// the gaps, which is what the scalability scenarios vary.
func (ep *Episode) scheduleNextArrival() {
	gap := ep.rng.ExpFloat64() / ep.cfg.ArrivalRate
	ep.Schedule(&arrivalEvent{time: ep.clock + gap})
}
