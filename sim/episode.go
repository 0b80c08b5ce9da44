package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Architecture identifies one of the three process-model variants under
// comparison.
type Architecture string

const (
	ArchitectureMonolithic Architecture = "Monolithic"
	ArchitectureRPA        Architecture = "RPA"
	ArchitectureMAS        Architecture = "MAS"
)

// Architectures returns the three variants in reporting order.
func Architectures() []Architecture {
	return []Architecture{ArchitectureMonolithic, ArchitectureRPA, ArchitectureMAS}
}

// poolSet is the per-architecture resource shape, fixed at episode
// construction. Monolithic uses the single workers pool; RPA and MAS use
// the four stage pools (MAS only ever touches credit). Each process model
// holds at most one slot at a time and the MAS model never contends on the
// non-credit pools, so no cross-pool circular wait can form. Extensions
// must preserve that property.
type poolSet struct {
	workers     *ResourcePool
	credit      *ResourcePool
	inventory   *ResourcePool
	fulfillment *ResourcePool
	billing     *ResourcePool
}

// Episode runs one full, independent replication: fresh pools, fresh
// statistics, fresh randomness stream. The event loop is single-threaded
// and cooperative; processes are interleaved purely by simulated-time
// ordering.
type Episode struct {
	arch  Architecture
	cfg   Config
	rng   *rand.Rand
	queue *EventQueue

	clock   float64
	horizon float64

	pools poolSet
	spawn func(ep *Episode, o *Order)

	stats       *EpisodeStats
	orders      []*Order // every order generated, for diagnostics and tests
	nextOrderID int
}

// NewEpisode wires clock, pools, arrival generator and statistics for one
// replication of the given architecture. The configuration is validated
// here: a simulation with non-positive capacity, rate or duration has no
// meaningful behavior.
func NewEpisode(arch Architecture, cfg Config, rng *rand.Rand) (*Episode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("episode config: %w", err)
	}
	ep := &Episode{
		arch:    arch,
		cfg:     cfg,
		rng:     rng,
		queue:   NewEventQueue(),
		horizon: cfg.SimTime,
		stats:   &EpisodeStats{},
	}

	switch arch {
	case ArchitectureMonolithic:
		ep.pools.workers = NewResourcePool("workers", cfg.Resources)
		ep.spawn = startMonolithic
	case ArchitectureRPA:
		ep.buildStagePools(cfg)
		ep.spawn = startRPA
	case ArchitectureMAS:
		ep.buildStagePools(cfg)
		ep.spawn = startMAS
	default:
		return nil, fmt.Errorf("unknown architecture %q", arch)
	}

	ep.scheduleNextArrival()
	return ep, nil
}

func (ep *Episode) buildStagePools(cfg Config) {
	capacity := cfg.StagePoolCapacity()
	ep.pools.credit = NewResourcePool("credit", capacity)
	ep.pools.inventory = NewResourcePool("inventory", capacity)
	ep.pools.fulfillment = NewResourcePool("fulfillment", capacity)
	ep.pools.billing = NewResourcePool("billing", capacity)
}

// Now returns the current simulated time.
func (ep *Episode) Now() float64 {
	return ep.clock
}

// Schedule adds an event to the episode's queue.
func (ep *Episode) Schedule(e Event) {
	ep.queue.Schedule(e)
}

// advance suspends p until the given duration of simulated time elapses.
func (ep *Episode) advance(p process, duration float64) {
	ep.Schedule(&resumeEvent{time: ep.clock + duration, proc: p})
}

// Run executes events in time order until the queue drains or the next
// event would fire at or beyond the episode duration. Processes still
// suspended at that point are abandoned without error; their orders simply
// contribute nothing to the statistics.
func (ep *Episode) Run() *EpisodeStats {
	for ep.queue.Len() > 0 {
		event := ep.queue.PopNext()
		if event.Timestamp() >= ep.horizon {
			break
		}
		if event.Timestamp() < ep.clock {
			panic(fmt.Sprintf("clock went backwards: %v < %v", event.Timestamp(), ep.clock))
		}
		ep.clock = event.Timestamp()
		event.Execute(ep)
	}
	logrus.Debugf("%s episode done: generated=%d completed=%d errors=%d rejected=%d",
		ep.arch, ep.stats.Generated, ep.stats.Completed, ep.stats.Errors, ep.stats.Rejected)
	return ep.stats
}

// newOrder creates the next order at the given arrival time, drawing its
// monetary value from the configured range.
func (ep *Episode) newOrder(arrival float64) *Order {
	ep.nextOrderID++
	o := &Order{
		ID:          ep.nextOrderID,
		ArrivalTime: arrival,
		Value:       uniform(ep.rng, ep.cfg.ValueRange),
	}
	ep.stats.Generated++
	ep.orders = append(ep.orders, o)
	return o
}
