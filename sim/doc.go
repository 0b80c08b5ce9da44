// Package sim provides the discrete-event simulation engine that compares
// three order-fulfillment process architectures under identical stochastic
// load: Monolithic (one shared worker pool held across the whole stage
// chain), RPA (four dedicated stage pools with conservative rejection), and
// MAS (credit pool only, optimistic override, pipelined execution).
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the Event interface and the time-ordered event queue
//   - resource.go: FIFO resource pools (acquire / release / slot transfer)
//   - episode.go: the event loop that runs one independent replication
//
// The three process state machines live in monolithic.go, rpa.go and
// mas.go; each is driven exclusively through timer and pool-grant resume
// events, so a process yields only at "advance by d" and "acquire pool"
// points. arrival.go feeds the episode with Poisson arrivals.
//
// # Aggregation
//
// stats.go defines the per-episode accumulator and the ResultRow handed to
// reporting collaborators. aggregate.go runs the Monte-Carlo replications
// (RunArchitecture, RunComparison, RunScalability) and reduces them into
// one ResultRow per architecture/scenario pair.
//
// # Determinism
//
// All randomness flows from a single master seed through PartitionedRNG
// (rng.go); every (architecture, scenario, episode) triple gets its own
// derived stream, so a run is bit-for-bit reproducible from its seed and
// episodes never share state.
package sim
