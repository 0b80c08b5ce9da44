package sim

// EpisodeStats accumulates raw per-order outcomes for one episode. It is
// mutated only by process instances belonging to that episode, and only at
// terminal transitions; once the episode's simulated duration elapses it
// is read-only.
//
// The meaning of Errors is deliberately asymmetric across architectures:
// Monolithic and RPA only ever reject failed orders, so their Errors stays
// identically zero, while MAS counts completed-but-dirty orders, so for
// MAS, Errors is a subset of Completed. The asymmetry is the comparative
// point of the study and must not be unified.
type EpisodeStats struct {
	Generated  int       // orders created by the arrival generator
	Completed  int       // orders that reached Done (including dirty MAS completions)
	Errors     int       // completed orders carrying an unresolved failure (MAS only)
	Rejected   int       // orders rejected at the credit check
	CycleTimes []float64 // end-to-end times of completed orders, in completion order
}

// recordCompletion books a successful termination: stamps the order's end
// time, counts it (and its error flag, if set) and appends its cycle time.
func (s *EpisodeStats) recordCompletion(o *Order, now float64) {
	o.EndProcessTime = now
	s.Completed++
	if o.IsError {
		s.Errors++
	}
	s.CycleTimes = append(s.CycleTimes, o.CycleTime())
}

// recordRejection books a rejected order. Rejections contribute nothing to
// throughput or cycle-time statistics.
func (s *EpisodeStats) recordRejection() {
	s.Rejected++
}

// MeanCycleTime returns the mean of the completed orders' cycle times,
// or 0 for an episode with no completions.
func (s *EpisodeStats) MeanCycleTime() float64 {
	return Mean(s.CycleTimes)
}

// ErrorRate returns errors as a percentage of completions, defined as 0
// when the episode completed nothing.
func (s *EpisodeStats) ErrorRate() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Completed) * 100
}

// Mean computes the arithmetic mean of values, returning 0 for an empty
// slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ResultRow is one aggregated record: the KPIs of one architecture under
// one scenario, averaged over the replication count. This flat row is the
// engine's sole handoff to tabular export and charting collaborators.
type ResultRow struct {
	Architecture string  // Monolithic, RPA or MAS
	Scenario     string  // optional load label, e.g. "lambda=8"; empty for the base run
	Throughput   float64 // mean completed-order count per episode
	AvgCycleTime float64 // mean of per-episode mean cycle times
	ErrorRatePct float64 // mean of per-episode error rates, in percent
}
