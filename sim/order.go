package sim

// Order is one simulated work item flowing through a process model.
// An Order is created by the arrival generator, has its timestamps
// populated by the owning process instance, and is never mutated after
// the process terminates.
type Order struct {
	// Identity
	ID int

	// Timing (simulated time units)
	ArrivalTime      float64
	StartProcessTime float64
	EndProcessTime   float64

	// Monetary value, drawn uniformly at creation. Consumed only by
	// downstream economic-value reporting, never by the engine.
	Value float64

	// IsError marks a dirty completion: the MAS model pushed the order
	// through despite a failed credit check. Always false for the
	// Monolithic and RPA models.
	IsError bool
}

// CycleTime returns end-to-end time from arrival to completion.
// Only meaningful for completed orders.
func (o *Order) CycleTime() float64 {
	return o.EndProcessTime - o.ArrivalTime
}
