package sim

import "fmt"

// ResourcePool models a capacity-limited server. Acquire blocks the
// calling process until a slot is free; slots are granted in strict
// arrival order. A release with waiters present transfers the slot
// directly to the longest-waiting requester, so a request submitted at
// the same timestamp as the release can never jump ahead.
//
// Pools are never shared across episodes; the episode runner constructs
// fresh pools for every replication.
type ResourcePool struct {
	name     string
	capacity int
	inUse    int
	waiters  []process // FIFO queue of suspended processes
}

// NewResourcePool creates a pool with the given fixed capacity.
// Capacity must be positive; Config.Validate rejects anything else
// before a pool is ever built.
func NewResourcePool(name string, capacity int) *ResourcePool {
	if capacity <= 0 {
		panic(fmt.Sprintf("resource pool %q: capacity must be positive, got %d", name, capacity))
	}
	return &ResourcePool{
		name:     name,
		capacity: capacity,
		waiters:  make([]process, 0),
	}
}

// Acquire requests a slot for p. When a slot is free it is granted
// immediately and Acquire returns true: the caller continues in the same
// event. Otherwise p is appended to the FIFO wait queue and will be
// resumed by a grant event once a slot transfers to it.
func (rp *ResourcePool) Acquire(ep *Episode, p process) bool {
	if rp.inUse < rp.capacity {
		rp.inUse++
		return true
	}
	rp.waiters = append(rp.waiters, p)
	return false
}

// Release returns the caller's slot. If a waiter exists the slot
// transfers to the head of the queue: inUse stays unchanged and the
// waiter's resume is scheduled at the current simulated time.
func (rp *ResourcePool) Release(ep *Episode) {
	if rp.inUse <= 0 {
		panic(fmt.Sprintf("resource pool %q: release without a held slot", rp.name))
	}
	if len(rp.waiters) > 0 {
		head := rp.waiters[0]
		rp.waiters = rp.waiters[1:]
		ep.Schedule(&resumeEvent{time: ep.Now(), proc: head})
		return
	}
	rp.inUse--
}

// Name returns the pool's name.
func (rp *ResourcePool) Name() string {
	return rp.name
}

// Capacity returns the pool's fixed capacity.
func (rp *ResourcePool) Capacity() int {
	return rp.capacity
}

// InUse returns the count of currently granted slots.
func (rp *ResourcePool) InUse() int {
	return rp.inUse
}

// QueueLen returns the number of processes waiting for a slot.
func (rp *ResourcePool) QueueLen() int {
	return len(rp.waiters)
}
