package sim

import "container/heap"

// Event is a unit of scheduled simulation work. Each event carries the
// simulated time at which it fires and an Execute method that advances
// episode state when invoked.
type Event interface {
	Timestamp() float64
	Execute(ep *Episode)
}

type scheduledEvent struct {
	event Event
	seq   uint64 // creation order, breaks timestamp ties
}

// EventQueue is a priority queue of pending events ordered by timestamp.
// Events scheduled for the same timestamp fire in the order they were
// scheduled, which makes replay deterministic given a fixed random stream.
type EventQueue struct {
	events  []scheduledEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]scheduledEvent, 0)}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface: timestamp first, then scheduling order.
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.event.Timestamp() != ej.event.Timestamp() {
		return ei.event.Timestamp() < ej.event.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface.
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface.
func (q *EventQueue) Push(x interface{}) {
	q.events = append(q.events, x.(scheduledEvent))
}

// Pop implements heap.Interface.
func (q *EventQueue) Pop() interface{} {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue, stamping it with the next sequence
// number.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, scheduledEvent{event: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the next event, or nil when empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(scheduledEvent).event
}

// Peek returns the next event without removing it, or nil when empty.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].event
}
