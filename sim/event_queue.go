package sim

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by PopNext when no events remain.
var ErrEmptyQueue = errors.New("event queue is empty")

// eventHeap implements heap.Interface.
// Ordering: time → sequence number.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// EventQueue is the future event list.
// Events sharing a timestamp are popped in the order they were scheduled.
type EventQueue struct {
	events  eventHeap
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

// Schedule stamps the event with the next sequence number and adds it to the queue.
// The stamped event is returned.
func (q *EventQueue) Schedule(ev Event) Event {
	q.nextSeq++
	ev.Seq = q.nextSeq
	heap.Push(&q.events, ev)
	return ev
}

// PopNext removes and returns the earliest event.
func (q *EventQueue) PopNext() (Event, error) {
	if len(q.events) == 0 {
		return Event{}, ErrEmptyQueue
	}
	return heap.Pop(&q.events).(Event), nil
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
