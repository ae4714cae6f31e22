// Implements the WaitQueue, which holds the arrival times of customers
// waiting for the server. Arrivals are enqueued while the server is busy.

package sim

import (
	"fmt"
	"strings"
)

const minWaitQueueCap = 16

// WaitQueue is a FIFO of arrival timestamps backed by a growable ring buffer.
// Enqueue and Dequeue are O(1) amortized.
type WaitQueue struct {
	buf  []float64
	head int // index of the oldest element
	size int
}

// NewWaitQueue creates an empty WaitQueue.
func NewWaitQueue() *WaitQueue {
	return &WaitQueue{buf: make([]float64, minWaitQueueCap)}
}

// Enqueue adds an arrival time to the back of the queue.
func (wq *WaitQueue) Enqueue(arrivalTime float64) {
	if wq.size == len(wq.buf) {
		wq.grow()
	}
	wq.buf[(wq.head+wq.size)%len(wq.buf)] = arrivalTime
	wq.size++
}

// Dequeue removes and returns the arrival time at the front of the queue.
// ok is false when the queue is empty.
func (wq *WaitQueue) Dequeue() (arrivalTime float64, ok bool) {
	if wq.size == 0 {
		return 0, false
	}
	arrivalTime = wq.buf[wq.head]
	wq.head = (wq.head + 1) % len(wq.buf)
	wq.size--
	return arrivalTime, true
}

// Len returns the number of waiting customers.
func (wq *WaitQueue) Len() int {
	return wq.size
}

// grow doubles the buffer and unwraps the elements to start at index 0.
func (wq *WaitQueue) grow() {
	n := 2 * len(wq.buf)
	if n < minWaitQueueCap {
		n = minWaitQueueCap
	}
	buf := make([]float64, n)
	for i := 0; i < wq.size; i++ {
		buf[i] = wq.buf[(wq.head+i)%len(wq.buf)]
	}
	wq.buf = buf
	wq.head = 0
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < wq.size; i++ {
		sb.WriteString(fmt.Sprint(wq.buf[(wq.head+i)%len(wq.buf)]))
		if i < wq.size-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
