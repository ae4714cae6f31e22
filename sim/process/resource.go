package process

import (
	"container/list"
	"fmt"
)

// Resource is a server with fixed capacity and a FIFO admission queue.
type Resource struct {
	env      *Environment
	capacity int
	users    int
	queue    *list.List // of *Proc

	// MaxQueueLength is the longest admission queue observed.
	MaxQueueLength int
}

// NewResource creates a resource with the given capacity (>= 1).
func NewResource(env *Environment, capacity int) *Resource {
	if capacity < 1 {
		panic(fmt.Sprintf("NewResource: capacity must be >= 1, got %d", capacity))
	}
	return &Resource{env: env, capacity: capacity, queue: list.New()}
}

// Request acquires one unit of the resource for p, suspending p in FIFO order
// while the resource is fully used.
func (r *Resource) Request(p *Proc) {
	if r.users < r.capacity {
		r.users++
		return
	}
	r.queue.PushBack(p)
	if n := r.queue.Len(); n > r.MaxQueueLength {
		r.MaxQueueLength = n
	}
	p.suspend()
}

// Release returns one unit. If a process is waiting, the unit passes to it
// and it resumes at the current time.
func (r *Resource) Release() {
	if r.users == 0 {
		panic("Release: resource is not held")
	}
	if front := r.queue.Front(); front != nil {
		r.queue.Remove(front)
		r.env.wake(front.Value.(*Proc), r.env.now)
		return
	}
	r.users--
}

// Users returns the number of units in use.
func (r *Resource) Users() int {
	return r.users
}

// Waiting returns the number of queued requests.
func (r *Resource) Waiting() int {
	return r.queue.Len()
}
