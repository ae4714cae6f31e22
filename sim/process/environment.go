// Package process is a process-interaction simulation kernel.
//
// Processes are ordinary functions that suspend at Timeout and Resource.Request
// calls. Each process runs on its own goroutine, but the Environment hands
// control to exactly one of them at a time and waits until it suspends or
// returns, so process code needs no locking.
package process

import (
	"container/heap"
	"fmt"
	"runtime"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// Proc is a handle to a running process. It is only valid inside the process function.
type Proc struct {
	env    *Environment
	name   string
	resume chan struct{}
}

// Name returns the name given to Environment.Process.
func (p *Proc) Name() string {
	return p.name
}

// Timeout suspends the process for d time units.
func (p *Proc) Timeout(d float64) {
	if d < 0 {
		panic(fmt.Sprintf("Timeout: negative delay %v in %s", d, p.name))
	}
	p.env.wake(p, p.env.now+d)
	p.suspend()
}

// suspend hands control back to the scheduler and blocks until resumed.
// If the environment stops first, the goroutine exits.
func (p *Proc) suspend() {
	p.env.yield <- struct{}{}
	if !p.wait() {
		runtime.Goexit()
	}
}

func (p *Proc) wait() bool {
	select {
	case <-p.resume:
		return true
	case <-p.env.done:
		return false
	}
}

// timer is a pending wake-up of a process.
type timer struct {
	time float64
	seq  uint64
	proc *Proc
}

// timerHeap orders wake-ups by time, then by the order they were scheduled.
type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// Environment owns the simulation clock and the timer queue.
type Environment struct {
	now     float64
	timers  timerHeap
	seq     uint64
	yield   chan struct{}
	done    chan struct{}
	stopped bool
	log     *logrus.Entry
}

// NewEnvironment creates an environment with the clock at 0.
func NewEnvironment() *Environment {
	env := &Environment{
		timers: make(timerHeap, 0),
		yield:  make(chan struct{}),
		done:   make(chan struct{}),
		log:    logrus.WithField("run", xid.New().String()),
	}
	heap.Init(&env.timers)
	return env
}

// Now returns the current simulation time.
func (env *Environment) Now() float64 {
	return env.now
}

// Pending returns the number of scheduled wake-ups.
func (env *Environment) Pending() int {
	return env.timers.Len()
}

// Process starts fn as a new process at the current time.
// It may be called before Run or from inside another process.
func (env *Environment) Process(name string, fn func(p *Proc)) *Proc {
	p := &Proc{env: env, name: name, resume: make(chan struct{})}
	go func() {
		if !p.wait() {
			return
		}
		fn(p)
		env.yield <- struct{}{}
	}()
	env.wake(p, env.now)
	return p
}

func (env *Environment) wake(p *Proc, at float64) {
	env.seq++
	heap.Push(&env.timers, timer{time: at, seq: env.seq, proc: p})
}

// Run executes wake-ups scheduled strictly before until, then sets the clock
// to until. Processes still suspended afterwards are terminated.
// Run may only be called once.
func (env *Environment) Run(until float64) {
	if env.stopped {
		panic("Run: environment already stopped")
	}
	defer func() {
		env.stopped = true
		close(env.done)
	}()

	for env.timers.Len() > 0 && env.timers[0].time < until {
		t := heap.Pop(&env.timers).(timer)
		if t.time < env.now {
			panic(fmt.Sprintf("Clock went backwards: %v < %v", t.time, env.now))
		}
		env.now = t.time
		env.log.Debugf("[t=%.4f] Resuming %s", env.now, t.proc.name)
		t.proc.resume <- struct{}{}
		<-env.yield
	}
	if until > env.now {
		env.now = until
	}
	env.log.Infof("[t=%.4f] Environment stopped with %d pending wake-ups", env.now, env.Pending())
}
