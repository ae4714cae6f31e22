package sim

// ServerStatus is the state of the single server.
type ServerStatus string

const (
	ServerIdle ServerStatus = "idle"
	ServerBusy ServerStatus = "busy"
)

// ServerState tracks the single server and the customers queued behind it.
// Waiting is non-empty only while Busy is true.
type ServerState struct {
	Busy    bool
	Waiting *WaitQueue
}

// NewServerState returns an idle server with an empty queue.
func NewServerState() *ServerState {
	return &ServerState{Waiting: NewWaitQueue()}
}

// Status reports Idle or Busy.
func (s *ServerState) Status() ServerStatus {
	if s.Busy {
		return ServerBusy
	}
	return ServerIdle
}

// Admit handles an arriving customer.
// It returns true when service starts immediately (Idle → Busy); otherwise the
// arrival time is queued and the server stays Busy.
func (s *ServerState) Admit(arrivalTime float64) bool {
	if s.Busy {
		s.Waiting.Enqueue(arrivalTime)
		return false
	}
	s.Busy = true
	return true
}

// Release handles the end of a service.
// If a customer is waiting it is dequeued and its arrival time returned with
// ok=true (server stays Busy); otherwise the server goes Idle.
func (s *ServerState) Release() (arrivalTime float64, ok bool) {
	if arrivalTime, ok = s.Waiting.Dequeue(); ok {
		return arrivalTime, true
	}
	s.Busy = false
	return 0, false
}

// Consistent reports whether the queue/server coupling holds:
// a non-empty queue implies a busy server.
func (s *ServerState) Consistent() bool {
	return s.Busy || s.Waiting.Len() == 0
}
