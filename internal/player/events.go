package player

import "sync"

// eventQueue buffers engine events without ever blocking the producer.
// Consecutive position updates collapse into the latest one, so a slow
// consumer sees fewer positions but never loses a duration or end event.
type eventQueue struct {
	mu      sync.Mutex
	pending []Event
	wake    chan struct{}
	out     chan Event
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		wake: make(chan struct{}, 1),
		out:  make(chan Event),
	}
}

// push enqueues e. Safe for concurrent use.
func (q *eventQueue) push(e Event) {
	q.mu.Lock()
	if _, isPos := e.(PositionChanged); isPos && len(q.pending) > 0 {
		if _, lastPos := q.pending[len(q.pending)-1].(PositionChanged); lastPos {
			q.pending[len(q.pending)-1] = e
			q.mu.Unlock()
			return
		}
	}
	q.pending = append(q.pending, e)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// pop removes and returns the oldest event, if any.
func (q *eventQueue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	e := q.pending[0]
	q.pending = q.pending[1:]
	return e, true
}

// run forwards queued events to out until done is closed.
func (q *eventQueue) run(done <-chan struct{}) {
	defer close(q.out)
	for {
		e, ok := q.pop()
		if !ok {
			select {
			case <-q.wake:
				continue
			case <-done:
				return
			}
		}
		select {
		case q.out <- e:
		case <-done:
			return
		}
	}
}
