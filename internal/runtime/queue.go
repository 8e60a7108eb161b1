package runtime

import "github.com/aretw0/pulsenet/pkg/domain"

// Queue is a FIFO of pulses backed by a growable ring buffer.
type Queue struct {
	buf  []domain.Pulse
	head int
	size int
}

// NewQueue creates a queue with room for capacity pulses before it grows.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{buf: make([]domain.Pulse, capacity)}
}

// Push appends p at the tail.
func (q *Queue) Push(p domain.Pulse) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = p
	q.size++
}

// Pop removes and returns the oldest pulse. ok is false when the queue is empty.
func (q *Queue) Pop() (p domain.Pulse, ok bool) {
	if q.size == 0 {
		return domain.Pulse{}, false
	}
	p = q.buf[q.head]
	q.buf[q.head] = domain.Pulse{}
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return p, true
}

// Len is the number of pending pulses.
func (q *Queue) Len() int {
	return q.size
}

// Reset drops every pending pulse and keeps the storage.
func (q *Queue) Reset() {
	clear(q.buf)
	q.head, q.size = 0, 0
}

func (q *Queue) grow() {
	next := make([]domain.Pulse, 2*len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}
