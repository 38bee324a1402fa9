package mode

import "sync/atomic"

// MailboxSize is the number of events the mailbox can hold between two
// drains. It must be a power of two.
const MailboxSize = 8

// Mailbox is a fixed-size single-producer, single-consumer queue of button
// events. The interrupt handler posts, the control loop drains once per tick.
type Mailbox struct {
	events  [MailboxSize]Event
	head    atomic.Uint32 // next slot to read, owned by the consumer
	tail    atomic.Uint32 // next slot to write, owned by the producer
	dropped atomic.Uint32
}

// Post enqueues ev without blocking. It returns false and counts a drop when
// the mailbox is full.
func (m *Mailbox) Post(ev Event) bool {
	tail := m.tail.Load()
	if tail-m.head.Load() == MailboxSize {
		m.dropped.Add(1)
		return false
	}
	m.events[tail%MailboxSize] = ev
	m.tail.Store(tail + 1)
	return true
}

// Drain calls fn for every queued event in arrival order and returns the
// number of events delivered.
func (m *Mailbox) Drain(fn func(Event)) int {
	head := m.head.Load()
	tail := m.tail.Load()
	n := 0
	for ; head != tail; head++ {
		fn(m.events[head%MailboxSize])
		m.head.Store(head + 1)
		n++
	}
	return n
}

// Len returns the number of queued events.
func (m *Mailbox) Len() int {
	return int(m.tail.Load() - m.head.Load())
}

// Dropped returns how many events were discarded because the mailbox was full.
func (m *Mailbox) Dropped() uint32 {
	return m.dropped.Load()
}
