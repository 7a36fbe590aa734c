// Package notify maintains the per-category notification counters shown on
// role portals. Counts start from a page snapshot and are adjusted by push
// events; a fresh snapshot is the authoritative resync point when the
// heuristic drifts.
package notify

import "sync"

// Channel keys mirror the server push channels.
const (
	ChannelLetters     = "letters"
	ChannelRecruitment = "recruitment"
	ChannelStaff       = "staff"
	ChannelTermination = "termination"
	ChannelComplaints  = "complaints"
)

// Event is the decoded data payload of a push message:
// { channel, entity id, status, holder }.
type Event struct {
	Channel string
	ID      uint
	Status  string
	Holder  string
}

// Predicate decides whether the entity an event describes currently belongs
// to the countable set of its channel.
type Predicate func(Event) bool

// DefaultPredicates are the membership rules per channel. A letter counts
// toward "letters" iff its status keeps it in HR's queue and HR still holds
// it; recruitment counts non-terminal stages; staff and termination count
// in-flight records.
func DefaultPredicates() map[string]Predicate {
	inLetterQueue := map[string]bool{"Menunggu HR": true, "Diajukan": true, "Diproses": true}
	inRecruitment := map[string]bool{"Applied": true, "Screening": true, "Interview": true, "Offering": true}
	inTermination := map[string]bool{"Diajukan": true, "Diproses": true}

	return map[string]Predicate{
		ChannelLetters: func(e Event) bool {
			return inLetterQueue[e.Status] && e.Holder == "hr"
		},
		ChannelRecruitment: func(e Event) bool {
			return inRecruitment[e.Status]
		},
		ChannelStaff: func(e Event) bool {
			return e.Status == "Active"
		},
		ChannelTermination: func(e Event) bool {
			return inTermination[e.Status]
		},
	}
}

// Counters is the category -> count map behind the badge. Push events are
// applied atomically; Reset replaces everything with a fresh snapshot.
type Counters struct {
	mu     sync.Mutex
	counts map[string]int
	preds  map[string]Predicate
}

func NewCounters(preds map[string]Predicate) *Counters {
	if preds == nil {
		preds = DefaultPredicates()
	}
	return &Counters{
		counts: make(map[string]int),
		preds:  preds,
	}
}

// Reset replaces the counter map with a page snapshot. Unseen keys default
// to zero.
func (c *Counters) Reset(snapshot map[string]int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts = make(map[string]int, len(snapshot))
	for key, n := range snapshot {
		if n < 0 {
			n = 0
		}
		c.counts[key] = n
	}
}

// Apply reconciles one push event: when the entity now belongs to the
// channel's countable set the count goes up by one, otherwise it goes down,
// floored at zero. This is a local heuristic, not a refetch; it assumes one
// event per entity status change and drifts only until the next Reset.
func (c *Counters) Apply(e Event) {
	pred, ok := c.preds[e.Channel]
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if pred(e) {
		c.counts[e.Channel]++
		return
	}
	if c.counts[e.Channel] > 0 {
		c.counts[e.Channel]--
	}
}

// Count returns one channel's current value.
func (c *Counters) Count(channel string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[channel]
}

// Total is the badge value: the sum of every channel count.
func (c *Counters) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Snapshot copies the current map, mostly for rendering and tests.
func (c *Counters) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.counts))
	for key, n := range c.counts {
		out[key] = n
	}
	return out
}
