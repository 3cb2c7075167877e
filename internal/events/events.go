// Package events implements the event dispatch design note (spec.md
// §9): a small publish point for perturbed / partial-valid / valid
// layout snapshots, realized as a mutex-guarded subscriber set fanning
// out to per-subscriber channels, the same shape as the teacher's
// internal/ws/hub.go (Add/Remove/Broadcast over a guarded client set).
// Transport onto an actual websocket connection lives in
// internal/wsbridge, outside the core, per spec.md §1.
package events

import "sync"

// Kind distinguishes the three moments spec.md §6 requires callers be
// able to observe.
type Kind int

const (
	Perturbed Kind = iota
	PartialValid
	Valid
)

func (k Kind) String() string {
	switch k {
	case Perturbed:
		return "perturbed"
	case PartialValid:
		return "partial_valid"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// Snapshot is a value-typed event: the run it belongs to, which chain
// produced it, and the layout at that moment. Subscribers convert
// Layout to the caller's node type themselves (internal/layoutconv),
// keeping this package free of any caller-specific type.
type Snapshot struct {
	RunID      string
	Kind       Kind
	ChainIndex int
	Layout     any
}

// Sink is the generator-facing publish interface (SPEC_FULL.md's
// "EventSink"): OnPerturbed/OnPartialValid/OnValid, one call per
// observed moment.
type Sink interface {
	OnPerturbed(chainIndex int, layout any)
	OnPartialValid(chainIndex int, layout any)
	OnValid(layout any)
}

// Hub is a Sink that fans every event out to a set of subscriber
// channels, guarded by a mutex exactly like the teacher's ws.Hub guards
// its client set. A full subscriber channel has its event dropped
// rather than blocking the generator (best-effort delivery, same
// as Hub.Broadcast's failed-write-then-drop behavior).
type Hub struct {
	mu          sync.Mutex
	runID       string
	subscribers map[chan Snapshot]struct{}
}

func NewHub(runID string) *Hub {
	return &Hub{runID: runID, subscribers: make(map[chan Snapshot]struct{})}
}

// Subscribe registers a new channel and returns it; callers must
// Unsubscribe when done to stop receiving events.
func (h *Hub) Subscribe(buffer int) chan Snapshot {
	ch := make(chan Snapshot, buffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Snapshot) {
	h.mu.Lock()
	delete(h.subscribers, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) publish(evt Snapshot) {
	evt.RunID = h.runID
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (h *Hub) OnPerturbed(chainIndex int, layout any) {
	h.publish(Snapshot{Kind: Perturbed, ChainIndex: chainIndex, Layout: layout})
}

func (h *Hub) OnPartialValid(chainIndex int, layout any) {
	h.publish(Snapshot{Kind: PartialValid, ChainIndex: chainIndex, Layout: layout})
}

func (h *Hub) OnValid(layout any) {
	h.publish(Snapshot{Kind: Valid, ChainIndex: -1, Layout: layout})
}

// NullSink discards every event; the zero value of Sink used by
// callers that never subscribe to the event stream.
type NullSink struct{}

func (NullSink) OnPerturbed(int, any)    {}
func (NullSink) OnPartialValid(int, any) {}
func (NullSink) OnValid(any)             {}
