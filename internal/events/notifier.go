package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// Handler receives the payload published to a topic.
type Handler func(payload interface{})

type registration struct {
	id      uint64
	handler Handler
}

// Notifier is an in-process publish/subscribe registry that lets write
// operations signal read-side views without holding references to
// them. Delivery is synchronous and in registration order.
type Notifier struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]registration
	log      zerolog.Logger
}

// NewNotifier creates an empty notifier.
func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{
		handlers: make(map[string][]registration),
		log:      log,
	}
}

// Subscribe registers handler for topic. The same handler may be
// registered multiple times; each call adds a new entry and returns
// its own Subscription.
func (n *Notifier) Subscribe(topic string, handler Handler) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.handlers[topic] = append(n.handlers[topic], registration{id: id, handler: handler})
	return &Subscription{notifier: n, topic: topic, id: id}
}

// Publish invokes every handler currently registered for topic, in
// order, passing payload. The registration list is snapshotted first,
// so handlers that unsubscribe (or subscribe) during dispatch only
// affect future publishes. A panicking handler is logged and does not
// stop delivery to the remaining handlers.
func (n *Notifier) Publish(topic string, payload interface{}) {
	n.mu.Lock()
	snapshot := make([]registration, len(n.handlers[topic]))
	copy(snapshot, n.handlers[topic])
	n.mu.Unlock()

	for _, reg := range snapshot {
		n.dispatch(topic, reg, payload)
	}
}

func (n *Notifier) dispatch(topic string, reg registration, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error().Str("topic", topic).Interface("panic", r).Msg("Event handler panicked")
		}
	}()
	reg.handler(payload)
}

func (n *Notifier) unsubscribe(topic string, id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	regs := n.handlers[topic]
	for i, reg := range regs {
		if reg.id == id {
			n.handlers[topic] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Subscription identifies one registration on the notifier.
type Subscription struct {
	notifier *Notifier
	topic    string
	id       uint64
	once     sync.Once
}

// Unsubscribe removes the registration. Calling it more than once, or
// for a registration already removed, is a no-op.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.notifier.unsubscribe(s.topic, s.id)
	})
}
