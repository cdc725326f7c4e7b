// Package notify fans out per-user data mutations to in-process subscribers.
// Caches subscribe to the topics that make them stale and drop their entries
// synchronously, before the publisher returns.
package notify

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Topic string

const (
	TopicOnboardingChanged Topic = "onboarding_changed"
	TopicProfileChanged    Topic = "profile_changed"
	TopicWellnessChanged   Topic = "wellness_changed"
	TopicUserCleared       Topic = "user_cleared"
)

type Event struct {
	Topic  Topic
	UserID string
}

type Handler func(ctx context.Context, event Event)

type subscription struct {
	id      uint64
	handler Handler
}

type Hub struct {
	mutex  sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscription
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[Topic][]subscription),
	}
}

// Subscribe registers fn for topic. The returned func removes it again.
func (h *Hub) Subscribe(topic Topic, fn Handler) (unsubscribe func()) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	id := h.nextID
	h.subs[topic] = append(h.subs[topic], subscription{id: id, handler: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			h.remove(topic, id)
		})
	}
}

func (h *Hub) remove(topic Topic, id uint64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	subs := h.subs[topic]
	for i, s := range subs {
		if s.id == id {
			h.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish calls every subscriber of event.Topic in subscription order.
// Handlers run on the caller's goroutine; a panicking handler is logged and
// does not stop the others.
func (h *Hub) Publish(ctx context.Context, event Event) {
	h.mutex.RLock()
	subs := make([]subscription, len(h.subs[event.Topic]))
	copy(subs, h.subs[event.Topic])
	h.mutex.RUnlock()

	log.Tracef("notify: publish %s for user [%s] to %d subscribers", event.Topic, event.UserID, len(subs))
	for _, s := range subs {
		h.deliver(ctx, s.handler, event)
	}
}

func (h *Hub) deliver(ctx context.Context, fn Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("notify: subscriber of %s panicked: %v", event.Topic, r)
		}
	}()
	fn(ctx, event)
}

// SubscriberCount reports how many handlers are registered for topic.
func (h *Hub) SubscriberCount(topic Topic) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.subs[topic])
}
