package api

import "sync"

// EventType categorizes a BroadcastEvent.
type EventType string

const (
	// EventProgress reports an in-progress job's latest value.
	EventProgress EventType = "progress"
	// EventResult reports a job's final result.
	EventResult EventType = "result"
	// EventError reports a job that failed.
	EventError EventType = "error"
)

// BroadcastEvent is sent to every WebSocket client subscribed to a job.
type BroadcastEvent struct {
	Type  EventType              `json:"type"`
	JobID string                 `json:"jobId"`
	Data  map[string]interface{} `json:"data"`
}

// Subscription is a client's filtered view of the broadcast stream. A
// single goroutine owns the subscription map and mediates
// register/unregister/broadcast over channels rather than a mutex held
// across a send, so a slow client can never block another client's
// progress events.
type Subscription struct {
	JobID   string
	Channel chan BroadcastEvent
}

// Broadcaster fans progress events out to every subscribed client.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.JobID != "" && sub.JobID != event.JobID {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// slow client, drop this event rather than block
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe registers a new subscription. jobID == "" subscribes to
// every job's events.
func (b *Broadcaster) Subscribe(jobID string) *Subscription {
	sub := &Subscription{
		JobID:   jobID,
		Channel: make(chan BroadcastEvent, 64),
	}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends event to every matching subscription, dropping it if
// the broadcaster's internal queue is full rather than blocking the
// caller.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
	}
}

// BroadcastProgress sends a progress update for jobID.
func (b *Broadcaster) BroadcastProgress(jobID string, data map[string]interface{}) {
	b.Broadcast(BroadcastEvent{Type: EventProgress, JobID: jobID, Data: data})
}

// BroadcastResult sends a terminal result for jobID.
func (b *Broadcaster) BroadcastResult(jobID string, data map[string]interface{}) {
	b.Broadcast(BroadcastEvent{Type: EventResult, JobID: jobID, Data: data})
}

// BroadcastError sends a terminal failure for jobID.
func (b *Broadcaster) BroadcastError(jobID string, message string) {
	b.Broadcast(BroadcastEvent{Type: EventError, JobID: jobID, Data: map[string]interface{}{"error": message}})
}

// Close shuts down the broadcaster and every open subscription.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
