package match

import (
	"sync"

	"github.com/google/uuid"
)

// Event is emitted by the scheduler while a match runs.
type Event interface {
	matchEvent()
}

// MatchStartedEvent is sent once the condition has been validated.
type MatchStartedEvent struct {
	MatchID   uuid.UUID
	Condition Condition
}

func (MatchStartedEvent) matchEvent() {}

// GameFinishedEvent is sent right after a game result has been recorded.
type GameFinishedEvent struct {
	MatchID uuid.UUID
	Game    Game
}

func (GameFinishedEvent) matchEvent() {}

// MatchEndedEvent is sent after the last game.
type MatchEndedEvent struct {
	Result *Result
}

func (MatchEndedEvent) matchEvent() {}

// Observer receives scheduler events synchronously, in order.
type Observer interface {
	Observe(evt Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(evt Event)

func (f ObserverFunc) Observe(evt Event) { f(evt) }

// ChannelObserver forwards events to a buffered channel so another
// goroutine, such as a Bubble Tea program, can consume them.
type ChannelObserver struct {
	events    chan Event
	closeOnce sync.Once
}

// NewChannelObserver creates an observer with the given buffer size.
func NewChannelObserver(size int) *ChannelObserver {
	if size < 1 {
		size = 64
	}
	return &ChannelObserver{events: make(chan Event, size)}
}

// Observe queues evt. When the buffer is full the oldest queued event is
// dropped so the scheduler never blocks.
func (o *ChannelObserver) Observe(evt Event) {
	select {
	case o.events <- evt:
		return
	default:
	}

	select {
	case <-o.events:
	default:
	}
	select {
	case o.events <- evt:
	default:
	}
}

// Events returns the channel to read events from.
func (o *ChannelObserver) Events() <-chan Event {
	return o.events
}

// Close closes the event channel. Safe to call multiple times; Observe
// must not be called afterwards.
func (o *ChannelObserver) Close() {
	o.closeOnce.Do(func() {
		close(o.events)
	})
}
