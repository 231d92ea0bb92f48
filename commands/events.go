package commands

import (
	"github.com/mobile-next/swipecli/gesture"
)

const (
	EventBegin = "begin"
	EventMove  = "move"
	EventEnd   = "end"
)

// EventRecord is one emitted swipe event. Distance and velocity are absent
// on end events.
type EventRecord struct {
	Type      string            `json:"type"`
	Direction gesture.Direction `json:"direction"`
	Distance  *float64          `json:"distance,omitempty"`
	Velocity  *float64          `json:"velocity,omitempty"`
}

// eventLog collects session events in emission order
type eventLog struct {
	records []EventRecord
}

func (l *eventLog) handlers() gesture.Handlers {
	return gesture.Handlers{
		OnSwipeBegin: func(e gesture.SwipeEvent) {
			l.add(EventBegin, e)
		},
		OnSwipe: func(e gesture.SwipeEvent) {
			l.add(EventMove, e)
		},
		OnSwipeEnd: func(e gesture.SwipeEndEvent) {
			l.records = append(l.records, EventRecord{Type: EventEnd, Direction: e.Direction})
		},
	}
}

func (l *eventLog) add(kind string, e gesture.SwipeEvent) {
	distance, velocity := e.Distance, e.Velocity
	l.records = append(l.records, EventRecord{
		Type:      kind,
		Direction: e.Direction,
		Distance:  &distance,
		Velocity:  &velocity,
	})
}

// drain returns the collected events and starts a new batch
func (l *eventLog) drain() []EventRecord {
	records := l.records
	l.records = nil
	if records == nil {
		records = []EventRecord{}
	}
	return records
}
