package game

import (
	"fmt"
	"strings"
)

const defaultEventCap = 256

// EventKind classifies entries in the round event log.
type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventObstacleHit
	EventDestroyed
	EventDecision
	EventStall
	EventOutcome
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventObstacleHit:
		return "obstacle-hit"
	case EventDestroyed:
		return "destroyed"
	case EventDecision:
		return "decision"
	case EventStall:
		return "stall"
	case EventOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event is one recorded round occurrence. Actor is the tank name, or
// "--" for round-level entries.
type Event struct {
	Tick   int
	Actor  string
	Kind   EventKind
	Detail string
}

func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-6s %-12s %s", e.Tick, e.Actor, e.Kind, e.Detail)
}

// EventLog is a bounded in-memory record of round events, oldest
// entries dropped first. A nil log swallows writes, so callers never
// need to guard.
type EventLog struct {
	entries []Event
	cap     int
}

// NewEventLog returns a log keeping the most recent cap entries.
// Non-positive cap selects the default.
func NewEventLog(cap int) *EventLog {
	if cap <= 0 {
		cap = defaultEventCap
	}
	return &EventLog{cap: cap}
}

// Add appends one event, evicting the oldest entry when full.
func (l *EventLog) Add(tick int, actor string, kind EventKind, detail string) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, Event{Tick: tick, Actor: actor, Kind: kind, Detail: detail})
	if len(l.entries) > l.cap {
		n := copy(l.entries, l.entries[len(l.entries)-l.cap:])
		l.entries = l.entries[:n]
	}
}

// Events returns the retained entries, oldest first.
func (l *EventLog) Events() []Event {
	if l == nil {
		return nil
	}
	return l.entries
}

// Filter returns the retained entries of one kind.
func (l *EventLog) Filter(kind EventKind) []Event {
	if l == nil {
		return nil
	}
	var out []Event
	for _, e := range l.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// FilterActor returns the retained entries of one kind by one actor.
func (l *EventLog) FilterActor(kind EventKind, actor string) []Event {
	var out []Event
	for _, e := range l.Filter(kind) {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many retained entries have the given kind.
func (l *EventLog) Count(kind EventKind) int {
	return len(l.Filter(kind))
}

// Last returns the most recent entry of the given kind.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	if l == nil {
		return Event{}, false
	}
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind == kind {
			return l.entries[i], true
		}
	}
	return Event{}, false
}

// Format renders the retained entries one per line.
func (l *EventLog) Format() string {
	if l == nil || len(l.entries) == 0 {
		return "(no events)"
	}
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
