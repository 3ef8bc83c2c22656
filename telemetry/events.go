// Package telemetry provides windowed match statistics, CSV output and
// per-phase performance timing.
package telemetry

import "github.com/pthm-cable/blobarena/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventStomp EventType = iota
	EventBounce
	EventSwing
	EventMeleeHit
	EventMeleeBlock
	EventPickup
	EventStageUp
	EventRespawn
	EventRemoval
	EventSplit
)

// String returns the snake_case name of an event type.
func (t EventType) String() string {
	switch t {
	case EventStomp:
		return "stomp"
	case EventBounce:
		return "bounce"
	case EventSwing:
		return "swing"
	case EventMeleeHit:
		return "melee_hit"
	case EventMeleeBlock:
		return "melee_block"
	case EventPickup:
		return "pickup"
	case EventStageUp:
		return "stage_up"
	case EventRespawn:
		return "respawn"
	case EventRemoval:
		return "removal"
	case EventSplit:
		return "split"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int32
	EntityID int
	Kind     components.Kind

	// Optional fields depending on event type
	TargetID   int             // victim of eats and blocks
	TargetKind components.Kind // victim kind
	Amount     float64         // mass transferred, or the new stage
}

// NewEatEvent creates a stomp or melee-hit event.
func NewEatEvent(t EventType, tick int32, eaterID int, eaterKind components.Kind, victimID int, victimKind components.Kind, mass float64) Event {
	return Event{
		Type:       t,
		Tick:       tick,
		EntityID:   eaterID,
		Kind:       eaterKind,
		TargetID:   victimID,
		TargetKind: victimKind,
		Amount:     mass,
	}
}

// NewEntityEvent creates an event about a single entity.
func NewEntityEvent(t EventType, tick int32, id int, kind components.Kind) Event {
	return Event{
		Type:     t,
		Tick:     tick,
		EntityID: id,
		Kind:     kind,
	}
}
