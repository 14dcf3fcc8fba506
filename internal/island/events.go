package island

// EventKind classifies what a simulation step produced. Absence of a target
// and already-spent trees are ordinary outcomes, not errors.
type EventKind int

const (
	EventNone            EventKind = iota // interaction found nothing in range
	EventFruitObtained                    // tree dropped a pickup
	EventNothingHappened                  // fruitless shake, no hazard this time
	EventNothingLeft                      // tree was already shaken
	EventHazardStarted                    // pursuit hazard spawned at a tree
	EventInstantLoss                      // pre-seeded hazard tree, session over
	EventDialogue                         // talked to a walker
	EventRockInert                        // rocks never do anything
	EventEnteredStructure
	EventLeftStructure
	EventPickupCollected
	EventHazardCaught // the pursuit hazard reached the player
)

// String returns a short identifier for logs and tests.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventFruitObtained:
		return "fruit-obtained"
	case EventNothingHappened:
		return "nothing-happened"
	case EventNothingLeft:
		return "nothing-left"
	case EventHazardStarted:
		return "hazard-started"
	case EventInstantLoss:
		return "instant-loss"
	case EventDialogue:
		return "dialogue"
	case EventRockInert:
		return "rock-inert"
	case EventEnteredStructure:
		return "entered-structure"
	case EventLeftStructure:
		return "left-structure"
	case EventPickupCollected:
		return "pickup-collected"
	case EventHazardCaught:
		return "hazard-caught"
	default:
		return "unknown"
	}
}

// Event is one observable outcome of a simulation step. Fields beyond Kind
// are filled only where they apply.
type Event struct {
	Kind     EventKind
	Fruit    Fruit  // FruitObtained, PickupCollected
	TreeID   int    // tree-related events
	WalkerID int    // Dialogue
	Line     string // Dialogue
}

// Fatal reports whether the event ends the session.
func (e Event) Fatal() bool {
	return e.Kind == EventInstantLoss || e.Kind == EventHazardCaught
}
