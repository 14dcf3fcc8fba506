package island

import "github.com/vovakirdan/tui-island/internal/core"

// dialogueLines are cycled per walker. The simulation only picks the line;
// presentation decides how to show it.
var dialogueLines = []string{
	"Lovely weather on the island today.",
	"I heard some trees around here bite back.",
	"The house is the only safe place, you know.",
	"Have you tried the peaches? Delicious.",
	"I never go near the pond after dark.",
}

// Interact resolves a single explicit player action at the current position:
// find the nearest eligible entity and apply its one-shot outcome. Finding
// nothing is a reported outcome, never an error.
func (w *World) Interact() Event {
	if w.gameOver {
		return Event{Kind: EventNone}
	}

	if w.stage == StageIndoor {
		// The only indoor interaction is leaving through the door.
		w.exitStructure()
		return Event{Kind: EventLeftStructure}
	}

	// The structure gets unconditional priority inside its own, larger
	// radius regardless of whatever else is nearby.
	if w.player.Pos.Dist(w.geo.StructurePos) <= w.params.StructureRadius {
		w.enterStructure()
		return Event{Kind: EventEnteredStructure}
	}

	kind, idx := w.nearestInteractable()
	switch kind {
	case targetTree:
		return w.shakeTree(&w.trees[idx])
	case targetWalker:
		return w.talkTo(&w.walkers[idx])
	case targetRock:
		return Event{Kind: EventRockInert}
	default:
		return Event{Kind: EventNone}
	}
}

type targetKind int

const (
	targetNone targetKind = iota
	targetTree
	targetRock
	targetWalker
)

// nearestInteractable scans trees, rocks, and walkers for the strictly
// closest one within the activation radius.
func (w *World) nearestInteractable() (targetKind, int) {
	best := targetNone
	bestIdx := -1
	bestDist := w.params.ActivateRadius

	for i := range w.trees {
		if d := w.player.Pos.Dist(w.trees[i].Pos); d < bestDist {
			best, bestIdx, bestDist = targetTree, i, d
		}
	}
	for i := range w.rocks {
		if d := w.player.Pos.Dist(w.rocks[i].Pos); d < bestDist {
			best, bestIdx, bestDist = targetRock, i, d
		}
	}
	for i := range w.walkers {
		if d := w.player.Pos.Dist(w.walkers[i].Pos); d < bestDist {
			best, bestIdx, bestDist = targetWalker, i, d
		}
	}
	return best, bestIdx
}

// shakeTree applies the one-shot tree outcome rules, in order: fruit drop,
// pre-seeded instant loss, runtime pursuit roll, nothing.
func (w *World) shakeTree(t *Tree) Event {
	if !t.Shake() {
		return Event{Kind: EventNothingLeft, TreeID: t.ID}
	}
	w.dirty = true

	if t.Fruit != FruitNone {
		w.spawnPickup(t)
		return Event{Kind: EventFruitObtained, Fruit: t.Fruit, TreeID: t.ID}
	}

	if t.InstantHazard {
		w.gameOver = true
		return Event{Kind: EventInstantLoss, TreeID: t.ID}
	}

	// Fresh roll every shake. The HazardSpent guard is independent of the
	// shaken gate: even if shaken gating were bypassed, a tree can never
	// source a second pursuit.
	if w.dice.Float64() < w.params.HazardChance && !t.HazardSpent {
		t.SpendHazard()
		if w.startHazard(t) {
			return Event{Kind: EventHazardStarted, TreeID: t.ID}
		}
	}
	return Event{Kind: EventNothingHappened, TreeID: t.ID}
}

// spawnPickup drops the tree's fruit next to it, nudged toward the player so
// it lands in the open.
func (w *World) spawnPickup(t *Tree) {
	dir := w.player.Pos.Sub(t.Pos).Normalize()
	if dir == (core.Vec2{}) {
		dir = core.V(0, 1)
	}
	w.pickups = append(w.pickups, Pickup{
		Kind: t.Fruit,
		Pos:  t.Pos.Add(dir.Scale(0.9)),
	})
}

// talkTo freezes a walker briefly and hands back its next dialogue line.
func (w *World) talkTo(wk *Walker) Event {
	w.freezeWalker(wk)
	line := dialogueLines[wk.Line%len(dialogueLines)]
	wk.Line++
	return Event{Kind: EventDialogue, WalkerID: wk.ID, Line: line}
}

// collectPickups removes pickups the player has walked onto and counts them.
func (w *World) collectPickups() []Event {
	var events []Event
	kept := w.pickups[:0]
	for _, p := range w.pickups {
		if w.player.Pos.Dist(p.Pos) < w.params.PickupRadius {
			w.collected[p.Kind]++
			events = append(events, Event{Kind: EventPickupCollected, Fruit: p.Kind})
			continue
		}
		kept = append(kept, p)
	}
	w.pickups = kept
	return events
}
