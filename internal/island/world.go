package island

import (
	"math/rand"

	"github.com/vovakirdan/tui-island/internal/core"
)

// Dice is the simulation's runtime randomness source. *rand.Rand satisfies
// it; tests substitute scripted values to force specific branches.
type Dice interface {
	Float64() float64
	Intn(n int) int
}

// Input is one tick's worth of player intent from the platform layer.
type Input struct {
	Move     core.Vec2 // desired direction, magnitude clamped to 1
	Interact bool      // the single explicit action trigger
}

// World is the whole simulation state: a single-writer aggregate advanced
// only through Step. Nothing in it blocks or runs in the background.
type World struct {
	params Params
	geo    Geometry
	seed   int64

	trees   []Tree
	rocks   []Rock
	pickups []Pickup
	walkers []Walker

	player Player
	stage  Stage
	hazard *Hazard

	dice      Dice
	collected map[Fruit]int
	gameOver  bool
	dirty     bool // persistable state changed since the last Snapshot
	fallbacks int  // generation diagnostics, 0 for loaded worlds
}

// New generates a fresh world from the seed.
func New(p Params, seed int64) *World {
	gen := Generate(p, seed)
	w := newWorld(p, seed)
	w.trees = gen.Trees
	w.rocks = gen.Rocks
	w.fallbacks = gen.Fallbacks
	w.spawnWalkers()
	return w
}

// FromRecord rebuilds a world from a persisted record. Returns false when
// the record is too small to trust, in which case the caller should
// regenerate with New.
func FromRecord(p Params, rec Record) (*World, bool) {
	if !rec.Valid(p.MinTrees) {
		return nil, false
	}

	w := newWorld(p, rec.Seed)
	w.trees = make([]Tree, len(rec.Trees))
	for i, tr := range rec.Trees {
		w.trees[i] = Tree{
			ID:            tr.ID,
			Pos:           core.V(tr.X, tr.Y),
			Fruit:         FruitFromString(tr.Fruit),
			InstantHazard: tr.InstantHazard,
			HazardSpent:   tr.HazardSpent,
		}
		if tr.Shaken {
			w.trees[i].State = TreeShaken
		}
	}
	w.rocks = make([]Rock, len(rec.Rocks))
	for i, rr := range rec.Rocks {
		w.rocks[i] = Rock{ID: rr.ID, Pos: core.V(rr.X, rr.Y)}
	}
	w.spawnWalkers()
	return w, true
}

func newWorld(p Params, seed int64) *World {
	return &World{
		params:    p,
		geo:       NewGeometry(p),
		seed:      seed,
		// Runtime dice are deliberately decoupled from the generation
		// stream: layout stays seed-stable while play stays varied.
		dice:      rand.New(rand.NewSource(seed + 1)),
		collected: make(map[Fruit]int),
		player:    Player{Pos: p.StartAnchor},
		stage:     StageOutdoor,
	}
}

// spawnWalkers places the wandering characters on legal ground with speeds
// spread across the configured range.
func (w *World) spawnWalkers() {
	w.walkers = make([]Walker, w.params.WalkerCount)
	for i := range w.walkers {
		pos := w.randomLegalPoint()
		w.walkers[i] = Walker{
			ID:    i,
			Pos:   pos,
			Speed: w.params.WalkerSpeedMin + w.dice.Float64()*(w.params.WalkerSpeedMax-w.params.WalkerSpeedMin),
		}
		w.retargetWalker(&w.walkers[i])
		w.walkers[i].IdleLeft = 0
	}
}

// SetDice swaps the runtime randomness source. Intended for tests that need
// to force the pursuit roll or walker retargeting.
func (w *World) SetDice(d Dice) {
	w.dice = d
}

// Step advances the simulation by dt seconds. dt is clamped to the maximum
// step so a stalled frame cannot teleport anything. The returned events are
// this tick's observable outcomes in occurrence order.
func (w *World) Step(dt float64, in Input) []Event {
	if w.gameOver {
		return nil
	}
	if dt > w.params.MaxStep {
		dt = w.params.MaxStep
	}
	if dt < 0 {
		dt = 0
	}

	var events []Event

	w.movePlayer(dt, in.Move)

	if w.stage == StageOutdoor {
		w.updateWalkers(dt)
		events = append(events, w.collectPickups()...)
	}

	if in.Interact {
		ev := w.Interact()
		if ev.Kind != EventNone {
			events = append(events, ev)
		}
	}

	// The hazard machine is inert indoors: no ticking, no transitions.
	if w.stage == StageOutdoor && !w.gameOver {
		if ev := w.advanceHazard(dt); ev != nil {
			events = append(events, *ev)
		}
	}

	return events
}

// --- Read access for rendering, persistence, and tests ---

// Params returns the world's tuning.
func (w *World) Params() Params { return w.params }

// Geometry returns the immutable island shape.
func (w *World) Geometry() Geometry { return w.geo }

// Seed returns the generation seed.
func (w *World) Seed() int64 { return w.seed }

// Trees returns the live tree slice. Callers must not mutate it.
func (w *World) Trees() []Tree { return w.trees }

// Rocks returns the live rock slice. Callers must not mutate it.
func (w *World) Rocks() []Rock { return w.rocks }

// Pickups returns the uncollected pickups.
func (w *World) Pickups() []Pickup { return w.pickups }

// Walkers returns the wandering characters.
func (w *World) Walkers() []Walker { return w.walkers }

// PlayerState returns the player's position and facing.
func (w *World) PlayerState() Player { return w.player }

// SetPlayerPos teleports the player, subject to nothing. Test helper and
// session-restore hook; normal movement goes through Step.
func (w *World) SetPlayerPos(p core.Vec2) { w.player.Pos = p }

// Stage returns the active stage.
func (w *World) Stage() Stage { return w.stage }

// Hazard returns the live pursuit hazard, or nil.
func (w *World) Hazard() *Hazard { return w.hazard }

// GameOver reports whether the session has ended fatally.
func (w *World) GameOver() bool { return w.gameOver }

// Collected returns how many of the given fruit the player has picked up.
func (w *World) Collected(f Fruit) int { return w.collected[f] }

// TotalCollected returns the fruit count across all kinds; it doubles as the
// session score.
func (w *World) TotalCollected() int {
	total := 0
	for _, n := range w.collected {
		total += n
	}
	return total
}

// Dirty reports whether persistable state changed since the last Snapshot.
func (w *World) Dirty() bool { return w.dirty }

// Fallbacks returns how many generated points fell back to the origin.
func (w *World) Fallbacks() int { return w.fallbacks }
