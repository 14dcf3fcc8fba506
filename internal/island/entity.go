package island

import "github.com/vovakirdan/tui-island/internal/core"

// Fruit identifies what a tree yields when shaken.
type Fruit int

const (
	FruitNone Fruit = iota
	FruitPeach
	FruitApple
	FruitOrange
)

// String returns the persistence/display name of the fruit.
func (f Fruit) String() string {
	switch f {
	case FruitPeach:
		return "peach"
	case FruitApple:
		return "apple"
	case FruitOrange:
		return "orange"
	default:
		return "none"
	}
}

// FruitFromString parses a persisted fruit name. Unknown names map to
// FruitNone so a damaged record degrades to a fruitless tree instead of
// failing the load.
func FruitFromString(s string) Fruit {
	switch s {
	case "peach":
		return FruitPeach
	case "apple":
		return FruitApple
	case "orange":
		return FruitOrange
	default:
		return FruitNone
	}
}

// TreeState is the tree's one-shot interaction lifecycle.
type TreeState int

const (
	TreeUntouched TreeState = iota
	TreeShaken
)

// Tree is a placed, shakeable tree. Fruit and InstantHazard are fixed at
// generation time; State and HazardSpent only move forward.
type Tree struct {
	ID            int
	Pos           core.Vec2
	Fruit         Fruit
	InstantHazard bool // pre-seeded instant-loss flag, fruitless trees only
	State         TreeState
	HazardSpent   bool // pursuit hazard already triggered from this tree
}

// Shake transitions the tree to TreeShaken. Returns false if it was already
// shaken; the transition is monotonic.
func (t *Tree) Shake() bool {
	if t.State == TreeShaken {
		return false
	}
	t.State = TreeShaken
	return true
}

// SpendHazard marks the tree's pursuit trigger as used. Returns false if it
// was already spent. Guarded independently of Shake so the at-most-once
// hazard invariant holds even if shaken gating is bypassed.
func (t *Tree) SpendHazard() bool {
	if t.HazardSpent {
		return false
	}
	t.HazardSpent = true
	return true
}

// Rock is a static decorative collider with no interaction outcome.
type Rock struct {
	ID  int
	Pos core.Vec2
}

// Pickup is an ephemeral collectible dropped by a fruitful tree. It vanishes
// when the player walks within the pickup radius.
type Pickup struct {
	Kind Fruit
	Pos  core.Vec2
}

// Walker is a wandering non-player character.
type Walker struct {
	ID         int
	Pos        core.Vec2
	Speed      float64
	Target     core.Vec2
	IdleLeft   float64 // pause after arriving, before the next leg
	FreezeLeft float64 // dialogue freeze, overrides wandering
	Line       int     // index of the next dialogue line
}

// Player is the controllable character.
type Player struct {
	Pos    core.Vec2
	Facing float64 // radians, updated only above the input dead-zone
}
