package island

import (
	"math"

	"github.com/vovakirdan/tui-island/internal/core"
)

// HazardPhase is the pursuit hazard's lifecycle state.
type HazardPhase int

const (
	HazardArmed HazardPhase = iota // visible, oscillating at its origin, harmless
	HazardChasing
	HazardCaught
	HazardCancelled
)

// String returns the phase name.
func (p HazardPhase) String() string {
	switch p {
	case HazardArmed:
		return "armed"
	case HazardChasing:
		return "chasing"
	case HazardCaught:
		return "caught"
	case HazardCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Hazard is the single pursuit threat. At most one exists; World.hazard is
// nil whenever none is live.
type Hazard struct {
	TreeID    int
	Origin    core.Vec2
	Pos       core.Vec2
	DelayLeft float64
	Elapsed   float64
	Phase     HazardPhase
}

// startHazard spawns a hazard at the given tree. It is a no-op returning
// false while another hazard is live, which makes the single-instance
// invariant a property of this API rather than of its callers.
func (w *World) startHazard(t *Tree) bool {
	if w.hazard != nil {
		return false
	}
	w.hazard = &Hazard{
		TreeID:    t.ID,
		Origin:    t.Pos,
		Pos:       t.Pos,
		DelayLeft: w.params.ArmDelay,
		Phase:     HazardArmed,
	}
	return true
}

// cancelHazard discards the live hazard, if any. Re-triggering later needs a
// fresh tree roll; nothing is paused or kept.
func (w *World) cancelHazard() {
	if w.hazard == nil {
		return
	}
	w.hazard.Phase = HazardCancelled
	w.hazard = nil
}

// advanceHazard runs one tick of the pursuit machine. Never called while the
// stage is indoor; entering the structure cancels the hazard anyway, so the
// indoor gate is a defensive invariant.
func (w *World) advanceHazard(dt float64) *Event {
	h := w.hazard
	if h == nil {
		return nil
	}

	h.Elapsed += dt

	switch h.Phase {
	case HazardArmed:
		// Hover near the origin; no motion toward the player, no catching.
		h.Pos = core.V(
			h.Origin.X+0.25*math.Sin(h.Elapsed*6),
			h.Origin.Y+0.18*math.Cos(h.Elapsed*5),
		)
		h.DelayLeft -= dt
		if h.DelayLeft <= 0 {
			h.DelayLeft = 0
			h.Phase = HazardChasing
		}

	case HazardChasing:
		// Symmetric pursuit: same speed as the player, so it can only be
		// evaded by reaching the structure.
		to := w.player.Pos.Sub(h.Pos)
		dist := to.Len()
		step := w.params.PlayerSpeed * dt
		if dist <= step {
			h.Pos = w.player.Pos
		} else {
			h.Pos = h.Pos.Add(to.Normalize().Scale(step))
		}
		if h.Pos.Dist(w.player.Pos) < w.params.CatchRadius {
			h.Phase = HazardCaught
			w.gameOver = true
			w.hazard = nil
			return &Event{Kind: EventHazardCaught, TreeID: h.TreeID}
		}
	}

	return nil
}
