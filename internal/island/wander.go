package island

import "github.com/vovakirdan/tui-island/internal/core"

// updateWalkers drives the wandering characters: seek the current target,
// idle on arrival, pick a fresh legal target when stuck, and lean away from
// the player at close range. A dialogue freeze overrides everything.
func (w *World) updateWalkers(dt float64) {
	for i := range w.walkers {
		w.updateWalker(&w.walkers[i], dt)
	}
}

func (w *World) updateWalker(wk *Walker, dt float64) {
	if wk.FreezeLeft > 0 {
		wk.FreezeLeft -= dt
		return
	}
	if wk.IdleLeft > 0 {
		wk.IdleLeft -= dt
		return
	}

	if wk.Pos.Dist(wk.Target) < w.params.ArriveRadius {
		w.retargetWalker(wk)
		return
	}

	seek := wk.Target.Sub(wk.Pos).Normalize()

	// Blend in repulsion from the player; the weight ramps up as the player
	// closes in, so avoidance dominates at point-blank range without a
	// separate "startled" state.
	if d := wk.Pos.Dist(w.player.Pos); d < w.params.RepelRadius {
		away := wk.Pos.Sub(w.player.Pos).Normalize()
		weight := w.params.RepelGain * (w.params.RepelRadius - d) / w.params.RepelRadius
		seek = seek.Add(away.Scale(weight)).Normalize()
	}

	next := wk.Pos.Add(seek.Scale(wk.Speed * dt))
	if !w.geo.LegalGround(next) {
		w.retargetWalker(wk)
		return
	}
	wk.Pos = next
}

// retargetWalker picks a new random legal destination and an idle pause.
func (w *World) retargetWalker(wk *Walker) {
	wk.Target = w.randomLegalPoint()
	wk.IdleLeft = w.params.IdleMin + w.dice.Float64()*(w.params.IdleMax-w.params.IdleMin)
}

// randomLegalPoint rejection-samples a point on open terrain. Falls back to
// the walker-friendly start anchor if sampling keeps missing; with the stock
// geometry that practically never happens.
func (w *World) randomLegalPoint() core.Vec2 {
	for i := 0; i < w.params.SampleAttempts; i++ {
		p := core.V(
			(w.dice.Float64()*2-1)*w.params.LandRX,
			(w.dice.Float64()*2-1)*w.params.LandRY,
		)
		if w.geo.LegalGround(p) {
			return p
		}
	}
	return w.params.StartAnchor
}

// freezeWalker halts a walker's motion for the dialogue duration.
func (w *World) freezeWalker(wk *Walker) {
	wk.FreezeLeft = w.params.FreezeDuration
}
