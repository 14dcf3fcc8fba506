package island

import "github.com/vovakirdan/tui-island/internal/core"

// resolveMove validates a desired position against the current stage's legal
// region. Rejection is all-or-nothing: an illegal destination reverts to cur
// rather than sliding along the obstacle, so the player feels a hard stop.
func (w *World) resolveMove(cur, desired core.Vec2) core.Vec2 {
	if w.stage == StageIndoor {
		if insideRoom(desired, w.params.RoomHalf) {
			return desired
		}
		return cur
	}

	if !w.geo.OnLand(desired) || w.geo.InWater(desired) {
		return cur
	}
	if desired.Dist(w.geo.StructurePos) < w.params.StructureBlock {
		return cur
	}
	for i := range w.trees {
		if desired.Dist(w.trees[i].Pos) < w.params.TreeRadius+w.params.PlayerRadius {
			return cur
		}
	}
	for i := range w.rocks {
		if desired.Dist(w.rocks[i].Pos) < w.params.RockRadius+w.params.PlayerRadius {
			return cur
		}
	}
	return desired
}

// insideRoom checks the indoor per-axis half-extent bound.
func insideRoom(p core.Vec2, half float64) bool {
	return p.X >= -half && p.X <= half && p.Y >= -half && p.Y <= half
}

// movePlayer advances the player along the input direction. The direction is
// clamped to unit length; facing only updates above the dead-zone so a
// released stick does not snap the character around.
func (w *World) movePlayer(dt float64, move core.Vec2) {
	move = move.ClampLen(1)
	if move.Len() <= w.params.DeadZone {
		return
	}
	w.player.Facing = move.Angle()
	desired := w.player.Pos.Add(move.Scale(w.params.PlayerSpeed * dt))
	w.player.Pos = w.resolveMove(w.player.Pos, desired)
}
