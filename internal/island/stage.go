package island

// Stage selects which coordinate space, obstacle set, and entity list are
// live. There are exactly two.
type Stage int

const (
	StageOutdoor Stage = iota
	StageIndoor
)

// String returns the stage name.
func (s Stage) String() string {
	if s == StageIndoor {
		return "indoor"
	}
	return "outdoor"
}

// enterStructure switches to the indoor stage: the player lands on the indoor
// anchor and any pursuit hazard is discarded unconditionally.
func (w *World) enterStructure() {
	w.stage = StageIndoor
	w.player.Pos = w.params.IndoorAnchor
	w.cancelHazard()
}

// exitStructure switches back outdoors, placing the player just outside the
// entrance.
func (w *World) exitStructure() {
	w.stage = StageOutdoor
	w.player.Pos = w.params.ExitAnchor
}
