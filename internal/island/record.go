package island

// Record is the persisted world state: the tree and rock layout with their
// one-shot flags. Pickups, the hazard, the player, and walker targets are
// ephemeral and rebuilt on load.
type Record struct {
	Seed  int64        `json:"seed"`
	Trees []TreeRecord `json:"trees"`
	Rocks []RockRecord `json:"rocks"`
}

// TreeRecord is a tree's persisted form.
type TreeRecord struct {
	ID            int     `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Fruit         string  `json:"fruit"`
	InstantHazard bool    `json:"instant_hazard"`
	Shaken        bool    `json:"shaken"`
	HazardSpent   bool    `json:"hazard_spent"`
}

// RockRecord is a rock's persisted form.
type RockRecord struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Valid reports whether the record holds enough trees to be worth loading.
// Short or empty records mean "no valid save"; the caller regenerates.
func (r Record) Valid(minTrees int) bool {
	return len(r.Trees) >= minTrees
}

// Snapshot captures the persistable world state. Calling it also clears the
// dirty flag, so the caller can treat it as "state as of this save".
func (w *World) Snapshot() Record {
	rec := Record{
		Seed:  w.seed,
		Trees: make([]TreeRecord, len(w.trees)),
		Rocks: make([]RockRecord, len(w.rocks)),
	}
	for i, t := range w.trees {
		rec.Trees[i] = TreeRecord{
			ID:            t.ID,
			X:             t.Pos.X,
			Y:             t.Pos.Y,
			Fruit:         t.Fruit.String(),
			InstantHazard: t.InstantHazard,
			Shaken:        t.State == TreeShaken,
			HazardSpent:   t.HazardSpent,
		}
	}
	for i, r := range w.rocks {
		rec.Rocks[i] = RockRecord{ID: r.ID, X: r.Pos.X, Y: r.Pos.Y}
	}
	w.dirty = false
	return rec
}
