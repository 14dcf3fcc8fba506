package island

import (
	"testing"

	"github.com/vovakirdan/tui-island/internal/core"
)

func vec(x, y float64) core.Vec2 {
	return core.V(x, y)
}

// scriptDice feeds predetermined rolls, then repeats the last value. It lets
// tests force the pursuit-roll branch without touching game logic.
type scriptDice struct {
	floats []float64
	i      int
}

func (d *scriptDice) Float64() float64 {
	if d.i < len(d.floats) {
		v := d.floats[d.i]
		d.i++
		return v
	}
	if len(d.floats) > 0 {
		return d.floats[len(d.floats)-1]
	}
	return 0.99
}

func (d *scriptDice) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}

// quietParams disables walkers so interaction tests control every dice roll.
func quietParams() Params {
	p := DefaultParams()
	p.WalkerCount = 0
	p.MinTrees = 1
	return p
}

// worldWithTrees builds a world from a handcrafted layout for precise
// interaction and hazard tests.
func worldWithTrees(t *testing.T, trees ...TreeRecord) *World {
	t.Helper()
	w, ok := FromRecord(quietParams(), Record{Seed: 7, Trees: trees})
	if !ok {
		t.Fatal("handcrafted record should load")
	}
	return w
}

// fruitTree/fruitlessTree build records at a spot far from the structure and
// the pond so nothing else interferes with target selection.
func fruitTree(id int, x, y float64, fruit Fruit) TreeRecord {
	return TreeRecord{ID: id, X: x, Y: y, Fruit: fruit.String()}
}

func fruitlessTree(id int, x, y float64) TreeRecord {
	return TreeRecord{ID: id, X: x, Y: y, Fruit: "none"}
}

// standNear puts the player a step away from the given point, on the side
// facing away from the structure so its priority radius never triggers.
func standNear(w *World, p core.Vec2) {
	away := p.Sub(w.Geometry().StructurePos).Normalize()
	if away == (core.Vec2{}) {
		away = core.V(1, 0)
	}
	w.SetPlayerPos(p.Add(away.Scale(0.8)))
}
