package island

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-island/internal/core"
	sim "github.com/vovakirdan/tui-island/internal/island"
)

type savedScore struct {
	score   int
	outcome string
}

type fakeStore struct {
	rec    sim.Record
	has    bool
	scores []savedScore
}

func (f *fakeStore) LoadWorld() (sim.Record, bool, error) { return f.rec, f.has, nil }
func (f *fakeStore) SaveWorld(rec sim.Record) error {
	f.rec = rec
	f.has = true
	return nil
}
func (f *fakeStore) ClearWorld() error {
	f.rec = sim.Record{}
	f.has = false
	return nil
}
func (f *fakeStore) SaveScore(score int, outcome string) (int64, error) {
	f.scores = append(f.scores, savedScore{score, outcome})
	return int64(len(f.scores)), nil
}
func (f *fakeStore) HighScore() (int, error) {
	best := 0
	for _, s := range f.scores {
		if s.score > best {
			best = s.score
		}
	}
	return best, nil
}

// lowDice always rolls under every chance threshold.
type lowDice struct{}

func (lowDice) Float64() float64 { return 0.0 }
func (lowDice) Intn(n int) int   { return 0 }

func withStore(t *testing.T) *fakeStore {
	t.Helper()
	prev := worldStore
	prevPath := configPath
	store := &fakeStore{}
	worldStore = store
	configPath = ""
	t.Cleanup(func() {
		worldStore = prev
		configPath = prevPath
	})
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 404}
}

func TestResetGeneratesAndPersists(t *testing.T) {
	store := withStore(t)

	g := New()
	g.Reset(testConfig())

	if !store.has {
		t.Fatal("a fresh world should be persisted immediately")
	}
	if len(store.rec.Trees) < 12 {
		t.Errorf("persisted world has %d trees", len(store.rec.Trees))
	}
	if got := g.State(); got.Score != 0 || got.GameOver {
		t.Errorf("fresh session state %+v", got)
	}
}

func TestResetLoadsSavedWorld(t *testing.T) {
	store := withStore(t)

	first := New()
	first.Reset(testConfig())
	savedSeed := store.rec.Seed

	second := New()
	cfg := testConfig()
	cfg.Seed = 999 // must be ignored in favor of the save
	second.Reset(cfg)

	if second.world.Seed() != savedSeed {
		t.Errorf("loaded world has seed %d, want saved %d", second.world.Seed(), savedSeed)
	}
}

func TestResetRegeneratesShortSave(t *testing.T) {
	store := withStore(t)
	store.has = true
	store.rec = sim.Record{Seed: 1, Trees: []sim.TreeRecord{{ID: 0, X: 5, Y: 5, Fruit: "peach"}}}

	g := New()
	g.Reset(testConfig())

	if len(store.rec.Trees) < 12 {
		t.Errorf("short save should be replaced, still %d trees", len(store.rec.Trees))
	}
	if g.world.Seed() != 404 {
		t.Errorf("regenerated world should use the runtime seed, got %d", g.world.Seed())
	}
}

func TestStepMovesPlayer(t *testing.T) {
	withStore(t)

	g := New()
	g.Reset(testConfig())
	start := g.world.PlayerState().Pos

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	if g.world.PlayerState().Pos == start {
		t.Error("directional input should move the player")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	withStore(t)

	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	start := g.world.PlayerState().Pos
	move := core.NewInputFrame()
	move.Set(core.ActionRight)
	g.Step(move)
	if g.world.PlayerState().Pos != start {
		t.Error("paused game should not advance the world")
	}
}

func TestShakePersistsTreeState(t *testing.T) {
	store := withStore(t)

	g := New()
	g.Reset(testConfig())

	var target sim.Tree
	found := false
	for _, tr := range g.world.Trees() {
		if tr.Fruit != sim.FruitNone {
			target, found = tr, true
			break
		}
	}
	if !found {
		t.Fatal("generated world should carry fruit trees")
	}

	g.world.SetPlayerPos(target.Pos)
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	res := g.Step(in)

	if res.Notice == "" {
		t.Error("shaking a fruit tree should produce a notice")
	}
	for _, tr := range store.rec.Trees {
		if tr.ID == target.ID && !tr.Shaken {
			t.Error("shaken tree should be persisted as shaken")
		}
	}
}

func TestCaughtRunClearsSaveAndRestartsFresh(t *testing.T) {
	store := withStore(t)

	g := New()
	g.Reset(testConfig())
	g.world.SetDice(lowDice{})

	var target sim.Tree
	found := false
	for _, tr := range g.world.Trees() {
		if tr.Fruit == sim.FruitNone && !tr.InstantHazard {
			target, found = tr, true
			break
		}
	}
	if !found {
		t.Fatal("generated world should carry plain trees")
	}

	// Shake at point-blank range and stand still until the pursuit lands.
	g.world.SetPlayerPos(target.Pos)
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	g.Step(in)
	if g.world.Hazard() == nil {
		t.Fatal("low roll should start a pursuit")
	}
	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(core.InputFrame{})
	}
	if !g.State().GameOver {
		t.Fatal("stationary player should be caught")
	}
	if len(store.scores) != 1 || store.scores[0].outcome != "caught" {
		t.Fatalf("expected one caught score, got %+v", store.scores)
	}
	if store.has || len(store.rec.Trees) != 0 {
		t.Errorf("caught run should clear the saved island, still %d trees", len(store.rec.Trees))
	}

	// Restarting lands on a freshly generated island.
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver {
		t.Error("restart should clear the game over state")
	}
	if g.world.Seed() != 405 {
		t.Errorf("restart should regenerate from the bumped seed, got %d", g.world.Seed())
	}
	for _, tr := range g.world.Trees() {
		if tr.State == sim.TreeShaken {
			t.Fatal("fresh island should carry no shaken trees")
		}
	}
	if !store.has {
		t.Error("the fresh island should be persisted")
	}
}

func TestInstantLossClearsSave(t *testing.T) {
	store := withStore(t)

	rec := sim.Record{Seed: 7}
	for i := 0; i < 12; i++ {
		rec.Trees = append(rec.Trees, sim.TreeRecord{
			ID:    i,
			X:     float64(10 + i%4),
			Y:     float64(12 + i/4),
			Fruit: "none",
		})
	}
	rec.Trees[0].InstantHazard = true
	store.rec = rec
	store.has = true

	g := New()
	g.Reset(testConfig())
	if g.world.Seed() != 7 {
		t.Fatal("seeded save should load")
	}

	g.world.SetPlayerPos(core.V(rec.Trees[0].X, rec.Trees[0].Y))
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	g.Step(in)

	if !g.State().GameOver {
		t.Fatal("instant-hazard tree should end the session")
	}
	if len(store.scores) != 1 || store.scores[0].outcome != "instant" {
		t.Fatalf("expected one instant score, got %+v", store.scores)
	}
	// The shake marks the world dirty in the same tick; the clear must win.
	if store.has || len(store.rec.Trees) != 0 {
		t.Errorf("instant loss should clear the saved island, still %d trees", len(store.rec.Trees))
	}
}

func TestRenderOutdoorShowsPlayerAndHUD(t *testing.T) {
	withStore(t)

	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Island") {
		t.Error("HUD missing from render")
	}
	if !strings.Contains(screen.String(), "@") {
		t.Error("player marker missing from render")
	}
}

func TestRenderIndoor(t *testing.T) {
	withStore(t)

	g := New()
	g.Reset(testConfig())

	p := g.world.Params()
	g.world.SetPlayerPos(core.V(p.StructurePos.X, p.StructurePos.Y+p.StructureBlock+0.5))
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	g.Step(in)
	if g.world.Stage() != sim.StageIndoor {
		t.Fatal("interacting next to the house should enter it")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "The house is quiet.") {
		t.Error("indoor scene missing from render")
	}
}
