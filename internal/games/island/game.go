// Package island adapts the island simulation to the platform's Game
// interface: input mapping, event-to-notice translation, persistence, and
// terminal rendering.
package island

import (
	"fmt"

	"github.com/vovakirdan/tui-island/internal/config"
	"github.com/vovakirdan/tui-island/internal/core"
	sim "github.com/vovakirdan/tui-island/internal/island"
	"github.com/vovakirdan/tui-island/internal/registry"
)

// WorldStore is the persistence surface the game needs. storage.Store
// implements it; tests use in-memory fakes.
type WorldStore interface {
	LoadWorld() (sim.Record, bool, error)
	SaveWorld(rec sim.Record) error
	ClearWorld() error
	SaveScore(score int, outcome string) (int64, error)
	HighScore() (int, error)
}

// How a run ended, persisted with the score.
const (
	outcomeCaught  = "caught"
	outcomeInstant = "instant"
	outcomeQuit    = "quit"
)

// noticeSeconds is how long a one-line message stays on screen.
const noticeSeconds = 2.5

// Package-level wiring set by the CLI before the game starts.
var (
	configPath string
	worldStore WorldStore
)

// SetConfigPath sets an explicit config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetWorldStore attaches persistence. Without it the game still runs, it
// just forgets the island between sessions.
func SetWorldStore(store WorldStore) {
	worldStore = store
}

// Game implements the island exploration game.
type Game struct {
	params sim.Params
	world  *sim.World

	tickRate int
	dt       float64
	screenW  int
	screenH  int

	paused     bool
	notice     string
	noticeLeft int
	outcome    string
	scoreSaved bool
	highScore  int
}

// New creates a new island game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("island", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "island"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Island Expedition"
}

// Reset starts a session: load the saved island if there is a usable one,
// otherwise generate a fresh world from the seed and persist it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	icfg, err := config.LoadIsland(configPath)
	if err != nil {
		icfg = config.DefaultIslandConfig()
	}
	g.params = icfg.Params()

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(g.tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.paused = false
	g.notice = ""
	g.noticeLeft = 0
	g.outcome = ""
	g.scoreSaved = false

	g.world = nil
	if worldStore != nil {
		if rec, ok, err := worldStore.LoadWorld(); err == nil && ok {
			if w, valid := sim.FromRecord(g.params, rec); valid {
				g.world = w
			}
		}
		if hs, err := worldStore.HighScore(); err == nil {
			g.highScore = hs
		}
	}
	if g.world == nil {
		g.world = sim.New(g.params, cfg.Seed)
		g.persist()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.world.GameOver() {
		// The fatal outcome wiped the save, so Reset finds no record and
		// generates a fresh island from the bumped seed.
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.world.Seed() + 1,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) && !g.world.GameOver() && g.world.TotalCollected() > 0 {
		g.saveScore(outcomeQuit)
	}

	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.world.GameOver() {
		return core.StepResult{State: g.State(), Notice: g.notice}
	}

	events := g.world.Step(g.dt, sim.Input{
		Move:     in.Direction(),
		Interact: in.Has(core.ActionInteract),
	})
	for _, ev := range events {
		g.handleEvent(ev)
	}
	// A fatal event already wiped the save; don't write the snapshot back.
	if g.world.Dirty() && !g.world.GameOver() {
		g.persist()
	}

	if g.noticeLeft > 0 {
		g.noticeLeft--
		if g.noticeLeft == 0 && !g.world.GameOver() {
			g.notice = ""
		}
	}

	return core.StepResult{State: g.State(), Notice: g.notice}
}

// handleEvent translates a simulation event into a player-facing notice and
// handles the fatal outcomes.
func (g *Game) handleEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventFruitObtained:
		g.say(fmt.Sprintf("A %s drops from the tree!", ev.Fruit))
	case sim.EventPickupCollected:
		g.say(fmt.Sprintf("Picked up the %s.", ev.Fruit))
	case sim.EventNothingHappened:
		g.say("You shake the tree. Nothing falls out.")
	case sim.EventNothingLeft:
		g.say("This tree has already been shaken.")
	case sim.EventHazardStarted:
		g.say("Something angry stirs in the branches...")
	case sim.EventInstantLoss:
		g.outcome = outcomeInstant
		g.say("A swarm bursts out of the tree!")
		g.endExpedition(outcomeInstant)
	case sim.EventHazardCaught:
		g.outcome = outcomeCaught
		g.say("The swarm caught you!")
		g.endExpedition(outcomeCaught)
	case sim.EventDialogue:
		g.say(ev.Line)
	case sim.EventRockInert:
		g.say("It's a rock. Sturdy as ever.")
	case sim.EventEnteredStructure:
		g.say("You duck inside the house. Safe.")
	case sim.EventLeftStructure:
		g.say("You step back outside.")
	}
}

// say shows a one-line message for a few seconds.
func (g *Game) say(text string) {
	g.notice = text
	g.noticeLeft = int(noticeSeconds * float64(g.tickRate))
}

// persist writes the world through the attached store, if any.
func (g *Game) persist() {
	if worldStore == nil {
		return
	}
	if err := worldStore.SaveWorld(g.world.Snapshot()); err != nil {
		g.say("Could not save the island.")
	}
}

// endExpedition records the result and wipes the saved island. A fatal
// outcome ends the whole session, not just the run: the in-memory world
// stays up for the game-over screen, but the next expedition lands on a
// fresh island.
func (g *Game) endExpedition(outcome string) {
	g.saveScore(outcome)
	if worldStore == nil {
		return
	}
	if err := worldStore.ClearWorld(); err != nil {
		g.say("Could not clear the island.")
	}
}

// saveScore records the expedition result once per session.
func (g *Game) saveScore(outcome string) {
	if g.scoreSaved || worldStore == nil {
		return
	}
	g.scoreSaved = true
	if _, err := worldStore.SaveScore(g.world.TotalCollected(), outcome); err != nil {
		g.say("Could not record the expedition.")
	}
	if s := g.world.TotalCollected(); s > g.highScore {
		g.highScore = s
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.TotalCollected(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}
