package island

import (
	"fmt"

	"github.com/vovakirdan/tui-island/internal/core"
	sim "github.com/vovakirdan/tui-island/internal/island"
)

const hudHeight = 2

// fruitColor maps fruit kinds to display colors.
func fruitColor(f sim.Fruit) core.Color {
	switch f {
	case sim.FruitPeach:
		return core.ColorBrightMagenta
	case sim.FruitApple:
		return core.ColorBrightRed
	case sim.FruitOrange:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if dst.Width() < 24 || dst.Height() < hudHeight+8 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.world.Stage() == sim.StageIndoor {
		g.renderIndoor(dst)
	} else {
		g.renderOutdoor(dst)
	}

	g.renderNotice(dst)

	switch {
	case g.world.GameOver():
		g.renderOverlay(dst, "Expedition over", "Press R to set out again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// mapArea returns the drawable region below the HUD, leaving the bottom row
// for notices.
func (g *Game) mapArea(dst *core.Screen) core.Rect {
	return core.Rect{X: 0, Y: hudHeight, W: dst.Width(), H: dst.Height() - hudHeight - 1}
}

// worldToScreen projects a world position into the map area.
func (g *Game) worldToScreen(area core.Rect, p core.Vec2) (int, int) {
	px := (p.X + g.params.LandRX) / (2 * g.params.LandRX)
	py := (p.Y + g.params.LandRY) / (2 * g.params.LandRY)
	x := area.X + int(px*float64(area.W-1)+0.5)
	y := area.Y + int(py*float64(area.H-1)+0.5)
	return x, y
}

// screenToWorld inverts worldToScreen for terrain classification.
func (g *Game) screenToWorld(area core.Rect, x, y int) core.Vec2 {
	wx := (float64(x-area.X)/float64(area.W-1))*2*g.params.LandRX - g.params.LandRX
	wy := (float64(y-area.Y)/float64(area.H-1))*2*g.params.LandRY - g.params.LandRY
	return core.V(wx, wy)
}

// renderOutdoor draws terrain first, then entities on top of it.
func (g *Game) renderOutdoor(dst *core.Screen) {
	area := g.mapArea(dst)
	geo := g.world.Geometry()

	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p := g.screenToWorld(area, x, y)
			switch {
			case !geo.OnLand(p):
				dst.SetCell(x, y, '~', core.ColorBlue)
			case geo.InWater(p):
				dst.SetCell(x, y, '~', core.ColorBrightBlue)
			case geo.InStructureZone(p):
				dst.SetCell(x, y, '#', core.ColorWhite)
			case geo.OnBeach(p):
				dst.SetCell(x, y, '.', core.ColorYellow)
			}
		}
	}

	// Door marker on the house's entrance face.
	doorX, doorY := g.worldToScreen(area, core.V(
		g.params.StructurePos.X,
		g.params.StructurePos.Y-g.params.StructureHalfH,
	))
	dst.SetCell(doorX, doorY, '=', core.ColorBrightWhite)

	for _, tr := range g.world.Trees() {
		x, y := g.worldToScreen(area, tr.Pos)
		c := fruitColor(tr.Fruit)
		r := 'T'
		if tr.State == sim.TreeShaken {
			r = 't'
			c = core.ColorGray
		}
		dst.SetCell(x, y, r, c)
	}
	for _, rk := range g.world.Rocks() {
		x, y := g.worldToScreen(area, rk.Pos)
		dst.SetCell(x, y, 'o', core.ColorGray)
	}
	for _, pk := range g.world.Pickups() {
		x, y := g.worldToScreen(area, pk.Pos)
		dst.SetCell(x, y, '*', fruitColor(pk.Kind))
	}
	for _, wk := range g.world.Walkers() {
		x, y := g.worldToScreen(area, wk.Pos)
		dst.SetCell(x, y, 'w', core.ColorCyan)
	}
	if hz := g.world.Hazard(); hz != nil {
		x, y := g.worldToScreen(area, hz.Pos)
		r := '?'
		if hz.Phase == sim.HazardChasing {
			r = '!'
		}
		dst.SetCell(x, y, r, core.ColorBrightRed)
	}

	px, py := g.worldToScreen(area, g.world.PlayerState().Pos)
	dst.SetCell(px, py, '@', core.ColorBrightWhite)
}

// renderIndoor draws the single room with the door at the bottom.
func (g *Game) renderIndoor(dst *core.Screen) {
	area := g.mapArea(dst)

	roomW := core.Min(area.W-4, 40)
	roomH := core.Min(area.H-2, 14)
	room := core.Rect{
		X: area.X + (area.W-roomW)/2,
		Y: area.Y + (area.H-roomH)/2,
		W: roomW,
		H: roomH,
	}
	dst.DrawBox(room)
	dst.SetCell(room.X+room.W/2, room.Bottom()-1, '=', core.ColorBrightWhite)
	dst.DrawTextCentered(room.Y+1, "The house is quiet.")

	// Project the indoor position into the room interior.
	pos := g.world.PlayerState().Pos
	half := g.params.RoomHalf
	px := room.X + 1 + int((pos.X+half)/(2*half)*float64(room.W-3)+0.5)
	py := room.Y + 1 + int((pos.Y+half)/(2*half)*float64(room.H-3)+0.5)
	dst.SetCell(px, py, '@', core.ColorBrightWhite)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" Island | Peach: %d  Apple: %d  Orange: %d  Total: %d  Best: %d",
		w.Collected(sim.FruitPeach),
		w.Collected(sim.FruitApple),
		w.Collected(sim.FruitOrange),
		w.TotalCollected(),
		g.highScore,
	)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderNotice draws the one-line message on the bottom row.
func (g *Game) renderNotice(dst *core.Screen) {
	if g.notice == "" {
		return
	}
	dst.DrawTextColored(1, dst.Height()-1, g.notice, core.ColorBrightYellow)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.Rect{
		X: (dst.Width() - boxW) / 2,
		Y: (dst.Height() - boxH) / 2,
		W: boxW,
		H: boxH,
	}
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
