package island

import "github.com/vovakirdan/tui-island/internal/core"

// Ellipse is an axis-aligned ellipse used for the land boundary, the
// shoreline, and ponds.
type Ellipse struct {
	Center core.Vec2
	RX, RY float64
}

// Contains reports whether p lies inside the ellipse (boundary inclusive).
func (e Ellipse) Contains(p core.Vec2) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (p.X - e.Center.X) / e.RX
	dy := (p.Y - e.Center.Y) / e.RY
	return dx*dx+dy*dy <= 1
}

// RectZone is an axis-aligned rectangle in world units, used for the
// structure's generation exclusion zone.
type RectZone struct {
	Center core.Vec2
	HalfW  float64
	HalfH  float64
}

// Contains reports whether p lies inside the rectangle.
func (r RectZone) Contains(p core.Vec2) bool {
	dx := p.X - r.Center.X
	dy := p.Y - r.Center.Y
	return dx >= -r.HalfW && dx <= r.HalfW && dy >= -r.HalfH && dy <= r.HalfH
}

// Geometry is the immutable shape of the island: where land ends, where the
// water is, and where the structure keeps entities out.
type Geometry struct {
	Land          Ellipse
	Shore         Ellipse // inside Land; the ring between them is beach
	Ponds         []Ellipse
	StructurePos  core.Vec2
	StructureZone RectZone
}

// NewGeometry derives the island geometry from params. The shore ellipse is
// the land ellipse inset on both radii, so it is contained in it whenever the
// inset is smaller than both radii.
func NewGeometry(p Params) Geometry {
	return Geometry{
		Land:  Ellipse{RX: p.LandRX, RY: p.LandRY},
		Shore: Ellipse{RX: p.LandRX - p.ShoreInset, RY: p.LandRY - p.ShoreInset},
		Ponds: []Ellipse{
			{Center: p.PondCenter, RX: p.PondRX, RY: p.PondRY},
		},
		StructurePos: p.StructurePos,
		StructureZone: RectZone{
			Center: p.StructurePos,
			HalfW:  p.StructureHalfW,
			HalfH:  p.StructureHalfH,
		},
	}
}

// OnLand reports whether p is within the island's land boundary.
func (g Geometry) OnLand(p core.Vec2) bool {
	return g.Land.Contains(p)
}

// OnBeach reports whether p is on the beach ring between shore and land.
func (g Geometry) OnBeach(p core.Vec2) bool {
	return g.Land.Contains(p) && !g.Shore.Contains(p)
}

// InWater reports whether p lies inside any pond.
func (g Geometry) InWater(p core.Vec2) bool {
	for _, pond := range g.Ponds {
		if pond.Contains(p) {
			return true
		}
	}
	return false
}

// InStructureZone reports whether p lies in the structure's exclusion rect.
func (g Geometry) InStructureZone(p core.Vec2) bool {
	return g.StructureZone.Contains(p)
}

// LegalGround reports whether p is valid open terrain: on land, dry, and
// clear of the structure zone. Used by generation and by walker retargeting.
func (g Geometry) LegalGround(p core.Vec2) bool {
	return g.OnLand(p) && !g.InWater(p) && !g.InStructureZone(p)
}
