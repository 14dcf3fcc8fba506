package island

import (
	"math/rand"

	"github.com/vovakirdan/tui-island/internal/core"
)

// GenResult is a freshly generated world layout plus diagnostics.
type GenResult struct {
	Trees []Tree
	Rocks []Rock

	// Fallbacks counts points that exhausted the sampling attempt cap and
	// landed on the origin. A defined degenerate case, not an error; callers
	// may log it.
	Fallbacks int
}

// Generate produces the tree and rock layout for a seed. Two calls with the
// same params and seed yield identical results: a single seeded source is
// consumed in a fixed order (tree points, rock points, fruit shuffle,
// instant-hazard rolls).
func Generate(p Params, seed int64) GenResult {
	rng := rand.New(rand.NewSource(seed))
	geo := NewGeometry(p)

	var res GenResult

	res.Trees = make([]Tree, p.TreeCount)
	for i := range res.Trees {
		pos, ok := samplePoint(geo, p, rng)
		if !ok {
			res.Fallbacks++
		}
		res.Trees[i] = Tree{ID: i, Pos: pos}
	}

	res.Rocks = make([]Rock, p.RockCount)
	for i := range res.Rocks {
		pos, ok := samplePoint(geo, p, rng)
		if !ok {
			res.Fallbacks++
		}
		res.Rocks[i] = Rock{ID: i, Pos: pos}
	}

	assignFruit(res.Trees, p.FruitPerKind, rng)

	// Fruitless trees independently roll the pre-seeded instant-hazard flag,
	// fixed here so outcomes stay reproducible per seed. The interaction-time
	// pursuit roll is a separate, unrelated mechanic.
	for i := range res.Trees {
		if res.Trees[i].Fruit == FruitNone && rng.Float64() < p.InstantHazardChance {
			res.Trees[i].InstantHazard = true
		}
	}

	return res
}

// samplePoint draws uniformly from the land ellipse's bounding box until it
// hits legal ground. After the attempt cap it falls back to the origin.
func samplePoint(geo Geometry, p Params, rng *rand.Rand) (core.Vec2, bool) {
	for i := 0; i < p.SampleAttempts; i++ {
		pt := core.V(
			(rng.Float64()*2-1)*p.LandRX,
			(rng.Float64()*2-1)*p.LandRY,
		)
		if geo.LegalGround(pt) {
			return pt, true
		}
	}
	return core.Vec2{}, false
}

// assignFruit shuffles tree indices with a seeded Fisher-Yates pass and deals
// perKind trees to each fruit kind; the rest stay fruitless.
func assignFruit(trees []Tree, perKind int, rng *rand.Rand) {
	order := make([]int, len(trees))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	kinds := []Fruit{FruitPeach, FruitApple, FruitOrange}
	for k, kind := range kinds {
		for n := 0; n < perKind; n++ {
			idx := k*perKind + n
			if idx >= len(order) {
				return
			}
			trees[order[idx]].Fruit = kind
		}
	}
}
