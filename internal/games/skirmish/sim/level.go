package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// Platform indices fixed by the generator.
const (
	GroundIndex = 0
	StartIndex  = 1
)

// Level is a generated platform layout.
// Platforms[0] is the ground and Platforms[1] the start platform; every later
// platform was placed within jump reach of Platforms[Parents[i]].
type Level struct {
	Platforms []core.Box
	Parents   []int // -1 for the ground and start platform
	SafeZone  core.Box
}

// Start returns the start platform.
func (l Level) Start() core.Box {
	return l.Platforms[StartIndex]
}

// LevelGenerator grows a chain of reachable platforms from the start platform.
type LevelGenerator struct {
	world   config.WorldConfig
	physics config.PhysicsConfig
	cfg     config.LevelConfig
	rng     *rand.Rand
}

// NewLevelGenerator creates a generator drawing from rng.
func NewLevelGenerator(world config.WorldConfig, physics config.PhysicsConfig, cfg config.LevelConfig, rng *rand.Rand) *LevelGenerator {
	return &LevelGenerator{world: world, physics: physics, cfg: cfg, rng: rng}
}

// MaxRise returns the highest allowed climb between a platform and its parent.
func (g *LevelGenerator) MaxRise() float64 {
	return g.physics.MaxJumpRise() * g.cfg.RiseFactor
}

// Generate builds a level aiming for target platforms beyond ground and start.
// Placement failures fall back to branching from a random earlier platform;
// the level is always valid even if fewer platforms fit.
func (g *LevelGenerator) Generate(target int) Level {
	w, h := g.world.Width, g.world.Height
	ground := core.NewBox(0, h-g.cfg.GroundHeight, w, g.cfg.GroundHeight)
	start := core.NewBox(w/2-g.cfg.StartWidth/2, h-g.cfg.StartElevation, g.cfg.StartWidth, g.cfg.StartHeight)

	lvl := Level{
		Platforms: []core.Box{ground, start},
		Parents:   []int{-1, -1},
		SafeZone:  start,
	}

	ref := StartIndex
	retries := 0
	for i := 0; i < target; i++ {
		if p, ok := g.propose(lvl, lvl.Platforms[ref]); ok {
			lvl.Platforms = append(lvl.Platforms, p)
			lvl.Parents = append(lvl.Parents, ref)
			ref = len(lvl.Platforms) - 1
			continue
		}
		if len(lvl.Platforms) > 2 && retries < g.cfg.MaxBranchRetries {
			retries++
			ref = 1 + g.rng.Intn(len(lvl.Platforms)-2)
			i--
		}
	}

	return lvl
}

// propose samples platforms next to ref until one fits.
func (g *LevelGenerator) propose(lvl Level, ref core.Box) (core.Box, bool) {
	c := g.cfg
	maxRise := g.MaxRise()

	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		pw := g.between(c.MinPlatformW, c.MaxPlatformW)
		ph := g.between(c.MinPlatformH, c.MaxPlatformH)

		minY := ref.Y - maxRise
		if minY < c.MinTop {
			minY = c.MinTop
		}
		y := g.between(minY, ref.Y+c.DropAllowance)

		var x float64
		if g.rng.Float64() > 0.5 {
			x = g.between(ref.Right()-pw*0.5, ref.Right()+c.HorizontalReach)
		} else {
			x = g.between(ref.X-c.HorizontalReach-pw, ref.X+pw*0.5)
		}
		x = core.ClampF(x, c.SideMargin, g.world.Width-c.SideMargin-pw)

		candidate := core.NewBox(x, y, pw, ph)
		if !g.blocked(lvl, candidate) {
			return candidate, true
		}
	}
	return core.Box{}, false
}

// blocked reports whether candidate overlaps a platform or the padded safe zone.
func (g *LevelGenerator) blocked(lvl Level, candidate core.Box) bool {
	for _, p := range lvl.Platforms {
		if core.BoxesOverlap(candidate, p) {
			return true
		}
	}
	return core.BoxesOverlap(candidate, lvl.SafeZone.Inflate(g.cfg.SafeZonePadX, g.cfg.SafeZonePadY))
}

func (g *LevelGenerator) between(lo, hi float64) float64 {
	return g.rng.Float64()*(hi-lo) + lo
}
