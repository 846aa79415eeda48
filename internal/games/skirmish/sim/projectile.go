package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// Owner tells which side fired a projectile.
type Owner uint8

const (
	OwnerAvatar Owner = iota // Hits enemies
	OwnerEnemy               // Hits the avatar
)

// Projectile is a circular shot moving in a straight line.
type Projectile struct {
	Pos         core.Vec
	Vel         core.Vec
	Radius      float64
	Damage      float64
	Owner       Owner
	Pierce      int // Remaining extra targets
	Explosive   bool
	BlastRadius float64
}

// Hits reports whether the projectile circle strictly intersects the box.
func (p *Projectile) Hits(b core.Box) bool {
	return core.CircleIntersectsBox(p.Pos, p.Radius, b)
}

func (p *Projectile) advance() {
	p.Pos = p.Pos.Add(p.Vel)
}

func (p *Projectile) outOfBounds(width, height, margin float64) bool {
	return p.Pos.X < -margin || p.Pos.X > width+margin ||
		p.Pos.Y < -margin || p.Pos.Y > height+margin
}

// FloatingText is a rising damage number.
type FloatingText struct {
	Pos     core.Vec
	Value   float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Opacity fades linearly from 1 to 0 over the text's lifetime.
func (t FloatingText) Opacity() float64 {
	if t.MaxLife <= 0 {
		return 0
	}
	return float64(t.Life) / float64(t.MaxLife)
}
