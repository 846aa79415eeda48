package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// AreaEffect is an explosion that damages each enemy inside its radius at
// most once over its whole lifetime.
type AreaEffect struct {
	Center  core.Vec
	Radius  float64
	Damage  float64
	Life    int
	MaxLife int
	hit     map[EnemyID]struct{}
}

func newAreaEffect(center core.Vec, radius, damage float64, life int) AreaEffect {
	return AreaEffect{
		Center:  center,
		Radius:  radius,
		Damage:  damage,
		Life:    life,
		MaxLife: life,
		hit:     make(map[EnemyID]struct{}),
	}
}

// HasHit reports whether this explosion already damaged the enemy.
func (x *AreaEffect) HasHit(id EnemyID) bool {
	_, ok := x.hit[id]
	return ok
}

// HitCount returns how many enemies this explosion damaged.
func (x *AreaEffect) HitCount() int {
	return len(x.hit)
}

// VisualRadius grows from half to full radius as the effect ages.
func (x *AreaEffect) VisualRadius() float64 {
	if x.MaxLife <= 0 {
		return x.Radius
	}
	alpha := float64(x.Life) / float64(x.MaxLife)
	return x.Radius * (1 - alpha*0.5)
}

// strike records the enemy and returns the falloff damage, or false if the
// enemy was already hit or is outside the radius. Damage scales from full at
// the center to half at the edge.
func (x *AreaEffect) strike(e *Enemy) (float64, bool) {
	if x.HasHit(e.ID) {
		return 0, false
	}
	d := core.Distance(e.Center(), x.Center)
	if d >= x.Radius {
		return 0, false
	}
	x.hit[e.ID] = struct{}{}
	return x.Damage * (1 - 0.5*d/x.Radius), true
}
