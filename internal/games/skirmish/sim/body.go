package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// Body is the physics record shared by the avatar and enemies.
type Body struct {
	Box         core.Box
	VelY        float64
	Health      float64
	MaxHealth   float64
	FacingRight bool
}

// Pos returns the top-left corner of the body.
func (b *Body) Pos() core.Vec {
	return core.Vec{X: b.Box.X, Y: b.Box.Y}
}

// Center returns the center of the body's box.
func (b *Body) Center() core.Vec {
	return b.Box.Center()
}

// fall applies one tick of gravity and integrates the vertical position.
func (b *Body) fall(gravity float64) {
	b.VelY += gravity
	b.Box.Y += b.VelY
}

// landOn snaps b on top of p when its bottom edge is inside p's vertical span
// and it is falling or at rest. Returns true if b now rests on p.
func (b *Body) landOn(p core.Box) bool {
	bottom := b.Box.Bottom()
	if bottom > p.Y && bottom <= p.Bottom() && b.VelY >= 0 {
		b.Box.Y = p.Y - b.Box.H
		b.VelY = 0
		return true
	}
	return false
}

// bumpUnder snaps b just below p when rising with its top edge inside p.
func (b *Body) bumpUnder(p core.Box) bool {
	if b.Box.Y < p.Bottom() && b.Box.Y > p.Y && b.VelY < 0 {
		b.Box.Y = p.Bottom()
		b.VelY = 0
		return true
	}
	return false
}

// clampX keeps the box inside [0, width].
func (b *Body) clampX(width float64) {
	b.Box.X = core.ClampF(b.Box.X, 0, width-b.Box.W)
}
