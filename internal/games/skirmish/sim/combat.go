package sim

// resolveProjectiles moves every projectile and resolves its collisions.
// Order per projectile: platforms, then targets of the opposing side, then
// world bounds.
func (w *World) resolveProjectiles() {
	kept := w.projectiles[:0]
	for i := range w.projectiles {
		p := w.projectiles[i]
		p.advance()
		if w.collide(&p) {
			continue
		}
		if p.outOfBounds(w.cfg.World.Width, w.cfg.World.Height, w.cfg.World.BoundsMargin) {
			continue
		}
		kept = append(kept, p)
	}
	w.projectiles = kept
}

// collide returns true if the projectile was consumed.
func (w *World) collide(p *Projectile) bool {
	for _, plat := range w.level.Platforms {
		if p.Hits(plat) {
			if p.Explosive {
				w.explode(p)
			}
			return true
		}
	}

	switch p.Owner {
	case OwnerAvatar:
		for i := range w.enemies {
			if !p.Hits(w.enemies[i].Box) {
				continue
			}
			w.damageEnemy(i, p.Damage)
			switch {
			case p.Explosive:
				w.explode(p)
				return true
			case p.Pierce > 0:
				// Survives; remaining enemies are only tested on later ticks
				p.Pierce--
				return false
			default:
				return true
			}
		}
	case OwnerEnemy:
		if !w.avatar.Defeated && p.Hits(w.avatar.Box) {
			w.hitAvatar(p.Damage)
			return true
		}
	}
	return false
}

func (w *World) explode(p *Projectile) {
	w.effects = append(w.effects, newAreaEffect(p.Pos, p.BlastRadius, p.Damage, w.cfg.Combat.ExplosionLifetime))
}

// resolveEffects ages each explosion and lets live ones strike enemies.
func (w *World) resolveEffects() {
	kept := w.effects[:0]
	for _, x := range w.effects {
		x.Life--
		if x.Life <= 0 {
			continue
		}
		for j := 0; j < len(w.enemies); {
			if damage, ok := x.strike(&w.enemies[j]); ok && w.damageEnemy(j, damage) {
				continue
			}
			j++
		}
		kept = append(kept, x)
	}
	w.effects = kept
}
