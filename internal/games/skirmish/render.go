package skirmish

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish/sim"
)

// Glyphs used by the renderer.
const (
	GroundChar     = '▀'
	PlatformChar   = '▬'
	AvatarChar     = '█'
	WalkerChar     = '▓'
	ShooterChar    = '▒'
	BulletChar     = '•'
	ShellChar      = '●'
	BlastChar      = '*'
	HealthFullChar = '■'
	HealthLostChar = '□'
)

// MinScreenW and MinScreenH are the smallest screen the field can be drawn on.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy     float64 // Cells per world unit
	top        int     // First play-field row
	cols, rows int
}

func (g *Game) viewport() viewport {
	cols := max(g.rc.ScreenW, 1)
	rows := max(g.rc.ScreenH-HUDRows-StatusRows, 1)
	return viewport{
		sx:   float64(cols) / g.cfg.World.Width,
		sy:   float64(rows) / g.cfg.World.Height,
		top:  HUDRows,
		cols: cols,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts a world box to cells, never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current world state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Resize(dst.Width(), dst.Height())

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	v := g.viewport()

	g.renderPlatforms(dst, v, snap)
	g.renderEffects(dst, v, snap)
	g.renderEnemies(dst, v, snap)
	g.renderAvatar(dst, v, snap)
	g.renderProjectiles(dst, v, snap)
	g.renderTexts(dst, v, snap)
	g.renderHUD(dst, snap)
	g.renderStatus(dst, snap)

	switch {
	case snap.GameOver:
		g.renderGameOver(dst, snap)
	case snap.Paused:
		g.renderShop(dst, snap)
	case !snap.WaveInProgress:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Wave %d cleared! Next wave incoming...", snap.Wave), core.ColorBrightGreen)
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for i, p := range snap.Platforms {
		r := v.rect(p)
		if i == sim.GroundIndex {
			dst.DrawRect(r, GroundChar, core.ColorBrown)
			continue
		}
		dst.DrawRect(r, PlatformChar, core.ColorGreen)
	}
}

func (g *Game) renderEffects(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, fx := range snap.Effects {
		c := core.ColorOrange
		if fx.Opacity < 0.5 {
			c = core.ColorYellow
		}
		// Ring sampled on the circle outline
		steps := 16
		for i := range steps {
			a := 2 * math.Pi * float64(i) / float64(steps)
			p := fx.Center.Add(core.FromAngle(a, fx.Radius))
			dst.SetColor(v.col(p.X), v.row(p.Y), BlastChar, c)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, e := range snap.Enemies {
		r := v.rect(e.Box)
		ch := WalkerChar
		if e.Kind == sim.KindShooter {
			ch = ShooterChar
		}
		dst.DrawRect(r, ch, e.Color)

		// Health pip above wounded enemies
		if e.MaxHealth > 0 && e.Health < e.MaxHealth {
			frac := e.Health / e.MaxHealth
			w := max(int(math.Ceil(frac*float64(r.W))), 1)
			dst.DrawHLine(r.X, r.Y-1, w, '─', healthColor(frac))
		}
	}
}

func (g *Game) renderAvatar(dst *core.Screen, v viewport, snap sim.Snapshot) {
	a := snap.Avatar
	r := v.rect(a.Box)
	dst.DrawRect(r, AvatarChar, core.ColorCyan)

	// Muzzle on the facing side
	gun := r.Right()
	if !a.FacingRight {
		gun = r.X - 1
	}
	dst.SetColor(gun, r.Y+r.H/2, '─', a.Weapon.Color)
}

func (g *Game) renderProjectiles(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, p := range snap.Projectiles {
		ch := BulletChar
		if p.Explosive {
			ch = ShellChar
		}
		dst.SetColor(v.col(p.Pos.X), v.row(p.Pos.Y), ch, p.Color)
	}
}

func (g *Game) renderTexts(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, t := range snap.Texts {
		if t.Opacity <= 0 {
			continue
		}
		c := t.Color
		if t.Opacity < 0.3 {
			c = core.ColorGray
		}
		dst.DrawTextColor(v.col(t.Pos.X), v.row(t.Pos.Y), fmt.Sprintf("%.0f", t.Value), c)
	}
}

// renderHUD draws score, wave and the current notice on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)

	if g.notice != "" {
		dst.DrawTextCentered(0, g.notice, core.ColorWhite)
	}

	waveText := fmt.Sprintf("Wave: %d  Enemies: %d", snap.Wave, len(snap.Enemies))
	dst.DrawTextColor(dst.Width()-len(waveText)-1, 0, waveText, core.ColorWhite)
}

// renderStatus draws health, armor and the weapon bar on the bottom row.
func (g *Game) renderStatus(dst *core.Screen, snap sim.Snapshot) {
	y := dst.Height() - 1
	a := snap.Avatar

	const pips = 10
	frac := 0.0
	if a.MaxHealth > 0 {
		frac = a.Health / a.MaxHealth
	}
	filled := int(math.Ceil(frac * pips))
	bar := strings.Repeat(string(HealthFullChar), filled) + strings.Repeat(string(HealthLostChar), pips-filled)
	dst.DrawTextColor(1, y, bar, healthColor(frac))
	x := 2 + pips
	hp := fmt.Sprintf("%.0f/%.0f", a.Health, a.MaxHealth)
	dst.DrawTextColor(x, y, hp, core.ColorWhite)
	x += len(hp) + 2

	if a.Armor.Equipped() {
		armor := fmt.Sprintf("%s %.0f%%", a.Armor.Name, a.Armor.Protection*100)
		dst.DrawTextColor(x, y, armor, a.Armor.Color)
		x += len([]rune(armor)) + 2
	}

	for i, w := range sim.Weapons() {
		label := fmt.Sprintf("%d:%s", i+1, w.Name)
		c := core.ColorGray
		if i+1 == a.WeaponSlot {
			c = w.Color
			label = "[" + label + "]"
		}
		if x+len(label) >= dst.Width() {
			break
		}
		dst.DrawTextColor(x, y, label, c)
		x += len(label) + 1
	}
}

type shopLine struct {
	text  string
	color core.Color
}

// renderShop draws the pause overlay with the shop listing.
func (g *Game) renderShop(dst *core.Screen, snap sim.Snapshot) {
	lines := []shopLine{
		{"PAUSED - SHOP", core.ColorBrightYellow},
		{fmt.Sprintf("Points: %d", snap.Score), core.ColorWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("0  Health +%.0f HP  %d pts", snap.Shop.HealthRestore, snap.Shop.HealthCost), shopColor(snap.Shop.CanBuyHealth, false)},
	}
	for _, item := range snap.Shop.Armor {
		text := fmt.Sprintf("%d  %-16s %3.0f%%  %d pts", item.Slot, item.Armor.Name, item.Armor.Protection*100, item.Armor.Cost)
		if item.Current {
			text += "  (equipped)"
		}
		lines = append(lines, shopLine{text, shopColor(item.CanBuy, item.Current)})
	}
	lines = append(lines, shopLine{"P to resume", core.ColorGray})

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	box := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextColor(box.X+2, box.Y+1+i, l.text, l.color)
	}
}

func (g *Game) renderGameOver(dst *core.Screen, snap sim.Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Reached wave %d with %d points", snap.Wave, snap.Score), core.ColorWhite)
	dst.DrawTextCentered(mid+1, "R to restart, Q to quit", core.ColorGray)
}

func healthColor(frac float64) core.Color {
	switch {
	case frac > 0.6:
		return core.ColorBrightGreen
	case frac > 0.3:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func shopColor(canBuy, current bool) core.Color {
	switch {
	case current:
		return core.ColorGreen
	case canBuy:
		return core.ColorLime
	default:
		return core.ColorGray
	}
}
