package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// Armor is an immutable catalog entry. The zero value means no armor.
type Armor struct {
	Name       string
	Protection float64 // Fraction of incoming damage absorbed
	Cost       int
	Color      core.Color
}

// Equipped reports whether a is a real catalog tier.
func (a Armor) Equipped() bool {
	return a.Name != ""
}

// Mitigate returns the damage that gets through this armor.
func (a Armor) Mitigate(raw float64) float64 {
	return raw * (1 - a.Protection)
}

// Catalog protection is strictly increasing.
var armorCatalog = [...]Armor{
	{Name: "Headphones", Protection: 0.05, Cost: 100, Color: core.ColorWhite},
	{Name: "MHS Helmet", Protection: 0.15, Cost: 300, Color: core.ColorGray},
	{Name: "DICH-1 Helmet", Protection: 0.25, Cost: 600, Color: core.ColorBlue},
	{Name: "H01 Riot Helmet", Protection: 0.35, Cost: 1200, Color: core.ColorGreen},
	{Name: "GN Heavy Helmet", Protection: 0.50, Cost: 2000, Color: core.ColorOrange},
	{Name: "H70 Elite Helmet", Protection: 0.70, Cost: 3500, Color: core.ColorPurple},
	{Name: "DICH-9 Helmet", Protection: 0.90, Cost: 5000, Color: core.ColorRed},
}

// Armors returns the catalog in slot order (slot 1 first).
func Armors() []Armor {
	out := make([]Armor, len(armorCatalog))
	copy(out, armorCatalog[:])
	return out
}

// ArmorBySlot returns the armor for a 1-based slot.
func ArmorBySlot(slot int) (Armor, bool) {
	if slot < 1 || slot > len(armorCatalog) {
		return Armor{}, false
	}
	return armorCatalog[slot-1], true
}
