package sim

// PurchaseOutcome explains why a purchase did or did not go through.
// A rejected purchase leaves every piece of state unchanged.
type PurchaseOutcome int

const (
	PurchaseOK                 PurchaseOutcome = iota // Points debited, upgrade applied
	PurchaseInsufficientPoints                        // Not enough points
	PurchaseNotUpgrade                                // Armor tier is not stronger than the equipped one
	PurchaseFullHealth                                // Health is already at maximum
	PurchaseUnknownItem                               // Slot outside the catalog
	PurchaseUnavailable                               // Game is over
)

// String returns a human-readable description of the outcome.
func (o PurchaseOutcome) String() string {
	switch o {
	case PurchaseOK:
		return "OK"
	case PurchaseInsufficientPoints:
		return "Not enough points"
	case PurchaseNotUpgrade:
		return "Not an upgrade"
	case PurchaseFullHealth:
		return "Health is full"
	case PurchaseUnknownItem:
		return "Unknown item"
	case PurchaseUnavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// Ledger holds the spendable score. It never goes negative.
type Ledger struct {
	points int
}

// Points returns the current balance.
func (l *Ledger) Points() int {
	return l.points
}

// Award adds points. Non-positive amounts are ignored.
func (l *Ledger) Award(n int) {
	if n > 0 {
		l.points += n
	}
}

// CanAfford reports whether the balance covers cost.
func (l *Ledger) CanAfford(cost int) bool {
	return l.points >= cost
}

// Spend debits cost if affordable.
func (l *Ledger) Spend(cost int) bool {
	if cost < 0 || !l.CanAfford(cost) {
		return false
	}
	l.points -= cost
	return true
}

// HealthItem is the shop name of the health pack.
const HealthItem = "Health Pack"

// BuyHealth restores health for a fixed price, clamped to max health.
func (w *World) BuyHealth() PurchaseOutcome {
	outcome := w.buyHealth()
	w.emit(PurchaseEvent{Item: HealthItem, Cost: w.cfg.Economy.HealthCost, Outcome: outcome})
	return outcome
}

func (w *World) buyHealth() PurchaseOutcome {
	a := &w.avatar
	switch {
	case w.gameOver:
		return PurchaseUnavailable
	case a.Health >= a.MaxHealth:
		return PurchaseFullHealth
	case !w.ledger.Spend(w.cfg.Economy.HealthCost):
		return PurchaseInsufficientPoints
	}
	a.Health += w.cfg.Economy.HealthRestore
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
	return PurchaseOK
}

// BuyArmor replaces the equipped armor with the tier at a 1-based slot.
// Only strictly stronger tiers can be bought.
func (w *World) BuyArmor(slot int) PurchaseOutcome {
	armor, ok := ArmorBySlot(slot)
	outcome := PurchaseUnknownItem
	if ok {
		outcome = w.buyArmor(armor)
	}
	w.emit(PurchaseEvent{Item: armor.Name, Cost: armor.Cost, Outcome: outcome})
	return outcome
}

func (w *World) buyArmor(armor Armor) PurchaseOutcome {
	switch {
	case w.gameOver:
		return PurchaseUnavailable
	case armor.Protection <= w.avatar.Armor.Protection:
		return PurchaseNotUpgrade
	case !w.ledger.Spend(armor.Cost):
		return PurchaseInsufficientPoints
	}
	w.avatar.Armor = armor
	return PurchaseOK
}

// canUpgradeTo reports whether armor is affordable and stronger than the equipped tier.
func (w *World) canUpgradeTo(armor Armor) bool {
	return armor.Protection > w.avatar.Armor.Protection && w.ledger.CanAfford(armor.Cost)
}

// canBuyHealth reports whether a health pack would be accepted.
func (w *World) canBuyHealth() bool {
	return !w.gameOver && w.avatar.Health < w.avatar.MaxHealth && w.ledger.CanAfford(w.cfg.Economy.HealthCost)
}
