package sim

// Event reports something that happened during a tick. The engine never
// logs; hosts consume events to log, flash messages or journal a run.
type Event interface {
	simEvent()
}

// EnemyKilledEvent is emitted when an enemy's health reaches zero.
type EnemyKilledEvent struct {
	ID     EnemyID
	Kind   EnemyKind
	Reward int
}

func (EnemyKilledEvent) simEvent() {}

// AvatarHitEvent is emitted when the avatar takes damage.
type AvatarHitEvent struct {
	Raw    float64 // Damage before armor
	Dealt  float64 // Damage after armor
	Health float64
}

func (AvatarHitEvent) simEvent() {}

// AvatarDefeatedEvent is emitted once, when the avatar's health reaches zero.
type AvatarDefeatedEvent struct {
	Wave  int
	Score int
}

func (AvatarDefeatedEvent) simEvent() {}

// ShotFiredEvent is emitted when the avatar fires.
type ShotFiredEvent struct {
	Weapon      string
	Projectiles int
}

func (ShotFiredEvent) simEvent() {}

// WaveClearedEvent is emitted when the last enemy of a wave is removed.
type WaveClearedEvent struct {
	Wave   int
	Reward int
	Score  int
}

func (WaveClearedEvent) simEvent() {}

// WaveStartedEvent is emitted when a new wave spawns.
type WaveStartedEvent struct {
	Wave      int
	Enemies   int
	Shooters  int
	Platforms int
}

func (WaveStartedEvent) simEvent() {}

// PurchaseEvent reports the outcome of a shop command.
type PurchaseEvent struct {
	Item    string
	Cost    int
	Outcome PurchaseOutcome
}

func (PurchaseEvent) simEvent() {}

// WeaponSwitchedEvent is emitted when the equipped weapon changes.
type WeaponSwitchedEvent struct {
	Weapon string
}

func (WeaponSwitchedEvent) simEvent() {}

// PauseToggledEvent is emitted when pause is toggled.
type PauseToggledEvent struct {
	Paused bool
}

func (PauseToggledEvent) simEvent() {}
