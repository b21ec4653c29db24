package components

// LifetimeComponent removes its entity once CurrentLifetime reaches
// MaxLifetime. Ambient particles carry one as their own removal timer.
type LifetimeComponent struct {
	MaxLifetime     float64 // seconds
	CurrentLifetime float64 // seconds
	IsExpired       bool
}
