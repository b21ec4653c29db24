package components

// TweenComponent moves an entity's PositionComponent from (FromX, FromY)
// to (ToX, ToY) over Duration seconds using an overshooting ease.
type TweenComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64
	Elapsed      float64
	Active       bool
}
