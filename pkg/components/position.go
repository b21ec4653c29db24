package components

// PositionComponent is an entity's top-left corner (or centre, for
// particles) in logical screen pixels.
type PositionComponent struct {
	X float64
	Y float64
}
