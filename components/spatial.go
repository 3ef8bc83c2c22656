package components

// Position represents an entity's world position (disc center).
type Position struct {
	X, Y float64
}

// Velocity represents an entity's velocity in units per second.
type Velocity struct {
	X, Y float64
}
