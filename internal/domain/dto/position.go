package dto

import "memoria/internal/domain/spatial"

// Position is the nested wire shape of a memory's coordinates. Storage
// keeps the three fields flat; these two conversions are the only places
// the convention lives.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Position) Vector() spatial.Vector {
	return spatial.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

func NewPosition(v spatial.Vector) Position {
	return Position{X: v.X, Y: v.Y, Z: v.Z}
}
