package model

import (
	"strings"
	"time"

	"memoria/internal/domain/spatial"
)

// Memory categories.
const (
	CategoryPhoto = "PHOTO"
	CategoryVideo = "VIDEO"
	CategoryAudio = "AUDIO"
)

const DefaultOrbitRadius = 5.0

// Memory is a single item of the gallery, positioned on the unit sphere.
// Position coordinates are stored flat; the wire shape nests them under a
// position object (see dto).
type Memory struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Caption     string    `bson:"caption"`
	MediaURL    string    `bson:"media_url"`
	PositionX   float64   `bson:"position_x"`
	PositionY   float64   `bson:"position_y"`
	PositionZ   float64   `bson:"position_z"`
	OrbitRadius float64   `bson:"orbit_radius"`
	IsSecret    bool      `bson:"is_secret"`
	IsFeatured  bool      `bson:"is_featured"`
	Category    string    `bson:"category"`
	Date        time.Time `bson:"date"`
	Order       int       `bson:"order"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (m *Memory) Position() spatial.Vector {
	return spatial.Vector{X: m.PositionX, Y: m.PositionY, Z: m.PositionZ}
}

func (m *Memory) SetPosition(v spatial.Vector) {
	m.PositionX = v.X
	m.PositionY = v.Y
	m.PositionZ = v.Z
}

// NormalizePosition projects the stored position onto the unit sphere.
// Runs on every write that touches position fields; a zero vector is
// left as-is.
func (m *Memory) NormalizePosition() {
	m.SetPosition(m.Position().Normalize())
}

// NormalizeCategory maps a client-supplied category token to its
// canonical uppercase form.
func NormalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryPhoto, CategoryVideo, CategoryAudio:
		return true
	default:
		return false
	}
}
