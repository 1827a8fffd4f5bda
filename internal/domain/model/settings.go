package model

import "time"

// SiteSettings defaults.
const (
	DefaultRotationSpeed       = 0.001
	DefaultParticleCount       = 1000
	DefaultThemeColorPrimary   = "#9b6cff"
	DefaultThemeColorSecondary = "#ff6b8a"
	DefaultThemeColorStar      = "#f6f7ff"
)

// SiteSettings is the global gallery configuration. At most one record
// may exist; the store enforces this with a unique index on the
// singleton sentinel field, so a losing concurrent creator gets a
// duplicate-key conflict instead of a second record.
type SiteSettings struct {
	ID                  string    `bson:"_id"`
	Singleton           bool      `bson:"singleton"`
	RotationSpeed       float64   `bson:"rotation_speed"`
	ParticleCount       int       `bson:"particle_count"`
	MusicEnabled        bool      `bson:"music_enabled"`
	AutoRotate          bool      `bson:"auto_rotate"`
	ThemeColorPrimary   string    `bson:"theme_color_primary"`
	ThemeColorSecondary string    `bson:"theme_color_secondary"`
	ThemeColorStar      string    `bson:"theme_color_star"`
	CreatedAt           time.Time `bson:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at"`
}

// DefaultSiteSettings returns a settings record with every field at its
// default. Identity and timestamps are assigned by the store on insert.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		Singleton:           true,
		RotationSpeed:       DefaultRotationSpeed,
		ParticleCount:       DefaultParticleCount,
		MusicEnabled:        true,
		AutoRotate:          true,
		ThemeColorPrimary:   DefaultThemeColorPrimary,
		ThemeColorSecondary: DefaultThemeColorSecondary,
		ThemeColorStar:      DefaultThemeColorStar,
	}
}

// ThemeColors is the derived read-only view of the three color fields.
// It is computed on read and never persisted.
func (s *SiteSettings) ThemeColors() map[string]string {
	return map[string]string{
		"primary":   s.ThemeColorPrimary,
		"secondary": s.ThemeColorSecondary,
		"star":      s.ThemeColorStar,
	}
}
