package dto

import (
	"strings"

	"memoria/internal/domain/model"
)

const themeColorLength = 7

// SettingsResponse mirrors the stored settings plus the derived
// theme_colors view.
type SettingsResponse struct {
	RotationSpeed       float64           `json:"rotation_speed"`
	ParticleCount       int               `json:"particle_count"`
	MusicEnabled        bool              `json:"music_enabled"`
	AutoRotate          bool              `json:"auto_rotate"`
	ThemeColors         map[string]string `json:"theme_colors"`
	ThemeColorPrimary   string            `json:"theme_color_primary"`
	ThemeColorSecondary string            `json:"theme_color_secondary"`
	ThemeColorStar      string            `json:"theme_color_star"`
}

func NewSettingsResponse(s *model.SiteSettings) SettingsResponse {
	return SettingsResponse{
		RotationSpeed:       s.RotationSpeed,
		ParticleCount:       s.ParticleCount,
		MusicEnabled:        s.MusicEnabled,
		AutoRotate:          s.AutoRotate,
		ThemeColors:         s.ThemeColors(),
		ThemeColorPrimary:   s.ThemeColorPrimary,
		ThemeColorSecondary: s.ThemeColorSecondary,
		ThemeColorStar:      s.ThemeColorStar,
	}
}

// SettingsUpdateRequest carries a partial settings update.
type SettingsUpdateRequest struct {
	RotationSpeed       *float64 `json:"rotation_speed"`
	ParticleCount       *int     `json:"particle_count"`
	MusicEnabled        *bool    `json:"music_enabled"`
	AutoRotate          *bool    `json:"auto_rotate"`
	ThemeColorPrimary   *string  `json:"theme_color_primary"`
	ThemeColorSecondary *string  `json:"theme_color_secondary"`
	ThemeColorStar      *string  `json:"theme_color_star"`
}

func (r *SettingsUpdateRequest) Validate() map[string]string {
	details := map[string]string{}

	if r.ParticleCount != nil && *r.ParticleCount <= 0 {
		details["particle_count"] = "must be positive"
	}

	colors := map[string]*string{
		"theme_color_primary":   r.ThemeColorPrimary,
		"theme_color_secondary": r.ThemeColorSecondary,
		"theme_color_star":      r.ThemeColorStar,
	}
	for field, color := range colors {
		if color == nil {
			continue
		}
		if len(*color) != themeColorLength || !strings.HasPrefix(*color, "#") {
			details[field] = "must be a 7-character hex color like #9b6cff"
		}
	}

	return details
}

func (r *SettingsUpdateRequest) Apply(s *model.SiteSettings) {
	if r.RotationSpeed != nil {
		s.RotationSpeed = *r.RotationSpeed
	}
	if r.ParticleCount != nil {
		s.ParticleCount = *r.ParticleCount
	}
	if r.MusicEnabled != nil {
		s.MusicEnabled = *r.MusicEnabled
	}
	if r.AutoRotate != nil {
		s.AutoRotate = *r.AutoRotate
	}
	if r.ThemeColorPrimary != nil {
		s.ThemeColorPrimary = *r.ThemeColorPrimary
	}
	if r.ThemeColorSecondary != nil {
		s.ThemeColorSecondary = *r.ThemeColorSecondary
	}
	if r.ThemeColorStar != nil {
		s.ThemeColorStar = *r.ThemeColorStar
	}
}
