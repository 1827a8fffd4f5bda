package dto

import (
	"time"

	"github.com/google/uuid"

	"memoria/internal/domain/model"
	"memoria/internal/domain/spatial"
)

const (
	maxTitleLength    = 200
	maxMediaURLLength = 500
)

// MemoryResponse is the public read shape of a memory. is_secret is
// deliberately absent: secrecy is never exposed through read paths.
type MemoryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Caption     string    `json:"caption,omitempty"`
	MediaURL    string    `json:"media_url"`
	Position    Position  `json:"position"`
	OrbitRadius float64   `json:"orbit_radius"`
	IsFeatured  bool      `json:"is_featured"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Order       int       `json:"order"`
}

func NewMemoryResponse(m *model.Memory) MemoryResponse {
	return MemoryResponse{
		ID:          m.ID,
		Title:       m.Title,
		Caption:     m.Caption,
		MediaURL:    m.MediaURL,
		Position:    NewPosition(m.Position()),
		OrbitRadius: m.OrbitRadius,
		IsFeatured:  m.IsFeatured,
		Category:    m.Category,
		Date:        m.Date,
		Order:       m.Order,
	}
}

func NewMemoryResponses(memories []model.Memory) []MemoryResponse {
	out := make([]MemoryResponse, 0, len(memories))
	for i := range memories {
		out = append(out, NewMemoryResponse(&memories[i]))
	}

	return out
}

// MemoryCreateRequest is the admin write shape. Position is optional;
// when absent the server picks a random point on the unit sphere.
type MemoryCreateRequest struct {
	Title       string     `json:"title"`
	Caption     string     `json:"caption"`
	MediaURL    string     `json:"media_url"`
	Position    *Position  `json:"position"`
	OrbitRadius *float64   `json:"orbit_radius"`
	IsSecret    bool       `json:"is_secret"`
	IsFeatured  bool       `json:"is_featured"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date"`
	Order       *int       `json:"order"`
}

// Validate returns a field→problem map, empty when the request is valid.
func (r *MemoryCreateRequest) Validate() map[string]string {
	details := map[string]string{}

	if r.Title == "" {
		details["title"] = "this field is required"
	} else if len(r.Title) > maxTitleLength {
		details["title"] = "must be at most 200 characters"
	}

	if r.MediaURL == "" {
		details["media_url"] = "this field is required"
	} else if len(r.MediaURL) > maxMediaURLLength {
		details["media_url"] = "must be at most 500 characters"
	}

	if r.Date == nil {
		details["date"] = "this field is required"
	}

	if r.Category != "" && !model.ValidCategory(model.NormalizeCategory(r.Category)) {
		details["category"] = "must be one of PHOTO, VIDEO, AUDIO"
	}

	if r.Order != nil && *r.Order < 0 {
		details["order"] = "must not be negative"
	}

	if r.OrbitRadius != nil && *r.OrbitRadius <= 0 {
		details["orbit_radius"] = "must be positive"
	}

	return details
}

// ToModel builds the stored record: identity, defaults, and the
// flat position fields. Position normalization happens on save.
func (r *MemoryCreateRequest) ToModel() *model.Memory {
	m := &model.Memory{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Caption:     r.Caption,
		MediaURL:    r.MediaURL,
		OrbitRadius: model.DefaultOrbitRadius,
		IsSecret:    r.IsSecret,
		IsFeatured:  r.IsFeatured,
		Category:    model.CategoryPhoto,
	}

	if r.Position != nil {
		m.SetPosition(r.Position.Vector())
	} else {
		m.SetPosition(spatial.RandomOnSphere())
	}

	if r.OrbitRadius != nil {
		m.OrbitRadius = *r.OrbitRadius
	}
	if r.Category != "" {
		m.Category = model.NormalizeCategory(r.Category)
	}
	if r.Date != nil {
		m.Date = *r.Date
	}
	if r.Order != nil {
		m.Order = *r.Order
	}

	return m
}

// MemoryUpdateRequest carries a partial update; nil fields stay
// untouched.
type MemoryUpdateRequest struct {
	Title       *string    `json:"title"`
	Caption     *string    `json:"caption"`
	MediaURL    *string    `json:"media_url"`
	Position    *Position  `json:"position"`
	OrbitRadius *float64   `json:"orbit_radius"`
	IsSecret    *bool      `json:"is_secret"`
	IsFeatured  *bool      `json:"is_featured"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Order       *int       `json:"order"`
}

func (r *MemoryUpdateRequest) Validate() map[string]string {
	details := map[string]string{}

	if r.Title != nil {
		if *r.Title == "" {
			details["title"] = "must not be blank"
		} else if len(*r.Title) > maxTitleLength {
			details["title"] = "must be at most 200 characters"
		}
	}

	if r.MediaURL != nil {
		if *r.MediaURL == "" {
			details["media_url"] = "must not be blank"
		} else if len(*r.MediaURL) > maxMediaURLLength {
			details["media_url"] = "must be at most 500 characters"
		}
	}

	if r.Category != nil && !model.ValidCategory(model.NormalizeCategory(*r.Category)) {
		details["category"] = "must be one of PHOTO, VIDEO, AUDIO"
	}

	if r.Order != nil && *r.Order < 0 {
		details["order"] = "must not be negative"
	}

	if r.OrbitRadius != nil && *r.OrbitRadius <= 0 {
		details["orbit_radius"] = "must be positive"
	}

	return details
}

// Apply copies the provided fields onto m. A supplied position replaces
// the stored one and is re-normalized on save.
func (r *MemoryUpdateRequest) Apply(m *model.Memory) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Caption != nil {
		m.Caption = *r.Caption
	}
	if r.MediaURL != nil {
		m.MediaURL = *r.MediaURL
	}
	if r.Position != nil {
		m.SetPosition(r.Position.Vector())
	}
	if r.OrbitRadius != nil {
		m.OrbitRadius = *r.OrbitRadius
	}
	if r.IsSecret != nil {
		m.IsSecret = *r.IsSecret
	}
	if r.IsFeatured != nil {
		m.IsFeatured = *r.IsFeatured
	}
	if r.Category != nil {
		m.Category = model.NormalizeCategory(*r.Category)
	}
	if r.Date != nil {
		m.Date = *r.Date
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
}
