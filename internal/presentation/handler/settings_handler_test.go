package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
)

func testSettingsResponse() dto.SettingsResponse {
	return dto.NewSettingsResponse(model.DefaultSiteSettings())
}

func TestSettingsHandleGet(t *testing.T) {
	h := NewSettingsHandler(&fakeSettings{settings: testSettingsResponse()})

	c, rec := newJSONContext(t, http.MethodGet, "/api/settings", "")
	require.NoError(t, h.HandleGet(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got dto.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.DefaultRotationSpeed, got.RotationSpeed)
	assert.Equal(t, model.DefaultThemeColorPrimary, got.ThemeColors["primary"])
}

func TestSettingsHandleGetFailure(t *testing.T) {
	h := NewSettingsHandler(&fakeSettings{err: errors.New("mongo down")})

	c, rec := newJSONContext(t, http.MethodGet, "/api/settings", "")
	require.NoError(t, h.HandleGet(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "mongo down", "internal detail must not leak")
}

func TestSettingsHandleUpdate(t *testing.T) {
	settings := &fakeSettings{settings: testSettingsResponse()}
	h := NewSettingsHandler(settings)

	c, rec := newJSONContext(t, http.MethodPut, "/api/settings",
		`{"rotation_speed":0.5,"music_enabled":false}`)
	require.NoError(t, h.HandleUpdate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, settings.lastUpdate)
	require.NotNil(t, settings.lastUpdate.RotationSpeed)
	assert.Equal(t, 0.5, *settings.lastUpdate.RotationSpeed)
	require.NotNil(t, settings.lastUpdate.MusicEnabled)
	assert.False(t, *settings.lastUpdate.MusicEnabled)
	assert.Nil(t, settings.lastUpdate.ParticleCount, "absent fields stay unset")
}

func TestSettingsHandleUpdateValidation(t *testing.T) {
	settings := &fakeSettings{settings: testSettingsResponse()}
	h := NewSettingsHandler(settings)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "particle count", body: `{"particle_count":0}`, field: "particle_count"},
		{name: "bad color", body: `{"theme_color_primary":"purple"}`, field: "theme_color_primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPut, "/api/settings", tt.body)
			require.NoError(t, h.HandleUpdate(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Details, tt.field)
			assert.Nil(t, settings.lastUpdate, "invalid update must not reach the usecase")
		})
	}
}
