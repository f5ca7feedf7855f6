package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func TestRequestLanguage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"query wins", "/?lang=de", "fr", "de"},
		{"accept-language", "/", "pt-BR,pt;q=0.9,en;q=0.5", "pt-BR"},
		{"malformed query falls through", "/?lang=%21%21", "fr", "fr"},
		{"fallback", "/", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, RequestLanguage(req, "en"))
		})
	}
}

func TestGetIntQueryParam(t *testing.T) {
	tests := []struct {
		target string
		want   int
		ok     bool
	}{
		{"/", 7, true},
		{"/?n=3", 3, true},
		{"/?n=1", 1, true},
		{"/?n=0", 0, false},
		{"/?n=abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			got, ok := GetIntQueryParam(httptest.NewRequest(http.MethodGet, tt.target, nil), rr, "n", 7, 1)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(CalculateRequest{
		WorkstationLevels: []string{"bad"},
		ProfileID:         "x",
	})
	require.Error(t, err)

	fields := FormatValidationError(err)

	assert.Equal(t, "Must look like {workstation}-level-{index}", fields["workstationlevels[0]"])
	assert.Equal(t, "Must be a UUID", fields["profileid"])
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrItemNotFound, http.StatusNotFound},
		{domain.ErrProfileNotFound, http.StatusNotFound},
		{domain.ErrInvalidSelectionKey, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrCatalogUnavailable, http.StatusServiceUnavailable},
		{domain.ErrDatabaseError, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		code, msg := mapServiceError(tt.err)
		assert.Equal(t, tt.code, code)
		assert.NotEmpty(t, msg)
	}
}
