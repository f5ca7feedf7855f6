package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	client := newTestAPI(t)
	s, _ := newFakeSession(t)

	tests := []struct {
		name       string
		dataReady  bool
		client     *APIClient
		wantCode   int
		wantStatus string
	}{
		{"connected and reachable", true, client, http.StatusOK, "healthy"},
		{"gateway down", false, client, http.StatusServiceUnavailable, "degraded"},
		{"api unreachable", true, NewAPIClient("http://127.0.0.1:1", ""), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.DataReady = tt.dataReady
			srv := NewHTTPServer("0", &Bot{Session: s, Client: tt.client})

			rec := httptest.NewRecorder()
			srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var got HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.NotZero(t, lastCommandUnix.Load())
}
