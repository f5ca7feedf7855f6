package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/mocks"
)

func testServices(t *testing.T) (Services, *mocks.MockCatalogSource, *mocks.MockRecyclingService) {
	catalog := mocks.NewMockCatalogSource(t)
	recyclingSvc := mocks.NewMockRecyclingService(t)
	return Services{
		Catalog:    catalog,
		Recycling:  recyclingSvc,
		Quests:     mocks.NewMockQuestService(t),
		Calculator: mocks.NewMockCalculatorService(t),
		Progress:   mocks.NewMockProgressService(t),
	}, catalog, recyclingSvc
}

func TestRouter_Routes(t *testing.T) {
	svc, catalog, recyclingSvc := testServices(t)
	c := domain.NewCatalog([]domain.Item{{ID: "metal_parts", Name: domain.Plain("Metal Parts")}}, nil, nil, nil)
	catalog.On("Snapshot", mock.Anything).Return(c, nil)
	recyclingSvc.On("GetChain", mock.Anything, "metal_parts", 3).Return(&domain.RecyclingNode{PathID: "metal_parts", Quantity: 3}, nil)

	router := NewRouter(Options{DefaultLanguage: "en", PathMaxDepth: 10, Version: "test"}, svc)

	tests := []struct {
		target string
		want   int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/version", http.StatusOK},
		{"/api/v1/items", http.StatusOK},
		{"/api/v1/items/metal_parts", http.StatusOK},
		{"/api/v1/recycling/metal_parts/chain?quantity=3", http.StatusOK},
		{"/api/v1/nothing-here", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	svc, _, _ := testServices(t)
	router := NewRouter(Options{DefaultLanguage: "en", PathMaxDepth: 10}, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/recycling/{id}/sources")
	assert.Contains(t, doc.Paths, "/quests/{id}/toggle")
}

func TestRouter_WriteRequiresKey(t *testing.T) {
	svc, _, _ := testServices(t)
	router := NewRouter(Options{APIKey: "k", DefaultLanguage: "en", PathMaxDepth: 10}, svc)

	body, err := json.Marshal(map[string]string{"profile_id": "6f1c2a4e-8d2b-4b7e-9a51-0c3f7e2d1a90"})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quests/q1/toggle", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler()).ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}
