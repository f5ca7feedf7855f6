package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

const testProfileID = "6f1c2a4e-8d2b-4b7e-9a51-0c3f7e2d1a90"

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(
		[]domain.Item{
			{ID: "metal_parts", Name: domain.Plain("Metal Parts"), Type: "basic_material", Rarity: domain.RarityCommon, Value: 10},
			{ID: "wires", Name: domain.Localized(map[string]string{"en": "Wires", "de": "Kabel"}), Type: "refined_material", Rarity: domain.RarityUncommon, Value: 50,
				RecyclesInto: map[string]int{"metal_parts": 2}},
			{ID: "battery", Name: domain.Plain("Battery"), Type: "refined_material", Rarity: domain.RarityRare, Value: 120,
				RecyclesInto: map[string]int{"wires": 1, "metal_parts": 1}},
		},
		[]domain.Quest{
			{ID: "q1", Name: domain.Plain("First"), Trader: "Shani", NextQuestIDs: []string{"q2"}},
			{ID: "q2", Name: domain.Plain("Second"), Trader: "Shani", PreviousQuestIDs: []string{"q1"}},
		},
		nil,
		nil,
	)
}

// serve mounts h on a chi router at pattern and performs one request
func serve(t *testing.T, method, pattern, target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
