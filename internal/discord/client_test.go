package discord

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_AgainstRouter(t *testing.T) {
	client := newTestAPI(t)

	t.Run("get item", func(t *testing.T) {
		item, err := client.GetItem("wires")
		require.NoError(t, err)
		assert.Equal(t, "Wires", item.Name)
		assert.False(t, item.IsTerminal)
	})

	t.Run("unknown item is a 404", func(t *testing.T) {
		_, err := client.GetItem("nope")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("search tolerates typos", func(t *testing.T) {
		matches, err := client.SearchItems("batery", 5)
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		assert.Equal(t, "battery", matches[0].Item.ID)
	})

	t.Run("chain and terminals", func(t *testing.T) {
		chain, err := client.GetChain("wires", 2)
		require.NoError(t, err)
		assert.Equal(t, "wires", chain.Item.ID)
		assert.Equal(t, 2, chain.Quantity)
		assert.Len(t, chain.Children, 2)

		terminals, err := client.GetTerminals("wires", 2)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"metal_parts": 2, "plastic_parts": 2}, terminals)
	})

	t.Run("sources", func(t *testing.T) {
		paths, err := client.FindSources("plastic_parts", 0, "steps")
		require.NoError(t, err)
		require.NotEmpty(t, paths)
		assert.Equal(t, 1, paths[0].TotalSteps)
	})

	t.Run("metrics", func(t *testing.T) {
		m, err := client.GetItemMetrics("rusted_toolbox")
		require.NoError(t, err)
		assert.True(t, m.CanBeRecycled)
		assert.Equal(t, 300, m.TotalValue)
		assert.Equal(t, 100, m.Efficiency)
	})

	t.Run("quests", func(t *testing.T) {
		board, err := client.GetQuestBoard()
		require.NoError(t, err)
		assert.NotEmpty(t, board.Traders)

		state, err := client.GetQuest("clearer_skies")
		require.NoError(t, err)
		assert.Equal(t, "Shani", state.Quest.Trader)
	})

	t.Run("healthz", func(t *testing.T) {
		assert.True(t, client.Healthz())
	})
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"item_id":"wires","quantity":1,"materials":{"metal_parts":1}}`))
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "secret")
	client.RetryDelay = time.Millisecond

	materials, err := client.GetTerminals("wires", 1)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"metal_parts": 1}, materials)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "")
	client.RetryDelay = time.Millisecond
	client.MaxRetries = 1

	_, err := client.GetItem("wires")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(2), calls.Load())
}

func TestAPIClient_DecodesErrorMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid quantity query parameter"}`))
	}))
	defer ts.Close()

	_, err := NewAPIClient(ts.URL, "").GetChain("wires", 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid quantity query parameter", apiErr.Message)
}
