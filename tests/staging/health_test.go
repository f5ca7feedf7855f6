//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadiness(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/readyz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestVersion(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/version", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var v struct {
		Version        string `json:"version"`
		CatalogVersion string `json:"catalog_version"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if v.CatalogVersion == "" {
		t.Error("Expected a catalog version")
	}
}
