package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/handler"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
)

const (
	apiPrefix         = "/api/v1"
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.StatusCode)
}

// IsNotFound reports whether err is an API 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// APIClient handles communication with the RaidCompanion API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	Language   string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey:     apiKey,
		Language:   "en",
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
// with exponential backoff
func (c *APIClient) doRequest(method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(rand.IntN(100)) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", c.Language)
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = &APIError{StatusCode: resp.StatusCode}
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// getJSON issues a GET and decodes a 200 answer into out
func (c *APIClient) getJSON(path string, out any) error {
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var errResp handler.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &errResp) == nil {
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// Healthz reports whether the API answers its liveness probe
func (c *APIClient) Healthz() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ListItems returns every catalog item
func (c *APIClient) ListItems() ([]handler.ItemView, error) {
	var out handler.ListResponse[handler.ItemView]
	if err := c.getJSON(apiPrefix+"/items", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// SearchItems finds items by id or name
func (c *APIClient) SearchItems(query string, limit int) ([]handler.SearchMatchView, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var out handler.ListResponse[handler.SearchMatchView]
	if err := c.getJSON(apiPrefix+"/items/search?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetItem returns one item
func (c *APIClient) GetItem(id string) (*handler.ItemView, error) {
	var out handler.ItemView
	if err := c.getJSON(apiPrefix+"/items/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItemMetrics returns the recycling metrics of one item
func (c *APIClient) GetItemMetrics(id string) (*domain.RecyclingMetrics, error) {
	var out domain.RecyclingMetrics
	if err := c.getJSON(apiPrefix+"/items/"+url.PathEscape(id)+"/metrics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChain returns the recycling tree of quantity units of an item
func (c *APIClient) GetChain(id string, quantity int) (*domain.RecyclingNode, error) {
	path := fmt.Sprintf("%s/recycling/%s/chain?quantity=%d", apiPrefix, url.PathEscape(id), quantity)
	var out domain.RecyclingNode
	if err := c.getJSON(path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTerminals returns the terminal materials of quantity units of an item
func (c *APIClient) GetTerminals(id string, quantity int) (map[string]int, error) {
	path := fmt.Sprintf("%s/recycling/%s/terminals?quantity=%d", apiPrefix, url.PathEscape(id), quantity)
	var out handler.TerminalsResponse
	if err := c.getJSON(path, &out); err != nil {
		return nil, err
	}
	return out.Materials, nil
}

// FindSources returns the recycling paths that yield a material
func (c *APIClient) FindSources(id string, maxDepth int, sortBy string) ([]domain.RecyclingPath, error) {
	params := url.Values{}
	if maxDepth > 0 {
		params.Set("max_depth", strconv.Itoa(maxDepth))
	}
	if sortBy != "" {
		params.Set("sort", sortBy)
	}

	path := fmt.Sprintf("%s/recycling/%s/sources", apiPrefix, url.PathEscape(id))
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out handler.ListResponse[domain.RecyclingPath]
	if err := c.getJSON(path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetQuestBoard returns every quest with no completed progress
func (c *APIClient) GetQuestBoard() (*quest.Board, error) {
	var out quest.Board
	if err := c.getJSON(apiPrefix+"/quests", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetQuest returns one quest with its status
func (c *APIClient) GetQuest(id string) (*domain.QuestState, error) {
	var out domain.QuestState
	if err := c.getJSON(apiPrefix+"/quests/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
