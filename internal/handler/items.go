package handler

import (
	"context"
	"net/http"

	"github.com/osse101/RaidCompanion_Go/internal/calculator"
	"github.com/osse101/RaidCompanion_Go/internal/catalog"
	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// CatalogSource provides the current catalog snapshot
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// ItemView is an item with its text resolved in the request language
type ItemView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Rarity       domain.Rarity  `json:"rarity,omitempty"`
	Value        int            `json:"value"`
	Weight       *float64       `json:"weight,omitempty"`
	RecyclesInto map[string]int `json:"recycles_into,omitempty"`
	IsTerminal   bool           `json:"is_terminal"`
}

// SearchMatchView is a scored search hit
type SearchMatchView struct {
	Item   ItemView `json:"item"`
	Score  float64  `json:"score"`
	Source string   `json:"source"`
}

func newItemView(item *domain.Item, lang string) ItemView {
	return ItemView{
		ID:           item.ID,
		Name:         item.Name.Resolve(lang),
		Description:  item.Description.Resolve(lang),
		Type:         item.Type,
		Category:     calculator.CategoryLabel(item.Type),
		Rarity:       item.Rarity,
		Value:        item.Value,
		Weight:       item.Weight,
		RecyclesInto: item.RecyclesInto,
		IsTerminal:   item.IsTerminal(),
	}
}

// HandleListItems lists catalog items with optional filters
// @Summary List items
// @Description Lists catalog items, optionally filtered by type, rarity and terminal status
// @Tags items
// @Produce json
// @Param type query string false "Item type"
// @Param rarity query string false "Exact rarity"
// @Param min_rarity query string false "Minimum rarity"
// @Param terminal query bool false "Only terminal (true) or recyclable (false) items"
// @Param lang query string false "Display language"
// @Success 200 {object} ListResponse[ItemView]
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /items [get]
func HandleListItems(source CatalogSource, defaultLang string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.ItemFilter{
			Type:      r.URL.Query().Get("type"),
			Rarity:    domain.Rarity(r.URL.Query().Get("rarity")),
			MinRarity: domain.Rarity(r.URL.Query().Get("min_rarity")),
		}
		if !filter.Rarity.IsValid() || !filter.MinRarity.IsValid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}
		terminal, ok := GetBoolQueryParam(r, w, "terminal")
		if !ok {
			return
		}
		filter.Terminal = terminal

		c, err := source.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemsFailed, err)
			return
		}

		lang := RequestLanguage(r, defaultLang)
		items := catalog.FilterItems(c.Items, filter)
		views := make([]ItemView, 0, len(items))
		for i := range items {
			views = append(views, newItemView(&items[i], lang))
		}
		respondJSON(w, http.StatusOK, newListResponse(views))
	}
}

// HandleSearchItems finds items by id or name, tolerating typos
// @Summary Search items
// @Tags items
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results (default 10, max 50)"
// @Param lang query string false "Display language"
// @Success 200 {object} ListResponse[SearchMatchView]
// @Failure 400 {object} ErrorResponse
// @Router /items/search [get]
func HandleSearchItems(source CatalogSource, defaultLang string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}
		limit, ok := GetIntQueryParam(r, w, "limit", defaultSearchLimit, 1)
		if !ok {
			return
		}
		limit = min(limit, maxSearchLimit)

		c, err := source.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemsFailed, err)
			return
		}

		lang := RequestLanguage(r, defaultLang)
		matches := catalog.FindItem(c, query, lang, limit)
		views := make([]SearchMatchView, 0, len(matches))
		for _, m := range matches {
			views = append(views, SearchMatchView{Item: newItemView(m.Item, lang), Score: m.Score, Source: m.Source})
		}

		logger.FromContext(r.Context()).Debug("Item search", "query", query, "results", len(views))
		respondJSON(w, http.StatusOK, newListResponse(views))
	}
}

// HandleGetItem returns a single item
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Param lang query string false "Display language"
// @Success 200 {object} ItemView
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func HandleGetItem(source CatalogSource, defaultLang string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		c, err := source.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemsFailed, err)
			return
		}
		item, found := c.Item(id)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, newItemView(item, RequestLanguage(r, defaultLang)))
	}
}

// HandleGetItemMetrics returns the recycling metrics of a single item
// @Summary Get item recycling metrics
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.RecyclingMetrics
// @Failure 404 {object} ErrorResponse
// @Router /items/{id}/metrics [get]
func HandleGetItemMetrics(svc recycling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		m, err := svc.GetMetrics(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMetricsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}
