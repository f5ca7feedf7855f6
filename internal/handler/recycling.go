package handler

import (
	"net/http"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

const maxRecycleQuantity = 10000

// TerminalsResponse lists the terminal materials of fully recycling an item
type TerminalsResponse struct {
	ItemID    string         `json:"item_id"`
	Quantity  int            `json:"quantity"`
	Materials map[string]int `json:"materials"`
}

func getQuantity(r *http.Request, w http.ResponseWriter) (int, bool) {
	q, ok := GetIntQueryParam(r, w, "quantity", 1, 1)
	if !ok {
		return 0, false
	}
	if q > maxRecycleQuantity {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
		return 0, false
	}
	return q, true
}

// HandleGetChain returns the recycling tree of an item
// @Summary Recycling chain
// @Description Builds the full recycling tree for quantity units of an item
// @Tags recycling
// @Produce json
// @Param id path string true "Item ID"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} domain.RecyclingNode
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recycling/{id}/chain [get]
func HandleGetChain(svc recycling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		quantity, ok := getQuantity(r, w)
		if !ok {
			return
		}
		node, err := svc.GetChain(r.Context(), id, quantity)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetChainFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, node)
	}
}

// HandleGetTerminals returns the terminal materials of fully recycling an item
// @Summary Terminal materials
// @Tags recycling
// @Produce json
// @Param id path string true "Item ID"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} TerminalsResponse
// @Failure 404 {object} ErrorResponse
// @Router /recycling/{id}/terminals [get]
func HandleGetTerminals(svc recycling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		quantity, ok := getQuantity(r, w)
		if !ok {
			return
		}
		materials, err := svc.GetTerminals(r.Context(), id, quantity)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTerminalsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, TerminalsResponse{ItemID: id, Quantity: quantity, Materials: materials})
	}
}

// HandleFindSources lists every recycling path that yields the target material
// @Summary Reverse recycling search
// @Description Finds every item that recycles, directly or through intermediates, into the target
// @Tags recycling
// @Produce json
// @Param id path string true "Target item ID"
// @Param max_depth query int false "Maximum chain length"
// @Param min_rarity query string false "Minimum source rarity"
// @Param min_efficiency query int false "Minimum efficiency percentage"
// @Param sort query string false "efficiency | value | steps | quantity"
// @Success 200 {object} ListResponse[domain.RecyclingPath]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recycling/{id}/sources [get]
func HandleFindSources(svc recycling.Service, defaultMaxDepth int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		maxDepth, ok := GetIntQueryParam(r, w, "max_depth", defaultMaxDepth, 1)
		if !ok {
			return
		}
		maxDepth = min(maxDepth, domain.MaxChainDepth)
		minEfficiency, ok := GetIntQueryParam(r, w, "min_efficiency", 0, 0)
		if !ok {
			return
		}
		minRarity := domain.Rarity(r.URL.Query().Get("min_rarity"))
		if !minRarity.IsValid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}
		sortBy, err := recycling.ParseSortBy(r.URL.Query().Get("sort"))
		if err != nil {
			respondServiceError(w, r, ErrMsgFindSourcesFailed, err)
			return
		}

		paths, err := svc.FindSources(r.Context(), id, recycling.SourceOptions{
			MaxDepth: maxDepth,
			Filter:   recycling.PathFilter{MinRarity: minRarity, MinEfficiency: minEfficiency},
			Sort:     sortBy,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgFindSourcesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newListResponse(paths))
	}
}

// HandleGetMetricsTable returns recycling metrics for every item
// @Summary Recycling metrics table
// @Tags recycling
// @Produce json
// @Success 200 {object} ListResponse[domain.RecyclingMetrics]
// @Router /recycling/metrics [get]
func HandleGetMetricsTable(svc recycling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := svc.GetMetricsTable(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMetricsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newListResponse(table))
	}
}
