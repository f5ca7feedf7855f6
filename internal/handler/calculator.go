package handler

import (
	"net/http"

	"github.com/osse101/RaidCompanion_Go/internal/calculator"
	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/progress"
)

// CalculateRequest is a requirement selection, optionally compared to a profile's inventory
type CalculateRequest struct {
	QuestIDs          []string              `json:"quest_ids" validate:"dive,required"`
	WorkstationLevels []string              `json:"workstation_levels" validate:"dive,stationkey"`
	ProjectPhases     []string              `json:"project_phases" validate:"dive,phasekey"`
	Custom            []domain.ItemQuantity `json:"custom" validate:"dive"`
	ProfileID         string                `json:"profile_id,omitempty" validate:"omitempty,uuid"`
}

// CategoryGroup is one labelled bucket of summed requirements
type CategoryGroup struct {
	Category string                   `json:"category"`
	Label    string                   `json:"label"`
	Items    []calculator.Requirement `json:"items"`
}

// CalculateResponse is the aggregated requirement breakdown
type CalculateResponse struct {
	Categories     []CategoryGroup      `json:"categories"`
	CategoryValues map[string]int       `json:"category_values"`
	Skipped        []string             `json:"skipped,omitempty"`
	Missing        []calculator.Missing `json:"missing,omitempty"`
}

func (req CalculateRequest) selection() calculator.Selection {
	return calculator.Selection{
		QuestIDs:          req.QuestIDs,
		WorkstationLevels: req.WorkstationLevels,
		ProjectPhases:     req.ProjectPhases,
		Custom:            req.Custom,
	}
}

func newCalculateResponse(res *calculator.Result) CalculateResponse {
	resp := CalculateResponse{
		Categories:     []CategoryGroup{},
		CategoryValues: res.CategoryValues,
		Skipped:        res.Skipped,
	}
	for _, req := range res.Flatten() {
		n := len(resp.Categories)
		if n == 0 || resp.Categories[n-1].Category != req.Category {
			resp.Categories = append(resp.Categories, CategoryGroup{
				Category: req.Category,
				Label:    calculator.CategoryLabel(req.Category),
			})
			n++
		}
		resp.Categories[n-1].Items = append(resp.Categories[n-1].Items, req)
	}
	return resp
}

// HandleCalculate sums the items required by the selected quests, workstation levels,
// project phases and custom entries
// @Summary Aggregate requirements
// @Description With profile_id set, the response also lists what the profile's inventory does not cover
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Selection"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /calculator [post]
func HandleCalculate(svc calculator.Service, progressSvc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalculateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Calculate"); err != nil {
			return
		}

		res, err := svc.Calculate(r.Context(), req.selection())
		if err != nil {
			respondServiceError(w, r, ErrMsgCalculateFailed, err)
			return
		}
		resp := newCalculateResponse(res)

		if req.ProfileID != "" {
			p, err := progressSvc.Get(r.Context(), req.ProfileID)
			if err != nil {
				respondServiceError(w, r, ErrMsgGetProgressFailed, err)
				return
			}
			resp.Missing = calculator.Shortfall(res, p.Inventory)
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
