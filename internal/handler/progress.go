package handler

import (
	"net/http"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/progress"
)

// ReplaceProgressRequest overwrites a profile's stored progress
type ReplaceProgressRequest struct {
	CompletedQuests   []string       `json:"completed_quests" validate:"dive,required"`
	Inventory         map[string]int `json:"inventory" validate:"dive,keys,required,endkeys,gte=0"`
	WorkstationLevels map[string]int `json:"workstation_levels" validate:"dive,keys,required,endkeys,gte=0"`
	TrackedItems      []string       `json:"tracked_items" validate:"dive,required"`
}

// SetWorkstationLevelRequest sets the built level of one workstation
type SetWorkstationLevelRequest struct {
	Level int `json:"level" validate:"gte=0"`
}

// SetInventoryRequest merges item counts into the inventory; a zero count removes the item
type SetInventoryRequest struct {
	Items map[string]int `json:"items" validate:"required,dive,keys,required,endkeys,gte=0"`
}

// SetTrackedRequest replaces the tracked item list
type SetTrackedRequest struct {
	ItemIDs []string `json:"item_ids" validate:"dive,required"`
}

func getProfileID(r *http.Request, w http.ResponseWriter) (string, bool) {
	id, ok := GetPathParam(r, w, "profile")
	if !ok {
		return "", false
	}
	if err := progress.ValidateProfileID(id); err != nil {
		respondServiceError(w, r, ErrMsgGetProgressFailed, err)
		return "", false
	}
	return id, true
}

// HandleGetProgress returns a profile's progress; unknown profiles get an empty record
// @Summary Get progress
// @Tags progress
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Success 200 {object} domain.Progress
// @Failure 400 {object} ErrorResponse
// @Router /progress/{profile} [get]
func HandleGetProgress(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		p, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleReplaceProgress overwrites a profile's progress
// @Summary Replace progress
// @Tags progress
// @Accept json
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Param request body ReplaceProgressRequest true "Progress"
// @Success 200 {object} domain.Progress
// @Failure 400 {object} ValidationErrorResponse
// @Router /progress/{profile} [put]
func HandleReplaceProgress(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		var req ReplaceProgressRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Replace progress"); err != nil {
			return
		}
		p, err := svc.Replace(r.Context(), &domain.Progress{
			ProfileID:         id,
			CompletedQuests:   req.CompletedQuests,
			Inventory:         req.Inventory,
			WorkstationLevels: req.WorkstationLevels,
			TrackedItems:      req.TrackedItems,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleSetWorkstationLevel records the built level of a workstation
// @Summary Set workstation level
// @Tags progress
// @Accept json
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Param id path string true "Workstation ID"
// @Param request body SetWorkstationLevelRequest true "Level"
// @Success 200 {object} domain.Progress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /progress/{profile}/workstations/{id} [put]
func HandleSetWorkstationLevel(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		stationID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		var req SetWorkstationLevelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set workstation level"); err != nil {
			return
		}
		p, err := svc.SetWorkstationLevel(r.Context(), id, stationID, req.Level)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleSetInventory merges item counts into a profile's inventory
// @Summary Update inventory
// @Tags progress
// @Accept json
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Param request body SetInventoryRequest true "Item counts"
// @Success 200 {object} domain.Progress
// @Failure 400 {object} ValidationErrorResponse
// @Router /progress/{profile}/inventory [put]
func HandleSetInventory(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		var req SetInventoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set inventory"); err != nil {
			return
		}
		p, err := svc.SetInventory(r.Context(), id, req.Items)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleSetTracked replaces the items a profile is tracking
// @Summary Set tracked items
// @Tags progress
// @Accept json
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Param request body SetTrackedRequest true "Tracked items"
// @Success 200 {object} domain.Progress
// @Failure 404 {object} ErrorResponse
// @Router /progress/{profile}/tracked [put]
func HandleSetTracked(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		var req SetTrackedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set tracked items"); err != nil {
			return
		}
		p, err := svc.SetTracked(r.Context(), id, req.ItemIDs)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleResetProgress deletes a profile's progress
// @Summary Reset progress
// @Tags progress
// @Produce json
// @Param profile path string true "Profile ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /progress/{profile} [delete]
func HandleResetProgress(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getProfileID(r, w)
		if !ok {
			return
		}
		if err := svc.Reset(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgResetProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressReset})
	}
}
