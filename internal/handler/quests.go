package handler

import (
	"context"
	"net/http"

	"github.com/osse101/RaidCompanion_Go/internal/progress"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
)

// ToggleQuestRequest identifies whose quest log to change
type ToggleQuestRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
}

// RequiredItemsResponse lists items needed for the active quests
type RequiredItemsResponse struct {
	Items map[string]int `json:"items"`
}

// completedFor loads the completed quest set of the profile query parameter.
// An absent profile means nothing is completed.
func completedFor(ctx context.Context, progressSvc progress.Service, profileID string) (quest.CompletedSet, error) {
	if profileID == "" {
		return quest.NewCompletedSet(), nil
	}
	p, err := progressSvc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return quest.NewCompletedSet(p.CompletedQuests...), nil
}

// HandleGetQuestBoard returns every quest grouped by trader with derived statuses
// @Summary Quest board
// @Tags quests
// @Produce json
// @Param profile query string false "Profile ID (UUID)"
// @Success 200 {object} quest.Board
// @Failure 400 {object} ErrorResponse
// @Router /quests [get]
func HandleGetQuestBoard(questSvc quest.Service, progressSvc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		completed, err := completedFor(r.Context(), progressSvc, r.URL.Query().Get("profile"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}
		board, err := questSvc.GetBoard(r.Context(), completed)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetQuestsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGetQuest returns one quest with its derived status
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param id path string true "Quest ID"
// @Param profile query string false "Profile ID (UUID)"
// @Success 200 {object} domain.QuestState
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [get]
func HandleGetQuest(questSvc quest.Service, progressSvc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		completed, err := completedFor(r.Context(), progressSvc, r.URL.Query().Get("profile"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}
		state, err := questSvc.GetQuest(r.Context(), id, completed)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetQuestsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleGetQuestItems returns the items needed to turn in every active quest
// @Summary Items for active quests
// @Tags quests
// @Produce json
// @Param profile query string false "Profile ID (UUID)"
// @Success 200 {object} RequiredItemsResponse
// @Router /quests/required-items [get]
func HandleGetQuestItems(questSvc quest.Service, progressSvc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		completed, err := completedFor(r.Context(), progressSvc, r.URL.Query().Get("profile"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}
		items, err := questSvc.GetRequiredItems(r.Context(), completed)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetQuestsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, RequiredItemsResponse{Items: items})
	}
}

// HandleToggleQuest completes a quest with its prerequisites, or uncompletes it
// @Summary Toggle quest completion
// @Description Completing a quest also completes every prerequisite; uncompleting touches only this quest
// @Tags quests
// @Accept json
// @Produce json
// @Param id path string true "Quest ID"
// @Param request body ToggleQuestRequest true "Profile"
// @Success 200 {object} domain.Progress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id}/toggle [post]
func HandleToggleQuest(progressSvc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		var req ToggleQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Toggle quest"); err != nil {
			return
		}
		p, err := progressSvc.ToggleQuest(r.Context(), req.ProfileID, id)
		if err != nil {
			respondServiceError(w, r, ErrMsgToggleQuestFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

