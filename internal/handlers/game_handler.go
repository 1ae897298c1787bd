package handlers

import (
	"errors"
	"net/http"
	"time"

	"questacademy/internal/minigames"
	"questacademy/internal/models"
	"questacademy/internal/progression"
	"questacademy/internal/quest"
)

// GameHandler serves the mini-game attempt lifecycle. Only a fully
// correct submission completes the quest; partial scores just report
// the result.
type GameHandler struct {
	manager *minigames.Manager
	engine  *progression.Engine
}

// NewGameHandler creates a new game handler.
func NewGameHandler(manager *minigames.Manager, engine *progression.Engine) *GameHandler {
	return &GameHandler{manager: manager, engine: engine}
}

type startGameRequest struct {
	Subject string `json:"subject"`
	Quest   string `json:"quest"`
}

// Start handles POST /api/games.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	var req startGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, ok := quest.Find(req.Subject, req.Quest)
	if !ok {
		respondWithError(w, http.StatusNotFound, "quest not found", "", nil)
		return
	}
	if q.MiniGame == nil {
		respondWithError(w, http.StatusBadRequest, "quest has no mini-game", "", nil)
		return
	}

	attempt := h.manager.Start(username, req.Subject, req.Quest, q.MiniGame)
	respondJSON(w, http.StatusCreated, newAttemptView(attempt))
}

// Get handles GET /api/games/{id}.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

type moveRequest struct {
	Index int `json:"index"`
	Delta int `json:"delta"`
}

// Move handles POST /api/games/{id}/move for sequence games.
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	session, ok := attempt.Session.(*minigames.SequenceSession)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "not a sequence game", "", nil)
		return
	}

	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := session.Move(req.Index, req.Delta); err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

type pairRequest struct {
	Prompt int `json:"prompt"`
	Answer int `json:"answer"`
}

// Pair handles POST /api/games/{id}/pair for matching games.
func (h *GameHandler) Pair(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	session, ok := attempt.Session.(*minigames.MatchingSession)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "not a matching game", "", nil)
		return
	}

	var req pairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := session.Pair(req.Prompt, req.Answer); err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

type answerRequest struct {
	Index int  `json:"index"`
	Value bool `json:"value"`
}

// Answer handles POST /api/games/{id}/answer for true/false games.
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	session, ok := attempt.Session.(*minigames.TrueFalseSession)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "not a true/false game", "", nil)
		return
	}

	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := session.Answer(req.Index, req.Value); err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

type selectRequest struct {
	Index  int    `json:"index"`
	Option string `json:"option"`
}

// Select handles POST /api/games/{id}/select for quick quizzes.
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	session, ok := attempt.Session.(*minigames.QuickQuizSession)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "not a quick quiz", "", nil)
		return
	}

	var req selectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := session.Select(req.Index, req.Option); err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

type submitResponse struct {
	Outcome   minigames.Outcome `json:"outcome"`
	Reward    *models.Reward    `json:"reward,omitempty"`
	Streak    int               `json:"streak,omitempty"`
	Milestone bool              `json:"milestone,omitempty"`
}

// Submit handles POST /api/games/{id}/submit. The quest reward is
// granted only on a perfect outcome.
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}

	outcome, err := attempt.Session.Submit()
	if err != nil {
		respondGameError(w, err)
		return
	}

	resp := submitResponse{Outcome: outcome}
	if outcome.Complete {
		q, ok := quest.Find(attempt.SubjectKey, attempt.QuestName)
		if !ok {
			respondWithError(w, http.StatusInternalServerError, "quest disappeared", "submit game", nil)
			return
		}
		res, err := h.engine.Complete(attempt.Username, q.Reward, time.Now())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to record completion", "submit game", err)
			return
		}
		resp.Reward = &res.Reward
		resp.Streak = res.Streak
		resp.Milestone = res.Milestone
	}
	respondJSON(w, http.StatusOK, resp)
}

// Reset handles POST /api/games/{id}/reset: back to a fresh shuffle
// with nothing answered.
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.attempt(w, r)
	if !ok {
		return
	}
	attempt.Session.Reset()
	respondJSON(w, http.StatusOK, newAttemptView(attempt))
}

func (h *GameHandler) attempt(w http.ResponseWriter, r *http.Request) (*minigames.Attempt, bool) {
	username := UsernameFromContext(r.Context())
	attempt, err := h.manager.Get(r.PathValue("id"), username)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "attempt not found", "", nil)
		return nil, false
	}
	return attempt, true
}

func respondGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, minigames.ErrAlreadySubmitted):
		respondWithError(w, http.StatusConflict, "attempt already submitted", "", nil)
	case errors.Is(err, minigames.ErrIndexOutOfRange), errors.Is(err, minigames.ErrInvalidChoice):
		respondWithError(w, http.StatusBadRequest, "invalid move", "", nil)
	case errors.Is(err, minigames.ErrAlreadyPaired):
		respondWithError(w, http.StatusConflict, "item already paired", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "something went wrong", "game action", err)
	}
}
