package handlers

import (
	"net/http"
	"strings"
	"time"

	"questacademy/internal/leaderboard"
	"questacademy/internal/models"
	"questacademy/internal/profile"
	"questacademy/internal/progression"
	"questacademy/internal/quest"
)

// ProgressHandler serves quest completions, the leaderboard and
// profile settings.
type ProgressHandler struct {
	profiles *profile.Store
	engine   *progression.Engine
	board    *leaderboard.Projection
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(profiles *profile.Store, engine *progression.Engine, board *leaderboard.Projection) *ProgressHandler {
	return &ProgressHandler{profiles: profiles, engine: engine, board: board}
}

type completionRequest struct {
	Subject string   `json:"subject"`
	Quest   string   `json:"quest"`
	Answers []string `json:"answers"`

	// RewardText covers model-generated quests that are not in the
	// catalog.
	RewardText string `json:"rewardText"`
}

type completionResponse struct {
	Result        *quest.QuizResult `json:"result,omitempty"`
	Reward        models.Reward     `json:"reward"`
	Streak        int               `json:"streak"`
	StreakChanged bool              `json:"streakChanged"`
	Milestone     bool              `json:"milestone"`
	XP            int               `json:"xp"`
}

// Complete handles POST /api/completions. A quest quiz completes the
// quest at any score; the score only affects what the client shows.
func (h *ProgressHandler) Complete(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	var req completionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var reward models.Reward
	var result *quest.QuizResult
	switch {
	case req.Subject != "" || req.Quest != "":
		q, ok := quest.Find(req.Subject, req.Quest)
		if !ok {
			respondWithError(w, http.StatusNotFound, "quest not found", "", nil)
			return
		}
		if len(req.Answers) != len(q.MiniQuiz) {
			respondWithError(w, http.StatusBadRequest, "every question must be answered", "", nil)
			return
		}
		graded := quest.GradeQuiz(q.MiniQuiz, req.Answers)
		result = &graded
		reward = q.Reward
	case strings.TrimSpace(req.RewardText) != "":
		reward = progression.ParseRewardText(req.RewardText)
	default:
		respondWithError(w, http.StatusBadRequest, "subject and quest, or rewardText, required", "", nil)
		return
	}

	res, err := h.engine.Complete(username, reward, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to record completion", "complete quest", err)
		return
	}

	xp, err := h.profiles.XP(username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load profile", "load xp", err)
		return
	}

	respondJSON(w, http.StatusOK, completionResponse{
		Result:        result,
		Reward:        res.Reward,
		Streak:        res.Streak,
		StreakChanged: res.StreakChanged,
		Milestone:     res.Milestone,
		XP:            xp,
	})
}

// Leaderboard handles GET /api/leaderboard.
func (h *ProgressHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.board.Ranked()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load leaderboard", "leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]leaderboard.Entry{"entries": entries})
}

// Profile handles GET /api/profile.
func (h *ProgressHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	data, err := h.profiles.Data(username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load profile", "load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// SaveTheme handles POST /api/profile/theme. The theme is stored both
// on the profile and as the pre-login fallback.
func (h *ProgressHandler) SaveTheme(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	var req themeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		respondWithError(w, http.StatusBadRequest, "theme must be light or dark", "", nil)
		return
	}

	if err := h.profiles.SaveTheme(username, req.Theme); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save theme", "save theme", err)
		return
	}
	if err := h.profiles.SaveGlobalTheme(req.Theme); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save theme", "save global theme", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}

// Theme handles GET /api/profile/theme, falling back to the global
// theme when the user has no preference yet.
func (h *ProgressHandler) Theme(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	theme, err := h.profiles.Theme(username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load theme", "load theme", err)
		return
	}
	if theme == "" {
		theme, err = h.profiles.GlobalTheme()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to load theme", "load global theme", err)
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

type avatarRequest struct {
	Avatar string `json:"avatar"`
}

// SaveAvatar handles POST /api/profile/avatar. The avatar is an opaque
// reference, typically a data URL.
func (h *ProgressHandler) SaveAvatar(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	var req avatarRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Avatar == "" {
		respondWithError(w, http.StatusBadRequest, "avatar is required", "", nil)
		return
	}

	if err := h.profiles.SaveAvatar(username, req.Avatar); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save avatar", "save avatar", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
