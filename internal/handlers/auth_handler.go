package handlers

import (
	"errors"
	"net/http"
	"time"

	"questacademy/internal/auth"
	"questacademy/internal/models"
	"questacademy/internal/profile"
	"questacademy/internal/progression"
	"questacademy/internal/validation"
)

// AuthHandler serves registration, login, logout and session restore.
type AuthHandler struct {
	credentials *auth.Service
	tokens      *auth.TokenManager
	profiles    *profile.Store
	engine      *progression.Engine
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(credentials *auth.Service, tokens *auth.TokenManager, profiles *profile.Store, engine *progression.Engine, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		tokens:      tokens,
		profiles:    profiles,
		engine:      engine,
		sessionTTL:  sessionTTL,
	}
}

type credentialsRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Username      string           `json:"username,omitempty"`
	LastUser      string           `json:"lastUser,omitempty"`
	Profile       *models.UserData `json:"profile,omitempty"`
}

// Register handles POST /api/register. A successful registration logs
// the new user straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.ConfirmPassword != "" {
		if err := validation.ValidatePasswordConfirm(req.Password, req.ConfirmPassword); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
	}

	if err := h.credentials.Register(req.Username, req.Password); err != nil {
		var vErr validation.ValidationError
		switch {
		case errors.As(err, &vErr):
			respondWithError(w, http.StatusBadRequest, vErr.Error(), "", nil)
		case errors.Is(err, auth.ErrUsernameTaken):
			respondWithError(w, http.StatusConflict, "username already taken", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "registration failed", "register", err)
		}
		return
	}

	if err := h.credentials.Login(req.Username, req.Password); err != nil {
		respondWithError(w, http.StatusInternalServerError, "registration failed", "auto-login", err)
		return
	}
	h.startSession(w, req.Username)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.credentials.Login(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "invalid username or password", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "login failed", "login", err)
		return
	}
	h.startSession(w, req.Username)
}

// Logout handles POST /api/logout. The last-used username survives so
// the login form can prefill it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Logout(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "logout failed", "logout", err)
		return
	}
	clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session handles GET /api/session. For an authenticated caller it
// restores the streak (stale streaks reset to zero) and returns the
// profile; otherwise it reports the last-used username for prefill.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if username, err := h.tokens.Verify(cookie.Value); err == nil {
			if _, err := h.engine.Restore(username, time.Now()); err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to restore session", "restore streak", err)
				return
			}
			data, err := h.profiles.Data(username)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to load profile", "load profile", err)
				return
			}
			resp.Authenticated = true
			resp.Username = username
			resp.Profile = &data
			respondJSON(w, http.StatusOK, resp)
			return
		}
		clearSessionCookie(w)
	}

	lastUser, err := h.credentials.LastUser()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load session", "load last user", err)
		return
	}
	resp.LastUser = lastUser
	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, username string) {
	token, err := h.tokens.Issue(username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "session setup failed", "issue token", err)
		return
	}
	setSessionCookie(w, token, h.sessionTTL)

	data, err := h.profiles.Data(username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load profile", "load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Username:      username,
		Profile:       &data,
	})
}
