package handlers

import "net/http"

// NewRouter wires every API route onto a fresh mux. The credential
// endpoints sit behind the rate limiter; everything that touches user
// state requires a session.
func NewRouter(mw *Middleware, auth *AuthHandler, quests *QuestHandler, progress *ProgressHandler, games *GameHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", mw.RateLimit(auth.Register))
	mux.HandleFunc("POST /api/login", mw.RateLimit(auth.Login))
	mux.HandleFunc("POST /api/logout", mw.RequireAuth(auth.Logout))
	mux.HandleFunc("GET /api/session", auth.Session)

	mux.HandleFunc("GET /api/subjects", quests.Subjects)
	mux.HandleFunc("GET /api/subjects/{key}", quests.Subject)
	mux.HandleFunc("POST /api/ai/chat", mw.RequireAuth(quests.Chat))
	mux.HandleFunc("POST /api/ai/quiz", mw.RequireAuth(quests.GenerateQuiz))

	mux.HandleFunc("POST /api/completions", mw.RequireAuth(progress.Complete))
	mux.HandleFunc("GET /api/leaderboard", mw.RequireAuth(progress.Leaderboard))
	mux.HandleFunc("GET /api/profile", mw.RequireAuth(progress.Profile))
	mux.HandleFunc("GET /api/profile/theme", mw.RequireAuth(progress.Theme))
	mux.HandleFunc("POST /api/profile/theme", mw.RequireAuth(progress.SaveTheme))
	mux.HandleFunc("POST /api/profile/avatar", mw.RequireAuth(progress.SaveAvatar))

	mux.HandleFunc("POST /api/games", mw.RequireAuth(games.Start))
	mux.HandleFunc("GET /api/games/{id}", mw.RequireAuth(games.Get))
	mux.HandleFunc("POST /api/games/{id}/move", mw.RequireAuth(games.Move))
	mux.HandleFunc("POST /api/games/{id}/pair", mw.RequireAuth(games.Pair))
	mux.HandleFunc("POST /api/games/{id}/answer", mw.RequireAuth(games.Answer))
	mux.HandleFunc("POST /api/games/{id}/select", mw.RequireAuth(games.Select))
	mux.HandleFunc("POST /api/games/{id}/submit", mw.RequireAuth(games.Submit))
	mux.HandleFunc("POST /api/games/{id}/reset", mw.RequireAuth(games.Reset))

	return mux
}
