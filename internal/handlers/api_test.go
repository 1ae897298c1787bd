package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"questacademy/internal/auth"
	"questacademy/internal/gemini"
	"questacademy/internal/kvstore"
	"questacademy/internal/leaderboard"
	"questacademy/internal/minigames"
	"questacademy/internal/profile"
	"questacademy/internal/progression"
	"questacademy/internal/security"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kv := kvstore.NewMemoryStore()
	credentials := auth.NewService(kv)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	profiles := profile.NewStore(kv)
	engine := progression.NewEngine(profiles)
	board := leaderboard.NewProjection(credentials, profiles)
	manager := minigames.NewManager()
	ai := gemini.NewClient("", "gemini-2.5-flash")

	mw := NewMiddleware(tokens, security.NewRateLimiter(100, time.Minute))
	mux := NewRouter(
		mw,
		NewAuthHandler(credentials, tokens, profiles, engine, time.Hour),
		NewQuestHandler(ai),
		NewProgressHandler(profiles, engine, board),
		NewGameHandler(manager, engine),
	)

	srv := httptest.NewServer(Logging(mux))
	t.Cleanup(srv.Close)
	return srv
}

// client wraps the test server with a cookie jar-free session cookie.
type client struct {
	t       *testing.T
	baseURL string
	session *http.Cookie
}

func newClient(t *testing.T, srv *httptest.Server) *client {
	return &client{t: t, baseURL: srv.URL}
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		c.t.Fatalf("build request: %v", err)
	}
	if c.session != nil {
		req.AddCookie(c.session)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName {
			if cookie.MaxAge < 0 {
				c.session = nil
			} else {
				c.session = cookie
			}
		}
	}
	return resp
}

func (c *client) decode(resp *http.Response, dst any) {
	c.t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.t.Fatalf("decode response: %v", err)
	}
}

func (c *client) register(username, password string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"password": password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.t.Fatalf("register %q: status %d", username, resp.StatusCode)
	}
}

func TestRegisterLoginSessionFlow(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	// Registration logs the user in
	c.register("minh", "secret123")
	if c.session == nil {
		t.Fatal("register did not set a session cookie")
	}

	var sess sessionResponse
	c.decode(c.do(http.MethodGet, "/api/session", nil), &sess)
	if !sess.Authenticated || sess.Username != "minh" {
		t.Fatalf("session = %+v, want authenticated minh", sess)
	}

	// Logout keeps the last user for prefill
	resp := c.do(http.MethodPost, "/api/logout", nil)
	resp.Body.Close()
	if c.session != nil {
		t.Fatal("logout did not clear the session cookie")
	}

	c.decode(c.do(http.MethodGet, "/api/session", nil), &sess)
	if sess.Authenticated {
		t.Error("session still authenticated after logout")
	}
	if sess.LastUser != "minh" {
		t.Errorf("lastUser = %q, want minh", sess.LastUser)
	}

	// Login with the wrong password fails
	resp = c.do(http.MethodPost, "/api/login", map[string]string{"username": "minh", "password": "wrong-pass"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", resp.StatusCode)
	}

	resp = c.do(http.MethodPost, "/api/login", map[string]string{"username": "minh", "password": "secret123"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || c.session == nil {
		t.Fatalf("login failed: status %d", resp.StatusCode)
	}
}

func TestRegisterRejectsDuplicateAndShortPassword(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	resp := c.do(http.MethodPost, "/api/register", map[string]string{"username": "minh", "password": "other-pass"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate username status = %d, want 409", resp.StatusCode)
	}

	resp = c.do(http.MethodPost, "/api/register", map[string]string{"username": "lan", "password": "abc"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("short password status = %d, want 400", resp.StatusCode)
	}
}

func TestProtectedEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/completions"},
		{http.MethodGet, "/api/leaderboard"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/ai/chat"},
		{http.MethodPost, "/api/games"},
	}
	for _, p := range paths {
		resp := c.do(p.method, p.path, map[string]string{})
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", p.method, p.path, resp.StatusCode)
		}
	}
}

func TestSubjectsCatalog(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	var body struct {
		Welcome struct {
			Sender string `json:"sender"`
		} `json:"welcome"`
		Subjects []subjectView `json:"subjects"`
	}
	c.decode(c.do(http.MethodGet, "/api/subjects", nil), &body)

	if body.Welcome.Sender != "ai" {
		t.Errorf("welcome sender = %q, want ai", body.Welcome.Sender)
	}
	if len(body.Subjects) == 0 {
		t.Fatal("catalog is empty")
	}
	if body.Subjects[0].Key != "toan" {
		t.Errorf("first subject = %q, want toan", body.Subjects[0].Key)
	}

	resp := c.do(http.MethodGet, "/api/subjects/khongco", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown subject status = %d, want 404", resp.StatusCode)
	}
}

func TestQuizCompletionRewardsAnyScore(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	// Submit a quest quiz with every answer wrong: the quest still
	// completes and the full reward lands.
	var body completionResponse
	c.decode(c.do(http.MethodPost, "/api/completions", map[string]any{
		"subject": "toan",
		"quest":   "Đại Chiến Phương Trình",
		"answers": []string{"B. x = -3", "B. 2x = 4", "C. x = 4"},
	}), &body)

	if body.Result == nil || body.Result.Score != 0 {
		t.Fatalf("result = %+v, want zero score", body.Result)
	}
	if body.Reward.XP != 100 {
		t.Errorf("reward XP = %d, want 100 despite the score", body.Reward.XP)
	}
	if body.Streak != 1 || !body.StreakChanged {
		t.Errorf("streak = %d (changed %v), want 1 (true)", body.Streak, body.StreakChanged)
	}
	if body.XP != 100 {
		t.Errorf("total XP = %d, want 100", body.XP)
	}
}

func TestGeneratedQuestCompletionByRewardText(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	var body completionResponse
	c.decode(c.do(http.MethodPost, "/api/completions", map[string]any{
		"rewardText": `+50 XP, huy hiệu "Nhà Thám Hiểm AI" 🤖, 10 xu 🪙`,
	}), &body)

	if body.Reward.XP != 50 || body.Reward.Coins != 10 || body.Reward.Badge != "Nhà Thám Hiểm AI" {
		t.Errorf("reward = %+v, want parsed reward text", body.Reward)
	}
	if body.Result != nil {
		t.Error("reward-text completion carried a quiz result")
	}
}

func TestCompletionUnknownQuest(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	resp := c.do(http.MethodPost, "/api/completions", map[string]any{
		"subject": "toan",
		"quest":   "không tồn tại",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown quest status = %d, want 404", resp.StatusCode)
	}
}

func TestTrueFalseGameLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	// "Vương Quốc Giới Từ" carries a true/false game with four statements
	var attempt attemptView
	c.decode(c.do(http.MethodPost, "/api/games", map[string]string{
		"subject": "anh",
		"quest":   "Vương Quốc Giới Từ",
	}), &attempt)
	if attempt.Kind != "true_false" || len(attempt.Statements) != 4 {
		t.Fatalf("attempt = %+v, want a 4-statement true/false game", attempt)
	}

	// Correct judgments: false, true, true, false
	judgments := []bool{false, true, true, false}

	// First submit with one wrong judgment: score only, no reward
	for i, v := range judgments {
		value := v
		if i == 0 {
			value = !v
		}
		resp := c.do(http.MethodPost, "/api/games/"+attempt.ID+"/answer", map[string]any{"index": i, "value": value})
		resp.Body.Close()
	}
	var result submitResponse
	c.decode(c.do(http.MethodPost, "/api/games/"+attempt.ID+"/submit", nil), &result)
	if result.Outcome.Complete {
		t.Fatal("imperfect submission completed the quest")
	}
	if result.Outcome.Score != 3 || result.Outcome.Total != 4 {
		t.Errorf("outcome = %+v, want 3/4", result.Outcome)
	}
	if result.Reward != nil {
		t.Error("imperfect submission granted a reward")
	}

	// Answering after submit conflicts
	resp := c.do(http.MethodPost, "/api/games/"+attempt.ID+"/answer", map[string]any{"index": 0, "value": true})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("answer after submit status = %d, want 409", resp.StatusCode)
	}

	// Reset and play perfectly: the quest reward lands
	resp = c.do(http.MethodPost, "/api/games/"+attempt.ID+"/reset", nil)
	resp.Body.Close()
	for i, v := range judgments {
		resp := c.do(http.MethodPost, "/api/games/"+attempt.ID+"/answer", map[string]any{"index": i, "value": v})
		resp.Body.Close()
	}
	c.decode(c.do(http.MethodPost, "/api/games/"+attempt.ID+"/submit", nil), &result)
	if !result.Outcome.Complete {
		t.Fatalf("perfect submission did not complete: %+v", result.Outcome)
	}
	if result.Reward == nil || result.Reward.XP != 110 {
		t.Errorf("reward = %+v, want the quest reward", result.Reward)
	}

	// The XP shows up on the profile
	var data struct {
		XP int `json:"xp"`
	}
	c.decode(c.do(http.MethodGet, "/api/profile", nil), &data)
	if data.XP != 110 {
		t.Errorf("profile XP = %d, want 110", data.XP)
	}
}

func TestGameStartValidation(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	// A quest without a mini-game cannot start one
	resp := c.do(http.MethodPost, "/api/games", map[string]string{
		"subject": "toan",
		"quest":   "Đại Chiến Phương Trình",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("quest without game status = %d, want 400", resp.StatusCode)
	}

	resp = c.do(http.MethodGet, "/api/games/khong-ton-tai", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown attempt status = %d, want 404", resp.StatusCode)
	}
}

func TestGameAttemptsAreOwnerScoped(t *testing.T) {
	srv := newTestServer(t)

	owner := newClient(t, srv)
	owner.register("minh", "secret123")

	var attempt attemptView
	owner.decode(owner.do(http.MethodPost, "/api/games", map[string]string{
		"subject": "anh",
		"quest":   "Vương Quốc Giới Từ",
	}), &attempt)

	other := newClient(t, srv)
	other.register("lan", "secret123")
	resp := other.do(http.MethodGet, "/api/games/"+attempt.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("foreign attempt status = %d, want 404", resp.StatusCode)
	}
}

func TestThemeAndAvatar(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	resp := c.do(http.MethodPost, "/api/profile/theme", map[string]string{"theme": "neon"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid theme status = %d, want 400", resp.StatusCode)
	}

	resp = c.do(http.MethodPost, "/api/profile/theme", map[string]string{"theme": "dark"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save theme status = %d", resp.StatusCode)
	}

	var theme map[string]string
	c.decode(c.do(http.MethodGet, "/api/profile/theme", nil), &theme)
	if theme["theme"] != "dark" {
		t.Errorf("theme = %q, want dark", theme["theme"])
	}

	resp = c.do(http.MethodPost, "/api/profile/avatar", map[string]string{"avatar": "data:image/png;base64,aGk="})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("save avatar status = %d", resp.StatusCode)
	}
}

func TestLeaderboard(t *testing.T) {
	srv := newTestServer(t)

	first := newClient(t, srv)
	first.register("minh", "secret123")
	var body completionResponse
	first.decode(first.do(http.MethodPost, "/api/completions", map[string]any{"rewardText": "+200 XP"}), &body)

	second := newClient(t, srv)
	second.register("lan", "secret123")

	var board struct {
		Entries []leaderboard.Entry `json:"entries"`
	}
	second.decode(second.do(http.MethodGet, "/api/leaderboard", nil), &board)
	if len(board.Entries) != 2 {
		t.Fatalf("leaderboard has %d entries, want 2", len(board.Entries))
	}
	if board.Entries[0].Username != "minh" || board.Entries[0].XP != 200 {
		t.Errorf("top entry = %+v, want minh with 200 XP", board.Entries[0])
	}
}

func TestOfflineChat(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register("minh", "secret123")

	var body map[string]string
	c.decode(c.do(http.MethodPost, "/api/ai/chat", map[string]any{
		"message": "Tạo bài tập về phân số",
	}), &body)
	if body["reply"] == "" {
		t.Error("chat returned an empty reply")
	}

	resp := c.do(http.MethodPost, "/api/ai/chat", map[string]any{"message": "   "})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank message status = %d, want 400", resp.StatusCode)
	}
}
