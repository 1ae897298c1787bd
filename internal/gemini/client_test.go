package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"questacademy/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "gemini-2.5-flash")
	c.baseURL = srv.URL
	return c, srv
}

func candidateResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestChatSendsHistoryAndPersona(t *testing.T) {
	var got generateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("x-goog-api-key = %q, want test-key", r.Header.Get("x-goog-api-key"))
		}
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("path = %q, want generateContent for gemini-2.5-flash", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(candidateResponse("Chào bạn!")))
	})

	history := []models.ChatMessage{
		{Sender: "ai", Text: "Xin chào!"},
		{Sender: "user", Text: "Giúp mình học toán"},
	}
	reply, err := c.Chat(context.Background(), history, "Tạo bài tập")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Chào bạn!" {
		t.Errorf("Chat() = %q, want reply text", reply)
	}

	if len(got.Contents) != 3 {
		t.Fatalf("request carried %d contents, want 3", len(got.Contents))
	}
	if got.Contents[0].Role != "model" || got.Contents[1].Role != "user" {
		t.Errorf("history roles = %q, %q, want model, user", got.Contents[0].Role, got.Contents[1].Role)
	}
	if got.Contents[2].Parts[0].Text != "Tạo bài tập" {
		t.Errorf("final content = %q, want the new message", got.Contents[2].Parts[0].Text)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text == "" {
		t.Error("request has no system instruction")
	}
	if got.GenerationConfig == nil || got.GenerationConfig.Temperature != 0.8 {
		t.Errorf("chat temperature = %+v, want 0.8", got.GenerationConfig)
	}
}

func TestGenerateQuestDecodesStructuredReply(t *testing.T) {
	quest := GeneratedQuest{
		Name:        "Thử Thách Phân Số",
		Description: "Luyện tập phân số.",
		RewardText:  `+50 XP, 10 xu`,
		Questions: []models.QuizQuestion{
			{Question: "1/2 + 1/2?", Options: []string{"A. 1", "B. 2", "C. 0"}, CorrectAnswer: "A. 1"},
		},
	}
	questJSON, _ := json.Marshal(quest)

	var got generateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(candidateResponse(string(questJSON))))
	})

	result, err := c.GenerateQuest(context.Background(), "phân số", 1)
	if err != nil {
		t.Fatalf("GenerateQuest() error = %v", err)
	}
	if result.Name != quest.Name || len(result.Questions) != 1 {
		t.Errorf("GenerateQuest() = %+v, want decoded quest", result)
	}

	cfg := got.GenerationConfig
	if cfg == nil {
		t.Fatal("request has no generation config")
	}
	if cfg.Temperature != 0.9 {
		t.Errorf("quest temperature = %v, want 0.9", cfg.Temperature)
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Errorf("responseMimeType = %q, want application/json", cfg.ResponseMIMEType)
	}
	if len(cfg.ResponseSchema) == 0 {
		t.Error("request has no response schema")
	}
}

func TestGenerateQuestRejectsMalformedReplies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"description": "d", "rewardText": "r", "questions": [{"question": "q", "options": ["A"], "correctAnswer": "A"}]}`},
		{name: "zero questions", body: `{"name": "n", "description": "d", "rewardText": "r", "questions": []}`},
		{name: "not json", body: "đây không phải JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(candidateResponse(tt.body)))
			})

			_, err := c.GenerateQuest(context.Background(), "toán", 1)
			var gwErr *GatewayError
			if !errors.As(err, &gwErr) {
				t.Fatalf("GenerateQuest() error = %v, want *GatewayError", err)
			}
		})
	}
}

func TestGatewayStatusError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Chat(context.Background(), nil, "hi")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Chat() error = %v, want *GatewayError", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q does not mention the status code", err)
	}
}

func TestGatewayEmptyCandidates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	_, err := c.Chat(context.Background(), nil, "hi")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Chat() error = %v, want *GatewayError", err)
	}
}

func TestOfflineMode(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash")
	if !c.Offline() {
		t.Fatal("Offline() = false with empty key")
	}

	reply, err := c.Chat(context.Background(), nil, "xin chào")
	if err != nil {
		t.Fatalf("Chat() offline error = %v", err)
	}
	if !strings.Contains(reply, "xin chào") {
		t.Errorf("offline reply %q does not echo the message", reply)
	}

	quest, err := c.GenerateQuest(context.Background(), "lịch sử", 3)
	if err != nil {
		t.Fatalf("GenerateQuest() offline error = %v", err)
	}
	if len(quest.Questions) != 3 {
		t.Errorf("offline quest has %d questions, want 3", len(quest.Questions))
	}
	if quest.Name == "" || quest.RewardText == "" {
		t.Errorf("offline quest incomplete: %+v", quest)
	}
	for _, q := range quest.Questions {
		if len(q.Options) != 3 {
			t.Errorf("offline question has %d options, want 3", len(q.Options))
		}
	}
}

func TestOfflineQuestDefaultsQuestionCount(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash")
	quest, err := c.GenerateQuest(context.Background(), "địa lý", 0)
	if err != nil {
		t.Fatalf("GenerateQuest() error = %v", err)
	}
	if len(quest.Questions) != 3 {
		t.Errorf("question count = %d, want default 3", len(quest.Questions))
	}
}
