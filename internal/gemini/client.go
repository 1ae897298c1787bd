package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"questacademy/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// systemPersona shapes every chat reply. It matches the in-app Game
// Master voice.
const systemPersona = `Bạn là "Game Master AI" của Quest Academy, người dẫn đường vui tính và tràn đầy năng lượng cho các Chiến Binh Tri Thức (học sinh Việt Nam).
Phong cách của bạn: thân thiện, hài hước, dùng nhiều emoji, xưng "tôi" và gọi người học là "bạn".
Nhiệm vụ: giải thích kiến thức dễ hiểu, tạo bài tập theo yêu cầu, và luôn động viên người học.
Trả lời hoàn toàn bằng tiếng Việt, trừ khi người học hỏi về môn Tiếng Anh.`

// GatewayError wraps any failure talking to or interpreting the model
// gateway, including malformed generated content.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gemini: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// GeneratedQuest is a model-authored quest: a name, flavor text, and a
// quiz. It carries no mini-game; those are hand-authored only.
type GeneratedQuest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	RewardText  string                `json:"rewardText"`
	Questions   []models.QuizQuestion `json:"questions"`
}

// Client talks to the Gemini generateContent REST endpoint. With no
// API key configured it serves deterministic offline responses so the
// rest of the app keeps working.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given key and model. An empty key
// enables offline mode.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Offline reports whether the client serves canned responses.
func (c *Client) Offline() bool { return c.apiKey == "" }

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64         `json:"temperature,omitempty"`
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// questSchema constrains the quiz generation output so the reply is
// parseable JSON rather than prose.
var questSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"name": {"type": "STRING"},
		"description": {"type": "STRING"},
		"rewardText": {"type": "STRING"},
		"questions": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"question": {"type": "STRING"},
					"options": {"type": "ARRAY", "items": {"type": "STRING"}},
					"correctAnswer": {"type": "STRING"}
				},
				"required": ["question", "options", "correctAnswer"]
			}
		}
	},
	"required": ["name", "description", "rewardText", "questions"]
}`)

// Chat sends the running conversation plus the new user message and
// returns the model's reply.
func (c *Client) Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	if c.Offline() {
		return offlineChatReply(message), nil
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Sender == "ai" {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: systemPersona}}},
		GenerationConfig:  &generationConfig{Temperature: 0.8},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", err
	}
	return text, nil
}

// GenerateQuest asks the model to author a short quest about topic
// with the requested number of quiz questions.
func (c *Client) GenerateQuest(ctx context.Context, topic string, numQuestions int) (GeneratedQuest, error) {
	if numQuestions <= 0 {
		numQuestions = 3
	}
	if c.Offline() {
		return offlineQuest(topic, numQuestions), nil
	}

	prompt := fmt.Sprintf(
		`Tạo một nhiệm vụ học tập về chủ đề %q cho học sinh Việt Nam.
Nhiệm vụ gồm: tên hấp dẫn kiểu game, mô tả ngắn, phần thưởng dạng chuỗi (ví dụ: +50 XP, huy hiệu "Tên Huy Hiệu" 🏅, 10 xu 🪙), và đúng %d câu hỏi trắc nghiệm, mỗi câu 3 lựa chọn có tiền tố "A. ", "B. ", "C. " trong đó correctAnswer trùng khớp với một lựa chọn.`,
		topic, numQuestions,
	)

	req := generateRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemPersona}}},
		GenerationConfig: &generationConfig{
			Temperature:      0.9,
			ResponseMIMEType: "application/json",
			ResponseSchema:   questSchema,
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return GeneratedQuest{}, err
	}

	var quest GeneratedQuest
	if err := json.Unmarshal([]byte(text), &quest); err != nil {
		return GeneratedQuest{}, &GatewayError{Op: "decode quest", Err: err}
	}
	if quest.Name == "" {
		return GeneratedQuest{}, &GatewayError{Op: "validate quest", Err: fmt.Errorf("generated quest has no name")}
	}
	if len(quest.Questions) == 0 {
		return GeneratedQuest{}, &GatewayError{Op: "validate quest", Err: fmt.Errorf("generated quest has no questions")}
	}
	return quest, nil
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GatewayError{Op: "encode request", Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &GatewayError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GatewayError{Op: "call gateway", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Op: "read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Op: "call gateway", Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &GatewayError{Op: "decode response", Err: err}
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", &GatewayError{Op: "decode response", Err: fmt.Errorf("no candidates returned")}
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
