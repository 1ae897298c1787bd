package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"questacademy/internal/gemini"
	"questacademy/internal/models"
	"questacademy/internal/quest"
)

// QuestHandler serves the quest catalog and the AI game master.
type QuestHandler struct {
	ai *gemini.Client
}

// NewQuestHandler creates a new quest handler.
func NewQuestHandler(ai *gemini.Client) *QuestHandler {
	return &QuestHandler{ai: ai}
}

// Subjects handles GET /api/subjects: the full catalog in display
// order plus the game master's opening message.
func (h *QuestHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	subjects := make([]subjectView, 0, len(quest.SubjectKeys))
	for _, key := range quest.SubjectKeys {
		subjects = append(subjects, newSubjectView(key, quest.Subjects[key]))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"welcome":  quest.WelcomeMessage,
		"subjects": subjects,
	})
}

// Subject handles GET /api/subjects/{key}.
func (h *QuestHandler) Subject(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	subject, ok := quest.Subjects[key]
	if !ok {
		respondWithError(w, http.StatusNotFound, "subject not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, newSubjectView(key, subject))
}

type chatRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

// Chat handles POST /api/ai/chat.
func (h *QuestHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required", "", nil)
		return
	}

	reply, err := h.ai.Chat(r.Context(), req.History, req.Message)
	if err != nil {
		var gwErr *gemini.GatewayError
		if errors.As(err, &gwErr) {
			// The transcript survives a gateway hiccup; the game
			// master just apologizes.
			log.Printf("ai chat: %v", err)
			respondJSON(w, http.StatusOK, map[string]any{
				"reply":    chatUnavailableMessage,
				"degraded": true,
			})
			return
		}
		respondWithError(w, http.StatusInternalServerError, "something went wrong", "ai chat", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

const chatUnavailableMessage = `Ôi, có vẻ đường truyền tới Game Master đang gặp trục trặc! 😥 Bạn chờ một chút rồi thử lại nhé, hoặc cứ tiếp tục làm các nhiệm vụ có sẵn để tích lũy XP nào! 💪`

type generateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions"`
}

// GenerateQuiz handles POST /api/ai/quiz: a model-authored quest about
// the requested topic.
func (h *QuestHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respondWithError(w, http.StatusBadRequest, "topic is required", "", nil)
		return
	}

	generated, err := h.ai.GenerateQuest(r.Context(), req.Topic, req.NumQuestions)
	if err != nil {
		respondGatewayError(w, err, "ai quiz")
		return
	}
	respondJSON(w, http.StatusOK, generated)
}

func respondGatewayError(w http.ResponseWriter, err error, logMsg string) {
	var gwErr *gemini.GatewayError
	if errors.As(err, &gwErr) {
		respondWithError(w, http.StatusBadGateway, "the game master is unavailable right now", logMsg, err)
		return
	}
	respondWithError(w, http.StatusInternalServerError, "something went wrong", logMsg, err)
}
