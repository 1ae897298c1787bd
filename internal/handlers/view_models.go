package handlers

import (
	"questacademy/internal/minigames"
	"questacademy/internal/models"
)

// The catalog uses a closed sum for mini-games; over the wire it
// becomes a tagged object so clients can switch on "kind".

type miniGameView struct {
	Kind         models.MiniGameKind   `json:"kind"`
	Title        string                `json:"title"`
	Instructions string                `json:"instructions"`
	Items        []string              `json:"items,omitempty"`
	Prompts      []string              `json:"prompts,omitempty"`
	Answers      []string              `json:"answers,omitempty"`
	Statements   []string              `json:"statements,omitempty"`
	Questions    []models.QuizQuestion `json:"questions,omitempty"`
}

func newMiniGameView(game models.MiniGame) *miniGameView {
	if game == nil {
		return nil
	}
	v := &miniGameView{Kind: game.Kind(), Title: game.GameTitle()}
	switch g := game.(type) {
	case models.SequenceGame:
		v.Instructions = g.Instructions
		v.Items = g.Items
	case models.MatchingGame:
		v.Instructions = g.Instructions
		v.Prompts = g.Prompts
		v.Answers = g.Answers
	case models.TrueFalseGame:
		v.Instructions = g.Instructions
		for _, st := range g.Statements {
			v.Statements = append(v.Statements, st.Text)
		}
	case models.QuickQuizGame:
		v.Instructions = g.Instructions
		v.Questions = g.Questions
	}
	return v
}

type questView struct {
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	LearningObjective  string                `json:"learningObjective"`
	Reward             models.Reward         `json:"reward"`
	RewardText         string                `json:"rewardText"`
	MiniQuiz           []models.QuizQuestion `json:"miniQuiz"`
	AIPromptSuggestion string                `json:"aiPromptSuggestion,omitempty"`
	MiniGame           *miniGameView         `json:"miniGame,omitempty"`
}

func newQuestView(q models.Quest) questView {
	return questView{
		Name:               q.Name,
		Description:        q.Description,
		LearningObjective:  q.LearningObjective,
		Reward:             q.Reward,
		RewardText:         q.RewardText,
		MiniQuiz:           q.MiniQuiz,
		AIPromptSuggestion: q.AIPromptSuggestion,
		MiniGame:           newMiniGameView(q.MiniGame),
	}
}

type subjectView struct {
	Key    string      `json:"key"`
	Name   string      `json:"name"`
	Icon   string      `json:"icon"`
	Quests []questView `json:"quests"`
}

func newSubjectView(key string, s models.Subject) subjectView {
	v := subjectView{Key: key, Name: s.Name, Icon: s.Icon}
	for _, q := range s.Quests {
		v.Quests = append(v.Quests, newQuestView(q))
	}
	return v
}

// attemptView renders the mutable state of a running attempt. The
// per-kind fields mirror what the matching session exposes.
type attemptView struct {
	ID         string              `json:"id"`
	SubjectKey string              `json:"subject"`
	QuestName  string              `json:"quest"`
	Kind       models.MiniGameKind `json:"kind"`
	Title      string              `json:"title"`
	Submitted  bool                `json:"submitted"`

	Items      []string              `json:"items,omitempty"`
	Prompts    []string              `json:"prompts,omitempty"`
	Answers    []string              `json:"answers,omitempty"`
	Pairs      map[int]int           `json:"pairs,omitempty"`
	Statements []string              `json:"statements,omitempty"`
	Judgments  []*bool               `json:"judgments,omitempty"`
	Questions  []models.QuizQuestion `json:"questions,omitempty"`
	Selected   []string              `json:"selected,omitempty"`
}

func newAttemptView(a *minigames.Attempt) attemptView {
	v := attemptView{
		ID:         a.ID,
		SubjectKey: a.SubjectKey,
		QuestName:  a.QuestName,
		Kind:       a.Game.Kind(),
		Title:      a.Game.GameTitle(),
		Submitted:  a.Session.Submitted(),
	}
	switch s := a.Session.(type) {
	case *minigames.SequenceSession:
		v.Items = s.Items()
	case *minigames.MatchingSession:
		v.Prompts = s.Prompts()
		v.Answers = s.Answers()
		v.Pairs = s.Pairs()
	case *minigames.TrueFalseSession:
		v.Statements = s.Statements()
		v.Judgments = s.Answers()
	case *minigames.QuickQuizSession:
		v.Questions = stripAnswers(s.Questions())
		v.Selected = s.Selected()
	}
	return v
}

// stripAnswers hides the correct answers while the attempt is live.
func stripAnswers(questions []models.QuizQuestion) []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		out[i] = models.QuizQuestion{Question: q.Question, Options: q.Options}
	}
	return out
}
