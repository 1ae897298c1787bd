package models

// QuizQuestion is a single multiple-choice question. Options are prefixed
// "A. ", "B. ", "C. " and CorrectAnswer matches one option verbatim.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Reward is the structured value granted by a quest completion. Coins and
// Badge are display-only; only XP is persisted to the profile.
type Reward struct {
	XP    int    `json:"xp"`
	Coins int    `json:"coins"`
	Badge string `json:"badge,omitempty"`
}

// Quest is a unit of learning content: a mini quiz plus an optional mini-game.
type Quest struct {
	Name               string
	Description        string
	LearningObjective  string
	Reward             Reward
	RewardText         string
	MiniQuiz           []QuizQuestion
	AIPromptSuggestion string
	MiniGame           MiniGame
}

// Subject groups quests under a school subject.
type Subject struct {
	Name   string
	Icon   string
	Quests []Quest
}

// ChatMessage is one entry in the AI chat transcript.
type ChatMessage struct {
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// UserData is the per-user profile blob stored under userData_<username>.
type UserData struct {
	Avatar            string `json:"avatar,omitempty"`
	Streak            int    `json:"streak"`
	LastCompletedDate string `json:"lastCompletedDate,omitempty"`
	Theme             string `json:"theme,omitempty"`
	XP                int    `json:"xp"`
}
