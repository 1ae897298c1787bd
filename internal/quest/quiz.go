package quest

import "questacademy/internal/models"

// QuizResult summarizes one graded quiz attempt.
type QuizResult struct {
	Score   int  `json:"score"`
	Total   int  `json:"total"`
	Perfect bool `json:"perfect"`
}

// GradeQuiz scores the submitted answers against the quiz questions.
// Answers are matched positionally; missing answers count as wrong.
// A quest quiz rewards completion regardless of score, so the caller
// decides what to do with an imperfect result.
func GradeQuiz(questions []models.QuizQuestion, answers []string) QuizResult {
	result := QuizResult{Total: len(questions)}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			result.Score++
		}
	}
	result.Perfect = result.Score == result.Total && result.Total > 0
	return result
}
