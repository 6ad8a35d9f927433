package grading

import (
	"fmt"
	"math"

	"github.com/sanjaydhan/scriba/internal/models"
)

// ScoreSheet grades one student's answers against the key. Matching is
// case-insensitive exact string comparison; an empty or missing answer is
// unanswered, never wrong. Correct answers are counted but produce no
// verdict entry.
func ScoreSheet(sheet *models.StudentSheet, key models.AnswerKey, studentID int) models.SheetResult {
	var correct, wrong, unanswered int
	var mistakes []models.QuestionVerdict

	for _, q := range key {
		answer := sheet.Answer(q.QuestionNumber)
		switch {
		case answer == "":
			unanswered++
			mistakes = append(mistakes, models.QuestionVerdict{
				QuestionNumber: q.QuestionNumber,
				Type:           models.VerdictUnanswered,
				StudentAnswer:  "",
				CorrectAnswer:  q.CorrectAnswer,
				Explanation:    fmt.Sprintf("Question %d was not answered", q.QuestionNumber),
			})
		case answer == q.CorrectAnswer:
			correct++
		default:
			wrong++
			mistakes = append(mistakes, models.QuestionVerdict{
				QuestionNumber: q.QuestionNumber,
				Type:           models.VerdictIncorrect,
				StudentAnswer:  answer,
				CorrectAnswer:  q.CorrectAnswer,
				Explanation:    fmt.Sprintf("Question %d: Selected %s, correct answer is %s", q.QuestionNumber, answer, q.CorrectAnswer),
			})
		}
	}

	total := len(key)
	percentage := 0.0
	if total > 0 {
		percentage = float64(correct) / float64(total) * 100
	}

	return models.SheetResult{
		StudentID:       studentID,
		Score:           correct,
		TotalQuestions:  total,
		ScorePercentage: round2(percentage),
		CorrectAnswers:  correct,
		WrongAnswers:    wrong,
		Unanswered:      unanswered,
		Mistakes:        mistakes,
		Grade:           Grade(percentage),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
