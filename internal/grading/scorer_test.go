package grading

import (
	"testing"

	"github.com/sanjaydhan/scriba/internal/models"
)

func makeKey(answers ...string) models.AnswerKey {
	key := make(models.AnswerKey, 0, len(answers))
	for i, a := range answers {
		key = append(key, models.QuestionKey{
			QuestionNumber: i + 1,
			CorrectAnswer:  a,
			Marks:          1,
		})
	}
	return key
}

func seqSheet(answers ...string) *models.StudentSheet {
	return &models.StudentSheet{Seq: answers}
}

func TestScoreSheet_AllCorrect(t *testing.T) {
	key := makeKey("A", "B", "C", "D")
	got := ScoreSheet(seqSheet("a", "b", "c", "d"), key, 1)

	if got.Score != 4 {
		t.Errorf("score = %d, want 4", got.Score)
	}
	if got.WrongAnswers != 0 || got.Unanswered != 0 {
		t.Errorf("wrong=%d unanswered=%d, want 0/0", got.WrongAnswers, got.Unanswered)
	}
	if got.ScorePercentage != 100.0 {
		t.Errorf("percentage = %v, want 100.0", got.ScorePercentage)
	}
	if got.Grade != "A+" {
		t.Errorf("grade = %q, want A+", got.Grade)
	}
	if len(got.Mistakes) != 0 {
		t.Errorf("mistakes = %d, want 0", len(got.Mistakes))
	}
}

func TestScoreSheet_MixedVerdicts(t *testing.T) {
	// Matches the documented end-to-end example: one right, one wrong,
	// one blank out of three.
	key := makeKey("A", "B", "C")
	got := ScoreSheet(seqSheet("A", "C", ""), key, 1)

	if got.Score != 1 || got.WrongAnswers != 1 || got.Unanswered != 1 {
		t.Fatalf("score/wrong/unanswered = %d/%d/%d, want 1/1/1",
			got.Score, got.WrongAnswers, got.Unanswered)
	}
	if got.ScorePercentage != 33.33 {
		t.Errorf("percentage = %v, want 33.33", got.ScorePercentage)
	}
	if got.Grade != "F" {
		t.Errorf("grade = %q, want F", got.Grade)
	}
	if len(got.Mistakes) != 2 {
		t.Fatalf("mistakes = %d, want 2", len(got.Mistakes))
	}
	if got.Mistakes[0].Type != models.VerdictIncorrect || got.Mistakes[0].QuestionNumber != 2 {
		t.Errorf("first mistake = %+v, want incorrect on question 2", got.Mistakes[0])
	}
	if got.Mistakes[1].Type != models.VerdictUnanswered || got.Mistakes[1].QuestionNumber != 3 {
		t.Errorf("second mistake = %+v, want unanswered on question 3", got.Mistakes[1])
	}
}

func TestScoreSheet_EmptyIsUnansweredNotWrong(t *testing.T) {
	key := makeKey("A", "B")
	got := ScoreSheet(seqSheet("A", ""), key, 1)

	if got.Unanswered != 1 || got.WrongAnswers != 0 {
		t.Fatalf("unanswered=%d wrong=%d, want 1/0", got.Unanswered, got.WrongAnswers)
	}
	if got.Mistakes[0].Type != models.VerdictUnanswered {
		t.Errorf("verdict = %q, want unanswered", got.Mistakes[0].Type)
	}
}

func TestScoreSheet_ShortSheetTreatedAsUnanswered(t *testing.T) {
	key := makeKey("A", "B", "C")
	got := ScoreSheet(seqSheet("A"), key, 1)

	if got.Score != 1 || got.Unanswered != 2 {
		t.Errorf("score=%d unanswered=%d, want 1/2", got.Score, got.Unanswered)
	}
}

func TestScoreSheet_MappingVariant(t *testing.T) {
	key := makeKey("A", "B", "C")
	sheet := &models.StudentSheet{
		Map:   map[string]string{"1": "a", "3": "d"},
		IsMap: true,
	}
	got := ScoreSheet(sheet, key, 7)

	if got.StudentID != 7 {
		t.Errorf("student id = %d, want 7", got.StudentID)
	}
	if got.Score != 1 || got.WrongAnswers != 1 || got.Unanswered != 1 {
		t.Errorf("score/wrong/unanswered = %d/%d/%d, want 1/1/1",
			got.Score, got.WrongAnswers, got.Unanswered)
	}
}

func TestScoreSheet_EmptyKey(t *testing.T) {
	got := ScoreSheet(seqSheet("A"), models.AnswerKey{}, 1)

	if got.TotalQuestions != 0 {
		t.Errorf("total questions = %d, want 0", got.TotalQuestions)
	}
	if got.ScorePercentage != 0 {
		t.Errorf("percentage = %v, want 0", got.ScorePercentage)
	}
	if got.Grade != "F" {
		t.Errorf("grade = %q, want F", got.Grade)
	}
}

func TestScoreSheet_PercentageRounding(t *testing.T) {
	// 2 of 3 correct = 66.666... -> 66.67
	key := makeKey("A", "B", "C")
	got := ScoreSheet(seqSheet("A", "B", "X"), key, 1)

	if got.ScorePercentage != 66.67 {
		t.Errorf("percentage = %v, want 66.67", got.ScorePercentage)
	}
}
