package grading

import (
	"testing"

	"github.com/sanjaydhan/scriba/internal/models"
)

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil, makeKey("A", "B"))

	if got.TotalStudents != 0 || got.TotalQuestions != 0 {
		t.Errorf("students/questions = %d/%d, want 0/0", got.TotalStudents, got.TotalQuestions)
	}
	if got.AverageScore != 0 || got.AveragePercentage != 0 {
		t.Errorf("averages = %v/%v, want 0/0", got.AverageScore, got.AveragePercentage)
	}
	if len(got.GradeDistribution) != 0 || len(got.QuestionAnalysis) != 0 {
		t.Errorf("distribution/analysis not empty: %+v", got)
	}
}

func TestAggregate_TwoSheets(t *testing.T) {
	key := makeKey("A", "B")
	results := []models.SheetResult{
		ScoreSheet(seqSheet("A", "B"), key, 1), // 2/2, A+
		ScoreSheet(seqSheet("A", "X"), key, 2), // 1/2, C-
	}

	got := Aggregate(results, key)

	if got.TotalStudents != 2 || got.TotalQuestions != 2 {
		t.Fatalf("students/questions = %d/%d, want 2/2", got.TotalStudents, got.TotalQuestions)
	}
	if got.AverageScore != 1.5 {
		t.Errorf("average score = %v, want 1.5", got.AverageScore)
	}
	if got.AveragePercentage != 75.0 {
		t.Errorf("average percentage = %v, want 75.0", got.AveragePercentage)
	}
	if got.HighestScore != 2 || got.LowestScore != 1 {
		t.Errorf("highest/lowest = %d/%d, want 2/1", got.HighestScore, got.LowestScore)
	}
	if got.GradeDistribution["A+"] != 1 || got.GradeDistribution["C-"] != 1 {
		t.Errorf("grade distribution = %v, want A+:1 C-:1", got.GradeDistribution)
	}
	if len(got.GradeDistribution) != 2 {
		t.Errorf("distribution has %d grades, want only the present ones (2)", len(got.GradeDistribution))
	}
}

func TestAggregate_QuestionAnalysisPositionalProxy(t *testing.T) {
	// The per-question stats are derived from total scores, not from which
	// questions were actually answered correctly. A sheet scoring 1/2 counts
	// as correct on question 1 even if its correct answer was question 2.
	key := makeKey("A", "B")
	results := []models.SheetResult{
		ScoreSheet(seqSheet("X", "B"), key, 1), // 1/2 but correct on q2 only
		ScoreSheet(seqSheet("A", "B"), key, 2), // 2/2
	}

	got := Aggregate(results, key)

	q1 := got.QuestionAnalysis[0]
	if q1.CorrectResponses != 2 {
		t.Errorf("q1 correct responses = %d, want 2 (score>0 for both sheets)", q1.CorrectResponses)
	}
	if q1.SuccessRate != 100.0 || q1.Difficulty != "Easy" {
		t.Errorf("q1 = %+v, want 100%% Easy", q1)
	}

	q2 := got.QuestionAnalysis[1]
	if q2.CorrectResponses != 1 || q2.IncorrectResponses != 1 {
		t.Errorf("q2 responses = %d/%d, want 1/1", q2.CorrectResponses, q2.IncorrectResponses)
	}
	if q2.SuccessRate != 50.0 {
		t.Errorf("q2 success rate = %v, want 50.0", q2.SuccessRate)
	}
	// 0.5 is not > 0.5, so it lands in Hard.
	if q2.Difficulty != "Hard" {
		t.Errorf("q2 difficulty = %q, want Hard", q2.Difficulty)
	}
}

func TestAggregate_DifficultyBands(t *testing.T) {
	key := makeKey("A")
	mk := func(scores ...int) []models.SheetResult {
		results := make([]models.SheetResult, len(scores))
		for i, s := range scores {
			results[i] = models.SheetResult{StudentID: i + 1, Score: s, Grade: "F"}
		}
		return results
	}

	tests := []struct {
		name   string
		scores []int
		want   string
	}{
		{"easy above 0.8", []int{1, 1, 1, 1, 1}, "Easy"},
		{"medium above 0.5", []int{1, 1, 1, 0, 0}, "Medium"},
		{"hard at or below 0.5", []int{1, 0}, "Hard"},
		{"hard at zero", []int{0, 0}, "Hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(mk(tt.scores...), key)
			if got.QuestionAnalysis[0].Difficulty != tt.want {
				t.Errorf("difficulty = %q, want %q", got.QuestionAnalysis[0].Difficulty, tt.want)
			}
		})
	}
}

func TestAggregate_ErrorEntriesCountAsF(t *testing.T) {
	key := makeKey("A", "B")
	results := []models.SheetResult{
		ScoreSheet(seqSheet("A", "B"), key, 1),
		{StudentID: 2, Error: "Failed to analyze sheet 2: bad payload", TotalQuestions: 2},
	}

	got := Aggregate(results, key)

	if got.TotalStudents != 2 {
		t.Errorf("total students = %d, want 2 (error entries included)", got.TotalStudents)
	}
	if got.GradeDistribution["F"] != 1 {
		t.Errorf("distribution = %v, want the error entry counted as F", got.GradeDistribution)
	}
	if got.LowestScore != 0 {
		t.Errorf("lowest score = %d, want 0", got.LowestScore)
	}
	if got.AverageScore != 1.0 {
		t.Errorf("average score = %v, want 1.0", got.AverageScore)
	}
}
