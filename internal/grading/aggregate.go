package grading

import (
	"github.com/sanjaydhan/scriba/internal/models"
)

// Aggregate computes cohort statistics over already-scored sheets. It is a
// pure function: error entries participate with score 0 and count toward the
// grade distribution as F. Zero results yield a zero-valued summary.
func Aggregate(results []models.SheetResult, key models.AnswerKey) models.BatchSummary {
	if len(results) == 0 {
		return models.BatchSummary{}
	}

	totalStudents := len(results)
	totalQuestions := len(key)

	totalScore := 0
	highest := results[0].Score
	lowest := results[0].Score
	distribution := make(map[string]int)

	for _, r := range results {
		totalScore += r.Score
		if r.Score > highest {
			highest = r.Score
		}
		if r.Score < lowest {
			lowest = r.Score
		}
		grade := r.Grade
		if grade == "" {
			grade = "F"
		}
		distribution[grade]++
	}

	averageScore := float64(totalScore) / float64(totalStudents)
	averagePercentage := 0.0
	if totalQuestions > 0 {
		averagePercentage = averageScore / float64(totalQuestions) * 100
	}

	analysis := make([]models.QuestionStat, 0, totalQuestions)
	for i := 0; i < totalQuestions; i++ {
		correctCount := 0
		for _, r := range results {
			// Positional proxy: counts sheets whose total score exceeds i,
			// not sheets that actually answered question i+1 correctly.
			// Kept as-is for report compatibility.
			if r.Score > i {
				correctCount++
			}
		}

		rate := float64(correctCount) / float64(totalStudents)
		difficulty := "Hard"
		if rate > 0.8 {
			difficulty = "Easy"
		} else if rate > 0.5 {
			difficulty = "Medium"
		}

		analysis = append(analysis, models.QuestionStat{
			QuestionNumber:     i + 1,
			CorrectResponses:   correctCount,
			IncorrectResponses: totalStudents - correctCount,
			SuccessRate:        round2(rate * 100),
			Difficulty:         difficulty,
		})
	}

	return models.BatchSummary{
		TotalStudents:     totalStudents,
		TotalQuestions:    totalQuestions,
		AverageScore:      round2(averageScore),
		AveragePercentage: round2(averagePercentage),
		HighestScore:      highest,
		LowestScore:       lowest,
		GradeDistribution: distribution,
		QuestionAnalysis:  analysis,
	}
}
