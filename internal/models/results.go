package models

// VerdictType classifies a single answer.
type VerdictType string

const (
	VerdictCorrect    VerdictType = "correct"
	VerdictIncorrect  VerdictType = "incorrect"
	VerdictUnanswered VerdictType = "unanswered"
)

// QuestionVerdict records the outcome of one (sheet, question) pair. Correct
// answers are only counted, never recorded as verdicts.
type QuestionVerdict struct {
	QuestionNumber int         `json:"question_number"`
	Type           VerdictType `json:"type"`
	StudentAnswer  string      `json:"student_answer"`
	CorrectAnswer  string      `json:"correct_answer"`
	Explanation    string      `json:"explanation"`
}

// SheetResult is the graded outcome for one student's sheet. A sheet that
// could not be decoded carries Error and zeroed counts instead of aborting
// the batch.
type SheetResult struct {
	StudentID       int               `json:"student_id"`
	Error           string            `json:"error,omitempty"`
	Score           int               `json:"score"`
	TotalQuestions  int               `json:"total_questions"`
	ScorePercentage float64           `json:"score_percentage"`
	CorrectAnswers  int               `json:"correct_answers"`
	WrongAnswers    int               `json:"wrong_answers"`
	Unanswered      int               `json:"unanswered"`
	Mistakes        []QuestionVerdict `json:"mistakes,omitempty"`
	Grade           string            `json:"grade,omitempty"`
}

// QuestionStat is the per-question slice of a batch summary.
type QuestionStat struct {
	QuestionNumber     int     `json:"question_number"`
	CorrectResponses   int     `json:"correct_responses"`
	IncorrectResponses int     `json:"incorrect_responses"`
	SuccessRate        float64 `json:"success_rate"`
	Difficulty         string  `json:"difficulty"`
}

// BatchSummary holds cohort statistics derived from a batch of sheet results.
// It is recomputed per request and never persisted.
type BatchSummary struct {
	TotalStudents     int            `json:"total_students"`
	TotalQuestions    int            `json:"total_questions"`
	AverageScore      float64        `json:"average_score"`
	AveragePercentage float64        `json:"average_percentage"`
	HighestScore      int            `json:"highest_score"`
	LowestScore       int            `json:"lowest_score"`
	GradeDistribution map[string]int `json:"grade_distribution"`
	QuestionAnalysis  []QuestionStat `json:"question_analysis"`
}
