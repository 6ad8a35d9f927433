package models

import (
	"encoding/json"
	"fmt"
)

// UploadAnswerKeyRequest is the body of POST /upload-answer-key.
type UploadAnswerKeyRequest struct {
	AnswerKey      AnswerKey `json:"answer_key"`
	Subject        string    `json:"subject"`
	TotalQuestions int       `json:"total_questions"`
}

// UploadAnswerKeyResponse echoes the normalized key with a generated id.
type UploadAnswerKeyResponse struct {
	AnswerKeyID    string    `json:"answer_key_id"`
	Subject        string    `json:"subject"`
	TotalQuestions int       `json:"total_questions"`
	ProcessedKey   AnswerKey `json:"processed_key"`
	Timestamp      string    `json:"timestamp"`
	Message        string    `json:"message"`
}

// BatchRequest is the body of POST /analyze-mcq-batch. StudentAnswers stays
// raw so a malformed individual sheet fails in isolation during scoring
// instead of rejecting the whole request.
type BatchRequest struct {
	AnswerKeyID    string          `json:"answer_key_id"`
	StudentAnswers json.RawMessage `json:"student_answers"`
	AnswerKey      AnswerKey       `json:"answer_key"`
	UserPlan       string          `json:"user_plan"`
}

// Sheets splits student_answers into one raw message per sheet. Only a JSON
// array is a list: null decodes to a nil slice without error and is rejected
// here like any other non-array value.
func (r *BatchRequest) Sheets() ([]json.RawMessage, error) {
	var sheets []json.RawMessage
	if err := json.Unmarshal(r.StudentAnswers, &sheets); err != nil {
		return nil, fmt.Errorf("student answers must be a list")
	}
	if sheets == nil {
		return nil, fmt.Errorf("student answers must be a list")
	}
	return sheets, nil
}

// BatchResponse is the body returned by POST /analyze-mcq-batch.
type BatchResponse struct {
	AnalysisID          string        `json:"analysis_id"`
	AnswerKeyID         string        `json:"answer_key_id"`
	TotalSheetsAnalyzed int           `json:"total_sheets_analyzed"`
	Timestamp           string        `json:"timestamp"`
	Summary             BatchSummary  `json:"summary"`
	IndividualResults   []SheetResult `json:"individual_results"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text         string `json:"text"`
	AnalysisType string `json:"analysis_type"`
	Language     string `json:"language"`
}

// CreateSubscriptionRequest is the body of POST /create-subscription.
type CreateSubscriptionRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
	PlanName        string `json:"plan_name"`
	Email           string `json:"email"`
}

// CancelSubscriptionRequest is the body of POST /cancel-subscription.
type CancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscription_id"`
}
