package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionKey is the single normalized shape of one answer-key entry.
// Question numbers are contiguous and derived from position, starting at 1.
type QuestionKey struct {
	QuestionNumber int    `json:"question_number"`
	CorrectAnswer  string `json:"correct_answer"`
	Explanation    string `json:"explanation"`
	Marks          int    `json:"marks"`
}

// AnswerKey is an ordered answer key. It decodes from the mixed wire shapes
// clients send (raw strings, upload entries with "answer", processed entries
// with "correct_answer") into normalized QuestionKey values, so the scorer
// only ever sees one shape.
type AnswerKey []QuestionKey

func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("answer key must be a list of answers")
	}

	out := make(AnswerKey, 0, len(entries))
	for i, entry := range entries {
		qk, err := normalizeKeyEntry(i, entry)
		if err != nil {
			return err
		}
		out = append(out, qk)
	}

	*k = out
	return nil
}

func normalizeKeyEntry(index int, raw json.RawMessage) (QuestionKey, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return QuestionKey{
			QuestionNumber: index + 1,
			CorrectAnswer:  strings.ToUpper(strings.TrimSpace(s)),
			Marks:          1,
		}, nil
	}

	var entry struct {
		Answer        string `json:"answer"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
		Marks         *int   `json:"marks"`
	}
	if err := json.Unmarshal(raw, &entry); err == nil && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		answer := entry.CorrectAnswer
		if answer == "" {
			answer = entry.Answer
		}
		marks := 1
		if entry.Marks != nil && *entry.Marks >= 0 {
			marks = *entry.Marks
		}
		return QuestionKey{
			QuestionNumber: index + 1,
			CorrectAnswer:  strings.ToUpper(strings.TrimSpace(answer)),
			Explanation:    entry.Explanation,
			Marks:          marks,
		}, nil
	}

	// Scalars like numbers or booleans are coerced to their uppercased
	// textual form, matching how raw string entries are treated.
	text := strings.TrimSpace(string(raw))
	if text == "" || text[0] == '{' || text[0] == '[' {
		return QuestionKey{}, fmt.Errorf("answer key entry %d has an unsupported shape", index+1)
	}
	return QuestionKey{
		QuestionNumber: index + 1,
		CorrectAnswer:  strings.ToUpper(strings.Trim(text, `"`)),
		Marks:          1,
	}, nil
}
