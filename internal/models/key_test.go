package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnswerKey_UnmarshalStrings(t *testing.T) {
	var key AnswerKey
	if err := json.Unmarshal([]byte(`["a", " b ", "C"]`), &key); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(key) != 3 {
		t.Fatalf("len = %d, want 3", len(key))
	}
	want := []string{"A", "B", "C"}
	for i, qk := range key {
		if qk.QuestionNumber != i+1 {
			t.Errorf("entry %d question_number = %d, want %d", i, qk.QuestionNumber, i+1)
		}
		if qk.CorrectAnswer != want[i] {
			t.Errorf("entry %d answer = %q, want %q", i, qk.CorrectAnswer, want[i])
		}
		if qk.Marks != 1 {
			t.Errorf("entry %d marks = %d, want 1", i, qk.Marks)
		}
	}
}

func TestAnswerKey_UnmarshalObjects(t *testing.T) {
	payload := `[
		{"answer": "a"},
		{"correct_answer": "b", "explanation": "second law", "marks": 2},
		{"answer": "x", "correct_answer": "c"}
	]`

	var key AnswerKey
	if err := json.Unmarshal([]byte(payload), &key); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if key[0].CorrectAnswer != "A" || key[0].Marks != 1 {
		t.Errorf("entry 1 = %+v, want answer A marks 1", key[0])
	}
	if key[1].CorrectAnswer != "B" || key[1].Marks != 2 || key[1].Explanation != "second law" {
		t.Errorf("entry 2 = %+v, want answer B marks 2 with explanation", key[1])
	}
	// correct_answer wins when both fields are present.
	if key[2].CorrectAnswer != "C" {
		t.Errorf("entry 3 answer = %q, want C", key[2].CorrectAnswer)
	}
}

func TestAnswerKey_UnmarshalMixedAndScalars(t *testing.T) {
	var key AnswerKey
	if err := json.Unmarshal([]byte(`["a", {"answer": "b"}, 4, true]`), &key); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := []string{key[0].CorrectAnswer, key[1].CorrectAnswer, key[2].CorrectAnswer, key[3].CorrectAnswer}
	want := []string{"A", "B", "4", "TRUE"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d answer = %q, want %q", i+1, got[i], want[i])
		}
	}
	for i, qk := range key {
		if qk.QuestionNumber != i+1 {
			t.Errorf("entry %d question_number = %d, want %d", i, qk.QuestionNumber, i+1)
		}
	}
}

func TestAnswerKey_EmptyObjectEntry(t *testing.T) {
	var key AnswerKey
	if err := json.Unmarshal([]byte(`[{}]`), &key); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if key[0].CorrectAnswer != "" || key[0].Marks != 1 {
		t.Errorf("entry = %+v, want empty answer with marks 1", key[0])
	}
}

func TestAnswerKey_NotAList(t *testing.T) {
	var key AnswerKey
	err := json.Unmarshal([]byte(`{"1": "A"}`), &key)
	if err == nil {
		t.Fatal("expected error for non-list answer key")
	}
	if !strings.Contains(err.Error(), "answer key must be a list of answers") {
		t.Errorf("error = %q, want the list-shape message", err)
	}
}

func TestAnswerKey_NestedListEntry(t *testing.T) {
	var key AnswerKey
	err := json.Unmarshal([]byte(`[["A"]]`), &key)
	if err == nil {
		t.Fatal("expected error for nested list entry")
	}
	if !strings.Contains(err.Error(), "entry 1") {
		t.Errorf("error = %q, want it to name entry 1", err)
	}
}
