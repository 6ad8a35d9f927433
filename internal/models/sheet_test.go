package models

import (
	"encoding/json"
	"testing"
)

func TestStudentSheet_UnmarshalSequence(t *testing.T) {
	var sheet StudentSheet
	if err := json.Unmarshal([]byte(`["a", "B", ""]`), &sheet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if sheet.IsMap {
		t.Fatal("sequence payload decoded as map")
	}
	if got := sheet.Answer(1); got != "A" {
		t.Errorf("Answer(1) = %q, want A", got)
	}
	if got := sheet.Answer(3); got != "" {
		t.Errorf("Answer(3) = %q, want empty", got)
	}
	// Out of range means unanswered, not an error.
	if got := sheet.Answer(4); got != "" {
		t.Errorf("Answer(4) = %q, want empty", got)
	}
	if got := sheet.Answer(0); got != "" {
		t.Errorf("Answer(0) = %q, want empty", got)
	}
}

func TestStudentSheet_UnmarshalMapping(t *testing.T) {
	var sheet StudentSheet
	if err := json.Unmarshal([]byte(`{"1": "a", "3": "d"}`), &sheet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !sheet.IsMap {
		t.Fatal("mapping payload decoded as sequence")
	}
	if got := sheet.Answer(1); got != "A" {
		t.Errorf("Answer(1) = %q, want A", got)
	}
	if got := sheet.Answer(2); got != "" {
		t.Errorf("Answer(2) = %q, want empty for missing key", got)
	}
	if got := sheet.Answer(3); got != "D" {
		t.Errorf("Answer(3) = %q, want D", got)
	}
}

func TestStudentSheet_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"scalar", `"ABC"`},
		{"number", `42`},
		{"list of objects", `[{"q": 1}]`},
		{"map to numbers", `{"1": 2}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sheet StudentSheet
			if err := json.Unmarshal([]byte(tt.payload), &sheet); err == nil {
				t.Errorf("payload %q decoded without error", tt.payload)
			}
		})
	}
}
