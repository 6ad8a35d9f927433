package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StudentSheet is one student's submitted answers. Clients send either a
// positional array of answer strings or an object mapping question numbers
// (as strings) to answers; the variant is resolved once at decode time.
type StudentSheet struct {
	Seq   []string
	Map   map[string]string
	IsMap bool
}

func (s *StudentSheet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("answer sheet is empty")
	}

	switch trimmed[0] {
	case '[':
		var seq []string
		if err := json.Unmarshal(trimmed, &seq); err != nil {
			return fmt.Errorf("answer sheet must be a list of answer strings")
		}
		s.Seq = seq
		s.Map = nil
		s.IsMap = false
		return nil
	case '{':
		var m map[string]string
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return fmt.Errorf("answer sheet must map question numbers to answer strings")
		}
		s.Map = m
		s.Seq = nil
		s.IsMap = true
		return nil
	}

	return fmt.Errorf("answer sheet must be a list or an object")
}

// Answer returns the uppercased answer for 1-based question n. A missing
// position or map entry yields the empty string, which the scorer treats as
// unanswered rather than wrong.
func (s *StudentSheet) Answer(n int) string {
	if s.IsMap {
		return strings.ToUpper(s.Map[strconv.Itoa(n)])
	}
	if n >= 1 && n <= len(s.Seq) {
		return strings.ToUpper(s.Seq[n-1])
	}
	return ""
}
