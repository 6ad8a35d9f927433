package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sanjaydhan/scriba/internal/models"
)

// ScoreRaw decodes one raw sheet and grades it. A sheet that cannot be
// decoded yields an error entry with score 0 instead of failing the batch.
func ScoreRaw(raw json.RawMessage, key models.AnswerKey, studentID int) models.SheetResult {
	var sheet models.StudentSheet
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return errorEntry(studentID, len(key), err.Error())
	}
	return ScoreSheet(&sheet, key, studentID)
}

func errorEntry(studentID, totalQuestions int, reason string) models.SheetResult {
	return models.SheetResult{
		StudentID:      studentID,
		Error:          fmt.Sprintf("Failed to analyze sheet %d: %s", studentID, reason),
		Score:          0,
		TotalQuestions: totalQuestions,
	}
}

type sheetJob struct {
	idx int
	raw json.RawMessage
	key models.AnswerKey
	out []models.SheetResult
	wg  *sync.WaitGroup
}

func (j *sheetJob) Execute(ctx context.Context) error {
	defer j.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("sheet", j.idx+1).Msg("Sheet scoring panicked")
			j.out[j.idx] = errorEntry(j.idx+1, len(j.key), fmt.Sprintf("%v", r))
		}
	}()
	j.out[j.idx] = ScoreRaw(j.raw, j.key, j.idx+1)
	return nil
}

// RunBatch grades every sheet against the key. Sheets are fanned out to the
// pool when one is available, sequentially otherwise. Result order always
// matches input order: student_id i+1 lands at index i.
func RunBatch(pool *WorkerPool, sheets []json.RawMessage, key models.AnswerKey) []models.SheetResult {
	results := make([]models.SheetResult, len(sheets))

	if pool == nil {
		for i, raw := range sheets {
			results[i] = ScoreRaw(raw, key, i+1)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, raw := range sheets {
		wg.Add(1)
		job := &sheetJob{idx: i, raw: raw, key: key, out: results, wg: &wg}
		if err := pool.Submit(job); err != nil {
			// Pool is shutting down; grade inline so the request still completes.
			wg.Done()
			results[i] = ScoreRaw(raw, key, i+1)
		}
	}
	wg.Wait()

	return results
}
