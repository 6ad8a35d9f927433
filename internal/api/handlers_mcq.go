package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sanjaydhan/scriba/internal/grading"
	"github.com/sanjaydhan/scriba/internal/metrics"
	"github.com/sanjaydhan/scriba/internal/models"
)

// UploadAnswerKey normalizes a raw answer key and hands back a generated id.
// The processed key is also cached so later batches can reference it by id.
func (h *Handler) UploadAnswerKey(c *gin.Context) {
	var req models.UploadAnswerKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer key must be a list of answers",
			Code:  "INVALID_ANSWER_KEY",
		})
		return
	}

	if len(req.AnswerKey) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer key is required",
			Code:  "MISSING_ANSWER_KEY",
		})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "General"
	}

	answerKeyID := uuid.New().String()

	if h.keys != nil {
		if err := h.keys.SaveAnswerKey(c.Request.Context(), answerKeyID, req.AnswerKey); err != nil {
			log.Warn().Err(err).Str("answerKeyID", answerKeyID).Msg("Failed to cache answer key")
		}
	}

	c.JSON(http.StatusOK, models.UploadAnswerKeyResponse{
		AnswerKeyID:    answerKeyID,
		Subject:        subject,
		TotalQuestions: len(req.AnswerKey),
		ProcessedKey:   req.AnswerKey,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Message:        "Answer key uploaded successfully",
	})
}

// AnalyzeMCQBatch grades a batch of answer sheets against an answer key and
// returns per-sheet results plus cohort statistics.
func (h *Handler) AnalyzeMCQBatch(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if req.AnswerKeyID == "" || len(req.StudentAnswers) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer key ID and student answers are required",
			Code:  "MISSING_FIELDS",
		})
		return
	}

	sheets, err := req.Sheets()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Student answers must be a list",
			Code:  "INVALID_STUDENT_ANSWERS",
		})
		return
	}
	if len(sheets) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer key ID and student answers are required",
			Code:  "MISSING_FIELDS",
		})
		return
	}

	key := req.AnswerKey
	if len(key) == 0 && h.keys != nil {
		cached, err := h.keys.GetAnswerKey(c.Request.Context(), req.AnswerKeyID)
		if err != nil {
			log.Warn().Err(err).Str("answerKeyID", req.AnswerKeyID).Msg("Answer key lookup failed")
		}
		key = cached
	}
	if len(key) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer key is required",
			Code:  "MISSING_ANSWER_KEY",
		})
		return
	}

	plan := req.UserPlan
	if plan == "" {
		plan = "free"
	}
	limit := grading.MaxBatchSize(plan)
	if len(sheets) > limit {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Your %s plan allows maximum %d MCQ analyses. You submitted %d.", plan, limit, len(sheets)),
			Code:  "PLAN_LIMIT_EXCEEDED",
		})
		return
	}

	start := time.Now()
	results := grading.RunBatch(h.pool, sheets, key)
	summary := grading.Aggregate(results, key)

	metrics.BatchCount.WithLabelValues("completed").Inc()
	metrics.SheetsGraded.Add(float64(len(results)))
	metrics.BatchDuration.Observe(time.Since(start).Seconds())

	resp := models.BatchResponse{
		AnalysisID:          uuid.New().String(),
		AnswerKeyID:         req.AnswerKeyID,
		TotalSheetsAnalyzed: len(results),
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		Summary:             summary,
		IndividualResults:   results,
	}

	if h.keys != nil {
		if err := h.keys.SaveReport(c.Request.Context(), resp.AnalysisID, resp); err != nil {
			log.Warn().Err(err).Str("analysisID", resp.AnalysisID).Msg("Failed to cache batch report")
		}
	}

	c.JSON(http.StatusOK, resp)
}

// MCQHistory returns the grading history. There is no durable storage, so
// this serves representative sample data.
func (h *Handler) MCQHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": sampleMCQHistory})
}

// MCQReport returns a detailed batch report: the cached one when the id is
// still live, a representative sample otherwise.
func (h *Handler) MCQReport(c *gin.Context) {
	analysisID := c.Param("analysis_id")

	if h.keys != nil {
		report, err := h.keys.GetReport(c.Request.Context(), analysisID)
		if err != nil {
			log.Warn().Err(err).Str("analysisID", analysisID).Msg("Report lookup failed")
		}
		if report != nil {
			c.Data(http.StatusOK, "application/json", report)
			return
		}
	}

	c.JSON(http.StatusOK, sampleMCQReport(analysisID))
}
