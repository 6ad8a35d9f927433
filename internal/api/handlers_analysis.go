package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sanjaydhan/scriba/internal/analysis"
	"github.com/sanjaydhan/scriba/internal/metrics"
	"github.com/sanjaydhan/scriba/internal/models"
)

type analysisResponse struct {
	analysis.Result
	AnalysisID string `json:"analysis_id"`
	Timestamp  string `json:"timestamp"`
	Language   string `json:"language"`
	TextLength int    `json:"text_length"`
}

// AnalyzeDocument forwards text to the LLM for grammar/spelling analysis.
func (h *Handler) AnalyzeDocument(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "No text provided",
			Code:  "MISSING_TEXT",
		})
		return
	}

	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = analysis.TypeGrammarSpelling
	}
	language := req.Language
	if language == "" {
		language = "english"
	}

	result, err := h.llm.AnalyzeText(c.Request.Context(), req.Text, analysisType, language)
	if err != nil {
		metrics.AnalysisCount.WithLabelValues(analysisType, "failed").Inc()
		log.Error().Err(err).Str("analysisType", analysisType).Msg("Document analysis failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "ANALYSIS_FAILED",
		})
		return
	}
	metrics.AnalysisCount.WithLabelValues(analysisType, "completed").Inc()

	c.JSON(http.StatusOK, analysisResponse{
		Result:     *result,
		AnalysisID: uuid.New().String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Language:   language,
		TextLength: len(req.Text),
	})
}

// UploadDocument accepts a document and extracts its text. Only plain text is
// extracted inline; binary formats get a placeholder until extraction lands.
func (h *Handler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "No file uploaded",
			Code:  "MISSING_FILE",
		})
		return
	}

	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "No file selected",
			Code:  "MISSING_FILE",
		})
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))

	var text string
	switch ext {
	case "txt":
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Failed to read uploaded file",
				Code:  "UPLOAD_FAILED",
			})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Failed to read uploaded file",
				Code:  "UPLOAD_FAILED",
			})
			return
		}
		text = string(data)
	case "pdf":
		text = "PDF text extraction would be implemented here. For demo purposes, please use text files."
	case "doc", "docx":
		text = "Word document text extraction would be implemented here. For demo purposes, please use text files."
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Unsupported file type. Please use .txt, .pdf, or .docx files",
			Code:  "UNSUPPORTED_FILE_TYPE",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":    fileHeader.Filename,
		"text":        text,
		"text_length": len(text),
		"file_type":   ext,
	})
}

// AnalysisHistory returns the document analysis history (sample data; no
// durable storage).
func (h *Handler) AnalysisHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": sampleAnalysisHistory})
}

// AnalysisReport returns a detailed analysis report (sample data).
func (h *Handler) AnalysisReport(c *gin.Context) {
	c.JSON(http.StatusOK, sampleAnalysisReport(c.Param("analysis_id")))
}
