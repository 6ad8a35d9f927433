package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Analysis types accepted by the /analyze endpoint.
const (
	TypeGrammarOnly     = "grammar_only"
	TypeSpellingOnly    = "spelling_only"
	TypeGrammarSpelling = "grammar_spelling"
)

// Mistake is a single grammar or spelling issue found by the model.
type Mistake struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
	Position    string `json:"position"`
}

// Result is the structured outcome of a document analysis.
type Result struct {
	Mistakes      []Mistake `json:"mistakes"`
	TotalMistakes int       `json:"total_mistakes"`
	AnalysisType  string    `json:"analysis_type"`
	RawResponse   string    `json:"raw_response,omitempty"`
}

const systemPrompt = "You are an expert language teacher and proofreader. " +
	"Analyze text for mistakes and return results in the exact JSON format requested."

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates an analysis client. baseURL is optional and exists for
// OpenAI-compatible endpoints and tests.
func New(baseURL, apiKey, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: model,
	}
}

// AnalyzeText asks the model for grammar/spelling mistakes in text. When the
// model goes off-format the raw reply is returned with an empty mistake list
// rather than failing the request.
func (c *Client) AnalyzeText(ctx context.Context, text, analysisType, language string) (*Result, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(analysisType, language, text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM API call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	log.Debug().Str("analysisType", analysisType).Int("responseLength", len(raw)).Msg("LLM response received")

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return &Result{
			Mistakes:      []Mistake{},
			TotalMistakes: 0,
			AnalysisType:  analysisType,
			RawResponse:   raw,
		}, nil
	}

	if result.Mistakes == nil {
		result.Mistakes = []Mistake{}
	}
	result.AnalysisType = analysisType

	return &result, nil
}
