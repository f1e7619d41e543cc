package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gorewood/lanyard/internal/output"
)

// Google Gemini generateContent API types.
type googleRequest struct {
	SystemInstruction *googleContent   `json:"systemInstruction,omitempty"`
	Contents          []googleContent  `json:"contents"`
	GenerationConfig  *googleGenConfig `json:"generationConfig,omitempty"`
}

type googleContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type googleResponse struct {
	Candidates []struct {
		Content googleContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) completeGoogle(ctx context.Context, req Request) (*Response, error) {
	body := googleRequest{
		Contents: []googleContent{
			{Role: "user", Parts: []googlePart{{Text: req.Prompt}}},
		},
	}

	if req.System != "" {
		body.SystemInstruction = &googleContent{Parts: []googlePart{{Text: req.System}}}
	}

	if req.Temperature != 0 || req.MaxTokens != 0 {
		body.GenerationConfig = &googleGenConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	url := "https://generativelanguage.googleapis.com/v1beta/models/" + c.model + ":generateContent"
	respBody, err := c.doRequest(ctx, url, body, map[string]string{
		"x-goog-api-key": c.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var result googleResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}

	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}

	var content strings.Builder
	for _, cand := range result.Candidates {
		for _, part := range cand.Content.Parts {
			content.WriteString(part.Text)
		}
	}

	if content.Len() == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	return &Response{Content: content.String(), Model: c.model}, nil
}
