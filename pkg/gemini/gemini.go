package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GenerateContent sends a generateContent request.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(g.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: response has no candidates")
	}

	first := result.Candidates[0]
	var text strings.Builder
	for _, p := range first.Content.Parts {
		text.WriteString(p.Text)
	}

	return &Response{
		Text:         text.String(),
		FinishReason: first.FinishReason,
		Usage: Usage{
			InputTokens:  result.UsageMetadata.PromptTokenCount,
			OutputTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  result.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// transformRequest maps assistant turns to the "model" role.
func (g *geminiImpl) transformRequest(req *Request) generateRequest {
	out := generateRequest{
		Contents: make([]content, len(req.Messages)),
	}
	if req.System != "" {
		out.SystemInstruction = &content{Parts: []part{{Text: req.System}}}
	}
	for i, m := range req.Messages {
		role := roleUser
		if m.Role != roleUser {
			role = roleModel
		}
		out.Contents[i] = content{Role: role, Parts: []part{{Text: m.Content}}}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}
