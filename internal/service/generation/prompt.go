package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const promptTemplate = `You are an assistant that writes study flashcards.
Read the text below and produce concise question/answer flashcards covering its key facts.

Rules:
- The front is a question or term, at most 200 characters.
- The back is the answer or definition, at most 500 characters.
- Write in the language of the text.
- Respond with ONLY a JSON array, no prose, no markdown fences.
- Each element has exactly these string fields: "front", "back", "source"; source is always "ai-full".

Text:
%s`

func buildPrompt(sourceText string) string {
	return fmt.Sprintf(promptTemplate, sourceText)
}

var errNoJSONArray = errors.New("no JSON array in model output")

// extractJSONArray returns the outermost [...] span of s, tolerating
// surrounding prose or markdown fences.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return "", errNoJSONArray
	}
	return s[start : end+1], nil
}

// parseCandidates decodes model output into proposals. Every element must
// have non-empty front, back and source; proposals are tagged ai-full.
func parseCandidates(content string) ([]domain.CandidateProposal, error) {
	raw, err := extractJSONArray(content)
	if err != nil {
		return nil, err
	}

	var items []struct {
		Front  string `json:"front"`
		Back   string `json:"back"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("model returned no candidates")
	}

	out := make([]domain.CandidateProposal, len(items))
	for i, it := range items {
		front, back := strings.TrimSpace(it.Front), strings.TrimSpace(it.Back)
		if front == "" || back == "" || strings.TrimSpace(it.Source) == "" {
			return nil, fmt.Errorf("candidate %d is incomplete", i)
		}
		out[i] = domain.CandidateProposal{Front: front, Back: back, Source: domain.SourceAIFull}
	}
	return out, nil
}
