package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// ParseReply parses the model's text reply into an AnalysisResult.
// Models occasionally wrap the JSON in markdown code fences even when
// told not to; those are stripped before decoding. After decoding, enum
// membership and list typing are checked so an unexpected shape never
// passes through as a valid result. Cardinality rules (3-5 topics and
// the like) remain prompt instructions and are not checked here.
func ParseReply(content string) (*entities.AnalysisResult, error) {
	content = extractJSON(content)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateResult(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// validateResult checks the closed-set fields and normalizes nil lists
func validateResult(result *entities.AnalysisResult) error {
	if !result.Sentiment.IsValid() {
		return fmt.Errorf("invalid sentiment %q", result.Sentiment)
	}
	if !result.Outcome.IsValid() {
		return fmt.Errorf("invalid outcome %q", result.Outcome)
	}
	if result.Summary == "" {
		return fmt.Errorf("missing summary in response")
	}

	if result.Topics == nil {
		result.Topics = make([]string, 0)
	}
	if result.Objections == nil {
		result.Objections = make([]string, 0)
	}
	if result.Commitments == nil {
		result.Commitments = make([]string, 0)
	}
	return nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
