package analysis

import (
	"strings"

	apperrors "github.com/truthos/meeting-intel/errors"
)

// SystemPrompt is the fixed system-role instruction sent with every
// analysis request
const SystemPrompt = "You are a meeting analysis assistant. You extract structured information from meeting transcripts."

const promptHeader = `Analyze the following meeting transcript and extract structured information.

You must respond with valid JSON matching this exact schema:
{
  "sentiment": "positive" | "neutral" | "negative",
  "topics": ["topic1", "topic2", ...],
  "objections": ["objection1", ...],
  "commitments": ["commitment1", ...],
  "outcome": "closed" | "follow_up" | "no_interest" | "unknown",
  "summary": "brief summary"
}

Rules:
- sentiment: Overall tone of the meeting
- topics: Main subjects discussed (3-5 items)
- objections: Concerns or hesitations raised (0-5 items)
- commitments: Promises or next steps agreed upon (0-5 items)
- outcome: Meeting result classification
- summary: 2-3 sentence summary

Transcript:
`

const promptFooter = `

Respond only with valid JSON, no additional text.`

// BuildPrompt renders a transcript into the fixed analysis prompt. The
// output is deterministic: the same transcript always yields the same
// prompt text. An empty or whitespace-only transcript is rejected
// before the model is ever involved.
func BuildPrompt(transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", apperrors.ErrMissingTranscript()
	}
	return promptHeader + transcript + promptFooter, nil
}
