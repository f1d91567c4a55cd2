package analysis

import (
	"context"
	stdErrors "errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intel/errors"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	pkgai "github.com/truthos/meeting-intel/pkg/ai"
	"github.com/truthos/meeting-intel/pkg/config"
)

// stubCompleter records calls and plays back canned replies or errors
type stubCompleter struct {
	calls      int
	requests   []pkgai.ChatRequest
	reply      string
	errs       []error // consumed per call; nil entry means success
	configured bool
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req pkgai.ChatRequest) (string, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return s.reply, nil
}

func (s *stubCompleter) Configured() bool { return s.configured }

func newTestService(stub *stubCompleter, model string) Service {
	return NewService(stub, &config.OpenAIConfig{Model: model}, zap.NewNop())
}

func TestAnalyzeTranscriptRoundTrip(t *testing.T) {
	stub := &stubCompleter{configured: true, reply: validReply}
	svc := newTestService(stub, "")

	result, err := svc.AnalyzeTranscript(context.Background(),
		"Client asked about pricing, agreed to follow up next week.")
	require.NoError(t, err)

	assert.Equal(t, &entities.AnalysisResult{
		Sentiment:   entities.SentimentNeutral,
		Topics:      []string{"pricing"},
		Objections:  []string{},
		Commitments: []string{"follow up next week"},
		Outcome:     entities.OutcomeFollowUp,
		Summary:     "Client discussed pricing and agreed to a follow-up.",
	}, result)

	require.Equal(t, 1, stub.calls)
	req := stub.requests[0]
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, float64(0), req.Temperature)
	assert.Equal(t, maxCompletionTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, SystemPrompt, req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.True(t, strings.Contains(req.Messages[1].Content, "Client asked about pricing"))
}

func TestAnalyzeTranscriptEmptyInputSkipsProvider(t *testing.T) {
	stub := &stubCompleter{configured: true, reply: validReply}
	svc := newTestService(stub, "")

	_, err := svc.AnalyzeTranscript(context.Background(), "")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_MISSING_TRANSCRIPT, appErr.Code)
	assert.Equal(t, 0, stub.calls, "provider must not be contacted")
}

func TestAnalyzeTranscriptMissingAPIKey(t *testing.T) {
	stub := &stubCompleter{configured: false}
	svc := newTestService(stub, "")

	_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_CONFIGURATION, appErr.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeTranscriptUsesConfiguredModel(t *testing.T) {
	stub := &stubCompleter{configured: true, reply: validReply}
	svc := newTestService(stub, "gpt-4o")

	_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", stub.requests[0].Model)
}

func TestAnalyzeTranscriptMalformedReply(t *testing.T) {
	stub := &stubCompleter{configured: true,
		reply: `Sure! Here's the analysis: {"sentiment":"neutral"}`}
	svc := newTestService(stub, "")

	_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_MALFORMED_REPLY, appErr.Code)
	assert.Equal(t, 1, stub.calls, "malformed replies are not retried")
}

func TestAnalyzeTranscriptProviderStatusNotRetried(t *testing.T) {
	stub := &stubCompleter{configured: true,
		errs: []error{&pkgai.StatusError{StatusCode: 429, Body: "rate limited"}}}
	svc := newTestService(stub, "")

	_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_PROVIDER_FAILED, appErr.Code)
	assert.Equal(t, 1, stub.calls, "provider errors are terminal")
}

func TestAnalyzeTranscriptEmptyReplyNotRetried(t *testing.T) {
	stub := &stubCompleter{configured: true, errs: []error{pkgai.ErrNoContent}}
	svc := newTestService(stub, "")

	_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_EMPTY_REPLY, appErr.Code)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeTranscriptTransientFailureRetriedOnce(t *testing.T) {
	netErr := &net.OpError{Op: "dial", Err: stdErrors.New("connection refused")}

	t.Run("second attempt succeeds", func(t *testing.T) {
		stub := &stubCompleter{configured: true, reply: validReply,
			errs: []error{netErr, nil}}
		svc := newTestService(stub, "")

		result, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeFollowUp, result.Outcome)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("retry is bounded", func(t *testing.T) {
		stub := &stubCompleter{configured: true,
			errs: []error{netErr, netErr, netErr}}
		svc := newTestService(stub, "")

		_, err := svc.AnalyzeTranscript(context.Background(), "some transcript")
		require.Error(t, err)
		assert.Equal(t, 2, stub.calls, "exactly one retry")
	})
}
