package analysis

import (
	"context"
	stderrors "errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intel/errors"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	pkgai "github.com/truthos/meeting-intel/pkg/ai"
	"github.com/truthos/meeting-intel/pkg/config"
)

// maxCompletionTokens bounds the reply length. This is a cost and
// latency guard, not a correctness mechanism.
const maxCompletionTokens = 1000

// ChatCompleter is the slice of the provider client this service needs
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req pkgai.ChatRequest) (string, error)
	Configured() bool
}

// Service runs transcript analysis
type Service interface {
	AnalyzeTranscript(ctx context.Context, transcript string) (*entities.AnalysisResult, error)
}

type analysisService struct {
	client ChatCompleter
	cfg    *config.OpenAIConfig
	logger *zap.Logger
}

// NewService constructs the analysis service
func NewService(client ChatCompleter, cfg *config.OpenAIConfig, logger *zap.Logger) Service {
	return &analysisService{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// AnalyzeTranscript runs the full pipeline: model selection, prompt
// construction, one chat-completion call, and reply parsing. Every
// invocation is stateless and independent; identical transcripts are
// not deduplicated.
func (s *analysisService) AnalyzeTranscript(ctx context.Context, transcript string) (*entities.AnalysisResult, error) {
	prompt, err := BuildPrompt(transcript)
	if err != nil {
		return nil, err
	}

	if !s.client.Configured() {
		return nil, apperrors.ErrConfiguration("OPENAI_API_KEY")
	}

	model := SelectModel(s.cfg.Model, s.logger)

	req := pkgai.ChatRequest{
		Model: model,
		Messages: []pkgai.ChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   maxCompletionTokens,
	}

	content, err := s.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := ParseReply(content)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse model reply",
				zap.String("model", model),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrMalformedReply(err)
	}

	return result, nil
}

// complete issues the provider call with a single retry on transient
// transport failures. Provider-side errors and empty replies are
// terminal: retrying a 4xx or an empty completion buys nothing.
func (s *analysisService) complete(ctx context.Context, req pkgai.ChatRequest) (string, error) {
	var content string

	operation := func() error {
		reply, err := s.client.CreateChatCompletion(ctx, req)
		if err != nil {
			var statusErr *pkgai.StatusError
			switch {
			case stderrors.As(err, &statusErr):
				if s.logger != nil {
					s.logger.Error("provider returned error status",
						zap.Int("status", statusErr.StatusCode),
						zap.String("provider_body", statusErr.Body),
					)
				}
				return backoff.Permanent(apperrors.ErrProviderFailed(err))
			case stderrors.Is(err, pkgai.ErrNoContent):
				return backoff.Permanent(apperrors.ErrEmptyReply())
			default:
				// Transport failure, worth one more attempt
				if s.logger != nil {
					s.logger.Warn("provider call failed", zap.Error(err))
				}
				return apperrors.ErrProviderFailed(err)
			}
		}
		content = reply
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, 1), ctx)); err != nil {
		return "", err
	}
	return content, nil
}
