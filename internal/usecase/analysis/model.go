package analysis

import "go.uber.org/zap"

// DefaultModel is the model used when no valid override is configured
const DefaultModel = "gpt-4o-mini"

// allowedModels is the fixed set of model identifiers the service will
// invoke. The allow-list is a safety valve against misconfiguration, not
// a security boundary.
var allowedModels = map[string]struct{}{
	"gpt-4o-mini":   {},
	"gpt-4o":        {},
	"gpt-4-turbo":   {},
	"gpt-3.5-turbo": {},
}

// SelectModel resolves the model identifier to use for a request. An
// empty value selects the default; a value outside the allow-list is
// discarded silently and logged so misconfiguration stays observable.
func SelectModel(configured string, logger *zap.Logger) string {
	if configured == "" {
		return DefaultModel
	}
	if _, ok := allowedModels[configured]; ok {
		return configured
	}
	if logger != nil {
		logger.Warn("discarding invalid model override",
			zap.String("configured_model", configured),
			zap.String("fallback_model", DefaultModel),
		)
	}
	return DefaultModel
}
