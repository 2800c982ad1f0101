package logger

import (
	"github.com/sirupsen/logrus"
)

// ModelLogger emits structured trace events from the confidence engine. It
// replaces the debug prints that used to live inside the scoring algorithm:
// the engine calls the hook, production config decides whether anything is
// written.
type ModelLogger struct {
	logger *logrus.Logger
}

// NewModelLogger creates a model trace logger
func NewModelLogger(logger *logrus.Logger) *ModelLogger {
	return &ModelLogger{logger: logger}
}

// TraceHook returns a callback suitable for the engine's trace option. Each
// factor computed for a game produces one debug-level entry.
func (m *ModelLogger) TraceHook() func(gameID, factor string, value, weight float64) {
	return func(gameID, factor string, value, weight float64) {
		m.logger.WithFields(logrus.Fields{
			"game_id": gameID,
			"factor":  factor,
			"value":   value,
			"weight":  weight,
		}).Debug("Model factor computed")
	}
}

// LogOutputSummary records the headline numbers for one computed game
func (m *ModelLogger) LogOutputSummary(gameID string, confidence float64, pick string, source string) {
	m.logger.WithFields(logrus.Fields{
		"game_id":       gameID,
		"confidence":    confidence,
		"pick":          pick,
		"market_source": source,
	}).Info("Confidence computed")
}
