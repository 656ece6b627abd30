package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const unknownErrorType = "unknown"

// errorCountingHook counts error entries by error type. Entries logged without a type
// are counted under their source, if any.
type errorCountingHook struct {
	errors *prometheus.CounterVec
}

func newErrorCountingHook(errors *prometheus.CounterVec) *errorCountingHook {
	return &errorCountingHook{errors: errors}
}

func (h *errorCountingHook) Fire(entry *log.Entry) error {
	h.errors.WithLabelValues(errorType(entry.Data)).Inc()
	return nil
}

func (h *errorCountingHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

func errorType(data log.Fields) string {
	if errorType, ok := data[ErrorTypeField].(string); ok && errorType != "" {
		return errorType
	}
	if source, ok := data[sourceField].(string); ok && source != "" {
		return source
	}
	return unknownErrorType
}
