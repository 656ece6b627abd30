package logger

import (
	"github.com/maxaizer/career-bot/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"testing"
)

func counterValue(counter prometheus.Counter) float64 {
	metric := &dto.Metric{}
	_ = counter.Write(metric)
	return metric.GetCounter().GetValue()
}

func Test_ErrorCountingHook_ShouldCountErrorsByType(t *testing.T) {

	assert := assert.New(t)
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_errors_total"}, []string{"type"})
	hook := newErrorCountingHook(counter)

	assert.NoError(hook.Fire(log.WithField(ErrorTypeField, ErrorTypeTgApi)))
	assert.NoError(hook.Fire(log.WithField(sourceField, "loki")))
	assert.NoError(hook.Fire(log.NewEntry(log.StandardLogger())))

	assert.Equal(float64(1), counterValue(counter.WithLabelValues(ErrorTypeTgApi)))
	assert.Equal(float64(1), counterValue(counter.WithLabelValues("loki")))
	assert.Equal(float64(1), counterValue(counter.WithLabelValues(unknownErrorType)))
}

func Test_ToLogrusLevel_ShouldMapConfiguredLevels(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(log.DebugLevel, toLogrusLevel(config.LevelDebug))
	assert.Equal(log.WarnLevel, toLogrusLevel(config.LevelWarning))
	assert.Equal(log.FatalLevel, toLogrusLevel(config.LevelFatal))
	assert.Equal(log.InfoLevel, toLogrusLevel("VERBOSE"))
}

func Test_LokiHook_Levels_ShouldIncludeUpToMinimum(t *testing.T) {

	hook := &lokiHook{minLevel: log.WarnLevel}
	assert.Equal(t, []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel}, hook.Levels())
}
