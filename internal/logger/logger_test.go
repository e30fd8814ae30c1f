package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLoggerWithOutput("debug", buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLoggerWithOutput("not-a-level", buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	buf := &bytes.Buffer{}
	log := NewLoggerWithOutput("info", buf)
	log.Info("hello")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "hello", logEntry["msg"])
}

func TestTipLoggerGeneration(t *testing.T) {
	log, buf := setupTestLogger()
	tipLogger := NewTipLogger(log)

	tipLogger.LogTipGeneration("report_1", "basic", "Ponte Preta", "Náutico", 12, "dcHomeDraw", 71, 0.4)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "tips", logEntry["component"])
	assert.Equal(t, "report_1", logEntry["report_id"])
	assert.Equal(t, float64(71), logEntry["best_score"])
	assert.Equal(t, "Tip generation completed", logEntry["msg"])
}

func TestTipLoggerRanking(t *testing.T) {
	log, buf := setupTestLogger()
	tipLogger := NewTipLogger(log)

	tipLogger.LogTipRanking("report_1", 1, "over15", "Over 1.5 goals", 63)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "debug", logEntry["level"])
	assert.Equal(t, "over15", logEntry["tip_key"])
}

func TestTipLoggerRankingSuppressedAtInfo(t *testing.T) {
	log, buf := setupTestLogger()
	log.SetLevel(logrus.InfoLevel)
	NewTipLogger(log).LogTipRanking("report_1", 1, "over15", "Over 1.5 goals", 63)
	assert.Zero(t, buf.Len())
}

func TestTipLoggerInputFallback(t *testing.T) {
	log, buf := setupTestLogger()
	tipLogger := NewTipLogger(log)

	tipLogger.LogInputFallback("report_1", []string{"homeGoalsFor", "oddsDraw"})

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, float64(2), logEntry["fallback_count"])
}

func TestTipLoggerEstimate(t *testing.T) {
	log, buf := setupTestLogger()
	tipLogger := NewTipLogger(log)

	tipLogger.LogEstimate("report_2", 7, 1, 3.5, 66.7, "+2.5 goals")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "estimate", logEntry["event_type"])
	assert.Equal(t, "+2.5 goals", logEntry["best_pick"])
}

func TestTipLoggerInputWarnings(t *testing.T) {
	log, buf := setupTestLogger()
	tipLogger := NewTipLogger(log)

	tipLogger.LogInputWarnings("report_3", []string{"home win_rate is a percentage (0-100), got 160"})

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, float64(1), logEntry["warning_count"])
}

func TestAuditLoggerFormCleared(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogFormCleared("match.yaml", true, 18)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "audit", logEntry["component"])
	assert.Equal(t, true, logEntry["keep_names"])
	assert.Equal(t, float64(18), logEntry["fields_cleared"])
}

func TestAuditLoggerSettingOverride(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogSettingOverride("scoring.variant", "basic", "advanced")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "Setting overridden", logEntry["msg"])
	assert.Equal(t, "advanced", logEntry["new_value"])
}

func BenchmarkTipLoggerGeneration(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	tipLogger := NewTipLogger(log)

	for i := 0; i < b.N; i++ {
		tipLogger.LogTipGeneration("report_1", "basic", "Home", "Away", 12, "over15", 63, 0.2)
	}
}
