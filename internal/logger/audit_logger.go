// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger records changes made to form files and runtime settings.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogFormWritten logs a form file being written.
func (al *AuditLogger) LogFormWritten(path string, fieldsWritten int) {
	al.WithFields(logrus.Fields{
		"path":           path,
		"fields_written": fieldsWritten,
	}).Info("Form file written")
}

// LogFormCleared logs a form file being emptied.
func (al *AuditLogger) LogFormCleared(path string, keepNames bool, fieldsCleared int) {
	al.WithFields(logrus.Fields{
		"path":           path,
		"keep_names":     keepNames,
		"fields_cleared": fieldsCleared,
	}).Info("Form file cleared")
}

// LogSettingOverride logs a configured value replaced from the command line.
func (al *AuditLogger) LogSettingOverride(setting string, oldValue, newValue interface{}) {
	al.WithFields(logrus.Fields{
		"setting":   setting,
		"old_value": oldValue,
		"new_value": newValue,
	}).Info("Setting overridden")
}
