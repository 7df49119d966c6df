package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger initializes and returns the application logger
func InitLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

// LogError logs an error with module/function context fields
func LogError(logger *logrus.Logger, moduleName string, funcName string, data any, err error) {
	if err == nil {
		return
	}
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
