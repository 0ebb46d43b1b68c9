package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateLoggerSupportsKnownLevelsAndFormats(t *testing.T) {
	factory := NewLoggerFactory()

	for _, logLevel := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		for _, logFormat := range []LogFormat{LogFormatStructured, LogFormatConsole} {
			logger, creationError := factory.CreateLogger(logLevel, logFormat)
			require.NoError(t, creationError)
			require.NotNil(t, logger)
		}
	}
}

func TestCreateLoggerRejectsUnknownConfigurations(t *testing.T) {
	factory := NewLoggerFactory()

	_, levelError := factory.CreateLogger(LogLevel("verbose"), LogFormatStructured)
	require.ErrorContains(t, levelError, "unsupported log level")

	_, formatError := factory.CreateLogger(LogLevelInfo, LogFormat("plaintext"))
	require.ErrorContains(t, formatError, "unsupported log format")
}
