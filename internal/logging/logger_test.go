package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inferus/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
		{"surrounding space", " warn ", log.WarnLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			require.NotNil(t, logger)
			assert.Equal(t, testCase.expected, logger.GetLevel())
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, logging.ValidLevel("debug"))
	assert.True(t, logging.ValidLevel("WARNING"))
	assert.False(t, logging.ValidLevel("verbose"))
	assert.False(t, logging.ValidLevel(""))
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	logger.Debug("parsed", logging.FieldNodes, 3)

	out := buf.String()
	assert.Contains(t, out, "parsed")
	assert.Contains(t, out, "nodes=3")
	assert.Contains(t, out, "inferus")
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")
	logger.Info("hidden")

	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	logging.SetDefault(logging.New("info"))

	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())

	logging.SetLevel("error")
	assert.Equal(t, log.ErrorLevel, logging.Default().GetLevel())
}

func TestSetDefault(t *testing.T) {
	// Not parallel because it modifies global state.
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	newLogger := logging.New("error")
	logging.SetDefault(newLogger)

	assert.Same(t, newLogger, logging.Default())
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))

	assert.NotNil(t, logging.FromContext(context.Background()))
}
