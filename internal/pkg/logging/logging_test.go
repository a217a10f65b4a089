//go:build unit

package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("unknown"))
}

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	cfg.File = filepath.Join(dir, "service.log")
	cfg.MaxSizeMB = 1

	logger, closer := logging.New(cfg, logging.FormatJSON)
	logger.Info("quotation created", "quotation_id", "q-1")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"quotation created"`)
	assert.Contains(t, string(content), `"quotation_id":"q-1"`)
}
