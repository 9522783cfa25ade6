package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/logging"
)

func TestZerologLogger_JSONCarriesMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLoggerWithWriter(&buf, "info", "json", false)
	require.NoError(t, err)

	logger.Log("ERROR", "unit failed", map[string]interface{}{"product_id": "widget", "unit": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "unit failed", entry["message"])
	assert.Equal(t, "widget", entry["product_id"])
	assert.EqualValues(t, 3, entry["unit"])
}

func TestZerologLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLoggerWithWriter(&buf, "warn", "json", false)
	require.NoError(t, err)

	logger.Log("DEBUG", "hidden", nil)
	logger.Log("INFO", "hidden", nil)
	logger.Log("WARNING", "shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestZerologLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLoggerWithWriter(&buf, "debug", "text", false)
	require.NoError(t, err)

	logger.Log("INFO", "order completed", map[string]interface{}{"succeeded": 10})

	assert.Contains(t, buf.String(), "order completed")
	assert.Contains(t, buf.String(), "succeeded=10")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := logging.NewLoggerWithWriter(&bytes.Buffer{}, "loud", "json", false)

	assert.ErrorContains(t, err, "unsupported log level")
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factorysim.log")
	logger, err := logging.NewLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)

	logger.Log("INFO", "to file", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
