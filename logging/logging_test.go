package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"geohash-codec/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "debug", "json")
	logger.Debug("encoded", "hash", "ezs42")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "encoded", entry["msg"])
	assert.Equal(t, "ezs42", entry["hash"])
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "text")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "chatty", "text")
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
