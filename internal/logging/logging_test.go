package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Info("search_completed", "term", "ocean", "results", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search_completed", entry["msg"])
	assert.Equal(t, "ocean", entry["term"])
	assert.Equal(t, float64(3), entry["results"])
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewCLI_WarnByDefault(t *testing.T) {
	var buf bytes.Buffer

	NewCLI(&buf, false).Info("search_completed")
	assert.Empty(t, buf.String())

	NewCLI(&buf, false).Error("search_failed", "term", "ocean")
	assert.Contains(t, buf.String(), "msg=search_failed")
	assert.Contains(t, buf.String(), "term=ocean")

	buf.Reset()
	NewCLI(&buf, true).Debug("search_started")
	assert.Contains(t, buf.String(), "search_started")
}
