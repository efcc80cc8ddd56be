package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "onigo.log")
	log, err := New("debug", path)
	require.NoError(t, err)
	log.Info("navigate", zap.String("from", "phoneNumber"), zap.String("to", "verificationCode"))
	log.Debug("detail")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "navigate", entry["msg"])
	require.Equal(t, "verificationCode", entry["to"])
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onigo.log")
	log, err := New("WARN", path)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	log, err := New("info", "  ")
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("dropped")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	require.Error(t, err)
}
