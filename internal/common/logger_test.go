package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "defaults", level: "", format: ""},
		{name: "debug json", level: "debug", format: "json"},
		{name: "warn console", level: "warn", format: "console"},
		{name: "invalid level", level: "loud", format: "json", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLogInfoFields(t *testing.T) {
	buf := captureLogs(t)

	LogInfo("lots imported", Fields{"count": 3, "file": "lots.json"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"lots imported"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, `"file":"lots.json"`)
}

func TestLogErrorIncludesCause(t *testing.T) {
	buf := captureLogs(t)

	LogError(errors.New("disk full"), "command failed", Fields{"command": "classify"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"command failed"`)
	assert.Contains(t, out, `"error":"disk full"`)
	assert.Contains(t, out, `"command":"classify"`)

	// Nil fields must be safe; callers at the top level pass nil.
	LogError(errors.New("boom"), "no fields", nil)
	assert.Contains(t, buf.String(), `"msg":"no fields"`)
}
