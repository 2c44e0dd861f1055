package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hqai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1024, cfg.Defaults.Shots)
	assert.Equal(t, 20, cfg.Defaults.MaxQubits)
	assert.Equal(t, "amplitude", cfg.Defaults.Encoding)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
defaults:
  shots: 2048
  max_qubits: 12
  encoding: angle
runlog:
  path: /tmp/hqai.db
render:
  dir: /tmp/diagrams
`))
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Defaults.Shots)
	assert.Equal(t, 12, cfg.Defaults.MaxQubits)
	assert.Equal(t, "angle", cfg.Defaults.Encoding)
	assert.Equal(t, "/tmp/hqai.db", cfg.RunLog.Path)
	assert.Equal(t, "/tmp/diagrams", cfg.Render.Dir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
defaults:
  shots: 64
`))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Defaults.Shots)
	assert.Equal(t, 20, cfg.Defaults.MaxQubits, "unset fields keep defaults")
	assert.Equal(t, "amplitude", cfg.Defaults.Encoding)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, `
defaults:
  max_qubit: 8
`))
	assert.Error(t, err, "typo'd field names must not pass silently")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero shots", "defaults: {shots: 0}"},
		{"negative shots", "defaults: {shots: -5}"},
		{"max qubits too high", "defaults: {max_qubits: 31}"},
		{"max qubits zero", "defaults: {max_qubits: 0}"},
		{"bad encoding", "defaults: {encoding: phase}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
