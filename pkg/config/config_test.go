package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "./docs", cfg.Output.Path)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Project.Name)
	assert.Empty(t, cfg.Analyzer.ExcludeDirs)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `project:
  name: myproject
  description: A test project
analyzer:
  exclude_dirs:
    - generated
    - tmp
output:
  path: ./documentation
  format: yaml
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "plume.yaml"), []byte(content), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "myproject", cfg.Project.Name)
	assert.Equal(t, "A test project", cfg.Project.Description)
	assert.Equal(t, []string{"generated", "tmp"}, cfg.Analyzer.ExcludeDirs)
	assert.Equal(t, "./documentation", cfg.Output.Path)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "plume.yaml"),
		[]byte("output:\n  format: json\n"), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "./docs", cfg.Output.Path, "unset keys fall back to defaults")
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "plume.yaml"),
		[]byte("output: [not: valid"), 0644))

	_, err := Load(tmpDir)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, Exists(tmpDir))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "plume.yaml"), []byte("{}"), 0644))
	assert.True(t, Exists(tmpDir))
}
