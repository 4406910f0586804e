// Package config loads plume.yaml, the optional per-project configuration
// for the Plume CLI. The analyzer itself takes options explicitly; this
// config only shapes how the CLI invokes it and where scaffolded docs go.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents plume.yaml configuration
type Config struct {
	Project  ProjectConfig
	Analyzer AnalyzerConfig
	Output   OutputConfig
	Server   ServerConfig
}

// ProjectConfig holds project metadata overrides
type ProjectConfig struct {
	Name        string
	Description string
}

// AnalyzerConfig holds analysis settings
type AnalyzerConfig struct {
	ExcludeDirs []string // extra directories to ignore, merged with the built-in denylist
}

// OutputConfig defines scaffolding output settings
type OutputConfig struct {
	Path   string // where scaffolded documentation goes
	Format string // default report format: text, json, or yaml
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Port int
}

// Load reads plume.yaml from dir, falling back to defaults when the file is
// absent. Environment variables prefixed PLUME_ override file values.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("plume")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("PLUME")
	v.AutomaticEnv()

	v.SetDefault("output.path", "./docs")
	v.SetDefault("output.format", "text")
	v.SetDefault("server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading plume.yaml: %w", err)
		}
	}

	cfg := &Config{
		Project: ProjectConfig{
			Name:        v.GetString("project.name"),
			Description: v.GetString("project.description"),
		},
		Analyzer: AnalyzerConfig{
			ExcludeDirs: v.GetStringSlice("analyzer.exclude_dirs"),
		},
		Output: OutputConfig{
			Path:   v.GetString("output.path"),
			Format: v.GetString("output.format"),
		},
		Server: ServerConfig{
			Port: v.GetInt("server.port"),
		},
	}

	return cfg, nil
}

// Exists reports whether a plume.yaml is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "plume.yaml"))
	return err == nil
}
