package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Everything it
// carries can also be set by flag; the file only supplies defaults.
type FileConfig struct {
	URL    string `yaml:"url" json:"url"`
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	StrictLanguage  bool `yaml:"strictLanguage" json:"strictLanguage"`
	MapVirtualJudge bool `yaml:"mapVirtualJudge" json:"mapVirtualJudge"`
	Verbose         bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their defaults. Flags should already have been parsed; this
// lets the file supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const (
		inputDefault  = "-"
		outputDefault = "-"
	)

	if cfg.URL == "" && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if (cfg.InputPath == "" || cfg.InputPath == inputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == outputDefault) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if !cfg.StrictLanguage && fc.StrictLanguage {
		cfg.StrictLanguage = true
	}
	if !cfg.MapVirtualJudge && fc.MapVirtualJudge {
		cfg.MapVirtualJudge = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if trim(cfg.URL) == "" {
		return errors.New("config: url is required (or set OJEXTRACT_URL)")
	}
	if trim(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	return nil
}

func trim(s string) string {
	i := 0
	j := len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
