// Package config loads figicons configuration from the environment and preset files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrMissingToken is returned by Env.Validate when no API token is set.
var ErrMissingToken = errors.New("FIGMA_TOKEN is not set")

// Env is the environment configuration.
// The file key and node id point at https://www.figma.com/file/:key/:title?node-id=:id
type Env struct {
	Token      string `env:"FIGMA_TOKEN"`
	FileKey    string `env:"FIGMA_FILE_KEY" envDefault:"vFxyFWm7CyhdQuCIAfBxpB"`
	NodeID     string `env:"FIGMA_NODE_ID" envDefault:"3:16147"`
	APIURL     string `env:"FIGMA_API_URL" envDefault:"https://api.figma.com/v1"`
	OutputDir  string `env:"FIGICONS_OUTPUT_DIR" envDefault:"src/svg"`
	ReportPath string `env:"FIGICONS_REPORT_PATH" envDefault:"error.csv"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var result Env
	if err := env.Parse(&result); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return result, nil
}

// Validate checks values needed to talk to the API.
func (e Env) Validate() error {
	if e.Token == "" {
		return ErrMissingToken
	}

	if e.FileKey == "" {
		return errors.New("FIGMA_FILE_KEY is empty")
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// LoadPreset reads a preset file into dst. YAML is used for .yaml/.yml files, JSON otherwise.
func LoadPreset(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, dst)
	} else {
		err = json.Unmarshal(data, dst)
	}

	if err != nil {
		return fmt.Errorf("decoding preset %s: %w", path, err)
	}

	return nil
}

// MakePreset encodes src in the given format ("json" or "yaml").
func MakePreset(src any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(src)
	case "json", "":
		return json.MarshalIndent(src, "", "\t")
	}

	return nil, fmt.Errorf("unknown preset format %q", format)
}
