// Package config holds the run configuration for the curation sheet
// pipeline: where the curation rounds live, where cache and report
// artifacts go, and the metadata stamped onto the assembled graph.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Metadata describes the assembled graph.
type Metadata struct {
	Name    string   `yaml:"name" json:"name"`
	Version string   `yaml:"version" json:"version"`
	Contact string   `yaml:"contact" json:"contact"`
	Authors []string `yaml:"authors" json:"authors"`
}

// AuthorString joins the authors, sorted by last name, into one
// comma-separated attribution string.
func (m Metadata) AuthorString() string {
	authors := make([]string, len(m.Authors))
	copy(authors, m.Authors)
	sort.Slice(authors, func(i, j int) bool {
		return lastName(authors[i]) < lastName(authors[j])
	})
	return strings.Join(authors, ", ")
}

func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full
	}
	return parts[len(parts)-1]
}

// Config is the top-level run configuration.
type Config struct {
	RoundsDir string   `yaml:"rounds_dir" json:"rounds_dir"`
	CacheDir  string   `yaml:"cache_dir" json:"cache_dir"`
	Metadata  Metadata `yaml:"metadata" json:"metadata"`
}

// Default returns the configuration used when no config file is given,
// mirroring the repository layout of the curation project.
func Default() Config {
	return Config{
		RoundsDir: "rounds",
		CacheDir:  "cache",
		Metadata: Metadata{
			Name:    "HBP - INDRA Curation",
			Version: "0.1.0",
			Contact: "charles.hoyt@scai.fraunhofer.de",
			Authors: []string{
				"Charles Tapley Hoyt",
				"Daniel Domingo-Fernández",
				"Esther Wollert",
				"Sandra Spalek",
				"Keerthika Lohanadan",
				"Rana Al Disi",
				"Lingling Xu",
				"Kristian Kolpeja",
			},
		},
	}
}

// GraphCachePath is the sqlite file the assembled graph is cached in.
func (c Config) GraphCachePath() string {
	return filepath.Join(c.CacheDir, "sheets.bel.db")
}

// SummaryCSVPath is the classification summary report file.
func (c Config) SummaryCSVPath() string {
	return filepath.Join(c.CacheDir, "curation_summary.csv")
}

// ErrorTypesCSVPath is the error-type report file.
func (c Config) ErrorTypesCSVPath() string {
	return filepath.Join(c.CacheDir, "error_types.csv")
}

// LoadFromPath reads a config file (YAML or JSON) and returns the parsed
// Config. Format is detected by extension (.yaml/.yml → YAML, .json → JSON)
// or by content (first non-whitespace char).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for the format
// hint; empty = detect from content. Unset fields fall back to defaults.
func Load(data []byte, ext string) (*Config, error) {
	c := Default()

	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported extension %q", ext)
	}

	d := Default()
	if c.RoundsDir == "" {
		c.RoundsDir = d.RoundsDir
	}
	if c.CacheDir == "" {
		c.CacheDir = d.CacheDir
	}
	if c.Metadata.Name == "" {
		c.Metadata = d.Metadata
	}
	return &c, nil
}
