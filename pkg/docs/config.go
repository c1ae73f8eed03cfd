// Package docs generates the documentation README from a docs.yaml
// configuration file.
package docs

import (
	"fmt"
	"os"

	"github.com/deco-project/ci-tools/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the docs.yaml configuration document.
// Every field is optional; renderers fall back to defaults or skip
// incomplete entries.
type Config struct {
	Header     HeaderConfig  `yaml:"header"`
	Styling    StylingConfig `yaml:"styling"`
	Sections   []Section     `yaml:"sections"`
	QuickLinks []QuickLink   `yaml:"quick_links"`
}

// HeaderConfig describes the README header block.
type HeaderConfig struct {
	Title    string       `yaml:"title"`
	Image    *ImageConfig `yaml:"image"`
	Subtitle string       `yaml:"subtitle"`
}

// ImageConfig describes the decorative header image.
type ImageConfig struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Caption string `yaml:"caption"`
}

// StylingConfig controls presentation toggles.
type StylingConfig struct {
	// ShowImage defaults to true when absent.
	ShowImage *bool `yaml:"show_image"`
}

// Section is one entry under the documentation sections heading.
type Section struct {
	Title       string `yaml:"title"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

// QuickLink is one entry under the quick links heading.
type QuickLink struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// ShowImage reports whether the header image block is enabled.
func (c *Config) ShowImage() bool {
	if c.Styling.ShowImage == nil {
		return true
	}
	return *c.Styling.ShowImage
}

// Load reads and parses the configuration file at path.
// A missing file yields a config-not-found error; invalid YAML yields a
// config-parse error. Nothing is validated beyond parsing: missing keys
// are handled by the renderers.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFoundError(fmt.Sprintf("configuration file %s not found", path), err)
		}
		return nil, errors.ConfigNotFoundError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigParseError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	return &cfg, nil
}
