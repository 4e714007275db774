package cmd

import (
	"errors"
	"os"
	"path"

	"github.com/swiftfmt/swiftfmt"
	"gopkg.in/yaml.v3"
)

// Config mirrors .swiftfmt.yaml. All fields are optional; a missing file
// means defaults.
type Config struct {
	Indent       string   `yaml:"indent"`
	TabWidth     int      `yaml:"tabwidth"`
	FileHeader   string   `yaml:"fileheader"`
	SwiftVersion string   `yaml:"swiftversion"`
	Fragment     bool     `yaml:"fragment"`
	NoConflicts  bool     `yaml:"ignoreconflictmarkers"`
	Rules        []string `yaml:"rules"`

	Extra map[string]string `yaml:"extra"`
}

func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, ".swiftfmt.yaml")
	if _, err := os.Stat(configFilename); errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	var result Config
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, &swiftfmt.Error{Kind: swiftfmt.OptionsError, Message: err.Error()}
	}
	return result, nil
}

// Options merges the config into the core defaults.
func (c Config) Options() swiftfmt.Options {
	options := swiftfmt.DefaultOptions()
	if c.Indent != "" {
		options.Indent = c.Indent
	}
	if c.TabWidth > 0 {
		options.TabWidth = c.TabWidth
	}
	if c.FileHeader != "" {
		options.FileHeader = c.FileHeader
	}
	options.SwiftVersion = c.SwiftVersion
	options.Fragment = c.Fragment
	options.IgnoreConflictMarkers = c.NoConflicts
	options.Extra = c.Extra
	return options
}

// RulePipeline resolves the rule selection: the --rules flag wins over the
// config file, and an empty selection means the full default pipeline.
func (c Config) RulePipeline() ([]swiftfmt.Rule, error) {
	names := ruleNames
	if len(names) == 0 {
		names = c.Rules
	}
	if len(names) == 0 {
		return swiftfmt.DefaultRules, nil
	}
	return swiftfmt.RulesNamed(names)
}
