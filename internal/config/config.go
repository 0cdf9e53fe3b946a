package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a generation or validation
// run.
//
// Grounded on the teacher's internal/config/config.go: a flag-populated
// struct with an optional YAML overlay and a Validate method, generalized
// from a single-file MRF loader's flags to this domain's source-directory/
// output-directory/worker-count/seed flags.
type Config struct {
	SourceDir         string
	OutputDir         string
	MaxWorkers        int
	Seed              int64
	AlreadyValidated  bool
	LogFormat         string   // "text" or "json"
	MessageTypes      []string `yaml:"message_types"` // subset of AllMessageTypes to emit
	EarlyExitThreshold int     `yaml:"early_exit_threshold"`
	CharacterSet      string   // set free-text values must be encodable in; "shift_jis" or "ISO 2022-1994" (MSH-18 itself is fixed)
	PhysicianCount    int      // size of the shared random-physician roster
}

// DefaultPhysicianCount matches the original's n_physicians=30 default.
const DefaultPhysicianCount = 30

// DefaultCharacterSet is the character set a run checks free-text values
// against when the caller doesn't override it.
const DefaultCharacterSet = "shift_jis"

// AllMessageTypes is the full set of message types this engine can emit.
// Config.MessageTypes defaults to this list when unset.
var AllMessageTypes = []string{"ADT^A08", "ADT^A01", "ADT^A03", "OMP^O09", "OML^O33", "PPR^ZD1"}

// yamlConfig is the on-disk YAML overlay structure. Only fields a human
// would want to check into a repo (rather than pass as a flag on every
// invocation) live here.
type yamlConfig struct {
	MessageTypes       []string `yaml:"message_types"`
	EarlyExitThreshold int      `yaml:"early_exit_threshold"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.MessageTypes = yc.MessageTypes
	if yc.EarlyExitThreshold > 0 {
		c.EarlyExitThreshold = yc.EarlyExitThreshold
	}
	return c.validateMessageTypes()
}

// validateMessageTypes checks that every entry in MessageTypes is a known
// message type. If MessageTypes is empty, it defaults to AllMessageTypes.
func (c *Config) validateMessageTypes() error {
	if len(c.MessageTypes) == 0 {
		c.MessageTypes = append([]string(nil), AllMessageTypes...)
		return nil
	}
	known := make(map[string]bool, len(AllMessageTypes))
	for _, mt := range AllMessageTypes {
		known[mt] = true
	}
	for _, mt := range c.MessageTypes {
		if !known[mt] {
			return fmt.Errorf("unknown message type %q in config", mt)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is
// invalid for a generation run.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("--source is required")
	}
	if _, err := os.Stat(c.SourceDir); err != nil {
		return fmt.Errorf("source directory not accessible: %w", err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("--output is required")
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("--workers must be positive, got %d", c.MaxWorkers)
	}
	if c.CharacterSet == "" {
		c.CharacterSet = DefaultCharacterSet
	}
	if c.CharacterSet != "shift_jis" && c.CharacterSet != "ISO 2022-1994" {
		return fmt.Errorf(`--character-set must be "shift_jis" or "ISO 2022-1994", got %q`, c.CharacterSet)
	}
	if c.PhysicianCount <= 0 {
		c.PhysicianCount = DefaultPhysicianCount
	}
	return c.validateMessageTypes()
}

// ValidateForValidateOnly checks the fields a pre-flight validation-only
// run needs, which is just the source directory.
func (c *Config) ValidateForValidateOnly() error {
	if c.SourceDir == "" {
		return fmt.Errorf("--source is required")
	}
	if _, err := os.Stat(c.SourceDir); err != nil {
		return fmt.Errorf("source directory not accessible: %w", err)
	}
	return nil
}
