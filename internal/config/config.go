package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable pointing at the config file.
const EnvVar = "TINYLOX_CONFIG"

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".tinylox.yaml"

const (
	ASTFormatLisp = "lisp"
	ASTFormatRPN  = "rpn"
)

var ErrInvalidASTFormat = errors.New("config: invalid ast_format")

type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	DumpTokens  bool   `yaml:"dump_tokens"`
	DumpAST     bool   `yaml:"dump_ast"`
	ASTFormat   string `yaml:"ast_format"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{Prompt: "> ", ASTFormat: ASTFormatLisp}
}

// LoadDefault reads $TINYLOX_CONFIG, else ~/.tinylox.yaml when present, else
// returns Default(). A missing file named by $TINYLOX_CONFIG is an error.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Load parses the YAML file at path on top of Default(). Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	return cfg, nil
}

// Decode reads a config document from r. An empty document yields defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.ASTFormat {
	case ASTFormatLisp, ASTFormatRPN:
		return nil
	}
	return fmt.Errorf("%w %q, want %q or %q", ErrInvalidASTFormat, c.ASTFormat, ASTFormatLisp, ASTFormatRPN)
}
