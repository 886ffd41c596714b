package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// WorkspaceDir is the workspace used when no --workspace flag is given and
	// the current directory is not inside one.
	WorkspaceDir string `mapstructure:"workspace_dir" yaml:"workspace_dir"`
	// TrainingFile overrides the workspace's training.yaml.
	TrainingFile string `mapstructure:"training_file" yaml:"training_file"`
	DateLayout   string `mapstructure:"date_layout" yaml:"date_layout"`
	Parallel     int    `mapstructure:"parallel" yaml:"parallel"`
	// OpenAfterCreate launches the platform viewer for created documents.
	OpenAfterCreate bool `mapstructure:"open_after_create" yaml:"open_after_create"`
	// DocumentFile is read by the author and text menu entries.
	DocumentFile string `mapstructure:"document_file" yaml:"document_file"`
}

// Keys lists the configuration keys accepted by `config set`.
var Keys = []string{"workspace_dir", "training_file", "date_layout", "parallel", "open_after_create", "document_file"}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".docmerge"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.docmerge/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCMERGE")
	v.AutomaticEnv()

	v.SetDefault("workspace_dir", "")
	v.SetDefault("training_file", "")
	v.SetDefault("date_layout", "02.01.2006")
	v.SetDefault("parallel", 1)
	v.SetDefault("open_after_create", false)
	v.SetDefault("document_file", "Hallo Basta.docx")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Parallel < 1 {
		c.Parallel = 1
	}
	return &c, nil
}

// Set assigns key from its string form.
func (c *Global) Set(key, value string) error {
	switch key {
	case "workspace_dir":
		c.WorkspaceDir = value
	case "training_file":
		c.TrainingFile = value
	case "date_layout":
		c.DateLayout = value
	case "document_file":
		c.DocumentFile = value
	case "parallel":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("parallel must be a positive integer, got %q", value)
		}
		c.Parallel = n
	case "open_after_create":
		switch value {
		case "true", "yes", "1":
			c.OpenAfterCreate = true
		case "false", "no", "0":
			c.OpenAfterCreate = false
		default:
			return fmt.Errorf("open_after_create must be true or false, got %q", value)
		}
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
