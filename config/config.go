package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/twguide/errors"
	"github.com/grovetools/twguide/util/pathutil"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are the file names searched for, in order of preference.
var configNames = []string{
	"twguide.yml",
	"twguide.yaml",
	".twguide.yml",
	".twguide.yaml",
	"twguide.toml",
}

// Source identifies the origin of a configuration layer.
type Source string

const (
	SourceDefault  Source = "default"
	SourceGlobal   Source = "global"
	SourceProject  Source = "project"
	SourceExplicit Source = "explicit"
)

// LayeredConfig holds the raw configuration from each source file and the
// final merged result.
type LayeredConfig struct {
	Default   *Config           // Config with only default values applied.
	Global    *Config           // Raw config from the XDG file, if any.
	Project   *Config           // Raw config found from the start directory, if any.
	Final     *Config           // The merged, defaulted and validated config.
	FilePaths map[Source]string // Maps sources to their file paths.
}

// Load reads, validates and applies defaults to a single configuration file.
// Unlike LoadFrom, a missing file is an error.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := finalize(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid configuration").
			WithDetail("path", path)
	}
	return cfg, nil
}

// LoadFromBytes parses YAML configuration from a byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := decode(data, false)
	if err != nil {
		return nil, err
	}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads configuration starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the
// given directory:
//  1. Global config ($XDG_CONFIG_HOME/twguide/twguide.yml) - base layer
//  2. Project config (twguide.yml found walking up) - overrides global
//
// Neither file is required; with no files the defaults apply.
func LoadFrom(startDir string) (*Config, error) {
	layered, err := LoadLayeredWithLogger(startDir, logrus.New())
	if err != nil {
		return nil, err
	}
	return layered.Final, nil
}

// LoadLayered loads every configuration layer without discarding them, for
// display by "twguide config show".
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadLayeredWithLogger(startDir, logger)
}

// LoadLayeredWithLogger is LoadLayered with a caller-supplied logger.
func LoadLayeredWithLogger(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		Default:   Default(),
		FilePaths: make(map[Source]string),
	}

	finalConfig := &Config{}

	globalPath := getXDGConfigPath()
	if globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := loadFile(globalPath)
			if err != nil {
				return nil, err
			}
			layered.Global = globalConfig
			layered.FilePaths[SourceGlobal] = globalPath
			finalConfig = mergeConfigs(finalConfig, globalConfig)
		}
	}

	projectPath, err := findProjectConfig(startDir)
	if err == nil && !pathutil.SamePath(projectPath, globalPath) {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		projectConfig, err := loadFile(projectPath)
		if err != nil {
			return nil, err
		}
		layered.Project = projectConfig
		layered.FilePaths[SourceProject] = projectPath
		logger.Debug("Merging project configuration over global configuration")
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	if err := finalize(finalConfig); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid configuration")
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(finalConfig); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	layered.Final = finalConfig
	return layered, nil
}

// FindConfigFile searches for a twguide configuration file with the
// following precedence:
//  1. Current directory up to filesystem root
//  2. XDG config directory (~/.config/twguide/twguide.yml)
func FindConfigFile(startDir string) (string, error) {
	if path, err := findProjectConfig(startDir); err == nil {
		return path, nil
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

func findProjectConfig(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.ConfigNotFound(startDir)
}

// loadFile reads and decodes one file without applying defaults. A relative
// catalog path is resolved against the file's directory.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := decode(data, isTOML(path))
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	if cfg.Catalog != "" {
		resolved, err := pathutil.Resolve(cfg.Catalog, filepath.Dir(path))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to resolve catalog path").
				WithDetail("path", path).
				WithDetail("catalog", cfg.Catalog)
		}
		cfg.Catalog = resolved
	}
	return cfg, nil
}

// decode expands environment variables, validates the document against the
// schema and decodes it into a Config.
func decode(data []byte, asTOML bool) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var raw map[string]interface{}
	var err error
	if asTOML {
		err = toml.Unmarshal(expanded, &raw)
	} else {
		err = yaml.Unmarshal(expanded, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration")
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	var cfg Config
	if asTOML {
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		for key, value := range raw {
			if knownKeys[key] {
				continue
			}
			if cfg.Extensions == nil {
				cfg.Extensions = make(map[string]interface{})
			}
			cfg.Extensions[key] = value
		}
	} else if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	return &cfg, nil
}

// finalize applies defaults and semantic validation.
func finalize(cfg *Config) error {
	cfg.SetDefaults()
	return cfg.Validate()
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the XDG config path for twguide
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "twguide", "twguide.yml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "twguide", "twguide.yml")
	}

	return ""
}
