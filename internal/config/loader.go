package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/itsatony/go-cuserr"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"hbslint.yml",
	"hbslint.yaml",
	".hbslint.yml",
	".hbslint.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses an hbslint config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory using Discover. If no config file is found, DefaultConfig is
// returned.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values. Lists given in the YAML replace the default
// lists rather than extending them. The result is validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", configPath,
				cuserr.NewNotFoundError("config", ErrMsgConfigNotFound).
					WithMetadata(MetaKeyPath, configPath))
		}
		return nil, fmt.Errorf("%s: %w", configPath,
			cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgConfigRead).
				WithMetadata(MetaKeyPath, configPath))
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath,
			cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgConfigParse).
				WithMetadata(MetaKeyPath, configPath))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}
