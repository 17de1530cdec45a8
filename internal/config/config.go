// Package config loads minish settings from ~/.minish/config.yaml and MINISH_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	dirName   = ".minish"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "MINISH"
)

// Keys understood in the config file and as MINISH_<KEY> variables.
const (
	KeyPrompt           = "prompt"
	KeyLogLevel         = "log_level"
	KeyDuplicatePolicy  = "duplicate_policy"
	KeyExternalFallback = "external_fallback"
	KeyAliasFile        = "alias_file"
	KeyHistoryFile      = "history_file"
)

// Config is the resolved runtime configuration.
type Config struct {
	Prompt           string
	LogLevel         string
	DuplicatePolicy  string
	ExternalFallback bool
	AliasFile        string
	HistoryFile      string
	// Source is the config file that was read, or "" when none was found.
	Source string
}

// Dir returns the path to the minish directory (~/.minish/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// FilePath returns the default config file path (~/.minish/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// New returns a viper instance with every default set and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPrompt, "[sh]$ ")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDuplicatePolicy, "reject")
	v.SetDefault(KeyExternalFallback, true)
	v.SetDefault(KeyAliasFile, filepath.Join(Dir(), "aliases.yaml"))
	v.SetDefault(KeyHistoryFile, filepath.Join(Dir(), "history"))

	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

/*
Load reads configFile (or the default path when empty) into v and returns
the resolved Config. A missing default file is not an error; a missing file
that was asked for explicitly is.
*/
func Load(v *viper.Viper, configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = FilePath()
	}
	v.SetConfigFile(configFile)

	source := configFile
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		source = ""
	}

	return &Config{
		Prompt:           v.GetString(KeyPrompt),
		LogLevel:         v.GetString(KeyLogLevel),
		DuplicatePolicy:  v.GetString(KeyDuplicatePolicy),
		ExternalFallback: v.GetBool(KeyExternalFallback),
		AliasFile:        expandHome(v.GetString(KeyAliasFile)),
		HistoryFile:      expandHome(v.GetString(KeyHistoryFile)),
		Source:           source,
	}, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
