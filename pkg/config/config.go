/*
Package config manages TOML config for namecmp.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/namecmp/internal/utils"
	"github.com/charmbracelet/log"
)

const (
	CodecMsgpack = "msgpack"
	CodecJSON    = "json"
)

// Config holds the entire config structure
type Config struct {
	Names  NamesConfig  `toml:"names"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// NamesConfig holds names file and index options.
type NamesConfig struct {
	File string `toml:"file"`
	// MaxNodes caps how many names each structure may hold. 0 means no cap.
	MaxNodes int `toml:"max_nodes"`
}

// CliConfig holds interactive console options.
type CliConfig struct {
	Hints     bool `toml:"hints"`
	HintLimit int  `toml:"hint_limit"`
	Color     bool `toml:"color"`
}

// ServerConfig holds IPC mode options.
type ServerConfig struct {
	Codec string `toml:"codec"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Names: NamesConfig{
			File:     "names.txt",
			MaxNodes: 0,
		},
		CLI: CliConfig{
			Hints:     false,
			HintLimit: 5,
			Color:     true,
		},
		Server: ServerConfig{
			Codec: CodecMsgpack,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME or the platform config dir
// 2. ~/.config/
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "namecmp"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("Failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	return filepath.Join(homeDir, ".config", "namecmp"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/namecmp/config.toml, if it exists
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Debugf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	if !utils.IsFile(defaultPath) {
		return DefaultConfig(), "", nil
	}

	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if !utils.IsFile(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps whichever values still parse and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ReadTOMLTable(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.Table(tempConfig, "names"); ok {
		extractNamesConfig(section, &config.Names)
	}
	if section, ok := utils.Table(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.Table(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.Table(tempConfig, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	config.sanitize()
	return config, nil
}

func extractNamesConfig(data map[string]any, names *NamesConfig) {
	if val, ok := utils.Value[string](data, "file"); ok {
		names.File = val
	}
	if val, ok := utils.Int(data, "max_nodes"); ok {
		names.MaxNodes = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.Value[bool](data, "hints"); ok {
		cli.Hints = val
	}
	if val, ok := utils.Int(data, "hint_limit"); ok {
		cli.HintLimit = val
	}
	if val, ok := utils.Value[bool](data, "color"); ok {
		cli.Color = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.Value[string](data, "codec"); ok {
		server.Codec = val
	}
}

func extractLogConfig(data map[string]any, logCfg *LogConfig) {
	if val, ok := utils.Value[string](data, "level"); ok {
		logCfg.Level = val
	}
}

// sanitize replaces out of range values with defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Names.File == "" {
		c.Names.File = def.Names.File
	}
	if c.Names.MaxNodes < 0 {
		log.Warnf("max_nodes %d is negative, using %d", c.Names.MaxNodes, def.Names.MaxNodes)
		c.Names.MaxNodes = def.Names.MaxNodes
	}
	if c.CLI.HintLimit < 0 {
		log.Warnf("hint_limit %d is negative, using %d", c.CLI.HintLimit, def.CLI.HintLimit)
		c.CLI.HintLimit = def.CLI.HintLimit
	}
	c.Server.Codec = strings.ToLower(c.Server.Codec)
	if c.Server.Codec != CodecMsgpack && c.Server.Codec != CodecJSON {
		log.Warnf("Unknown codec %q, using %s", c.Server.Codec, def.Server.Codec)
		c.Server.Codec = def.Server.Codec
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		log.Warnf("Unknown log level %q, using %s", c.Log.Level, def.Log.Level)
		c.Log.Level = def.Log.Level
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.DisplayPath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.WriteTOMLFile(configPath, config)
}
