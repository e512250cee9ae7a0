package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables consumed by the launcher.
const (
	EnvBotDir  = "WAB_BOT_DIR"
	EnvNodeDir = "WAB_NODE_DIR"
)

// Executable names the resolver searches for.
const (
	// CanonicalName is the current executable name of the bot.
	CanonicalName = "whatsappbot"
	// LegacyName is the deprecated alias kept for old installs.
	LegacyName = "clawdbot"
)

// DefaultNodeDir is where the node tooling drops its global binaries.
const DefaultNodeDir = "/usr/local/lib/node_modules/.bin"

// LaunchConfig holds the resolved directories and the augmented search
// path. It is built once at startup and never mutated afterward.
type LaunchConfig struct {
	// BotDir is the dedicated binary directory (WAB_BOT_DIR).
	BotDir string
	// NodeDir is the node tooling directory (WAB_NODE_DIR).
	NodeDir string
	// SearchPath is BotDir and NodeDir prepended to the process PATH,
	// existing entries preserved in order.
	SearchPath string

	Logging LoggingConfig
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string
	LogFile string
}

// Load resolves the launch configuration from the environment. Missing or
// empty variables fall back to their defaults, so Load cannot fail.
func Load() *LaunchConfig {
	v := viper.New()
	v.SetEnvPrefix("WAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &LaunchConfig{
		BotDir:  getPath(v, "bot_dir"),
		NodeDir: getPath(v, "node_dir"),
		Logging: LoggingConfig{
			Level:   v.GetString("log_level"),
			LogFile: expandPath(v.GetString("log_file")),
		},
	}
	cfg.SearchPath = prependPath(os.Getenv("PATH"), cfg.BotDir, cfg.NodeDir)

	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	v.SetDefault("bot_dir", filepath.Join(homeDir, ".whatsappbot", "bin"))
	v.SetDefault("node_dir", DefaultNodeDir)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// getPath reads a directory value. An environment variable that is set but
// blank shadows the registered default, so fall back to it explicitly.
func getPath(v *viper.Viper, key string) string {
	val := strings.TrimSpace(v.GetString(key))
	if val == "" {
		defaults := viper.New()
		setDefaults(defaults)
		val = defaults.GetString(key)
	}
	return expandPath(val)
}

// prependPath builds a PATH-style string with dirs ahead of the existing
// entries. Relative order of the existing entries is preserved.
func prependPath(path string, dirs ...string) string {
	parts := make([]string, 0, len(dirs)+1)
	for _, dir := range dirs {
		if dir != "" {
			parts = append(parts, dir)
		}
	}
	if path != "" {
		parts = append(parts, path)
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}
