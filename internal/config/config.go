package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bashhack/pkglock/internal/constants"
	"github.com/bashhack/pkglock/internal/errors"
)

// Keys under which settings are known to viper. Flags use the same names, and
// environment variables are PKGLOCK_ plus the upper-cased key with dashes
// turned into underscores.
const (
	KeyDebug   = "debug"
	KeyLogFile = "log-file"
	KeyQuiet   = "quiet"
	KeyOwner   = "owner"
)

// Config holds all pkglock application settings
type Config struct {
	// Lock target
	TargetDir string
	Owner     string

	// User experience
	Verbose bool

	// Debugging
	Debug   bool
	LogFile string

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Verbose: true,
		Debug:   false,
		LogFile: "",
		Owner:   "",

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// NewViper returns a viper instance reading PKGLOCK_* environment variables,
// with defaults matching New. A .env file in the working directory, if
// present, is loaded into the environment first; variables already set win.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyOwner, "")
	return v
}

// RegisterFlags defines the global command-line flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool(KeyDebug, false, "Enable debug logging to a file")
	fs.String(KeyLogFile, "", "Path to log file (default: ~/.local/share/pkglock/logs/pkglock-{target-hash}.log)")
	fs.BoolP(KeyQuiet, "q", false, "Hide informational messages")
	fs.String(KeyOwner, "", "Owner identity to lock as (default: current PID)")
	_ = fs.MarkHidden(KeyOwner)
}

// Load reads the settings from v. Flags bound to v take precedence over the
// environment, which takes precedence over defaults.
func (c *Config) Load(v *viper.Viper) {
	c.Debug = v.GetBool(KeyDebug)
	c.LogFile = v.GetString(KeyLogFile)
	c.Verbose = !v.GetBool(KeyQuiet)
	c.Owner = v.GetString(KeyOwner)
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if strings.TrimSpace(c.TargetDir) == "" {
		return errors.NewConfigError("targetDir", c.TargetDir,
			errors.Wrap(errors.ErrInvalidConfiguration, "target directory must not be empty"))
	}

	absTarget, err := filepath.Abs(c.TargetDir)
	if err != nil {
		return errors.NewConfigError("targetDir", c.TargetDir,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.TargetDir = absTarget

	if strings.ContainsAny(c.Owner, `/\`) {
		return errors.NewConfigError("owner", c.Owner,
			errors.Wrap(errors.ErrInvalidConfiguration, "owner must not contain path separators"))
	}

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				logDir = os.TempDir()
			}
		}

		targetHash := fmt.Sprintf("%x", sha256OfString(c.TargetDir)[:8])
		c.LogFile = filepath.Join(logDir, constants.AppName, "logs", fmt.Sprintf("%s-%s.log", constants.AppName, targetHash))
	}

	return nil
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
