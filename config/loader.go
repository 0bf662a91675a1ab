package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/stringr/errors"
	"github.com/kbukum/stringr/logger"
)

// FileSystem abstracts the file operations the loader needs.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem on the local disk.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds the config and env files for an application.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths from opts, searching standard
// locations for any that are unset.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting(envSearchPaths(name))
	}
	return resolved
}

func (r *Resolver) firstExisting(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// configSearchPaths lists candidate YAML files, most specific first.
func configSearchPaths(name string) []string {
	var paths []string
	for _, dir := range []string{".", "./config", ".."} {
		for _, base := range []string{name, "config"} {
			paths = append(paths,
				fmt.Sprintf("%s/%s.yml", dir, base),
				fmt.Sprintf("%s/%s.yaml", dir, base),
			)
		}
	}
	return paths
}

// envSearchPaths lists candidate .env files, most specific first.
func envSearchPaths(name string) []string {
	var paths []string
	for _, file := range []string{".env." + name, ".env"} {
		for _, dir := range []string{".", "./config", ".."} {
			paths = append(paths, fmt.Sprintf("%s/%s", dir, file))
		}
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	Logger     *logger.Logger
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *logger.Logger) LoaderOption {
	return func(lc *LoaderConfig) { lc.Logger = l }
}

// Load reads the configuration for the application called name. Values come
// from the YAML file, then the .env file, then NAME_* environment variables.
// Defaults are applied and the result is validated before it is returned.
//
// Unreadable files are logged and skipped. A value that cannot be decoded
// into its field is an INVALID_FORMAT error; a configuration that fails
// validation is an INVALID_CONFIG error.
func Load(name string, opts ...LoaderOption) (*Config, error) {
	start := time.Now()
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.Logger == nil {
		lc.Logger = logger.GetGlobalLogger()
	}
	log := lc.Logger.WithComponent("config")

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	var cfg Config
	if err := loadFromResolvedFiles(name, &cfg, files, lc.FileSystem, log); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fields := logger.DurationFields("load", time.Since(start))
	fields[logger.FieldConfigFile] = files.ConfigFile
	fields[logger.FieldEnvFile] = files.EnvFile
	log.Debug("configuration loaded", fields)
	return &cfg, nil
}

// loadFromResolvedFiles loads configuration from specific files into cfg.
func loadFromResolvedFiles(name string, cfg *Config, files ResolvedFiles, fs FileSystem, log *logger.Logger) error {
	v := viper.New()

	// 1. YAML file as the base layer
	if files.ConfigFile != "" {
		if !fs.Exists(files.ConfigFile) {
			log.Warn("config file not found", logger.Fields(logger.FieldConfigFile, files.ConfigFile))
		} else {
			v.SetConfigFile(files.ConfigFile)
			if err := v.ReadInConfig(); err != nil {
				log.Warn("failed to read config file", logger.MergeWithError(
					logger.Fields(logger.FieldConfigFile, files.ConfigFile), err))
			}
		}
	}

	// 2. .env file populates the process environment
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			log.Warn("failed to load .env file", logger.MergeWithError(
				logger.Fields(logger.FieldEnvFile, files.EnvFile), err))
		}
	}

	// 3. Prefixed environment variables override everything
	bindEnvVars(v, envPrefix(name), os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidFormat(name, "values matching the config schema").WithCause(err)
	}
	return nil
}

// envPrefix turns an application name into its environment prefix:
// "my-app" becomes "MY_APP_".
func envPrefix(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_"
}

// bindEnvVars sets every prefixed variable in environ on v under each key
// it could stand for.
func bindEnvVars(v *viper.Viper, prefix string, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(key, prefix)) {
			v.Set(variant, sanitizeEnvValue(value))
		}
	}
}

// envKeyVariants maps an environment key onto the nested keys it may address.
// Underscores are ambiguous: they separate sections and also appear inside
// key names.
//
//	WILDCARD_IGNORE_CASE -> [wildcard_ignore_case, wildcard.ignore.case, wildcard.ignore_case, wildcard_ignore.case]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.Join(parts, "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants,
			strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"),
			strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "."),
		)
	}
	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings, keeping the first occurrence.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// sanitizeEnvValue trims whitespace and one pair of matching surrounding
// quotes from an environment value.
func sanitizeEnvValue(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
