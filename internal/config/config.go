package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dataforge-labs/dataforge/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the db commands. Nested keys map to env vars through
// the DATAFORGE prefix and the "."→"_" replacer, so db.password is read
// from DATAFORGE_DB_PASSWORD.
const (
	KeyDBDriver   = "db.driver"
	KeyDBHost     = "db.host"
	KeyDBPort     = "db.port"
	KeyDBUser     = "db.user"
	KeyDBPassword = "db.password"
	KeyDBName     = "db.name"
	KeyDBPath     = "db.path"
)

// Dir returns the path to the DataForge config directory (~/.dataforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.dataforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// setDefaults registers connection defaults matching the canonical
// customer-analytics setup. The password deliberately has no default:
// it comes from the environment or the config file.
func setDefaults() {
	viper.SetDefault(KeyDBDriver, "mysql")
	viper.SetDefault(KeyDBHost, "localhost")
	viper.SetDefault(KeyDBPort, 3306)
	viper.SetDefault(KeyDBUser, "root")
	viper.SetDefault(KeyDBName, "customer_analytics")
	viper.SetDefault(KeyDBPath, "data/processed/customer_cleaned.db")
}

// KnownKeys lists the documented settings keys in display order.
func KnownKeys() []string {
	return []string{
		KeyDBDriver,
		KeyDBHost,
		KeyDBPort,
		KeyDBUser,
		KeyDBPassword,
		KeyDBName,
		KeyDBPath,
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value by key, 0 if unset.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
