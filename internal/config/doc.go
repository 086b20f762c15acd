// Package config manages user-level settings stored at ~/.dataforge/config.yaml.
// Values resolve from explicit sets, then DATAFORGE_* environment variables,
// then the config file, then built-in defaults. Database credentials are the
// main tenant: the password key has no default and is expected to arrive via
// environment or file, never flags.
package config
