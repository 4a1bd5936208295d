// Package config loads shellkit's layered configuration.
//
// Configuration is merged from three layers, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/shellkit/shellkit.toml)
//  3. the repo config file ($SHELLKIT_ROOT/shellkit.toml)
//
// The merged result is decoded into a Config struct. The link table,
// package list, and pinned tool versions all come from here; code never
// hardcodes them.
package config
