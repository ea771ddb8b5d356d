// Package config loads and validates segue's TOML configuration.
//
// Configuration is resolved from an explicit path, then
// ~/.config/segue/config.toml, then a project-local segue.toml. Missing files
// fall back to defaults; present files are merged over them, normalized
// (path expansion, case folding), and validated before use.
package config
