// Package config manages user-level settings stored at ~/.buildpin/config.yaml.
// Values resolve as environment (BUILDPIN_*) over config file over built-in
// defaults; the CLI layers its own flags on top.
package config
