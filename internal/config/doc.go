// Package config loads, normalizes, and validates m4vify configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: external tool paths, the track-selection language policy,
// staging and history locations, and log output settings. Components receive
// the loaded value explicitly; there is no process-wide mutable state.
package config
