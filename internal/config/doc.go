// Package config loads, normalizes, and validates overlap configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OVERLAP_TEMPLATE. The Config type centralizes every knob the CLI needs:
// the similarity method and its parameters, which files a corpus scan picks
// up, how results are rendered, and how logs are emitted.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical method names, and clear validation errors.
package config
