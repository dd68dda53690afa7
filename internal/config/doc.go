// Package config provides configuration structures and utilities for
// mirrorpress. It defines the options controlling page discovery, rendering,
// table-of-contents generation, and report output, plus the optional YAML
// profile file for site-generator-specific style overrides.
package config
