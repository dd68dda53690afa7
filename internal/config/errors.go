package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. They are
// package-level sentinels so callers can use errors.Is() while still
// getting a human-readable message.
var (
	// ErrNoMirrorRoot is returned when no mirror directory is specified.
	ErrNoMirrorRoot = errors.New("no mirror directory specified")

	// ErrInvalidMaxPages is returned when the page ceiling is negative.
	// Use 0 for unlimited.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be non-negative")

	// ErrInvalidConcurrency is returned when the rendering concurrency is
	// not positive. Zero sessions could never make progress.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidSettle is returned when the settle interval is negative.
	// Use 0 to capture immediately after load.
	ErrInvalidSettle = errors.New("invalid settle interval: must be non-negative")

	// ErrInvalidRenderTimeout is returned when the per-page render timeout
	// is not positive.
	ErrInvalidRenderTimeout = errors.New("invalid render timeout: must be positive")

	// ErrInvalidScale is returned when the capture scale is outside (0, 2].
	ErrInvalidScale = errors.New("invalid scale: must be in (0, 2]")

	// ErrUnknownEngine is returned when the rendering engine is not one of
	// the supported backends.
	ErrUnknownEngine = errors.New("unknown rendering engine: must be chromium or system")

	// ErrUnknownPaper is returned when the sheet size is not supported.
	ErrUnknownPaper = errors.New("unknown paper size: must be A4 or Letter")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one summary format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
