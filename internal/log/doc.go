// Package log provides logging functionality for mirrorpress, built on top
// of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic rewriting of absolute mirror paths to mirror-relative form
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// Mirror trees often live under long temporary or download directories;
// per-page warnings that repeat the full prefix for every file are hard to
// scan. The RelPathHandler trims the configured root from path-valued
// attributes so warnings read as "docs/guide/index.html" rather than the
// full absolute path.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose, mirrorRoot)
//	logger.Warn("render failed",
//	    "page", "/home/user/mirror/docs/index.html", // logged as "docs/index.html"
//	    "error", err,
//	)
//	slog.SetDefault(logger)
package log
