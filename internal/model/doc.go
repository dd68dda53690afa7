// Package model defines the core data structures used throughout mirrorpress.
//
// This package contains the following main types:
//   - PageRecord: A content page discovered in the mirror directory
//   - NavigationEntry: A link extracted from the entry page's navigation region
//   - RenderedPage: A single fixed-size PDF produced for one page (or the TOC)
//   - ConversionReport: The accumulated state and outcome of one conversion run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (discover, nav, order, render, assemble,
// report) need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
