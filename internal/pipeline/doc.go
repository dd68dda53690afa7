// Package pipeline provides a framework for executing conversion stages in
// sequence.
//
// A conversion runs through six stages: page discovery, navigation
// extraction, order resolution, page rendering, TOC generation, and
// document assembly. Each stage is implemented as a Step that receives the
// accumulated ConversionReport and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
//  1. It allows easy addition/removal of steps without modifying core logic
//  2. It provides consistent error handling and logging across steps
//  3. It supports cancellation via context between stages
//
// Steps return an error only for run-fatal conditions (missing mirror,
// nothing rendered). Per-page failures are recorded in the report as
// warnings and skipped pages; they never stop the pipeline.
//
// The rendering engine and document assembler are consumed through small
// interfaces so the pipeline can be exercised in tests without a browser.
package pipeline
