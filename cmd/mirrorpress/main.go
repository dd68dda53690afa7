// Package main provides the entry point for the mirrorpress CLI.
//
// mirrorpress converts an offline website mirror (e.g. an HTTrack download)
// into a single paginated PDF with the pages in reading order.
//
// Usage:
//
//	mirrorpress convert <mirror-dir>
//	mirrorpress list <mirror-dir>
//
// See --help for all available options.
package main

// main is the entry point for mirrorpress.
func main() {
	Execute()
}
