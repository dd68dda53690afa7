// Package discover walks a mirrored website's directory tree and classifies
// files into content pages and noise.
//
// A mirror produced by an external crawler (HTTrack and friends) contains
// more than the site's documents: cache and log directories, partially
// downloaded files, error pages the crawler saved when the origin returned
// 404, and the scripts, stylesheets, and images the pages depend on. Only
// genuine document pages should be enumerated for conversion; assets stay on
// disk so the rendering engine can load them as page sub-resources.
//
// The scan is read-only. A missing or empty mirror root is a fatal
// configuration error; an individual unreadable file is skipped with a
// warning.
package discover
