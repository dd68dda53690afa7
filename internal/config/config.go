package config

import (
	"time"
)

// Default configuration values. Where a value mirrors the behavior of common
// documentation-site exports, the rationale is noted.
const (
	// DefaultOutputPath is the default name of the assembled PDF, written
	// into the current working directory.
	DefaultOutputPath = "website.pdf"

	// DefaultSettle is the fixed wait applied after page load and style
	// injection before capturing. Deferred content (syntax highlighting,
	// lazy images) usually finishes well within this window; heavily
	// dynamic pages may still capture incomplete and that is accepted.
	DefaultSettle = 500 * time.Millisecond

	// DefaultRenderTimeout bounds a single page's load + capture. Local
	// file:// loads are fast, but script-heavy pages can stall; a page
	// exceeding this is skipped, not fatal.
	DefaultRenderTimeout = 60 * time.Second

	// DefaultConcurrency is the number of simultaneous rendering sessions.
	// Each session is an isolated browser page, an expensive resource;
	// four keeps memory reasonable while hiding most of the per-page I/O.
	DefaultConcurrency = 4

	// DefaultScale shrinks captured content slightly so wide layouts fit
	// the sheet after the wrapping overrides are applied.
	DefaultScale = 0.85

	// AppName is the application name used for XDG directory paths.
	AppName = "mirrorpress"
)

// Engine identifies a rendering engine backend.
type Engine string

// Supported rendering engine backends. EngineChromium is the default.
const (
	// EngineChromium uses a managed Chromium download (fetched on first use
	// into the XDG cache directory).
	EngineChromium Engine = "chromium"

	// EngineSystem uses a browser already installed on the host, located
	// via the usual install paths.
	EngineSystem Engine = "system"
)

// Engines returns all supported rendering engine backends, default first.
func Engines() []Engine {
	return []Engine{EngineChromium, EngineSystem}
}

// Paper identifies an output sheet size.
type Paper string

// Supported sheet sizes. PaperA4 is the default.
const (
	PaperA4     Paper = "A4"
	PaperLetter Paper = "Letter"
)

// Config holds all configuration options for a conversion run.
// It is populated from CLI flags and an optional profile file, validated
// once, and passed through the application by value semantics: nothing
// mutates it after the run starts.
type Config struct {
	// MirrorRoot is the mirror directory to convert. Required.
	MirrorRoot string

	// OutputPath is where the assembled PDF is written.
	OutputPath string

	// Engine selects the rendering engine backend.
	Engine Engine

	// MaxPages truncates the resolved page order to its first N entries.
	// Zero means unlimited. Truncation happens after ordering.
	MaxPages int

	// IncludeTOC controls generation of the table-of-contents page.
	IncludeTOC bool

	// HideSidebar hides navigation and sidebar elements during rendering.
	HideSidebar bool

	// Settle is the fixed wait before capturing each page.
	Settle time.Duration

	// RenderTimeout bounds a single page's load and capture.
	RenderTimeout time.Duration

	// Concurrency is the number of simultaneous rendering sessions.
	Concurrency int

	// Scale is the capture scale factor, in (0, 2].
	Scale float64

	// Paper is the output sheet size.
	Paper Paper

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the profile file. If empty, the tool
	// searches the current directory, the XDG config directory, and the
	// user's home directory for a .mirrorpress file.
	ConfigFilePath string

	// ProfileName selects a named profile from the profile file.
	ProfileName string

	// Profiles holds the loaded profile file, nil when none was found.
	Profiles *File

	// JSONReport enables JSON summary output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown summary output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the summary to the given path instead of stdout.
	ReportFile string
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		OutputPath:    DefaultOutputPath,
		Engine:        EngineChromium,
		IncludeTOC:    true,
		HideSidebar:   true,
		Settle:        DefaultSettle,
		RenderTimeout: DefaultRenderTimeout,
		Concurrency:   DefaultConcurrency,
		Scale:         DefaultScale,
		Paper:         PaperA4,
	}
}

// Validate checks the configuration for invalid values.
// It returns the first sentinel error encountered, or nil.
func (c *Config) Validate() error {
	if c.MirrorRoot == "" {
		return ErrNoMirrorRoot
	}
	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.Settle < 0 {
		return ErrInvalidSettle
	}
	if c.RenderTimeout <= 0 {
		return ErrInvalidRenderTimeout
	}
	if c.Scale <= 0 || c.Scale > 2 {
		return ErrInvalidScale
	}
	switch c.Engine {
	case EngineChromium, EngineSystem:
	default:
		return ErrUnknownEngine
	}
	switch c.Paper {
	case PaperA4, PaperLetter:
	default:
		return ErrUnknownPaper
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ActiveProfile returns the merged style profile for this run: file defaults
// overlaid with the named profile, or a zero Profile when no file is loaded.
func (c *Config) ActiveProfile() Profile {
	if c.Profiles == nil {
		return Profile{}
	}
	return c.Profiles.GetProfile(c.ProfileName)
}
