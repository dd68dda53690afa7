package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/mirrorpress/mirrorpress/internal/config"
	"github.com/mirrorpress/mirrorpress/internal/model"
)

// ErrNoSystemBrowser is returned by Start when the system engine is selected
// but no installed browser could be located.
var ErrNoSystemBrowser = errors.New("no system browser found")

// Viewport dimensions used during capture. A wide viewport reduces layout
// line-wrapping before the print overlay takes effect.
const (
	viewportWidth  = 2048
	viewportHeight = 1400
)

// Chromium renders pages through a headless Chromium-family browser.
// A single browser process is shared; every render runs in its own isolated
// browser page, so Chromium is safe for concurrent use once started.
type Chromium struct {
	// root is the absolute mirror root; page records resolve against it.
	root string

	// engine selects between the managed download and a system browser.
	engine config.Engine

	// browserDir is where the managed Chromium build is cached.
	browserDir string

	// settle is the fixed wait between style injection and capture.
	settle time.Duration

	// timeout bounds one page's navigate + settle + capture.
	timeout time.Duration

	// scale is the capture scale factor.
	scale float64

	// paper is the output sheet size.
	paper config.Paper

	// hideSidebar controls the navigation-hiding part of the style overlay.
	hideSidebar bool

	// hideSelectors are profile-supplied selectors hidden in addition to
	// the built-in set.
	hideSelectors []string

	// contentSelectors are waited for (briefly) before capture.
	contentSelectors []string

	// logger is used for per-render debug output.
	logger *slog.Logger

	launcher *launcher.Launcher
	browser  *rod.Browser
}

// ChromiumOption configures a Chromium renderer.
type ChromiumOption func(*Chromium)

// WithEngine selects the engine backend. Default is the managed download.
func WithEngine(engine config.Engine) ChromiumOption {
	return func(c *Chromium) {
		c.engine = engine
	}
}

// WithBrowserDir sets the cache directory for the managed Chromium build.
func WithBrowserDir(dir string) ChromiumOption {
	return func(c *Chromium) {
		c.browserDir = dir
	}
}

// WithSettle sets the fixed pre-capture wait.
func WithSettle(d time.Duration) ChromiumOption {
	return func(c *Chromium) {
		c.settle = d
	}
}

// WithTimeout sets the per-page render timeout.
func WithTimeout(d time.Duration) ChromiumOption {
	return func(c *Chromium) {
		c.timeout = d
	}
}

// WithScale sets the capture scale factor.
func WithScale(scale float64) ChromiumOption {
	return func(c *Chromium) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithPaper sets the output sheet size.
func WithPaper(paper config.Paper) ChromiumOption {
	return func(c *Chromium) {
		c.paper = paper
	}
}

// WithHideSidebar controls whether navigation chrome is hidden.
func WithHideSidebar(hide bool) ChromiumOption {
	return func(c *Chromium) {
		c.hideSidebar = hide
	}
}

// WithHideSelectors adds profile-supplied selectors to the hidden set.
func WithHideSelectors(selectors []string) ChromiumOption {
	return func(c *Chromium) {
		c.hideSelectors = selectors
	}
}

// WithContentSelectors replaces the default content readiness selectors.
func WithContentSelectors(selectors []string) ChromiumOption {
	return func(c *Chromium) {
		if len(selectors) > 0 {
			c.contentSelectors = selectors
		}
	}
}

// WithLogger sets a custom logger for the renderer.
func WithLogger(logger *slog.Logger) ChromiumOption {
	return func(c *Chromium) {
		c.logger = logger
	}
}

// NewChromium creates a renderer for pages under the given mirror root.
// Call Start before rendering and Close when done.
func NewChromium(root string, opts ...ChromiumOption) *Chromium {
	c := &Chromium{
		root:             root,
		engine:           config.EngineChromium,
		settle:           config.DefaultSettle,
		timeout:          config.DefaultRenderTimeout,
		scale:            config.DefaultScale,
		paper:            config.PaperA4,
		hideSidebar:      true,
		contentSelectors: defaultContentSelectors,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Start resolves the browser binary, launches it headless, and connects.
func (c *Chromium) Start(ctx context.Context) error {
	bin, err := c.resolveBinary(ctx)
	if err != nil {
		return err
	}

	c.launcher = launcher.New().Bin(bin).Headless(true)
	controlURL, err := c.launcher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	c.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := c.browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	c.logger.Info("browser started", "engine", string(c.engine), "bin", bin)
	return nil
}

// resolveBinary locates the browser binary for the configured engine.
func (c *Chromium) resolveBinary(ctx context.Context) (string, error) {
	if c.engine == config.EngineSystem {
		bin, ok := launcher.LookPath()
		if !ok {
			return "", ErrNoSystemBrowser
		}
		return bin, nil
	}

	b := launcher.NewBrowser()
	b.Context = ctx
	if c.browserDir != "" {
		b.RootDir = c.browserDir
	}
	bin, err := b.Get()
	if err != nil {
		return "", fmt.Errorf("failed to fetch managed browser: %w", err)
	}
	return bin, nil
}

// Close shuts down the browser process and cleans up its temp data.
func (c *Chromium) Close() error {
	var err error
	if c.browser != nil {
		err = c.browser.Close()
		c.browser = nil
	}
	if c.launcher != nil {
		c.launcher.Cleanup()
		c.launcher = nil
	}
	return err
}

// RenderPage captures one content page to outFile as a PDF.
// The page is loaded over file:// so its co-located assets resolve.
func (c *Chromium) RenderPage(ctx context.Context, rec *model.PageRecord, outFile string) error {
	abs := filepath.Join(c.root, rec.Path)
	return c.capture(ctx, fileURL(abs), outFile)
}

// RenderHTML captures a generated HTML document (the TOC page) to outFile.
// The document is staged next to outFile so relative asset references, if
// any, resolve against the work directory.
func (c *Chromium) RenderHTML(ctx context.Context, htmlContent, outFile string) error {
	htmlFile := strings.TrimSuffix(outFile, filepath.Ext(outFile)) + ".html"
	if err := os.WriteFile(htmlFile, []byte(htmlContent), 0600); err != nil {
		return fmt.Errorf("failed to stage html: %w", err)
	}
	defer os.Remove(htmlFile) //nolint:errcheck // Best effort cleanup

	return c.capture(ctx, fileURL(htmlFile), outFile)
}

// capture loads a URL in a fresh page, applies the print overlay, waits the
// settle interval, and writes the PDF to outFile.
func (c *Chromium) capture(ctx context.Context, url, outFile string) error {
	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("failed to open browser page: %w", err)
	}
	defer page.Close() //nolint:errcheck // Session teardown

	page = page.Context(ctx).Timeout(c.timeout)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("failed to set viewport: %w", err)
	}

	// Let the browser apply print media rules during layout.
	if err := (proto.EmulationSetEmulatedMedia{Media: "print"}).Call(page); err != nil {
		c.logger.Debug("print media emulation unavailable", "error", err)
	}

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page load did not complete: %w", err)
	}

	c.awaitContent(page)

	overlay := StyleOverlay(c.paper, c.hideSidebar, c.hideSelectors)
	if err := page.AddStyleTag("", overlay); err != nil {
		return fmt.Errorf("failed to inject style overlay: %w", err)
	}

	if c.settle > 0 {
		select {
		case <-time.After(c.settle):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	width, height := paperSize(c.paper)
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		Scale:             f64(c.scale),
		PaperWidth:        f64(width),
		PaperHeight:       f64(height),
		MarginTop:         f64(0.4),
		MarginBottom:      f64(0.47),
		MarginLeft:        f64(0.4),
		MarginRight:       f64(0.4),
	})
	if err != nil {
		return fmt.Errorf("failed to capture pdf: %w", err)
	}

	out, err := os.Create(outFile) //nolint:gosec // Intermediate file in our own work directory
	if err != nil {
		return fmt.Errorf("failed to create pdf file: %w", err)
	}
	defer out.Close() //nolint:errcheck // Checked via Copy error and final Close below

	if _, err := io.Copy(out, stream); err != nil {
		return fmt.Errorf("failed to write pdf file: %w", err)
	}
	return out.Close()
}

// awaitContent waits briefly for a content selector to attach so the main
// body is known to exist before capture. Absence is not an error; the page
// may simply use different markup.
func (c *Chromium) awaitContent(page *rod.Page) {
	if len(c.contentSelectors) == 0 {
		return
	}
	combined := strings.Join(c.contentSelectors, ", ")
	if _, err := page.Timeout(5 * time.Second).Element(combined); err != nil {
		c.logger.Debug("content selector not found before capture", "selector", combined)
	}
}

// fileURL converts an absolute filesystem path to a file:// URL.
func fileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}

// f64 returns a pointer for the optional numeric fields of the capture call.
func f64(v float64) *float64 {
	return &v
}
