package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mirrorpress/mirrorpress/internal/assemble"
	"github.com/mirrorpress/mirrorpress/internal/config"
	"github.com/mirrorpress/mirrorpress/internal/log"
	"github.com/mirrorpress/mirrorpress/internal/model"
	"github.com/mirrorpress/mirrorpress/internal/pipeline"
	"github.com/mirrorpress/mirrorpress/internal/render"
	"github.com/mirrorpress/mirrorpress/internal/report"
	"github.com/spf13/cobra"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <mirror-dir>",
		Short: "Convert a website mirror into a single paginated PDF",
		Long: `Convert renders every HTML page of a website mirror and merges the
results into one paginated PDF in reading order.

The reading order is recovered from the site's navigation sidebar when one
is recognized; pages not listed there are appended in path order. Crawler
bookkeeping (hts-cache, logs), partial downloads, and error pages are
excluded automatically.

Examples:
  # Convert a mirror into website.pdf
  mirrorpress convert ./docs.example.com

  # Custom output path and page limit
  mirrorpress convert -o manual.pdf -p 100 ./docs.example.com

  # Use an installed browser instead of the managed Chromium download
  mirrorpress convert --engine system ./docs.example.com

  # Keep the sidebar visible and skip the table of contents
  mirrorpress convert --keep-sidebar --no-toc ./docs.example.com

  # Apply a named style profile from .mirrorpress
  mirrorpress convert --profile vuepress ./docs.example.com

Profile file (.mirrorpress) example:
  defaults:
    settleMS: 700
  profiles:
    vuepress:
      contentSelectors: [".theme-default-content"]
      hideSelectors: [".global-ui"]`,
		Args: cobra.ExactArgs(1),
		RunE: runConvertCmd,
	}

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Output PDF file path")
	cmd.Flags().String("paper", string(config.PaperA4),
		"Sheet size (A4 or Letter)")

	// Rendering flags
	cmd.Flags().String("engine", string(config.EngineChromium),
		"Rendering engine: chromium (managed download) or system (installed browser)")
	cmd.Flags().Duration("settle", config.DefaultSettle,
		"Fixed wait after page load before capture")
	cmd.Flags().Duration("render-timeout", config.DefaultRenderTimeout,
		"Timeout for a single page's load and capture")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of simultaneous rendering sessions")
	cmd.Flags().Float64("scale", config.DefaultScale,
		"Capture scale factor")
	cmd.Flags().Bool("keep-sidebar", false,
		"Keep navigation and sidebar elements visible in the output")

	// Content selection flags
	cmd.Flags().IntP("max-pages", "p", 0,
		"Maximum number of pages in the output (0 = unlimited)")
	cmd.Flags().Bool("no-toc", false,
		"Skip the generated table of contents page")

	// Profile file
	cmd.Flags().StringP("config", "c", "",
		"Profile file path (default: .mirrorpress in current or home directory)")
	cmd.Flags().String("profile", "",
		"Named style profile to apply from the profile file")

	// Summary flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().String("report-file", "",
		"Write the summary to the specified file path instead of stdout")

	return cmd
}

// runConvertCmd executes the convert command.
func runConvertCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with mirror-relative paths
	logger := log.NewLogger(os.Stderr, cfg.Verbose, cfg.MirrorRoot)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runConvert(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	root, err := filepath.Abs(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid mirror directory: %w", err)
	}
	cfg.MirrorRoot = root

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	paper, err := cmd.Flags().GetString("paper")
	if err != nil {
		return nil, err
	}
	cfg.Paper = config.Paper(paper)

	engine, err := cmd.Flags().GetString("engine")
	if err != nil {
		return nil, err
	}
	cfg.Engine = config.Engine(engine)

	cfg.Settle, err = cmd.Flags().GetDuration("settle")
	if err != nil {
		return nil, err
	}

	cfg.RenderTimeout, err = cmd.Flags().GetDuration("render-timeout")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.Scale, err = cmd.Flags().GetFloat64("scale")
	if err != nil {
		return nil, err
	}

	keepSidebar, err := cmd.Flags().GetBool("keep-sidebar")
	if err != nil {
		return nil, err
	}
	cfg.HideSidebar = !keepSidebar

	cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
	if err != nil {
		return nil, err
	}

	noTOC, err := cmd.Flags().GetBool("no-toc")
	if err != nil {
		return nil, err
	}
	cfg.IncludeTOC = !noTOC

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.ProfileName, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	// Load style profiles from the profile file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently run without profiles.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Profiles, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("profile file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report-file")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyProfile overlays the active style profile's overrides onto cfg and
// returns the profile for renderer wiring.
func applyProfile(cfg *config.Config) config.Profile {
	profile := cfg.ActiveProfile()

	if profile.SettleMS > 0 {
		cfg.Settle = time.Duration(profile.SettleMS) * time.Millisecond
	}
	if profile.Scale > 0 {
		cfg.Scale = profile.Scale
	}
	if profile.Paper != "" {
		cfg.Paper = config.Paper(profile.Paper)
	}

	return profile
}

// runConvert executes the conversion.
func runConvert(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	profile := applyProfile(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error after profile overrides: %w", err)
	}

	logger.Info("starting conversion",
		"mirror", cfg.MirrorRoot,
		"output", cfg.OutputPath,
		"engine", string(cfg.Engine),
		"concurrency", cfg.Concurrency,
	)

	// Intermediate page PDFs live in a temp work directory for the run.
	workDir, err := os.MkdirTemp("", "mirrorpress-*")
	if err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir) //nolint:errcheck // Best effort cleanup

	renderer := render.NewChromium(cfg.MirrorRoot,
		render.WithEngine(cfg.Engine),
		render.WithBrowserDir(config.BrowserCacheDir()),
		render.WithSettle(cfg.Settle),
		render.WithTimeout(cfg.RenderTimeout),
		render.WithScale(cfg.Scale),
		render.WithPaper(cfg.Paper),
		render.WithHideSidebar(cfg.HideSidebar),
		render.WithHideSelectors(profile.HideSelectors),
		render.WithContentSelectors(profile.ContentSelectors),
		render.WithLogger(logger),
	)

	fmt.Printf("Converting %s...\n", cfg.MirrorRoot)
	startTime := time.Now()

	if err := renderer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start rendering engine: %w", err)
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Error("failed to stop rendering engine", "error", err)
		}
	}()

	assembler := assemble.New(cfg.OutputPath,
		assemble.WithLogger(logger),
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewDiscoverStep(pipeline.WithDiscoverLogger(logger)),
		pipeline.NewNavStep(pipeline.WithNavLogger(logger)),
		pipeline.NewResolveStep(
			pipeline.WithResolveMaxPages(cfg.MaxPages),
			pipeline.WithResolveLogger(logger),
		),
		pipeline.NewRenderStep(renderer, workDir,
			pipeline.WithRenderConcurrency(cfg.Concurrency),
			pipeline.WithRenderLogger(logger),
		),
		pipeline.NewTOCStep(renderer, workDir, render.TOCHTML,
			pipeline.WithTOCEnabled(cfg.IncludeTOC),
			pipeline.WithTOCLogger(logger),
		),
		pipeline.NewAssembleStep(assembler, pipeline.WithAssembleLogger(logger)),
	)

	conversionReport := model.NewConversionReport(cfg.MirrorRoot)
	conversionReport.OutputPath = cfg.OutputPath

	execErr := p.Execute(ctx, conversionReport)
	conversionReport.Elapsed = time.Since(startTime)

	if execErr == nil {
		fmt.Printf("Conversion completed in %s\n\n", conversionReport.Elapsed.Round(time.Millisecond))
	}

	// The summary is written even for failed runs so the partial outcome
	// (what was discovered, what rendered) is visible.
	if err := outputReport(cfg, conversionReport); err != nil {
		logger.Error("summary output failed", "error", err)
	}

	return execErr
}

// outputReport writes the conversion summary in the requested format.
func outputReport(cfg *config.Config, conversionReport *model.ConversionReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create summary directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create summary file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Write errors surface via Write below
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := w.Write(conversionReport)
	return err
}
