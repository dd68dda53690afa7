package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/mirrorpress.yaml
var configTemplate embed.FS

// configFileName is the default profile file name.
const configFileName = ".mirrorpress"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mirrorpress profile file",
		Long: `Initialize creates a new .mirrorpress profile file in the current directory.

The generated file includes:
- Default settings for settle time, scale, and paper size
- Commented example profiles for common documentation generators
- Documentation for all available options

Examples:
  # Create .mirrorpress in current directory
  mirrorpress init

  # Create the profile file at a specific path
  mirrorpress init -o myprofiles.yaml

  # Force overwrite existing file
  mirrorpress init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the profile file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing profile file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("profile file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/mirrorpress.yaml")
	if err != nil {
		return fmt.Errorf("failed to read profile template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write profile file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	fmt.Printf("Created profile file: %s\n", outputPath)
	fmt.Println("\nEdit this file to tune rendering for your mirrors, such as:")
	fmt.Println("  - Extra selectors to hide (cookie banners, edit links)")
	fmt.Println("  - Content selectors to wait for before capture")
	fmt.Println("  - Settle time, scale, and paper size per site family")

	return nil
}
