package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"po-go/internal/app"
	"po-go/internal/config"
	"po-go/internal/organize"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a POApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Organize").
func newApp(operation string, verbose bool) (*app.POApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config (run 'po config init' first?): %w", err)
	}

	a, err := app.NewPOApp(cfg, operation, verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "po",
	Short: "Personal photo organizer",
	Long:  "po moves photos from a source directory into a date-organized library, using file creation timestamps.",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new install ID
		installID := uuid.New().String()

		// Create config with defaults
		cfg := config.NewConfig(installID, defaults["base_dir"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Install ID:  %s\n", installID)
		fmt.Printf("Library Dir: %s\n", cfg.LibraryDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Read config
		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		// Display config
		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Install ID:  %s\n", cfg.InstallID)
		fmt.Printf("Library Dir: %s\n", cfg.LibraryDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Types:       %s\n", strings.Join(cfg.Organize.Types, ", "))
		fmt.Printf("Layout:      %s\n", cfg.Organize.Layout)
		return nil
	},
}

// organize command
var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move photos into the date-organized library",
	Long: "Scans the source directory for files matching the type allowlist, computes a\n" +
		"destination subdirectory from each file's creation timestamp, and moves the\n" +
		"files there. Files that fail to move are reported and the batch continues.",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		types, _ := cmd.Flags().GetStringSlice("types")
		recursive, _ := cmd.Flags().GetBool("recursive")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		copyFiles, _ := cmd.Flags().GetBool("copy")
		verbose, _ := cmd.Flags().GetBool("verbose")

		a, err := newApp("Organize", verbose)
		if err != nil {
			return err
		}
		defer a.Close()

		req := organize.Request{
			Source:          from,
			DestinationRoot: to,
			Types:           types,
			Recursive:       recursive,
			DryRun:          dryRun,
			Copy:            copyFiles,
		}

		plan, report, err := a.Organize(req)
		if err != nil {
			return err
		}

		if dryRun {
			if plan.Empty() {
				fmt.Println("Nothing to organize.")
				return nil
			}
			fmt.Println(renderPlan(plan))
			fmt.Printf("Would organize %d file(s) into %d director(ies); %d skipped.\n",
				len(plan.Moves), len(plan.Directories), len(plan.Skipped))
			return nil
		}

		if len(report.Results) > 0 {
			fmt.Println(renderSummary(report))
		}

		verb := "Moved"
		if copyFiles {
			verb = "Copied"
		}
		fmt.Printf("%s %d file(s); %d skipped.\n", verb, report.Succeeded(), len(plan.Skipped))

		if failed := report.Failed(); failed > 0 {
			for _, res := range report.Failures() {
				fmt.Fprintf(os.Stderr, "failed: %v\n", res.Err)
			}
			return fmt.Errorf("%d file(s) failed", failed)
		}
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(organizeCmd)
	organizeCmd.Flags().StringP("from", "f", "", "Source directory to organize")
	organizeCmd.Flags().StringP("to", "t", "", "Destination root for the date-organized library (default: configured library_dir)")
	organizeCmd.Flags().StringSlice("types", nil, "Allowlist of file types to organize (default: configured types)")
	organizeCmd.Flags().BoolP("recursive", "r", false, "Recurse into subdirectories of the source")
	organizeCmd.Flags().Bool("dry-run", false, "Show the planned moves without touching any files")
	organizeCmd.Flags().Bool("copy", false, "Copy files instead of moving, leaving the source untouched")
	organizeCmd.Flags().Bool("verbose", false, "Enable debug logging")
	_ = organizeCmd.MarkFlagRequired("from")
}
