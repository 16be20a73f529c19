// Package main provides the bankshell CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"bankshell/cmd/bankshell/config"
	"bankshell/internal/stackdoc"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	// Global flags
	verbose  bool
	darkMode bool

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bankshell",
	Short: "bankshell - terminal scaffold for the banking application UI",
	Long: `bankshell is the terminal scaffold for the banking application.

It renders the agreed login card layout (email, password, login button)
so interaction and copy can be reviewed before any backend exists. The
login button performs no authentication; it only counts activations to
exercise the render loop.

Run without arguments to open the interactive UI. Press F2 inside the UI
to read the recommended stack for the full product.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "bankshell" && cmd.CalledAs() == "bankshell" {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoginUI()
	},
}

// stackCmd prints the recommended stack document
var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Print the recommended stack for the full banking application",
	Long: `Renders the recommended-stack document (API framework, ORM, identity
provider, object storage, deployment targets) to the terminal.

The document is a proposal; none of the tools it names are implemented by
this scaffold.`,
	RunE: runStack,
}

// versionCmd prints the bankshell version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bankshell version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bankshell %s\n", Version)
	},
}

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change bankshell preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("config load failed, showing defaults", zap.Error(err))
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configSetThemeCmd = &cobra.Command{
	Use:   "set-theme [light|dark|auto]",
	Short: "Set the UI theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := args[0]
		if !config.ValidTheme(theme) {
			return fmt.Errorf("unknown theme %q (want light, dark, or auto)", theme)
		}

		cfg, _ := config.Load()
		cfg.Theme = theme
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		logger.Info("theme updated", zap.String("theme", theme))
		fmt.Printf("Theme set to %s\n", theme)
		return nil
	},
}

// runStack renders the stack document to stdout
func runStack(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	rawOut, _ := cmd.Flags().GetBool("raw")

	if rawOut {
		body, err := stackdoc.Body()
		if err != nil {
			return err
		}
		fmt.Print(body)
		return nil
	}

	logger.Debug("rendering stack document", zap.Int("width", width), zap.Bool("dark", darkMode))

	out, err := stackdoc.Render(width, darkMode)
	if err != nil {
		logger.Error("stack document render failed", zap.Error(err))
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark theme")

	stackCmd.Flags().Int("width", 80, "Word-wrap width for the rendered document")
	stackCmd.Flags().Bool("raw", false, "Print the raw markdown without styling")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetThemeCmd)

	rootCmd.AddCommand(stackCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
