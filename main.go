// Package main provides the samu CLI entry point.
// samu is the command-line interface for the Samu sales call intelligence
// platform.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/samuhq/samu-cli/cmd"
	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/pkg/buildinfo"
)

// Global flags and state.
var (
	timeout      time.Duration
	outputFormat string
	debug        bool

	// cfg holds the loaded configuration.
	cfg *config.CLIConfig
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "samu",
	Short: "Samu CLI - sales call intelligence from the terminal",
	Long: `samu is the command-line interface for the Samu sales call
intelligence platform.

Samu records sales calls and turns them into meeting summaries, follow-up
emails, extracted tasks and buyer insights. This CLI browses the meeting
listing, inspects call details, manages follow-up templates and connects
CRM accounts.

COMMON WORKFLOWS:
  Browse meetings:   samu meeting list  |  samu meeting list --host lina
  Inspect a call:    samu meeting show <id>
  Today's agenda:    samu meeting agenda
  Manage templates:  samu template list  →  samu template create ...
  Connect a CRM:     samu crm connect hubspot  →  samu crm status

DISCOVERY:
  samu <command> --help    Subcommands, flags, and examples for any command
  samu config show         Current configuration
  samu version             Build information`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		// Skip initialization for commands that don't need it.
		if c.Name() == "version" || c.Name() == "help" || c.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		// Override with command-line flags.
		if timeout != 0 {
			cfg.Timeout = timeout
		}
		if outputFormat != "" {
			cfg.OutputFormat = config.OutputFormat(outputFormat)
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, commit hash, and build time of the samu CLI.

Examples:
  samu version`,
	RunE: func(c *cobra.Command, args []string) error {
		info := buildinfo.Get("samu-cli")
		out := c.OutOrStdout()
		fmt.Fprintf(out, "samu version %s\n", info.Version)
		fmt.Fprintf(out, "  commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "  built:      %s\n", info.BuildTime)
		fmt.Fprintf(out, "  go:         %s\n", info.GoVersion)
		return nil
	},
}

// configCmd manages CLI configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `View and modify the samu CLI configuration settings.`,
}

// configShowCmd displays current configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(c *cobra.Command, args []string) error {
		if cfg == nil {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
		}

		configPath, _ := config.ConfigPath()

		fmt.Println("Current configuration:")
		fmt.Printf("  Config file:    %s\n", configPath)
		fmt.Printf("  Timeout:        %s\n", cfg.Timeout)
		fmt.Printf("  Output format:  %s\n", cfg.OutputFormat)
		fmt.Printf("  Debug:          %t\n", cfg.Debug)
		if cfg.Database.IsConfigured() {
			fmt.Printf("  Database:       %s@%s/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Database)
		} else {
			fmt.Printf("  Database:       (not configured, using built-in data)\n")
		}
		if cfg.Redis.IsConfigured() {
			fmt.Printf("  Redis cache:    %s (db %d)\n", cfg.Redis.Addr, cfg.Redis.DB)
		} else {
			fmt.Printf("  Redis cache:    (not configured)\n")
		}

		return nil
	},
}

// configInitCmd initializes configuration.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with default values if one doesn't exist.`,
	RunE: func(c *cobra.Command, args []string) error {
		configPath, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("getting config path: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists: %s\n", configPath)
			fmt.Println("Use 'samu config show' to view current settings.")
			return nil
		}

		defaultCfg := config.DefaultConfig()
		if err := config.SaveConfig(defaultCfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}

		fmt.Printf("Created configuration file: %s\n", configPath)
		fmt.Println("\nDefault settings:")
		fmt.Printf("  Timeout:        %s\n", defaultCfg.Timeout)
		fmt.Printf("  Output format:  %s\n", defaultCfg.OutputFormat)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Default output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(cmd.NewMeetingCommand(nil))
	rootCmd.AddCommand(cmd.NewTemplateCommand(nil))
	rootCmd.AddCommand(cmd.NewCRMCommand(nil))

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
