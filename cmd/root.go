// -- cmd/root.go --
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/agentsmith/internal/config"
	"github.com/xkilldash9x/agentsmith/internal/observability"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
// A bare invocation behaves exactly like `agentsmith generate`.
var rootCmd = &cobra.Command{
	Use:   "agentsmith [catalog.json]",
	Short: "Agentsmith synthesizes plausible HTTP User-Agent strings.",
	Long: `Agentsmith loads a catalog of browser/OS version combinations and
synthesizes a plausible HTTP User-Agent string by randomly combining a
browser, browser version, operating system, and OS version.

The generated string is printed on stdout; all diagnostics go to stderr.`,
	// Version is dynamically set at build time. See cmd/version.go.
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	// Errors are reported once, at the Execute boundary.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// This function runs before any command, setting up config and logging.
		if err := initializeConfig(); err != nil {
			return err
		}

		cfg, err := config.NewConfigFromViper(viper.GetViper())
		if err != nil {
			// Initialize a fallback logger if config resolution fails.
			observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "agentsmith"})
			return err
		}

		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Debug("Starting agentsmith", zap.String("version", Version))
		return nil
	},
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Any error is printed as a single line on stderr and
// mapped to exit code 1.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig() error {
	v := viper.GetViper()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("AGENTSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars.
	}
	return nil
}
