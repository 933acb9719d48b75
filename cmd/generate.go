// File: cmd/generate.go
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/agentsmith/internal/observability"
	"github.com/xkilldash9x/agentsmith/internal/useragent"
)

// newGenerateCmd creates and configures the `generate` command.
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [catalog.json]",
		Short: "Generates one or more plausible User-Agent strings",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their corresponding Viper keys so command-line
			// flags correctly override values from the config file and
			// environment variables.
			if err := viper.BindPFlag("generator.count", cmd.Flags().Lookup("count")); err != nil {
				return err
			}
			return viper.BindPFlag("generator.seed", cmd.Flags().Lookup("seed"))
		},
		RunE: runGenerate,
	}

	generateCmd.Flags().IntP("count", "n", 1, "number of user agents to emit, one per line")
	generateCmd.Flags().Int64("seed", 0, "random seed; 0 seeds from the clock")

	return generateCmd
}

// runGenerate is the pipeline behind both the bare invocation and the
// `generate` subcommand: load the catalog, synthesize, print to stdout.
// Only generated strings are written to stdout so the output can be piped
// directly into other tools.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()

	path := viper.GetString("generator.catalog_path")
	if len(args) > 0 {
		path = args[0]
	}
	count := viper.GetInt("generator.count")
	if count < 1 {
		count = 1
	}
	seed := viper.GetInt64("generator.seed")

	runID := uuid.New().String()
	logger.Debug("Starting generation run",
		zap.String("runID", runID),
		zap.String("catalog", path),
		zap.Int("count", count),
		zap.Int64("seed", seed),
	)

	catalog, err := useragent.Load(path)
	if err != nil {
		return err
	}

	gen := useragent.NewGenerator(seed, logger)
	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		ua, err := gen.Generate(catalog)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ua)
	}
	return nil
}
