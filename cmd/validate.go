// File: cmd/validate.go
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/agentsmith/internal/observability"
	"github.com/xkilldash9x/agentsmith/internal/useragent"
)

// newValidateCmd creates the `validate` command, which checks a catalog
// file against the expected schema without generating anything.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.json]",
		Short: "Checks a catalog file against the expected schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			path := viper.GetString("generator.catalog_path")
			if len(args) > 0 {
				path = args[0]
			}

			catalog, err := useragent.Load(path)
			if err != nil {
				return err
			}

			combinations := 0
			for _, b := range catalog.Browsers {
				for _, o := range b.OS {
					combinations += len(b.Versions) * len(o.Versions)
				}
			}
			logger.Info("Catalog is valid",
				zap.String("catalog", path),
				zap.Int("browsers", len(catalog.Browsers)),
				zap.Int("combinations", combinations),
			)
			return nil
		},
	}
}
