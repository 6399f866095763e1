/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spartansec/spartanpass/cmd/analyze"
	"github.com/spartansec/spartanpass/cmd/generate"
	"github.com/spartansec/spartanpass/cmd/history"
	"github.com/spartansec/spartanpass/pkg/logger"
	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_err"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
)

// RootCmd is the base command for spartanpass.
var RootCmd = &cobra.Command{
	Use:   "spartanpass",
	Short: "Generate passwords and analyze their weaknesses",
	Long: `spartanpass generates passwords (random, pattern-templated, requirement-driven
or memorable), scores their strength against a fixed rule set, scans them for
repetitions, sequential runs and dictionary words, and keeps a bounded history
of strong results.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: spartan_cli.Wrap(func(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		generate.GenerateCmd,
		analyze.AnalyzeCmd,
		analyze.CompareCmd,
		history.HistoryCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Failed to flush logs: %v\n", err)
		}
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if spartan_err.IsExpectedUserError(err) {
			logger.L().Warn("CLI completed with user error", zap.Error(err))
			fmt.Fprintf(os.Stderr, "⚠️  %v\n", err)
			os.Exit(0)
		}
		logger.L().Error("CLI failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
