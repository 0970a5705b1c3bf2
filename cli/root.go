package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/compozy/minmax/cli/cmd/config"
	"github.com/compozy/minmax/cli/cmd/normalize"
	"github.com/compozy/minmax/cli/cmd/version"
	"github.com/compozy/minmax/cli/helpers"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "minmax",
		Short: "Min-max normalization with structured reports",
		Long: `minmax scales numeric sequences into [0, 1] and writes a JSON report with
metadata and summary statistics.

Run without a subcommand to normalize the example sequence [50, 150, 300]
and save the report.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner := normalize.NewRunner(nil)
			return runner.Run(cmd.Context(), cmd.OutOrStdout(), normalize.ExampleValues, normalize.Options{})
		},
	}

	root.PersistentFlags().String("config", DefaultConfigFile, "Path to the YAML config file")
	root.PersistentFlags().String("env-file", DefaultEnvFile, "Path to a .env file")
	root.PersistentFlags().String("output-dir", "data", "Directory the report is written to")
	root.PersistentFlags().String("file-name", "reporte_normalizacion.json", "File name of the saved report")
	root.PersistentFlags().Int("indent", 4, "Spaces per JSON indent level (0-8)")
	root.PersistentFlags().String("author", "", "Author recorded in report metadata")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Include source location in logs")

	root.AddCommand(
		normalize.NewNormalizeCommand(),
		config.NewConfigCommand(),
		version.NewVersionCommand(),
	)

	return root
}

// Execute runs the root command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := RootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		helpers.PrintError(stderr, err)
		return 1
	}
	return 0
}
