package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compozy/minmax/cli/helpers"
	"github.com/compozy/minmax/engine/minmax"
	"github.com/compozy/minmax/pkg/version"
)

type versionOutput struct {
	Build  version.Info      `json:"build"`
	Engine minmax.EngineInfo `json:"engine"`
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build and engine version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionOutput{Build: version.Get(), Engine: minmax.Info()}
			if asJSON {
				data, err := json.Marshal(out)
				if err != nil {
					return fmt.Errorf("failed to encode version: %w", err)
				}
				return helpers.WriteJSON(cmd.OutOrStdout(), append(data, '\n'))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "minmax %s\n", out.Build)
			fmt.Fprintf(cmd.OutOrStdout(), "engine %s (%s, updated %s)\n",
				out.Engine.Version, out.Engine.Author, out.Engine.UpdatedAt)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
