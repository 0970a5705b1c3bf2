package config

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/compozy/minmax/cli/helpers"
	"github.com/compozy/minmax/pkg/config"
	"github.com/compozy/minmax/pkg/logger"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration inspection",
	}
	cmd.AddCommand(
		NewConfigShowCommand(),
		NewConfigValidateCommand(),
	)
	return cmd
}

// NewConfigShowCommand creates the config show subcommand
func NewConfigShowCommand() *cobra.Command {
	var (
		format      string
		showSources bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Display the configuration after defaults, the YAML file, MINMAX_* environment
variables and command-line flags have been applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger.FromContext(ctx).Debug("executing config show command", "format", format, "sources", showSources)
			var sources map[string]config.SourceType
			if showSources {
				sources = sourcesFromContext(cmd)
			}
			return formatConfigOutput(cmd.OutOrStdout(), config.FromContext(ctx), sources, format, showSources)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (json, yaml, table)")
	cmd.Flags().BoolVarP(&showSources, "sources", "s", false, "Show which source provided each value")
	return cmd
}

// NewConfigValidateCommand creates the config validate subcommand
func NewConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long:  `Load every configuration source and report whether the result is valid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := config.ServiceFromContext(cmd.Context())
			if svc == nil {
				svc = config.NewService()
			}
			if err := svc.Validate(config.FromContext(cmd.Context())); err != nil {
				return err
			}
			helpers.PrintSuccess(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}
}

func sourcesFromContext(cmd *cobra.Command) map[string]config.SourceType {
	svc := config.ServiceFromContext(cmd.Context())
	if svc == nil {
		return map[string]config.SourceType{}
	}
	return svc.GetSources()
}

func formatConfigOutput(
	w io.Writer,
	cfg *config.Config,
	sources map[string]config.SourceType,
	format string,
	showSources bool,
) error {
	switch format {
	case "json":
		var payload any = cfg
		if showSources {
			payload = map[string]any{"config": cfg, "sources": sources}
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		return helpers.WriteJSON(w, append(data, '\n'))
	case "yaml":
		var payload any = cfg
		if showSources {
			payload = map[string]any{"config": cfg, "sources": sources}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		return enc.Close()
	case "table":
		return outputTable(w, cfg, sources, showSources)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func outputTable(w io.Writer, cfg *config.Config, sources map[string]config.SourceType, showSources bool) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to flatten configuration: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if showSources {
		fmt.Fprintln(tw, "KEY\tVALUE\tENV\tSOURCE")
		fmt.Fprintln(tw, "---\t-----\t---\t------")
	} else {
		fmt.Fprintln(tw, "KEY\tVALUE\tENV")
		fmt.Fprintln(tw, "---\t-----\t---")
	}
	for _, key := range k.Keys() {
		if !showSources {
			fmt.Fprintf(tw, "%s\t%v\t%s\n", key, k.Get(key), config.GetEnvVarForConfigPath(key))
			continue
		}
		source, ok := sources[key]
		if !ok {
			source = config.SourceDefault
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", key, k.Get(key), config.GetEnvVarForConfigPath(key), source)
	}
	return tw.Flush()
}
