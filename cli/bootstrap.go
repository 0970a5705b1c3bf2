package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/compozy/minmax/pkg/config"
	"github.com/compozy/minmax/pkg/logger"
)

const (
	DefaultConfigFile = "minmax.yaml"
	DefaultEnvFile    = ".env"
)

// bootstrap loads configuration and installs the logger before any command runs.
func bootstrap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	svc := config.NewService()
	cfg, err := svc.Load(ctx, config.NewYAMLProvider(cfgFile), config.NewCLIProvider(changedFlags(cmd)))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.SetupLogger(cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, cfg.Runtime.LogSource)
	log.Debug("configuration loaded", "config_file", cfgFile, "report_dir", cfg.Report.Dir)
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = config.ContextWithService(ctx, svc)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}

// changedFlags collects the configuration flags set explicitly on the command line.
func changedFlags(cmd *cobra.Command) map[string]any {
	known := make(map[string]bool)
	for _, name := range config.FlagNames() {
		known[name] = true
	}
	flags := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if known[f.Name] {
			flags[f.Name] = f.Value.String()
		}
	})
	return flags
}
