// tstriptool is a CLI utility for building and inspecting triangle strips.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-strip/internal/config"
	"github.com/Faultbox/midgard-strip/internal/logger"
)

// cfg is loaded before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tstriptool",
	Short: "Triangle strip builder",
	Long: `tstriptool converts indexed triangle meshes into triangle strips and back.

Examples:
  tstriptool build mesh.yaml -o mesh.tsf
  tstriptool info mesh.tsf
  tstriptool convert mesh.tsf --to term
  tstriptool unpack mesh.tsf -o faces.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
		if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		logger.Sugar.Debugf("config: %+v", cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(config.Flags())
	rootCmd.AddCommand(buildCmd, unpackCmd, convertCmd, infoCmd, transformCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
