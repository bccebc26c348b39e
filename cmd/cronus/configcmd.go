package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cronus-cash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Print the config that play would use, after --config and --difficulty
are applied. Redirect it to a file to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, "config")
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.LoadCronus(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d platforms, %.0fs limit)\n", source, len(cfg.Platforms), cfg.Session.TimeLimit)
	return nil
}
