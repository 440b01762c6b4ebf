package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picodino/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after loading
--config (or ~/.picodino/configs/dino.yaml) and applying --difficulty.

Redirect the output to start a custom config:
  picodino config > ~/.picodino/configs/dino.yaml`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
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
