// picodino is a side-scrolling runner for a 128x64 monochrome panel, with
// terminal front-ends for playing and tuning it on a workstation.
//
// Usage:
//
//	picodino list            - List available backends
//	picodino play            - Play in the terminal
//	picodino simulate        - Run the autopilot headless and print a summary
//	picodino config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/picodino/internal/platform/direct"
	_ "github.com/vovakirdan/picodino/internal/platform/headless"
	_ "github.com/vovakirdan/picodino/internal/platform/tui"
)

var (
	// Global flags
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picodino",
	Short: "PicoDino - a tiny endless runner",
	Long: `PicoDino is a dino-style endless runner built for a 128x64 OLED.
The same game core runs in the terminal for play and tuning.

Available commands:
  list      - Show all available backends
  play      - Play the game
  simulate  - Let the autopilot play without a display
  config    - Print the effective configuration

Examples:
  picodino play
  picodino play --backend direct --quadrant
  picodino simulate --runs 5 --difficulty hard
  picodino config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
