package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for converting words.

The pinyin and py strings update as you type, with every reading of
each character shown underneath.

Controls:
  ctrl+y  Copy pinyin
  alt+y   Copy py
  Esc     Quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
