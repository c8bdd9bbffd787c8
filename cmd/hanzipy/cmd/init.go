package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/hanzipy/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hanzipy configuration",
	Long: `Write a default config.yaml to your config directory.

Settings:
  non_han  keep or drop characters that have no pinyin reading
  format   default output format for convert: text, json or yaml
  copy     copy the last pinyin result to the clipboard

Every setting can be overridden with a flag or a HANZIPY_* environment
variable, e.g. HANZIPY_FORMAT=json.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to change the defaults")
	fmt.Fprintln(out, "  2. Run 'hanzipy convert <word>' to convert a word")
	fmt.Fprintln(out, "  3. Run 'hanzipy lookup <word>' to see every reading")

	return nil
}
