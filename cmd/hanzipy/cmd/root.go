// Package cmd contains all CLI commands for the hanzipy tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/hanzipy/internal/config"
	"github.com/f3rmion/hanzipy/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hanzipy",
	Short: "Convert Chinese words to pinyin and pinyin initials",
	Long: `hanzipy converts a Chinese word into two romanized strings:

  pinyin  full syllables without tone marks   中国 → zhongguo
  py      first letter of every syllable      中国 → zg

Characters with several readings contribute every distinct reading.

Running 'hanzipy' without arguments launches the interactive TUI.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/hanzipy)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("non-han", "", "what to do with characters that have no reading: keep or drop")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("non_han", rootCmd.PersistentFlags().Lookup("non-han"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("HANZIPY")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func verbose() bool {
	return viper.GetBool("verbose")
}

func logf(format string, args ...any) {
	if verbose() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// loadUserConfig loads config.yaml and applies flag and environment overrides.
func loadUserConfig() (*config.Config, error) {
	path := filepath.Join(getConfigDir(), config.FileName)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logf("config: %s", path)

	if viper.IsSet("non_han") {
		cfg.NonHan = viper.GetString("non_han")
	}
	if viper.IsSet("format") {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("copy") {
		cfg.Copy = viper.GetBool("copy")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logf("non_han=%s format=%s copy=%t", cfg.NonHan, cfg.Format, cfg.Copy)

	return cfg, nil
}

// runInteractive launches the TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	conv, err := cfg.Converter()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewApp(conv), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
