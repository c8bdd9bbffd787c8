package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/hanzipy/internal/clipboard"
	"github.com/f3rmion/hanzipy/internal/config"
	"github.com/f3rmion/hanzipy/internal/pinyin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var convertCmd = &cobra.Command{
	Use:     "convert <word>...",
	Aliases: []string{"c"},
	Short:   "Print the pinyin and pinyin initials of each word",
	Long: `Convert each word into its full pinyin and its first-letter pinyin.

Output formats:
  text   word, pinyin and py separated by tabs, one line per word
  json   a JSON array of {"word", "pinyin", "py"} objects
  yaml   a YAML list of the same objects

Example:
  hanzipy convert 中国
  hanzipy convert 北京 上海 --format json
  hanzipy convert 你好 --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("format", "f", config.FormatText, "output format: text, json or yaml")
	convertCmd.Flags().Bool("copy", false, "copy the last pinyin result to the clipboard")

	viper.BindPFlag("format", convertCmd.Flags().Lookup("format"))
	viper.BindPFlag("copy", convertCmd.Flags().Lookup("copy"))
}

// entry is one converted word.
type entry struct {
	Word          string `json:"word" yaml:"word"`
	pinyin.Result `yaml:",inline"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	conv, err := cfg.Converter()
	if err != nil {
		return err
	}

	entries, err := convertWords(pinyin.New(conv), args)
	if err != nil {
		return err
	}

	if err := writeEntries(cmd.OutOrStdout(), cfg.Format, entries); err != nil {
		return err
	}

	if cfg.Copy {
		last := entries[len(entries)-1].Pinyin
		if err := clipboard.Write(last); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			logf("copied %q to clipboard", last)
		}
	}

	return nil
}

func convertWords(t *pinyin.Transliterator, words []string) ([]entry, error) {
	entries := make([]entry, 0, len(words))
	for _, word := range words {
		res, err := t.Transliterate(word)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", word, err)
		}
		entries = append(entries, entry{Word: word, Result: res})
	}
	return entries, nil
}

func writeEntries(w io.Writer, format string, entries []entry) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case config.FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Word, e.Pinyin, e.Py); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
