package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/hanzipy/internal/pinyin"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show every reading of each character in a word",
	Long: `Look up a Chinese word and display, for each character:
  - every tone-marked reading
  - what the character contributes to pinyin and py

followed by the combined pinyin and py strings.

Example:
  hanzipy lookup 中
  hanzipy lookup 银行`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// lookupRow is one character of the lookup table.
type lookupRow struct {
	char     string
	readings string
	pinyin   string
	py       string
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	conv, err := cfg.Converter()
	if err != nil {
		return err
	}

	rows, total, err := lookupWord(conv, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Looking up: %s\n\n", args[0])
	writeLookupTable(out, rows)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "pinyin: %s\n", total.Pinyin)
	fmt.Fprintf(out, "py:     %s\n", total.Py)

	return nil
}

func lookupWord(conv *pinyin.GoPinyin, word string) ([]lookupRow, pinyin.Result, error) {
	t := pinyin.New(conv)

	total, err := t.Transliterate(word)
	if err != nil {
		return nil, pinyin.Result{}, fmt.Errorf("converting %s: %w", word, err)
	}

	var rows []lookupRow
	for _, r := range word {
		char := string(r)
		res, err := t.Transliterate(char)
		if err != nil {
			return nil, pinyin.Result{}, fmt.Errorf("converting %s: %w", char, err)
		}
		if res.Pinyin == "" {
			// Dropped by the non-han policy
			continue
		}

		var readings string
		if groups := conv.Groups(char); len(groups) > 0 {
			readings = strings.Join(groups[0], ", ")
		}
		rows = append(rows, lookupRow{char: char, readings: readings, pinyin: res.Pinyin, py: res.Py})
	}

	return rows, total, nil
}

func writeLookupTable(w io.Writer, rows []lookupRow) {
	header := lookupRow{char: "Char", readings: "Readings", pinyin: "Pinyin", py: "Py"}
	all := append([]lookupRow{header}, rows...)

	var widths [3]int
	for _, r := range all {
		for i, s := range []string{r.char, r.readings, r.pinyin} {
			if sw := runewidth.StringWidth(s); sw > widths[i] {
				widths[i] = sw
			}
		}
	}

	for _, r := range all {
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			runewidth.FillRight(r.char, widths[0]),
			runewidth.FillRight(r.readings, widths[1]),
			runewidth.FillRight(r.pinyin, widths[2]),
			r.py,
		)
	}
}
