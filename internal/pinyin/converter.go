// Package pinyin converts Chinese words into romanized pinyin strings.
package pinyin

import (
	"errors"
	"fmt"
	"unicode/utf8"

	gopinyin "github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Style selects how each syllable is romanized.
type Style int

const (
	StyleNormal      Style = iota // Full syllable without tone marks: zhong, ê
	StyleFirstLetter              // First letter of the syllable: z
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleFirstLetter:
		return "first-letter"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ErrUnsupportedStyle is returned when a converter has no mapping for a Style.
var ErrUnsupportedStyle = errors.New("unsupported pinyin style")

// Options configures a single conversion request.
type Options struct {
	Style     Style
	Heteronym bool // Return every reading of a character, not just the first
	Compact   bool // Collapse repeated candidates within a group
}

// Converter maps a word to one candidate group per position.
// Each group holds one or more romanizations, in order.
type Converter interface {
	Convert(word string, opts Options) ([][]string, error)
}

// NonHan controls what the go-pinyin converter emits for runes it has no
// reading for (latin letters, digits, punctuation).
type NonHan string

const (
	NonHanKeep NonHan = "keep" // Emit the rune unchanged as its own group
	NonHanDrop NonHan = "drop" // Emit nothing for the rune
)

// ParseNonHan parses a NonHan policy name.
func ParseNonHan(s string) (NonHan, error) {
	switch NonHan(s) {
	case NonHanKeep, NonHanDrop:
		return NonHan(s), nil
	case "":
		return NonHanKeep, nil
	default:
		return "", fmt.Errorf("unknown non-han policy %q (want keep or drop)", s)
	}
}

// GoPinyin is a Converter backed by github.com/mozillazg/go-pinyin.
// It is immutable after construction.
type GoPinyin struct {
	nonHan NonHan
}

// Option configures a GoPinyin converter.
type Option func(*GoPinyin)

// WithNonHan sets the policy for runes without a reading.
func WithNonHan(p NonHan) Option {
	return func(g *GoPinyin) {
		g.nonHan = p
	}
}

// NewGoPinyin creates a go-pinyin backed converter.
func NewGoPinyin(opts ...Option) *GoPinyin {
	g := &GoPinyin{nonHan: NonHanKeep}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Convert implements Converter.
func (g *GoPinyin) Convert(word string, opts Options) ([][]string, error) {
	args := gopinyin.NewArgs()
	switch opts.Style {
	case StyleNormal:
		args.Style = gopinyin.Normal
	case StyleFirstLetter:
		args.Style = gopinyin.FirstLetter
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, opts.Style)
	}
	args.Heteronym = opts.Heteronym

	groups := g.convert(word, args, true)
	if opts.Compact {
		for i, group := range groups {
			groups[i] = distinct(group)
		}
	}
	return groups, nil
}

// Groups returns every tone-marked reading for each position of word.
func (g *GoPinyin) Groups(word string) [][]string {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = true
	return g.convert(word, args, false)
}

func (g *GoPinyin) convert(word string, args gopinyin.Args, toneless bool) [][]string {
	groups := make([][]string, 0, len(word))
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		raw := word[i : i+size]
		i += size

		// Args.Fallback output goes through go-pinyin's style formatting,
		// which would truncate a non-Han rune under FirstLetter.
		readings := gopinyin.SinglePinyin(r, args)
		if len(readings) == 0 {
			if g.nonHan == NonHanDrop {
				continue
			}
			// raw keeps invalid UTF-8 bytes as they were.
			groups = append(groups, []string{raw})
			continue
		}
		if toneless {
			for j, reading := range readings {
				readings[j] = stripTones(reading)
			}
		}
		groups = append(groups, readings)
	}
	return groups
}

// isToneMark matches the combining marks pinyin uses for tones 1 to 4.
// The circumflex of ê and the diaeresis of ü are not tone marks.
func isToneMark(r rune) bool {
	switch r {
	case '\u0304', '\u0301', '\u030C', '\u0300':
		return true
	}
	return false
}

// stripTones removes tone marks go-pinyin leaves on readings outside its
// vowel table, such as ế, ê̄ and m̀.
func stripTones(reading string) string {
	if isASCII(reading) {
		return reading
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isToneMark)), norm.NFC)
	out, _, err := transform.String(t, reading)
	if err != nil {
		return reading
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// distinct keeps the first occurrence of each candidate.
func distinct(group []string) []string {
	if len(group) < 2 {
		return group
	}
	seen := make(map[string]bool, len(group))
	out := make([]string, 0, len(group))
	for _, c := range group {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
