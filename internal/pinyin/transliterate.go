package pinyin

import "strings"

// Result holds both romanizations of a word.
type Result struct {
	Pinyin string `json:"pinyin" yaml:"pinyin"` // Full syllables: zhongguo
	Py     string `json:"py" yaml:"py"`         // First letters: zg
}

// Transliterator turns words into Results using a Converter.
type Transliterator struct {
	conv Converter
}

// New creates a Transliterator over conv.
func New(conv Converter) *Transliterator {
	return &Transliterator{conv: conv}
}

var defaultTransliterator = New(NewGoPinyin())

// Transliterate converts word with the default go-pinyin converter.
func Transliterate(word string) (Result, error) {
	return defaultTransliterator.Transliterate(word)
}

// Transliterate converts word into its full and first-letter romanizations.
//
// Both conversions request heteronyms in compact mode. Every candidate of a
// group is concatenated without a separator, and so are the groups. Errors
// from the Converter are returned as is.
func (t *Transliterator) Transliterate(word string) (Result, error) {
	full, err := t.flatten(word, StyleNormal)
	if err != nil {
		return Result{}, err
	}
	first, err := t.flatten(word, StyleFirstLetter)
	if err != nil {
		return Result{}, err
	}
	return Result{Pinyin: full, Py: first}, nil
}

func (t *Transliterator) flatten(word string, style Style) (string, error) {
	groups, err := t.conv.Convert(word, Options{
		Style:     style,
		Heteronym: true,
		Compact:   true,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, group := range groups {
		for _, candidate := range group {
			b.WriteString(candidate)
		}
	}
	return b.String(), nil
}
