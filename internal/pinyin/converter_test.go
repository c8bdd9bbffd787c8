package pinyin

import (
	"errors"
	"reflect"
	"testing"
)

func TestGoPinyinConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  [][]string
	}{
		{
			name:  "normal",
			input: "中国",
			opts:  Options{Style: StyleNormal},
			want:  [][]string{{"zhong"}, {"guo"}},
		},
		{
			name:  "first letter",
			input: "中国",
			opts:  Options{Style: StyleFirstLetter},
			want:  [][]string{{"z"}, {"g"}},
		},
		{
			name:  "heteronym keeps repeats",
			input: "中",
			opts:  Options{Style: StyleNormal, Heteronym: true},
			want:  [][]string{{"zhong", "zhong"}},
		},
		{
			name:  "heteronym compact",
			input: "中",
			opts:  Options{Style: StyleNormal, Heteronym: true, Compact: true},
			want:  [][]string{{"zhong"}},
		},
		{
			name:  "first letter compact",
			input: "中",
			opts:  Options{Style: StyleFirstLetter, Heteronym: true, Compact: true},
			want:  [][]string{{"z"}},
		},
		{
			name:  "tone marks stripped from ê readings",
			input: "欸",
			opts:  Options{Style: StyleNormal, Heteronym: true, Compact: true},
			want:  [][]string{{"ai", "ê", "xie", "ei"}},
		},
		{
			name:  "tone marks stripped from ê first letters",
			input: "欸",
			opts:  Options{Style: StyleFirstLetter, Heteronym: true, Compact: true},
			want:  [][]string{{"a", "ê", "x", "e"}},
		},
		{
			name:  "tone marks stripped from syllabic m",
			input: "呣",
			opts:  Options{Style: StyleNormal, Heteronym: true, Compact: true},
			want:  [][]string{{"m", "mou"}},
		},
		{
			name:  "invalid utf-8 kept byte for byte",
			input: "\xff中",
			opts:  Options{Style: StyleNormal},
			want:  [][]string{{"\xff"}, {"zhong"}},
		},
		{
			name:  "non-han kept",
			input: "A中",
			opts:  Options{Style: StyleFirstLetter},
			want:  [][]string{{"A"}, {"z"}},
		},
		{
			name:  "empty",
			input: "",
			opts:  Options{Style: StyleNormal, Heteronym: true, Compact: true},
			want:  [][]string{},
		},
	}

	conv := NewGoPinyin()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert(%q, %+v) = %v, want %v", tt.input, tt.opts, got, tt.want)
			}
		})
	}
}

func TestGoPinyinDropNonHan(t *testing.T) {
	conv := NewGoPinyin(WithNonHan(NonHanDrop))

	got, err := conv.Convert("a中1\xff国!", Options{Style: StyleNormal})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	want := [][]string{{"zhong"}, {"guo"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Convert = %v, want %v", got, want)
	}

	res, err := New(conv).Transliterate("hello")
	if err != nil {
		t.Fatalf("Transliterate error: %v", err)
	}
	if res != (Result{}) {
		t.Errorf("Transliterate(%q) = %+v, want empty result", "hello", res)
	}
}

func TestGoPinyinUnsupportedStyle(t *testing.T) {
	_, err := NewGoPinyin().Convert("中", Options{Style: Style(42)})
	if !errors.Is(err, ErrUnsupportedStyle) {
		t.Errorf("Convert error = %v, want ErrUnsupportedStyle", err)
	}
}

func TestGoPinyinGroups(t *testing.T) {
	got := NewGoPinyin().Groups("中国")
	want := [][]string{{"zhōng", "zhòng"}, {"guó"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Groups(%q) = %v, want %v", "中国", got, want)
	}
}

func TestStripTones(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zhong", "zhong"},
		{"ế", "ê"},
		{"ề", "ê"},
		{"ê\u0304", "ê"},
		{"ê\u030C", "ê"},
		{"m\u0300", "m"},
		{"ḿ", "m"},
		{"ǹ", "n"},
		{"ê", "ê"},
		{"lü", "lü"},
	}
	for _, tt := range tests {
		if got := stripTones(tt.input); got != tt.want {
			t.Errorf("stripTones(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseNonHan(t *testing.T) {
	tests := []struct {
		input   string
		want    NonHan
		wantErr bool
	}{
		{"keep", NonHanKeep, false},
		{"drop", NonHanDrop, false},
		{"", NonHanKeep, false},
		{"strip", "", true},
	}
	for _, tt := range tests {
		got, err := ParseNonHan(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNonHan(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNonHan(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"zhong", "zhong"}, []string{"zhong"}},
		{[]string{"le", "yue", "yao", "le"}, []string{"le", "yue", "yao"}},
		{[]string{"y", "l", "y"}, []string{"y", "l"}},
		{[]string{"guo"}, []string{"guo"}},
	}
	for _, tt := range tests {
		if got := distinct(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("distinct(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
