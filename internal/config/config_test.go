package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	want := &Config{NonHan: "drop", Format: FormatJSON, Copy: true}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("format: yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
	if cfg.NonHan != "keep" {
		t.Errorf("NonHan = %q, want default %q", cfg.NonHan, "keep")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad non_han", "non_han: strip\n", true},
		{"bad format", "format: xml\n", true},
		{"malformed yaml", "format: [\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestConverter(t *testing.T) {
	cfg := &Config{NonHan: "drop", Format: FormatText}
	conv, err := cfg.Converter()
	if err != nil {
		t.Fatalf("Converter error: %v", err)
	}
	if conv == nil {
		t.Fatal("Converter returned nil")
	}

	cfg.NonHan = "bogus"
	if _, err := cfg.Converter(); err == nil {
		t.Error("Converter succeeded with unknown policy, want error")
	}
}
