// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/icumf/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Errorf("expected no error for non-existent file, got %v", err)
		}
		if cfg == nil {
			t.Errorf("expected non-nil config")
		}
		if cfg.Parser.Locale != "" {
			t.Errorf("expected empty locale, got %q", cfg.Parser.Locale)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Errorf("expected error for directory, got nil")
		}
	})

	t.Run("empty config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(configFile, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Output.Indent != "  " {
			t.Errorf("expected default indent preserved, got %q", cfg.Output.Indent)
		}
	})

	t.Run("partial config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		testConfig := config.Config{
			Parser: config.Parser_t{
				Locale:               "fr",
				ShouldParseSkeletons: true,
			},
		}

		data, err := json.Marshal(testConfig)
		if err != nil {
			t.Fatalf("failed to marshal test config: %v", err)
		}
		if err = os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Parser.Locale != "fr" {
			t.Errorf("expected locale 'fr', got %q", cfg.Parser.Locale)
		}
		if !cfg.Parser.ShouldParseSkeletons {
			t.Errorf("expected ShouldParseSkeletons to be true")
		}
		// Fields the partial config didn't set should remain at their defaults.
		if cfg.Parser.IgnoreTag {
			t.Errorf("expected IgnoreTag to remain false (default)")
		}
		if cfg.Output.Indent != "  " {
			t.Errorf("expected default indent preserved, got %q", cfg.Output.Indent)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(configFile, []byte("invalid json"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, true)
		if err != nil {
			t.Errorf("expected no error for invalid JSON, got %v", err)
		}
		if cfg.Parser.Locale != "" {
			t.Errorf("expected empty locale for invalid JSON, got %q", cfg.Parser.Locale)
		}
	})
}

func TestCopyNonZeroFields(t *testing.T) {
	t.Run("copy only non-zero fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		testConfig := config.Config{
			Parser: config.Parser_t{
				Locale: "de",
			},
			DebugFlags: config.DebugFlags_t{
				Parser: true,
			},
		}

		data, err := json.Marshal(testConfig)
		if err != nil {
			t.Fatalf("failed to marshal test config: %v", err)
		}
		if err = os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, true)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}

		if cfg.Parser.Locale != "de" {
			t.Errorf("expected locale 'de', got %q", cfg.Parser.Locale)
		}
		if !cfg.DebugFlags.Parser {
			t.Errorf("expected DebugFlags.Parser to be true")
		}
		if cfg.DebugFlags.LogSource != false {
			t.Errorf("expected LogSource to remain false (default)")
		}
	})
}
