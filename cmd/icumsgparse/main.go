// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package main implements the icumsgparse CLI. This program parses a
// single ICU MessageFormat source string and prints either its serialized
// AST or its serialized parse error as JSON.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/mdhender/icumf/cerrs"
	"github.com/mdhender/icumf/internal/config"
	"github.com/mdhender/icumf/internal/icu/parser"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	logger *slog.Logger
)

func main() {
	var inputPath, outputPath, configPath string
	var ignoreTag, requiresOtherClause, shouldParseSkeletons, captureLocation bool
	var locale string

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "enable debug logging (same as --log-level=debug)")
		cmd.PersistentFlags().Bool("quiet", false, "only log errors (same as --log-level=error)")
		cmd.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error))")
		cmd.PersistentFlags().Bool("log-source", false, "add file and line numbers to log messages")
		cmd.PersistentFlags().StringVar(&configPath, "config", "icumsgparse.json", "configuration file")

		cmd.Flags().StringVar(&inputPath, "input", "-", "message source to parse ('-' reads stdin)")
		cmd.Flags().StringVar(&outputPath, "output", "", "write results to file instead of stdout")
		cmd.Flags().BoolVar(&ignoreTag, "ignore-tag", false, "treat '<' as an ordinary literal character")
		cmd.Flags().BoolVar(&requiresOtherClause, "requires-other-clause", false, "fail plural/select arguments missing an \"other\" selector")
		cmd.Flags().BoolVar(&shouldParseSkeletons, "parse-skeletons", false, "interpret \"::\"-prefixed argument styles into structured options")
		cmd.Flags().BoolVar(&captureLocation, "capture-location", false, "informational only; locations are always produced")
		cmd.Flags().StringVar(&locale, "locale", "", "reserved for locale-sensitive skeleton interpretation")
		return nil
	}

	cmdRoot := &cobra.Command{
		Use:           "icumsgparse",
		Short:         "ICU MessageFormat parser",
		Long:          `Parse an ICU MessageFormat source string into a spanned AST, or report the first parse error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			logLevel, err := flags.GetString("log-level")
			if err != nil {
				return err
			}
			logSource, err := flags.GetBool("log-source")
			if err != nil {
				return err
			}
			debug, err := flags.GetBool("debug")
			if err != nil {
				return err
			}
			quiet, err := flags.GetBool("quiet")
			if err != nil {
				return err
			}
			if debug && quiet {
				return fmt.Errorf("--debug and --quiet are mutually exclusive")
			}
			var lvl slog.Level
			switch {
			case debug:
				lvl = slog.LevelDebug
			case quiet:
				lvl = slog.LevelError
			default:
				switch strings.ToLower(logLevel) {
				case "debug":
					lvl = slog.LevelDebug
				case "info":
					lvl = slog.LevelInfo
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error":
					lvl = slog.LevelError
				default:
					return fmt.Errorf("log-level: unknown value %q", logLevel)
				}
			}
			handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     lvl,
				AddSource: logSource || lvl == slog.LevelDebug,
			})
			logger = slog.New(handler)
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cfgDebug(cmd))
			if err != nil {
				logger.Error("icumsgparse", "error", err)
				return err
			}

			source, err := readSource(inputPath)
			if err != nil {
				logger.Error("icumsgparse", "error", err)
				return err
			}
			if source == "" {
				return cerrs.ErrEmptySource
			}

			flagOrConfig := func(name string, flagValue, cfgValue bool) bool {
				if cmd.Flags().Changed(name) {
					return flagValue
				}
				return cfgValue
			}
			opts := parser.Options{
				IgnoreTag:            flagOrConfig("ignore-tag", ignoreTag, cfg.Parser.IgnoreTag),
				RequiresOtherClause:  flagOrConfig("requires-other-clause", requiresOtherClause, cfg.Parser.RequiresOtherClause),
				ShouldParseSkeletons: flagOrConfig("parse-skeletons", shouldParseSkeletons, cfg.Parser.ShouldParseSkeletons),
				CaptureLocation:      flagOrConfig("capture-location", captureLocation, cfg.Parser.CaptureLocation),
				Locale:               firstNonEmpty(locale, cfg.Parser.Locale),
			}

			msg, perr := parser.Parse(source, opts)

			var out []byte
			if perr != nil {
				logger.Debug("icumsgparse", "error", perr)
				out, err = marshalIndent(perr, cfg.Output.Indent)
			} else {
				out, err = marshalIndent(msg, cfg.Output.Indent)
			}
			if err != nil {
				logger.Error("icumsgparse", "error", err)
				return err
			}

			if outputPath == "" {
				fmt.Println(string(out))
			} else {
				if err := os.WriteFile(outputPath, append(out, '\n'), 0o644); err != nil {
					logger.Error("icumsgparse", "error", err)
					return err
				}
				fmt.Printf("%s: created\n", outputPath)
			}

			if perr != nil {
				return perr
			}
			return nil
		},
	}
	if err := addFlags(cmdRoot); err != nil {
		logger.Error("icumsgparse", "error", err)
		os.Exit(1)
	}
	cmdRoot.AddCommand(cmdVersion())

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}

func cfgDebug(cmd *cobra.Command) bool {
	debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
	return debug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// readSource reads the message pattern to parse from path, or from stdin
// when path is "-" or empty. Reading from an interactive terminal with
// nothing piped in fails fast with cerrs.ErrNoInput instead of blocking.
func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return "", cerrs.ErrNoInput
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
