// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the icumsgparse CLI.
// It holds debug flags and the default ParserOptions (ignoreTag,
// requiresOtherClause, shouldParseSkeletons, captureLocation, locale) a run
// falls back to when a flag isn't given on the command line. Configuration
// is loaded from a JSON file with sensible defaults, the same load-then-
// overlay-non-zero-fields shape the teacher corpus uses for its own
// application config.
package config
