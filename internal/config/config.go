// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/mdhender/icumf/cerrs"
)

// Config holds the icumsgparse CLI's persistent settings: debug flags and
// the ParserOptions defaults a run falls back to when a flag isn't given on
// the command line.
type Config struct {
	DebugFlags DebugFlags_t `json:"DebugFlags"`
	Parser     Parser_t     `json:"Parser"`
	Output     Output_t     `json:"Output"`
}

type DebugFlags_t struct {
	LogSource bool `json:"LogSource,omitempty"`
	Parser    bool `json:"Parser,omitempty"`
}

// Parser_t mirrors parser.Options: every field is a default that a CLI flag
// can still override for a single run.
type Parser_t struct {
	IgnoreTag            bool   `json:"IgnoreTag,omitempty"`
	RequiresOtherClause  bool   `json:"RequiresOtherClause,omitempty"`
	ShouldParseSkeletons bool   `json:"ShouldParseSkeletons,omitempty"`
	CaptureLocation      bool   `json:"CaptureLocation,omitempty"`
	Locale               string `json:"Locale,omitempty"`
}

// Output_t controls how the CLI renders a successful parse or an error.
type Output_t struct {
	Indent string `json:"Indent,omitempty"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Output: Output_t{
			Indent: "  ",
		},
	}
}

// Load reads name as JSON and overlays its non-zero fields onto Default().
// A missing file is not an error: Load silently returns the defaults, the
// same "absent config means defaults" behavior the teacher's own Load uses.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, cerrs.ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrIsNotAFile
	}

	var tmp Config
	if data, err := os.ReadFile(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		} else {
			log.Printf("[config] %q: loaded %s\n", name, string(data))
		}
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
