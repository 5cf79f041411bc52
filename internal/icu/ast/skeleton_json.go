// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast

import (
	"encoding/json"

	"github.com/mdhender/icumf/internal/icu/position"
)

// SkeletonKind distinguishes the two skeleton record shapes in serialized
// output (§4.5): 0 = number, 1 = dateTime.
type SkeletonKind int

const (
	SkeletonKindNumber   SkeletonKind = 0
	SkeletonKindDateTime SkeletonKind = 1
)

type skeletonTokenJSON struct {
	Stem    string   `json:"stem"`
	Options []string `json:"options,omitempty"`
}

func (t SkeletonToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(skeletonTokenJSON{Stem: t.Stem, Options: t.Options})
}

func (s *NumberSkeleton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type          SkeletonKind        `json:"type"`
		Tokens        []SkeletonToken     `json:"tokens"`
		Location      position.Span       `json:"location"`
		ParsedOptions NumberFormatOptions `json:"parsedOptions"`
	}{SkeletonKindNumber, s.Tokens, s.Span, s.ParsedOptions})
}

func (s *DateTimeSkeleton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type          SkeletonKind          `json:"type"`
		Pattern       string                `json:"pattern"`
		Location      position.Span         `json:"location"`
		ParsedOptions DateTimeFormatOptions `json:"parsedOptions"`
	}{SkeletonKindDateTime, s.Pattern, s.Span, s.ParsedOptions})
}
