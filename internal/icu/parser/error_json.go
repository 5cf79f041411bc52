// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"encoding/json"

	"github.com/mdhender/icumf/internal/icu/position"
)

// MarshalJSON renders an Error as {"kind":<code>,"message":<source>,
// "location":{"start":...,"end":...}}.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     ErrorKind     `json:"kind"`
		Message  string        `json:"message"`
		Location position.Span `json:"location"`
	}{e.Kind, e.Message, e.Span})
}
