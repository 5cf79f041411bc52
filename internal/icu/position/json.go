// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package position

import "encoding/json"

type positionJSON struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// MarshalJSON renders a Position as {"offset":...,"line":...,"column":...},
// matching the reference JavaScript parser's camelCase location shape.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionJSON{Offset: p.Offset, Line: p.Line, Column: p.Column})
}

type spanJSON struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(spanJSON{Start: s.Start, End: s.End})
}
