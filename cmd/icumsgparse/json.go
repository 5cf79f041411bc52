// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package main

import "encoding/json"

// marshalIndent renders v as JSON, honoring an optional indent string (the
// CLI's --config Output.Indent); an empty indent produces compact output.
func marshalIndent(v any, indent string) ([]byte, error) {
	if indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", indent)
}
