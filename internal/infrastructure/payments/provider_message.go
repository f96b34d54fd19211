package payments

import (
	"encoding/json"
	"strings"
)

// FirstNonEmpty returns the first candidate that is not blank.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s
		}
	}
	return ""
}

// providerMessage extracts the most specific error text from a provider body.
//
// Precedence: error_description, error_message, message, raw body. A JSON
// array body is probed through its first element.
func providerMessage(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			fields = list[0]
		}
	}

	return FirstNonEmpty(
		stringField(fields, "error_description"),
		stringField(fields, "error_message"),
		stringField(fields, "message"),
		string(raw),
	)
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
