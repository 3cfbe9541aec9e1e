package client

import (
	"bytes"
	"encoding/json"
	"log"
)

// UnwrapList normalizes the two list-response shapes the API produces.
// A bare JSON array is returned as-is with its length as the count; a
// paginated envelope yields its results plus the server-reported total
// count. Any other shape degrades to an empty list with a logged
// warning instead of an error.
func UnwrapList(body []byte) ([]json.RawMessage, int) {
	trimmed := bytes.TrimSpace(body)

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err == nil {
			return items, len(items)
		}
	}

	var envelope struct {
		Count   int               `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, envelope.Count
	}

	log.Printf("[client] unexpected list response shape, returning empty list")
	return []json.RawMessage{}, 0
}
