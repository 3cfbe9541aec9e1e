package client

import (
	"encoding/json"
	"testing"
)

func TestUnwrapList(t *testing.T) {
	t.Run("paginated envelope", func(t *testing.T) {
		body := []byte(`{"count":42,"next":"http://x/?page=2","previous":null,"results":[{"id":"a"},{"id":"b"}]}`)
		items, count := UnwrapList(body)
		if count != 42 {
			t.Fatalf("expected count 42, got %d", count)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		var first map[string]string
		if err := json.Unmarshal(items[0], &first); err != nil || first["id"] != "a" {
			t.Fatalf("expected first item id a, got %s", items[0])
		}
	})

	t.Run("bare array", func(t *testing.T) {
		items, count := UnwrapList([]byte(`  [{"id":"a"},{"id":"b"},{"id":"c"}]`))
		if count != 3 {
			t.Fatalf("expected count 3, got %d", count)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
	})

	t.Run("empty array", func(t *testing.T) {
		items, count := UnwrapList([]byte(`[]`))
		if count != 0 || len(items) != 0 {
			t.Fatalf("expected empty result, got %d/%d", count, len(items))
		}
	})

	t.Run("envelope without results degrades to empty", func(t *testing.T) {
		items, count := UnwrapList([]byte(`{"count":10}`))
		if count != 0 {
			t.Fatalf("expected count 0, got %d", count)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %v", items)
		}
	})

	t.Run("scalar degrades to empty", func(t *testing.T) {
		items, count := UnwrapList([]byte(`"nope"`))
		if count != 0 || len(items) != 0 {
			t.Fatalf("expected empty result, got %d/%d", count, len(items))
		}
	})
}
