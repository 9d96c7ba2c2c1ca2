package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPostSerializesAbsentImageAsNull(t *testing.T) {
	post := Post{
		ID:        "p1",
		Title:     "Hello",
		CreatedAt: time.Now().UTC(),
		Comments:  []Comment{},
	}

	b, err := json.Marshal(post)
	if err != nil {
		t.Fatalf("marshal post: %v", err)
	}
	if !strings.Contains(string(b), `"image":null`) {
		t.Fatalf("expected image to render as null, got %s", b)
	}
	if !strings.Contains(string(b), `"comments":[]`) {
		t.Fatalf("expected comments to render as empty array, got %s", b)
	}
}

func TestNormalizeFillsMissingCollections(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"posts":[{"id":"p1"}]}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	doc.Normalize()

	if doc.Messages == nil || doc.Users == nil {
		t.Fatalf("expected all collections allocated after Normalize")
	}
	if len(doc.Posts) != 1 {
		t.Fatalf("expected parsed posts to survive Normalize, got %d", len(doc.Posts))
	}
}
