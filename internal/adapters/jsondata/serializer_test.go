package jsondata

import (
	"strings"
	"testing"

	"shelfbox/internal/transfer"
)

func TestSerializer_RoundTrip(t *testing.T) {
	parentID := "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
	memo := "weekly reading"
	accessed := "2025-06-01T13:00:00Z"

	data := &transfer.ExportData{
		Version:    transfer.FormatVersion,
		ExportedAt: "2025-06-01T12:00:00Z",
		Shelves: []transfer.ShelfData{
			{ID: parentID, Name: "Root", SortOrder: 0, IsPinned: true},
			{ID: "be3f9a10-30ff-4f21-8b3f-111122223333", Name: "Child", ParentID: &parentID, SortOrder: 1},
		},
		Items: []transfer.ItemData{
			{
				ID:             "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				ShelfID:        parentID,
				Type:           2,
				Target:         "https://example.com",
				DisplayName:    "Example",
				Memo:           &memo,
				SortOrder:      0,
				CreatedAt:      "2025-05-01T09:30:00Z",
				LastAccessedAt: &accessed,
			},
		},
	}

	text, err := Serializer{}.Serialize(data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(text, `"parentId"`) || !strings.Contains(text, `"displayName"`) {
		t.Error("expected camelCase field names in output")
	}

	got, err := Serializer{}.Deserialize(text)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Version != data.Version || len(got.Shelves) != 2 || len(got.Items) != 1 {
		t.Fatalf("round trip mismatch: version=%q shelves=%d items=%d", got.Version, len(got.Shelves), len(got.Items))
	}
	if got.Shelves[1].ParentID == nil || *got.Shelves[1].ParentID != parentID {
		t.Error("parent id lost in round trip")
	}
	if got.Items[0].Memo == nil || *got.Items[0].Memo != memo {
		t.Error("memo lost in round trip")
	}
	if got.Items[0].LastAccessedAt == nil || *got.Items[0].LastAccessedAt != accessed {
		t.Error("access time lost in round trip")
	}
}

func TestSerializer_RootShelfOmitsParent(t *testing.T) {
	data := &transfer.ExportData{
		Version: transfer.FormatVersion,
		Shelves: []transfer.ShelfData{
			{ID: "3f2504e0-4f89-41d3-9a0c-0305e82c3301", Name: "Root"},
		},
	}

	text, err := Serializer{}.Serialize(data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.Contains(text, "parentId") {
		t.Error("root shelf should omit the parentId field entirely")
	}
}

func TestSerializer_MalformedInput(t *testing.T) {
	if _, err := (Serializer{}).Deserialize("{not json"); err == nil {
		t.Error("expected error for malformed input")
	}
}
