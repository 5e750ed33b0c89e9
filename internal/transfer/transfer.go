// Package transfer holds the versioned export document exchanged by the
// export/import use cases and the serializer port. These are flat snapshots,
// not entities: IDs are string-encoded UUIDs, timestamps RFC 3339, item
// types integers.
package transfer

// FormatVersion is stamped into every exported document.
const FormatVersion = "1.0"

// ExportData is a full snapshot of the shelf/item graph.
type ExportData struct {
	Version    string      `json:"version"`
	ExportedAt string      `json:"exportedAt"`
	Shelves    []ShelfData `json:"shelves"`
	Items      []ItemData  `json:"items"`
}

// ShelfData is the serialized form of one shelf.
type ShelfData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId,omitempty"`
	SortOrder int     `json:"sortOrder"`
	IsPinned  bool    `json:"isPinned"`
}

// ItemData is the serialized form of one item.
type ItemData struct {
	ID             string  `json:"id"`
	ShelfID        string  `json:"shelfId"`
	Type           int     `json:"type"`
	Target         string  `json:"target"`
	DisplayName    string  `json:"displayName"`
	Memo           *string `json:"memo,omitempty"`
	SortOrder      int     `json:"sortOrder"`
	CreatedAt      string  `json:"createdAt"`
	LastAccessedAt *string `json:"lastAccessedAt,omitempty"`
}
