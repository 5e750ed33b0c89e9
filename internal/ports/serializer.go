package ports

import "shelfbox/internal/transfer"

// DataSerializer converts export documents to and from their persisted text
// form.
type DataSerializer interface {
	Serialize(data *transfer.ExportData) (string, error)
	Deserialize(text string) (*transfer.ExportData, error)
}
