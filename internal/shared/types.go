package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SourceType identifies where an imported record originated.
type SourceType string

const (
	SourceArchive     SourceType = "archive"
	SourceProceedings SourceType = "proceedings"
	SourceHotCRP      SourceType = "hotcrp"
	SourceManual      SourceType = "manual"
)

// Recognized provenance keys inside entity metadata. The core stores and
// returns metadata verbatim and never interprets these beyond documentation.
const (
	MetaSourceType        = "source_type"
	MetaSourceURL         = "source_url"
	MetaSourceDescription = "source_description"
	MetaSourceDate        = "source_date"
)

// Metadata is the free-form JSONB extension map carried by every entity.
// Unknown keys must round-trip unchanged; no key is required to be present.
type Metadata map[string]any

// OrEmpty returns the map, substituting an empty one for nil so that
// metadata is stored as '{}' rather than SQL NULL.
func (m Metadata) OrEmpty() Metadata {
	if m == nil {
		return Metadata{}
	}
	return m
}

// Value implements driver.Valuer for JSONB columns.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata source type %T", src)
	}
}
