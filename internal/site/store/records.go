package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is any persisted entity that can vouch for its own shape. Records
// failing the check on read are treated as absent.
type Record interface {
	WellFormed() bool
}

// readCollection decodes the JSON document under key into a slice of T.
// A missing or unparsable document yields an empty slice, never a failure;
// individual records that fail to decode or are malformed are skipped. Only a
// storage-level denial is reported as an error.
func readCollection[T Record](ctx context.Context, kv KV, key string) ([]T, error) {
	doc, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, nil
	}

	records := make([]T, 0, len(raw))
	for _, item := range raw {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		if !rec.WellFormed() {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// writeCollection replaces the whole document under key with the serialized
// records.
func writeCollection[T Record](ctx context.Context, kv KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(doc)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
