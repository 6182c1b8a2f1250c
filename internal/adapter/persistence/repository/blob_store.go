package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection keys. The names are inherited from the legacy OS PRO
// dataset and must not change, or existing stores become orphaned.
const (
	CollectionCustomers = "os_pro_customers"
	CollectionOrders    = "os_pro_service_orders"
	CollectionItems     = "os_pro_items"
	CollectionCompany   = "os_pro_company"
)

// ErrCorruptCollection marks persisted JSON that no longer deserializes
// into the expected collection shape. Reads fail loudly instead of
// silently defaulting, so data loss is never masked.
var ErrCorruptCollection = errors.New("corrupt persisted collection")

// BlobStore is the storage seam of the record store: each collection is
// one opaque blob under its collection key. Every mutation above this
// seam is a whole-collection read-modify-write; there is no lock, so
// two concurrent writers on the same collection can lose an update
// (last writer wins). Accepted for a single-operator tool.
type BlobStore interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

const schemaVersion = 1

type collectionEnvelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Records       []T `json:"records"`
}

type singletonEnvelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Record        T   `json:"record"`
}

// readCollection loads a collection. found is false when the key was
// never written. A legacy bare JSON array (written by the original app
// before envelopes existed) is still accepted.
func readCollection[T any](ctx context.Context, store BlobStore, key string) ([]T, bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !found || len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '[' {
		var records []T
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, key, err)
		}
		return records, true, nil
	}

	var env collectionEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, key, err)
	}
	if env.SchemaVersion > schemaVersion {
		return nil, false, fmt.Errorf("%w: %s: schema_version %d not supported", ErrCorruptCollection, key, env.SchemaVersion)
	}
	return env.Records, true, nil
}

func writeCollection[T any](ctx context.Context, store BlobStore, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(collectionEnvelope[T]{SchemaVersion: schemaVersion, Records: records})
	if err != nil {
		return err
	}
	return store.Put(ctx, key, payload)
}

func readSingleton[T any](ctx context.Context, store BlobStore, key string) (T, bool, error) {
	var zero T
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if !found || len(bytes.TrimSpace(raw)) == 0 {
		return zero, false, nil
	}

	trimmed := bytes.TrimSpace(raw)
	var env singletonEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return zero, false, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, key, err)
	}
	if env.SchemaVersion == 0 {
		// Legacy record persisted without an envelope.
		var legacy T
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return zero, false, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, key, err)
		}
		return legacy, true, nil
	}
	if env.SchemaVersion > schemaVersion {
		return zero, false, fmt.Errorf("%w: %s: schema_version %d not supported", ErrCorruptCollection, key, env.SchemaVersion)
	}
	return env.Record, true, nil
}

func writeSingleton[T any](ctx context.Context, store BlobStore, key string, record T) error {
	payload, err := json.Marshal(singletonEnvelope[T]{SchemaVersion: schemaVersion, Record: record})
	if err != nil {
		return err
	}
	return store.Put(ctx, key, payload)
}
