package village

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Collection names. Each is stored under the configured prefix plus the
// name; the issue_reports silo is deliberately disjoint from citizen_issues.
const (
	colUsers        = "users"
	colVillages     = "villages"
	colAssets       = "infrastructure_assets"
	colReadings     = "sensor_readings"
	colPredictions  = "maintenance_predictions"
	colIssues       = "citizen_issues"
	colProposals    = "proposals"
	colVotes        = "votes"
	colVoiceLogs    = "voice_command_logs"
	colReports      = "issue_reports"
	sessionItemName = "session"
)

// DefaultPrefix is the storage key prefix used when none is configured.
const DefaultPrefix = "village_"

// Collections adapts a Store into named, JSON-serialized record collections.
// A collection that is absent or fails to parse reads as empty; parse
// failures are logged so silent data loss stays visible, never raised.
type Collections struct {
	store  Store
	prefix string
	logger Logger
}

// NewCollections creates a collection adapter over store.
// An empty prefix falls back to DefaultPrefix.
func NewCollections(store Store, prefix string, logger Logger) *Collections {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Collections{store: store, prefix: prefix, logger: logger}
}

func (c *Collections) key(name string) string {
	return c.prefix + name
}

// Read decodes the named collection into out, which must be a pointer to a
// slice. Absent and corrupt collections both leave out empty.
func (c *Collections) Read(name string, out any) error {
	data, ok, err := c.store.Get(c.key(name))
	if err != nil {
		return fmt.Errorf("reading collection %s: %w", name, err)
	}
	if !ok {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("collection failed to parse, treating as empty",
			"collection", name, "error", err)
		// Unmarshal may have partially filled the slice before failing.
		v := reflect.ValueOf(out).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
	return nil
}

// Write replaces the named collection with the given records.
func (c *Collections) Write(name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}
	if err := c.store.Put(c.key(name), data); err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	return nil
}

// ReadItem decodes a single record stored under its own dedicated key
// (the session). Returns false when the key is absent or unparseable.
func (c *Collections) ReadItem(name string, out any) (bool, error) {
	data, ok, err := c.store.Get(c.key(name))
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("stored record failed to parse, treating as absent",
			"key", name, "error", err)
		return false, nil
	}
	return true, nil
}

// WriteItem stores a single record under its own dedicated key.
func (c *Collections) WriteItem(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := c.store.Put(c.key(name), data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// DeleteItem removes a dedicated-key record.
func (c *Collections) DeleteItem(name string) error {
	if err := c.store.Delete(c.key(name)); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}
