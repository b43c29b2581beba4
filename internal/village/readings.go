package village

import (
	"sort"

	"gramgrid/internal/model"
)

// defaultReadingLimit caps GetSensorReadings when the caller passes no limit.
const defaultReadingLimit = 100

// AddSensorReading appends a reading. Readings are append-only and never
// mutated afterwards.
func (r *Repository) AddSensorReading(sr model.SensorReading) (*model.SensorReading, error) {
	var readings []model.SensorReading
	if err := r.collections.Read(colReadings, &readings); err != nil {
		return nil, err
	}

	sr.ID = r.idgen.New()
	if sr.Timestamp == "" {
		sr.Timestamp = r.now()
	}
	readings = append(readings, sr)

	if err := r.collections.Write(colReadings, readings); err != nil {
		return nil, err
	}
	return &sr, nil
}

// GetSensorReadings returns readings for an asset, newest first, truncated
// to limit. A limit <= 0 means the default of 100.
func (r *Repository) GetSensorReadings(assetID string, limit int) ([]model.SensorReading, error) {
	if limit <= 0 {
		limit = defaultReadingLimit
	}

	var readings []model.SensorReading
	if err := r.collections.Read(colReadings, &readings); err != nil {
		return nil, err
	}

	var out []model.SensorReading
	for _, sr := range readings {
		if sr.AssetID == assetID {
			out = append(out, sr)
		}
	}

	// RFC 3339 UTC timestamps order lexicographically.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
