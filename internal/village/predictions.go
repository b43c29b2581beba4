package village

import (
	"fmt"
	"sort"

	"gramgrid/internal/model"
)

// CreatePrediction adds a maintenance prediction for an asset.
// The confidence score must be within [0,1].
func (r *Repository) CreatePrediction(p model.MaintenancePrediction) (*model.MaintenancePrediction, error) {
	if p.ConfidenceScore < 0 || p.ConfidenceScore > 1 {
		return nil, fmt.Errorf("confidence score %.2f out of range [0,1]", p.ConfidenceScore)
	}

	var predictions []model.MaintenancePrediction
	if err := r.collections.Read(colPredictions, &predictions); err != nil {
		return nil, err
	}

	p.ID = r.idgen.New()
	p.IsResolved = false
	predictions = append(predictions, p)

	if err := r.collections.Write(colPredictions, predictions); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMaintenancePredictions returns unresolved predictions, soonest
// predicted failure first. An empty assetID returns predictions for all
// assets; otherwise the result is further filtered to that asset.
func (r *Repository) GetMaintenancePredictions(assetID string) ([]model.MaintenancePrediction, error) {
	var predictions []model.MaintenancePrediction
	if err := r.collections.Read(colPredictions, &predictions); err != nil {
		return nil, err
	}

	var out []model.MaintenancePrediction
	for _, p := range predictions {
		if p.IsResolved {
			continue
		}
		if assetID != "" && p.AssetID != assetID {
			continue
		}
		out = append(out, p)
	}

	// YYYY-MM-DD dates order lexicographically.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PredictedFailureDate < out[j].PredictedFailureDate
	})
	return out, nil
}

// MarkPredictionResolved sets is_resolved on a prediction. Resolution is
// one-way and idempotent: a missing or already-resolved ID is a no-op,
// not an error.
func (r *Repository) MarkPredictionResolved(id string) error {
	var predictions []model.MaintenancePrediction
	if err := r.collections.Read(colPredictions, &predictions); err != nil {
		return err
	}

	for i := range predictions {
		if predictions[i].ID != id {
			continue
		}
		if predictions[i].IsResolved {
			return nil
		}
		predictions[i].IsResolved = true
		return r.collections.Write(colPredictions, predictions)
	}
	return nil
}
