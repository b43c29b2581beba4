package village

import (
	"fmt"

	"gramgrid/internal/model"
)

// CreateAsset adds an infrastructure asset and returns the stored record.
// The health score must be within [0,100]; the status defaults to active.
func (r *Repository) CreateAsset(a model.InfrastructureAsset) (*model.InfrastructureAsset, error) {
	if a.HealthScore < 0 || a.HealthScore > 100 {
		return nil, fmt.Errorf("health score %.1f out of range [0,100]", a.HealthScore)
	}
	if a.Status == "" {
		a.Status = model.AssetActive
	}
	if !a.Status.Valid() {
		return nil, fmt.Errorf("invalid asset status: %q", a.Status)
	}

	var assets []model.InfrastructureAsset
	if err := r.collections.Read(colAssets, &assets); err != nil {
		return nil, err
	}

	a.ID = r.idgen.New()
	a.CreatedAt = r.now()
	assets = append(assets, a)

	if err := r.collections.Write(colAssets, assets); err != nil {
		return nil, err
	}
	r.logger.Debug("asset created", "id", a.ID, "type", a.AssetType)
	return &a, nil
}

// GetAssetByID returns the asset with the given ID, or nil if absent.
func (r *Repository) GetAssetByID(id string) (*model.InfrastructureAsset, error) {
	var assets []model.InfrastructureAsset
	if err := r.collections.Read(colAssets, &assets); err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].ID == id {
			return &assets[i], nil
		}
	}
	return nil, nil
}

// GetAssetsByVillage returns all assets with a matching village ID,
// in insertion order.
func (r *Repository) GetAssetsByVillage(villageID string) ([]model.InfrastructureAsset, error) {
	var assets []model.InfrastructureAsset
	if err := r.collections.Read(colAssets, &assets); err != nil {
		return nil, err
	}
	var out []model.InfrastructureAsset
	for _, a := range assets {
		if a.VillageID == villageID {
			out = append(out, a)
		}
	}
	return out, nil
}

// UpdateAssetHealth sets an asset's health score. The score must be within
// [0,100]. Returns the updated record, or nil when the asset is absent.
func (r *Repository) UpdateAssetHealth(id string, score float64) (*model.InfrastructureAsset, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("health score %.1f out of range [0,100]", score)
	}

	var assets []model.InfrastructureAsset
	if err := r.collections.Read(colAssets, &assets); err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].ID == id {
			assets[i].HealthScore = score
			if err := r.collections.Write(colAssets, assets); err != nil {
				return nil, err
			}
			return &assets[i], nil
		}
	}
	return nil, nil
}

// UpdateAssetStatus sets an asset's operational status.
// Returns the updated record, or nil when the asset is absent.
func (r *Repository) UpdateAssetStatus(id string, status model.AssetStatus) (*model.InfrastructureAsset, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid asset status: %q", status)
	}

	var assets []model.InfrastructureAsset
	if err := r.collections.Read(colAssets, &assets); err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].ID == id {
			assets[i].Status = status
			if err := r.collections.Write(colAssets, assets); err != nil {
				return nil, err
			}
			return &assets[i], nil
		}
	}
	return nil, nil
}
