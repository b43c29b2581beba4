package village

import (
	"fmt"

	"gramgrid/internal/model"
)

// CreateVillage registers a new village and returns the stored record.
func (r *Repository) CreateVillage(v model.Village) (*model.Village, error) {
	var villages []model.Village
	if err := r.collections.Read(colVillages, &villages); err != nil {
		return nil, err
	}

	v.ID = r.idgen.New()
	v.CreatedAt = r.now()
	villages = append(villages, v)

	if err := r.collections.Write(colVillages, villages); err != nil {
		return nil, err
	}
	r.logger.Debug("village created", "id", v.ID, "name", v.Name)
	return &v, nil
}

// GetVillageByID returns the village with the given ID, or nil if absent.
func (r *Repository) GetVillageByID(id string) (*model.Village, error) {
	var villages []model.Village
	if err := r.collections.Read(colVillages, &villages); err != nil {
		return nil, err
	}
	for i := range villages {
		if villages[i].ID == id {
			return &villages[i], nil
		}
	}
	return nil, nil
}

// GetVillages returns all villages in insertion order.
func (r *Repository) GetVillages() ([]model.Village, error) {
	var villages []model.Village
	if err := r.collections.Read(colVillages, &villages); err != nil {
		return nil, err
	}
	return villages, nil
}

// FirstVillageID returns the ID of the earliest-created village, or the
// sentinel default when no village exists yet.
func (r *Repository) FirstVillageID() (string, error) {
	villages, err := r.GetVillages()
	if err != nil {
		return "", fmt.Errorf("listing villages: %w", err)
	}
	if len(villages) == 0 {
		return DefaultVillageID, nil
	}
	return villages[0].ID, nil
}

// DefaultVillageID is the sentinel village reference used when a user is
// registered before any village exists.
const DefaultVillageID = "village_default"
