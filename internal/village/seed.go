package village

import (
	"fmt"
	"time"

	"gramgrid/internal/model"
)

// Demo credentials created by the initial seed.
const (
	SeedAdminEmail    = "admin@village.gov.in"
	SeedAdminPassword = "admin123"
	SeedUserEmail     = "rajesh@village.com"
	SeedUserPassword  = "rajesh123"
)

type seedSensor struct {
	sensorType string
	unit       string
	base       float64
	step       float64
}

type seedAsset struct {
	assetType   string
	name        string
	health      float64
	sensors     []seedSensor
	failureType string
	daysOut     int
	confidence  float64
	cost        float64
	actions     []string
}

var seedAssets = []seedAsset{
	{
		assetType: "water_pump", name: "Main Water Pump", health: 72,
		sensors: []seedSensor{
			{"flow_rate", "L/min", 118, 1.6},
			{"pressure", "bar", 3.1, 0.05},
		},
		failureType: "bearing wear", daysOut: 21, confidence: 0.82,
		cost: 18500, actions: []string{"replace bearings", "lubricate shaft"},
	},
	{
		assetType: "transformer", name: "Ward 2 Transformer", health: 88,
		sensors: []seedSensor{
			{"voltage", "V", 228, 0.9},
			{"temperature", "C", 61, 0.7},
		},
		failureType: "insulation degradation", daysOut: 45, confidence: 0.64,
		cost: 42000, actions: []string{"oil test", "thermal inspection"},
	},
	{
		assetType: "solar_array", name: "Panchayat Solar Array", health: 95,
		sensors: []seedSensor{
			{"power_output", "kW", 14.2, 0.3},
			{"temperature", "C", 44, 0.5},
		},
	},
	{
		assetType: "borewell", name: "East Borewell", health: 64,
		sensors: []seedSensor{
			{"water_level", "m", 18.4, 0.12},
		},
		failureType: "motor burnout", daysOut: 12, confidence: 0.91,
		cost: 9800, actions: []string{"replace motor winding"},
	},
}

// EnsureSeeded populates an empty store with one village, two demo users,
// a handful of assets with readings and predictions, and two citizen
// issues. Idempotent: if any users exist, this is a no-op. It is not safe
// against two processes seeding the same store concurrently.
//
// Any failure aborts and propagates: a half-seeded store makes the whole
// app unusable, so this is the one path that raises.
func (r *Repository) EnsureSeeded(hasher *PasswordHasher) error {
	count, err := r.CountUsers()
	if err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if count > 0 {
		r.logger.Debug("store already seeded", "users", count)
		return nil
	}

	vil, err := r.CreateVillage(model.Village{
		Name:       "Rampur",
		Population: 3240,
		Area:       12.5,
		Latitude:   26.8467,
		Longitude:  80.9462,
	})
	if err != nil {
		return fmt.Errorf("seeding village: %w", err)
	}

	_, err = r.CreateUser(model.User{
		FullName:     "Village Administrator",
		Email:        SeedAdminEmail,
		PasswordHash: hasher.Hash(SeedAdminPassword),
		Role:         model.RoleAdmin,
		VillageID:    vil.ID,
	})
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	citizen, err := r.CreateUser(model.User{
		FullName:     "Rajesh Kumar",
		Email:        SeedUserEmail,
		PasswordHash: hasher.Hash(SeedUserPassword),
		Role:         model.RoleUser,
		VillageID:    vil.ID,
	})
	if err != nil {
		return fmt.Errorf("seeding citizen user: %w", err)
	}

	now := r.clock.Now().UTC()
	for _, sa := range seedAssets {
		asset, err := r.CreateAsset(model.InfrastructureAsset{
			VillageID:        vil.ID,
			AssetType:        sa.assetType,
			Name:             sa.name,
			HealthScore:      sa.health,
			Status:           model.AssetActive,
			InstallationDate: now.AddDate(-3, 0, 0).Format("2006-01-02"),
		})
		if err != nil {
			return fmt.Errorf("seeding asset %s: %w", sa.name, err)
		}

		// Ten readings per sensor at hourly offsets into the past, with a
		// small deterministic wobble so charts have shape without RNG.
		for _, s := range sa.sensors {
			for i := 0; i < 10; i++ {
				value := s.base + s.step*float64(i%4) - s.step
				_, err := r.AddSensorReading(model.SensorReading{
					AssetID:      asset.ID,
					SensorType:   s.sensorType,
					Value:        value,
					Unit:         s.unit,
					Timestamp:    now.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
					QualityScore: 0.9 + 0.02*float64(i%5),
				})
				if err != nil {
					return fmt.Errorf("seeding readings for %s: %w", sa.name, err)
				}
			}
		}

		if sa.health < 90 {
			_, err := r.CreatePrediction(model.MaintenancePrediction{
				AssetID:              asset.ID,
				PredictedFailureDate: now.AddDate(0, 0, sa.daysOut).Format("2006-01-02"),
				FailureType:          sa.failureType,
				ConfidenceScore:      sa.confidence,
				EstimatedCost:        sa.cost,
				PreventionActions:    sa.actions,
			})
			if err != nil {
				return fmt.Errorf("seeding prediction for %s: %w", sa.name, err)
			}
		}
	}

	seedIssues := []model.CitizenIssue{
		{
			VillageID:  vil.ID,
			ReportedBy: citizen.ID,
			Title:      "Street light out near panchayat office",
			Category:   "electricity",
			Priority:   "medium",
		},
		{
			VillageID:  vil.ID,
			ReportedBy: citizen.ID,
			Title:      "Irregular water supply in ward 3",
			Category:   "water",
			Priority:   "high",
		},
	}
	for _, ci := range seedIssues {
		if _, err := r.CreateCitizenIssue(ci); err != nil {
			return fmt.Errorf("seeding citizen issue: %w", err)
		}
	}

	r.logger.Info("demo data seeded", "village", vil.Name, "assets", len(seedAssets))
	return nil
}
