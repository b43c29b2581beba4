package village_test

import (
	"testing"

	"gramgrid/internal/model"
	"gramgrid/internal/testutil"
)

func addPrediction(t *testing.T, f *testutil.Fixture, assetID, date string) *model.MaintenancePrediction {
	t.Helper()
	p, err := f.Repo.CreatePrediction(model.MaintenancePrediction{
		AssetID:              assetID,
		PredictedFailureDate: date,
		FailureType:          "bearing wear",
		ConfidenceScore:      0.8,
	})
	if err != nil {
		t.Fatalf("CreatePrediction() error: %v", err)
	}
	return p
}

func TestRepository_CreatePredictionValidatesConfidence(t *testing.T) {
	f := testutil.NewFixture(t)

	if _, err := f.Repo.CreatePrediction(model.MaintenancePrediction{AssetID: "a1", ConfidenceScore: 1.5}); err == nil {
		t.Error("CreatePrediction() accepted confidence > 1")
	}
	if _, err := f.Repo.CreatePrediction(model.MaintenancePrediction{AssetID: "a1", ConfidenceScore: -0.1}); err == nil {
		t.Error("CreatePrediction() accepted negative confidence")
	}

	// New predictions are always unresolved, even if the caller says otherwise.
	p, err := f.Repo.CreatePrediction(model.MaintenancePrediction{AssetID: "a1", ConfidenceScore: 0.5, IsResolved: true})
	if err != nil {
		t.Fatalf("CreatePrediction() error: %v", err)
	}
	if p.IsResolved {
		t.Error("CreatePrediction() kept is_resolved=true on a new record")
	}
}

func TestRepository_GetMaintenancePredictionsOrderAndFilter(t *testing.T) {
	f := testutil.NewFixture(t)

	addPrediction(t, f, "a1", "2024-03-01")
	addPrediction(t, f, "a2", "2024-01-20")
	addPrediction(t, f, "a1", "2024-02-10")

	all, err := f.Repo.GetMaintenancePredictions("")
	if err != nil {
		t.Fatalf("GetMaintenancePredictions() error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetMaintenancePredictions(\"\") = %d, want 3", len(all))
	}
	wantDates := []string{"2024-01-20", "2024-02-10", "2024-03-01"}
	for i, want := range wantDates {
		if all[i].PredictedFailureDate != want {
			t.Errorf("all[%d].PredictedFailureDate = %q, want %q", i, all[i].PredictedFailureDate, want)
		}
	}

	onlyA1, err := f.Repo.GetMaintenancePredictions("a1")
	if err != nil {
		t.Fatalf("GetMaintenancePredictions(a1) error: %v", err)
	}
	if len(onlyA1) != 2 {
		t.Fatalf("GetMaintenancePredictions(a1) = %d, want 2", len(onlyA1))
	}
	for _, p := range onlyA1 {
		if p.AssetID != "a1" {
			t.Errorf("filtered result contains asset %q", p.AssetID)
		}
	}
}

func TestRepository_MarkPredictionResolved(t *testing.T) {
	f := testutil.NewFixture(t)

	p := addPrediction(t, f, "a1", "2024-02-01")

	if err := f.Repo.MarkPredictionResolved(p.ID); err != nil {
		t.Fatalf("MarkPredictionResolved() error: %v", err)
	}

	remaining, err := f.Repo.GetMaintenancePredictions("")
	if err != nil {
		t.Fatalf("GetMaintenancePredictions() error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("resolved prediction still listed: %+v", remaining)
	}

	// Resolving again, or resolving an unknown ID, is a quiet no-op.
	if err := f.Repo.MarkPredictionResolved(p.ID); err != nil {
		t.Errorf("MarkPredictionResolved() second call error: %v", err)
	}
	if err := f.Repo.MarkPredictionResolved("no-such-id"); err != nil {
		t.Errorf("MarkPredictionResolved() unknown ID error: %v", err)
	}
}
