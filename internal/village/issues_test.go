package village_test

import (
	"testing"

	"gramgrid/internal/model"
	"gramgrid/internal/testutil"
)

func fileIssue(t *testing.T, f *testutil.Fixture, villageID, title string) *model.CitizenIssue {
	t.Helper()
	ci, err := f.Repo.CreateCitizenIssue(model.CitizenIssue{
		VillageID:  villageID,
		ReportedBy: "u1",
		Title:      title,
		Category:   "water",
		Priority:   "medium",
	})
	if err != nil {
		t.Fatalf("CreateCitizenIssue() error: %v", err)
	}
	return ci
}

func TestRepository_CreateCitizenIssueDefaults(t *testing.T) {
	f := testutil.NewFixture(t)

	// Caller-supplied status and upvotes are ignored: every issue starts
	// reported with zero votes.
	ci, err := f.Repo.CreateCitizenIssue(model.CitizenIssue{
		VillageID: "v1",
		Title:     "Broken pipe",
		Status:    model.IssueResolved,
		Upvotes:   99,
	})
	if err != nil {
		t.Fatalf("CreateCitizenIssue() error: %v", err)
	}
	if ci.Status != model.IssueReported {
		t.Errorf("status = %q, want reported", ci.Status)
	}
	if ci.Upvotes != 0 {
		t.Errorf("upvotes = %d, want 0", ci.Upvotes)
	}
}

func TestRepository_GetCitizenIssuesMostRecentFirst(t *testing.T) {
	f := testutil.NewFixture(t)

	// All three share the same created_at second (fixed clock), so ordering
	// must fall back to newest-inserted-first.
	fileIssue(t, f, "v1", "first")
	fileIssue(t, f, "v1", "second")
	fileIssue(t, f, "v2", "elsewhere")
	fileIssue(t, f, "v1", "third")

	issues, err := f.Repo.GetCitizenIssues("v1")
	if err != nil {
		t.Fatalf("GetCitizenIssues() error: %v", err)
	}
	if len(issues) != 3 {
		t.Fatalf("GetCitizenIssues() = %d issues, want 3", len(issues))
	}
	wantOrder := []string{"third", "second", "first"}
	for i, want := range wantOrder {
		if issues[i].Title != want {
			t.Errorf("issues[%d].Title = %q, want %q", i, issues[i].Title, want)
		}
	}
}

func TestRepository_UpdateIssueStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    model.IssueStatus
		to      model.IssueStatus
		wantErr bool
	}{
		{name: "reported to acknowledged", from: model.IssueReported, to: model.IssueAcknowledged},
		{name: "skip ahead to resolved", from: model.IssueReported, to: model.IssueResolved},
		{name: "same state is a no-op", from: model.IssueInProgress, to: model.IssueInProgress},
		{name: "backward move rejected", from: model.IssueResolved, to: model.IssueReported, wantErr: true},
		{name: "in_progress back to acknowledged rejected", from: model.IssueInProgress, to: model.IssueAcknowledged, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.NewFixture(t)
			ci := fileIssue(t, f, "v1", "test issue")
			if tt.from != model.IssueReported {
				if _, err := f.Repo.UpdateIssueStatus(ci.ID, tt.from); err != nil {
					t.Fatalf("setup transition to %s error: %v", tt.from, err)
				}
			}

			got, err := f.Repo.UpdateIssueStatus(ci.ID, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateIssueStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil || got.Status != tt.to {
				t.Errorf("UpdateIssueStatus() = %+v, want status %q", got, tt.to)
			}
		})
	}
}

func TestRepository_UpdateIssueStatusUnknownIssue(t *testing.T) {
	f := testutil.NewFixture(t)

	got, err := f.Repo.UpdateIssueStatus("no-such-id", model.IssueAcknowledged)
	if err != nil {
		t.Fatalf("UpdateIssueStatus() error: %v", err)
	}
	if got != nil {
		t.Errorf("UpdateIssueStatus() for unknown issue = %+v, want nil", got)
	}

	if _, err := f.Repo.UpdateIssueStatus("no-such-id", "bogus"); err == nil {
		t.Error("UpdateIssueStatus() accepted an unknown status")
	}
}

func TestRepository_UpvoteIssue(t *testing.T) {
	f := testutil.NewFixture(t)
	ci := fileIssue(t, f, "v1", "upvoted issue")

	for i := 0; i < 3; i++ {
		if err := f.Repo.UpvoteIssue(ci.ID); err != nil {
			t.Fatalf("UpvoteIssue() error: %v", err)
		}
	}

	issues, err := f.Repo.GetCitizenIssues("v1")
	if err != nil {
		t.Fatalf("GetCitizenIssues() error: %v", err)
	}
	if issues[0].Upvotes != 3 {
		t.Errorf("upvotes = %d, want 3", issues[0].Upvotes)
	}

	// Unknown IDs are ignored.
	if err := f.Repo.UpvoteIssue("no-such-id"); err != nil {
		t.Errorf("UpvoteIssue() unknown ID error: %v", err)
	}
}
