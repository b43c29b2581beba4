package village_test

import (
	"testing"

	"gramgrid/internal/model"
	"gramgrid/internal/testutil"
)

func submitReport(t *testing.T, f *testutil.Fixture, rep model.IssueReport) *model.IssueReport {
	t.Helper()
	got, err := f.Repo.SubmitReport(rep)
	if err != nil {
		t.Fatalf("SubmitReport() error: %v", err)
	}
	return got
}

func TestRepository_SubmitReportDefaults(t *testing.T) {
	f := testutil.NewFixture(t)

	rep := submitReport(t, f, model.IssueReport{ReporterName: "Sita Devi", Title: "Leaking tap"})
	if rep.Urgency != model.UrgencyMedium {
		t.Errorf("urgency = %q, want medium default", rep.Urgency)
	}
	if rep.Status != model.ReportPending {
		t.Errorf("status = %q, want pending", rep.Status)
	}

	if _, err := f.Repo.SubmitReport(model.IssueReport{Title: "Bad", Urgency: "urgent-ish"}); err == nil {
		t.Error("SubmitReport() accepted an unknown urgency")
	}
}

func TestRepository_SearchReports(t *testing.T) {
	f := testutil.NewFixture(t)

	submitReport(t, f, model.IssueReport{
		ReporterName: "Sita Devi",
		Title:        "Leaking tap",
		Description:  "constant drip near the school",
		Category:     "water",
		City:         "Rampur",
	})
	submitReport(t, f, model.IssueReport{
		ReporterName: "Mohan Lal",
		Title:        "Pothole on main road",
		Description:  "axle-breaking hole",
		Category:     "roads",
		City:         "Sundarpur",
	})

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "matches title case-insensitively", query: "LEAKING", wantCount: 1},
		{name: "matches reporter name", query: "mohan", wantCount: 1},
		{name: "matches description", query: "school", wantCount: 1},
		{name: "matches category", query: "roads", wantCount: 1},
		{name: "matches city", query: "rampur", wantCount: 1},
		{name: "empty query matches all", query: "", wantCount: 2},
		{name: "whitespace query matches all", query: "   ", wantCount: 2},
		{name: "no match", query: "electricity", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Repo.SearchReports(tt.query)
			if err != nil {
				t.Fatalf("SearchReports(%q) error: %v", tt.query, err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("SearchReports(%q) = %d reports, want %d", tt.query, len(got), tt.wantCount)
			}
		})
	}
}

func TestRepository_SearchReportsMatchesID(t *testing.T) {
	f := testutil.NewFixture(t)

	rep := submitReport(t, f, model.IssueReport{Title: "Leaking tap"})

	got, err := f.Repo.SearchReports(rep.ID)
	if err != nil {
		t.Fatalf("SearchReports() error: %v", err)
	}
	if len(got) != 1 || got[0].ID != rep.ID {
		t.Errorf("SearchReports(by ID) = %+v, want the one report", got)
	}
}

func TestRepository_UpdateReportStatus(t *testing.T) {
	f := testutil.NewFixture(t)

	rep := submitReport(t, f, model.IssueReport{Title: "Leaking tap"})

	got, err := f.Repo.UpdateReportStatus(rep.ID, model.ReportAssigned)
	if err != nil {
		t.Fatalf("UpdateReportStatus() error: %v", err)
	}
	if got == nil || got.Status != model.ReportAssigned {
		t.Errorf("UpdateReportStatus() = %+v, want assigned", got)
	}

	// The lifecycle is forward-only.
	if _, err := f.Repo.UpdateReportStatus(rep.ID, model.ReportPending); err == nil {
		t.Error("UpdateReportStatus() allowed a backward move")
	}

	missing, err := f.Repo.UpdateReportStatus("no-such-id", model.ReportClosed)
	if err != nil {
		t.Fatalf("UpdateReportStatus() error: %v", err)
	}
	if missing != nil {
		t.Errorf("UpdateReportStatus() for unknown report = %+v, want nil", missing)
	}
}

func TestRepository_ReportsDisjointFromCitizenIssues(t *testing.T) {
	f := testutil.NewFixture(t)

	submitReport(t, f, model.IssueReport{Title: "Leaking tap"})

	// Issue reports never show up in the citizen issue collection.
	issues, err := f.Repo.GetCitizenIssues("v1")
	if err != nil {
		t.Fatalf("GetCitizenIssues() error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issue report leaked into citizen issues: %+v", issues)
	}
}
