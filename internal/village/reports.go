package village

import (
	"fmt"
	"strings"

	"gramgrid/internal/model"
)

// The issue-report silo is an independent intake feature. It shares no
// records or lifecycle with the citizen_issues collection even though both
// model the same real-world concept.

// SubmitReport files a standalone issue report. Urgency defaults to medium;
// reports start in the pending state.
func (r *Repository) SubmitReport(rep model.IssueReport) (*model.IssueReport, error) {
	if rep.Urgency == "" {
		rep.Urgency = model.UrgencyMedium
	}
	if !rep.Urgency.Valid() {
		return nil, fmt.Errorf("invalid urgency: %q", rep.Urgency)
	}

	var reports []model.IssueReport
	if err := r.collections.Read(colReports, &reports); err != nil {
		return nil, err
	}

	rep.ID = r.idgen.New()
	rep.Status = model.ReportPending
	rep.CreatedAt = r.now()
	reports = append(reports, rep)

	if err := r.collections.Write(colReports, reports); err != nil {
		return nil, err
	}
	r.logger.Debug("issue report submitted", "id", rep.ID)
	return &rep, nil
}

// GetReports returns all issue reports in insertion order.
func (r *Repository) GetReports() ([]model.IssueReport, error) {
	var reports []model.IssueReport
	if err := r.collections.Read(colReports, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReportByID returns the report with the given ID, or nil if absent.
func (r *Repository) GetReportByID(id string) (*model.IssueReport, error) {
	var reports []model.IssueReport
	if err := r.collections.Read(colReports, &reports); err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, nil
}

// UpdateReportStatus moves a report along its lifecycle (forward only).
// Returns the updated record, or nil when the report is absent.
func (r *Repository) UpdateReportStatus(id string, status model.ReportStatus) (*model.IssueReport, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid report status: %q", status)
	}

	var reports []model.IssueReport
	if err := r.collections.Read(colReports, &reports); err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID != id {
			continue
		}
		if !reports[i].Status.CanTransition(status) {
			return nil, fmt.Errorf("report cannot move from %s to %s", reports[i].Status, status)
		}
		reports[i].Status = status
		if err := r.collections.Write(colReports, reports); err != nil {
			return nil, err
		}
		return &reports[i], nil
	}
	return nil, nil
}

// SearchReports returns reports whose id, reporter name, title, description,
// category, or city contains the query, case-insensitively. No ranking; an
// empty query matches everything.
func (r *Repository) SearchReports(query string) ([]model.IssueReport, error) {
	reports, err := r.GetReports()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return reports, nil
	}

	var out []model.IssueReport
	for _, rep := range reports {
		haystacks := []string{
			rep.ID,
			rep.ReporterName,
			rep.Title,
			rep.Description,
			rep.Category,
			rep.City,
		}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), q) {
				out = append(out, rep)
				break
			}
		}
	}
	return out, nil
}
