package village

import (
	"fmt"
	"sort"

	"gramgrid/internal/model"
)

// CreateCitizenIssue files a new issue. Issues start in the reported state
// with zero upvotes.
func (r *Repository) CreateCitizenIssue(ci model.CitizenIssue) (*model.CitizenIssue, error) {
	var issues []model.CitizenIssue
	if err := r.collections.Read(colIssues, &issues); err != nil {
		return nil, err
	}

	ci.ID = r.idgen.New()
	ci.Status = model.IssueReported
	ci.Upvotes = 0
	ci.CreatedAt = r.now()
	issues = append(issues, ci)

	if err := r.collections.Write(colIssues, issues); err != nil {
		return nil, err
	}
	r.logger.Debug("citizen issue created", "id", ci.ID, "title", ci.Title)
	return &ci, nil
}

// GetCitizenIssues returns a village's issues, most recent first.
func (r *Repository) GetCitizenIssues(villageID string) ([]model.CitizenIssue, error) {
	var issues []model.CitizenIssue
	if err := r.collections.Read(colIssues, &issues); err != nil {
		return nil, err
	}

	// Reverse insertion order first so the stable sort breaks created_at
	// ties toward the newest record.
	var out []model.CitizenIssue
	for i := len(issues) - 1; i >= 0; i-- {
		if issues[i].VillageID == villageID {
			out = append(out, issues[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

// UpdateIssueStatus moves an issue along its lifecycle
// (reported -> acknowledged -> in_progress -> resolved, forward only).
// Returns the updated record, or nil when the issue is absent.
func (r *Repository) UpdateIssueStatus(id string, status model.IssueStatus) (*model.CitizenIssue, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid issue status: %q", status)
	}

	var issues []model.CitizenIssue
	if err := r.collections.Read(colIssues, &issues); err != nil {
		return nil, err
	}
	for i := range issues {
		if issues[i].ID != id {
			continue
		}
		if !issues[i].Status.CanTransition(status) {
			return nil, fmt.Errorf("issue cannot move from %s to %s", issues[i].Status, status)
		}
		issues[i].Status = status
		if err := r.collections.Write(colIssues, issues); err != nil {
			return nil, err
		}
		return &issues[i], nil
	}
	return nil, nil
}

// UpvoteIssue increments an issue's upvote count by one.
// A missing ID is a no-op.
func (r *Repository) UpvoteIssue(id string) error {
	var issues []model.CitizenIssue
	if err := r.collections.Read(colIssues, &issues); err != nil {
		return err
	}
	for i := range issues {
		if issues[i].ID == id {
			issues[i].Upvotes++
			return r.collections.Write(colIssues, issues)
		}
	}
	return nil
}
