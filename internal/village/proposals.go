package village

import (
	"fmt"

	"gramgrid/internal/model"
)

// CreateProposal puts a new item up for village voting.
func (r *Repository) CreateProposal(p model.Proposal) (*model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.collections.Read(colProposals, &proposals); err != nil {
		return nil, err
	}

	p.ID = r.idgen.New()
	if p.Status == "" {
		p.Status = "open"
	}
	p.CreatedAt = r.now()
	proposals = append(proposals, p)

	if err := r.collections.Write(colProposals, proposals); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProposals returns a village's proposals in insertion order.
func (r *Repository) GetProposals(villageID string) ([]model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.collections.Read(colProposals, &proposals); err != nil {
		return nil, err
	}
	var out []model.Proposal
	for _, p := range proposals {
		if p.VillageID == villageID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProposalByID returns the proposal with the given ID, or nil if absent.
func (r *Repository) GetProposalByID(id string) (*model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.collections.Read(colProposals, &proposals); err != nil {
		return nil, err
	}
	for i := range proposals {
		if proposals[i].ID == id {
			return &proposals[i], nil
		}
	}
	return nil, nil
}

// SubmitVote records a user's vote on a proposal. At most one vote exists
// per (proposal, user): any prior vote is removed first, so re-voting
// replaces rather than duplicates.
func (r *Repository) SubmitVote(proposalID, userID string, voteType model.VoteType) (*model.Vote, error) {
	if !voteType.Valid() {
		return nil, fmt.Errorf("invalid vote type: %q", voteType)
	}

	var votes []model.Vote
	if err := r.collections.Read(colVotes, &votes); err != nil {
		return nil, err
	}

	kept := votes[:0]
	for _, v := range votes {
		if v.ProposalID == proposalID && v.UserID == userID {
			continue
		}
		kept = append(kept, v)
	}

	vote := model.Vote{
		ID:         r.idgen.New(),
		ProposalID: proposalID,
		UserID:     userID,
		VoteType:   voteType,
		CreatedAt:  r.now(),
	}
	kept = append(kept, vote)

	if err := r.collections.Write(colVotes, kept); err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetVoteResults tallies for/against/abstain counts for a proposal.
func (r *Repository) GetVoteResults(proposalID string) (model.VoteResults, error) {
	var votes []model.Vote
	if err := r.collections.Read(colVotes, &votes); err != nil {
		return model.VoteResults{}, err
	}

	var results model.VoteResults
	for _, v := range votes {
		if v.ProposalID != proposalID {
			continue
		}
		switch v.VoteType {
		case model.VoteFor:
			results.For++
		case model.VoteAgainst:
			results.Against++
		case model.VoteAbstain:
			results.Abstain++
		}
	}
	return results, nil
}
