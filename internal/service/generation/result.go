package generation

import "github.com/heartmarshall/tenxcards-backend/internal/domain"

// GenerateResult is a stored generation together with the proposed candidates.
type GenerateResult struct {
	Generation domain.Generation
	Candidates []domain.CandidateProposal
}

// ListResult is one page of generations.
type ListResult struct {
	Items      []domain.Generation
	Pagination domain.Pagination
}
