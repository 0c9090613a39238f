package usecase

import (
	"context"

	"recruit/internal/domain/directory"
	"recruit/internal/domain/entity"
)

// SearchCandidatesInput is a directory query from the recruiter dashboard.
// Page is 1-based; zero values select the first page and the default size.
type SearchCandidatesInput struct {
	Filter    directory.Filter
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// SearchCandidatesOutput is one page of matching candidates.
type SearchCandidatesOutput struct {
	Candidates   []entity.Candidate
	MatchedCount int
	TotalCount   int
	Page         int
	PageSize     int
}

// DirectoryUsecase lets recruiters browse student candidates.
type DirectoryUsecase interface {
	Search(ctx context.Context, input *SearchCandidatesInput) (*SearchCandidatesOutput, error)
}
