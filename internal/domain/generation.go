package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source text bounds accepted by the generation endpoint.
const (
	MinSourceTextLength = 1000
	MaxSourceTextLength = 10000
)

// Generation is the record of one AI (or manual) batch-creation event.
// Model is nil for a manual batch. Review statistics stay nil until a
// review session reports them.
type Generation struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Model                 *string
	SourceTextHash        string
	SourceTextLength      int
	GeneratedCount        int
	AcceptedUneditedCount *int
	AcceptedEditedCount   *int
	RejectedCount         *int
	GenerationDuration    time.Duration
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// GenerationStats are the review outcome counters reported back for a generation.
type GenerationStats struct {
	AcceptedUnedited int
	AcceptedEdited   int
	Rejected         int
}

// Total returns the sum of all counters.
func (s GenerationStats) Total() int {
	return s.AcceptedUnedited + s.AcceptedEdited + s.Rejected
}

// CandidateProposal is one flashcard proposed by the AI collaborator.
type CandidateProposal struct {
	Front  string          `json:"front"`
	Back   string          `json:"back"`
	Source FlashcardSource `json:"source"`
}

// GenerationErrorLog records a failed AI invocation.
type GenerationErrorLog struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Model            string
	SourceTextHash   string
	SourceTextLength int
	ErrorCode        string
	ErrorMessage     string
	CreatedAt        time.Time
}
