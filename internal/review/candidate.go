// Package review holds the client-side review of generated flashcard
// candidates: edit detection, acceptance rules and the bulk save of the
// accepted subset.
package review

import (
	"strings"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// Status is the review state of a candidate.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusEdited   Status = "edited"
	StatusRejected Status = "rejected"
)

// Field names a mutable text field of a candidate.
type Field string

const (
	FieldFront Field = "front"
	FieldBack  Field = "back"
)

// Candidate is a flashcard proposal under review. OriginalFront and
// OriginalBack are captured on creation and never change.
type Candidate struct {
	ID            string
	Front         string
	Back          string
	OriginalFront string
	OriginalBack  string
	Source        domain.FlashcardSource
	Status        Status
}

// IsEdited reports whether the text differs from the original snapshot.
func (c Candidate) IsEdited() bool {
	return c.Front != c.OriginalFront || c.Back != c.OriginalBack
}

// HasContent reports whether both sides are non-empty after trimming.
func (c Candidate) HasContent() bool {
	return strings.TrimSpace(c.Front) != "" && strings.TrimSpace(c.Back) != ""
}

// IsSelected reports whether the candidate will be saved.
func (c Candidate) IsSelected() bool {
	return c.Status == StatusAccepted || c.Status == StatusEdited
}

// FinalSource is the source tag persisted for the candidate. Manual cards
// stay manual; AI cards become ai-edited once their text changed.
func (c Candidate) FinalSource() domain.FlashcardSource {
	if c.Source == domain.SourceManual {
		return domain.SourceManual
	}
	if c.IsEdited() {
		return domain.SourceAIEdited
	}
	return domain.SourceAIFull
}

// acceptedStatus is the selected status matching the current text.
func (c Candidate) acceptedStatus() Status {
	if c.IsEdited() {
		return StatusEdited
	}
	return StatusAccepted
}
