package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by validation and storage constraints.
const (
	MaxFrontLength  = 200
	MaxBackLength   = 500
	MaxSearchLength = 200
)

// Flashcard is a persisted front/back study item owned by a user.
type Flashcard struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Front        string
	Back         string
	Source       FlashcardSource
	GenerationID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFlashcard holds the fields of a flashcard about to be inserted.
type NewFlashcard struct {
	Front        string
	Back         string
	Source       FlashcardSource
	GenerationID *uuid.UUID
}

// FlashcardPatch lists the fields to change on an existing flashcard.
// Nil means "leave as is".
type FlashcardPatch struct {
	Front *string
	Back  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FlashcardPatch) IsEmpty() bool {
	return p.Front == nil && p.Back == nil
}

// FlashcardFilter contains search and pagination parameters for listing.
type FlashcardFilter struct {
	Search *string
	Limit  int
	Offset int
}
