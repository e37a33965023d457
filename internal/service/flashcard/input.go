package flashcard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/validation"
)

// CreateFlashcardInput is one flashcard to create.
type CreateFlashcardInput struct {
	Front        string  `json:"front"         validate:"required,max=200"`
	Back         string  `json:"back"          validate:"required,max=500"`
	Source       string  `json:"source"        validate:"required,flashcard_source"`
	GenerationID *string `json:"generation_id" validate:"omitnil,uuid"`
}

func (i CreateFlashcardInput) trimmed() CreateFlashcardInput {
	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
	return i
}

// toNew converts a validated input into the storage shape.
func (i CreateFlashcardInput) toNew() domain.NewFlashcard {
	t := i.trimmed()
	nf := domain.NewFlashcard{
		Front:  t.Front,
		Back:   t.Back,
		Source: domain.FlashcardSource(t.Source),
	}
	if t.GenerationID != nil {
		id := uuid.MustParse(*t.GenerationID)
		nf.GenerationID = &id
	}
	return nf
}

// CreateFlashcardsInput is a bulk create command. Batch records whether the
// request body was an array; it decides how field errors are named.
type CreateFlashcardsInput struct {
	Cards []CreateFlashcardInput
	Batch bool
}

// Validate checks every card and collects all errors. Errors of the i-th card
// are prefixed with "i." when the request was a batch.
func (i CreateFlashcardsInput) Validate() error {
	if len(i.Cards) == 0 {
		return domain.NewValidationError("flashcards", "at least one flashcard is required")
	}

	var errs []domain.FieldError
	for idx, card := range i.Cards {
		prefix := ""
		if i.Batch {
			prefix = fmt.Sprintf("%d.", idx)
		}
		errs = append(errs, validation.Struct(card.trimmed(), prefix)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateFlashcardInput holds a partial update. Nil fields are left unchanged.
type UpdateFlashcardInput struct {
	ID    uuid.UUID `json:"-"`
	Front *string   `json:"front" validate:"omitnil,min=1,max=200"`
	Back  *string   `json:"back"  validate:"omitnil,min=1,max=500"`
}

func (i UpdateFlashcardInput) trimmed() UpdateFlashcardInput {
	if i.Front != nil {
		v := strings.TrimSpace(*i.Front)
		i.Front = &v
	}
	if i.Back != nil {
		v := strings.TrimSpace(*i.Back)
		i.Back = &v
	}
	return i
}

// Validate checks the provided fields. An update with no fields passes here
// and is rejected by Update.
func (i UpdateFlashcardInput) Validate() error {
	if errs := validation.Struct(i.trimmed(), ""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateFlashcardInput) patch() domain.FlashcardPatch {
	t := i.trimmed()
	return domain.FlashcardPatch{Front: t.Front, Back: t.Back}
}

// ListFlashcardsInput holds search and pagination parameters.
type ListFlashcardsInput struct {
	Page   int     `json:"page"   validate:"min=1"`
	Limit  int     `json:"limit"  validate:"min=1,max=100"`
	Search *string `json:"search" validate:"omitnil,max=200"`
}

// Validate checks all fields and collects all errors.
func (i ListFlashcardsInput) Validate() error {
	if errs := validation.Struct(i, ""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
