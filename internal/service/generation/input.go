package generation

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/validation"
)

// GenerateInput holds the parameters for a generation request.
type GenerateInput struct {
	SourceText string  `json:"source_text"`
	Model      *string `json:"model" validate:"omitnil,min=1,max=100"`
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	n := utf8.RuneCountInString(i.SourceText)
	switch {
	case n < domain.MinSourceTextLength:
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "must be at least 1000 characters"})
	case n > domain.MaxSourceTextLength:
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "must be at most 10000 characters"})
	}

	errs = append(errs, validation.Struct(i, "")...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStatsInput holds the review outcome for a generation.
type UpdateStatsInput struct {
	ID               uuid.UUID `json:"-"`
	AcceptedUnedited *int      `json:"accepted_unedited_count" validate:"required,gte=0"`
	AcceptedEdited   *int      `json:"accepted_edited_count"   validate:"required,gte=0"`
	Rejected         *int      `json:"rejected_count"          validate:"required,gte=0"`
}

// Validate checks that every counter is present and non-negative.
// The sum check needs the stored generation and happens in UpdateStats.
func (i UpdateStatsInput) Validate() error {
	if errs := validation.Struct(i, ""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateStatsInput) stats() domain.GenerationStats {
	return domain.GenerationStats{
		AcceptedUnedited: *i.AcceptedUnedited,
		AcceptedEdited:   *i.AcceptedEdited,
		Rejected:         *i.Rejected,
	}
}

// ListInput holds pagination parameters.
type ListInput struct {
	Page  int `json:"page"  validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if errs := validation.Struct(i, ""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
