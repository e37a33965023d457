package client

import "time"

// Flashcard is a stored flashcard as returned by the API.
type Flashcard struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Source       string    `json:"source"`
	GenerationID *string   `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateFlashcardRequest is one flashcard to create.
type CreateFlashcardRequest struct {
	Front        string  `json:"front"`
	Back         string  `json:"back"`
	Source       string  `json:"source"`
	GenerationID *string `json:"generation_id,omitempty"`
}

// UpdateFlashcardRequest lists the fields to change. Nil fields are omitted.
type UpdateFlashcardRequest struct {
	Front *string `json:"front,omitempty"`
	Back  *string `json:"back,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	Limit       int `json:"limit"`
}

// FlashcardPage is one page of flashcards.
type FlashcardPage struct {
	Data       []Flashcard `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// ListFlashcardsParams filters a flashcard listing. Zero values are omitted.
type ListFlashcardsParams struct {
	Page   int
	Limit  int
	Search string
}

// Candidate is a flashcard proposed by the AI.
type Candidate struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
}

// GenerationResult is the response of a generation request.
// GenerationDuration is in milliseconds.
type GenerationResult struct {
	GenerationID       string      `json:"generation_id"`
	Model              *string     `json:"model"`
	SourceTextHash     string      `json:"source_text_hash"`
	SourceTextLength   int         `json:"source_text_length"`
	GeneratedCount     int         `json:"generated_count"`
	RejectedCount      *int        `json:"rejected_count"`
	GenerationDuration int64       `json:"generation_duration"`
	CreatedAt          time.Time   `json:"created_at"`
	Candidates         []Candidate `json:"candidates"`
}

// Generation is a stored generation record.
type Generation struct {
	ID                    string    `json:"id"`
	Model                 *string   `json:"model"`
	SourceTextHash        string    `json:"source_text_hash"`
	SourceTextLength      int       `json:"source_text_length"`
	GeneratedCount        int       `json:"generated_count"`
	AcceptedUneditedCount *int      `json:"accepted_unedited_count"`
	AcceptedEditedCount   *int      `json:"accepted_edited_count"`
	RejectedCount         *int      `json:"rejected_count"`
	GenerationDuration    int64     `json:"generation_duration"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// GenerationStats are the review outcome counters for a generation.
type GenerationStats struct {
	AcceptedUnedited int `json:"accepted_unedited_count"`
	AcceptedEdited   int `json:"accepted_edited_count"`
	Rejected         int `json:"rejected_count"`
}

// GenerationError is one failed generation attempt.
type GenerationError struct {
	ID               string    `json:"id"`
	Model            string    `json:"model"`
	SourceTextLength int       `json:"source_text_length"`
	ErrorCode        string    `json:"error_code"`
	ErrorMessage     string    `json:"error_message"`
	CreatedAt        time.Time `json:"created_at"`
}
