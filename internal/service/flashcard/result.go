package flashcard

import "github.com/heartmarshall/tenxcards-backend/internal/domain"

// ListResult is one page of flashcards.
type ListResult struct {
	Items      []domain.Flashcard
	Pagination domain.Pagination
}
