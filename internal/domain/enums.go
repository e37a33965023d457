package domain

// FlashcardSource is the provenance tag of a flashcard.
type FlashcardSource string

const (
	SourceAIFull   FlashcardSource = "ai-full"
	SourceAIEdited FlashcardSource = "ai-edited"
	SourceManual   FlashcardSource = "manual"
)

func (s FlashcardSource) String() string { return string(s) }

func (s FlashcardSource) IsValid() bool {
	switch s {
	case SourceAIFull, SourceAIEdited, SourceManual:
		return true
	}
	return false
}

// IsAI reports whether the source denotes AI-produced content.
func (s FlashcardSource) IsAI() bool {
	return s == SourceAIFull || s == SourceAIEdited
}
