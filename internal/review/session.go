package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// Local save failures. Neither reaches the network.
var (
	ErrNothingSelected = errors.New("no flashcards selected")
	ErrEmptyContent    = errors.New("all flashcards must have non-empty content")
)

var (
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrRejected         = errors.New("candidate is rejected")
	ErrCannotAccept     = errors.New("candidate needs front and back to be accepted")
	ErrUnknownField     = errors.New("unknown field")
	ErrSaveInProgress   = errors.New("save already in progress")
)

const candidateIDLength = 12

type flashcardCreator interface {
	CreateFlashcards(ctx context.Context, cards []client.CreateFlashcardRequest) ([]client.Flashcard, error)
}

// Session is the in-memory state of one review pass over a batch of
// candidates. It has a single owner and is not safe for concurrent use.
type Session struct {
	candidates []*Candidate
	byID       map[string]*Candidate
	saving     bool
	newID      func() (string, error)
}

// NewSession wraps AI proposals as pending candidates.
func NewSession(proposals []client.Candidate) (*Session, error) {
	s := &Session{
		byID:  make(map[string]*Candidate, len(proposals)),
		newID: func() (string, error) { return gonanoid.New(candidateIDLength) },
	}
	for _, p := range proposals {
		source := domain.FlashcardSource(p.Source)
		if !source.IsValid() {
			source = domain.SourceAIFull
		}
		if _, err := s.add(p.Front, p.Back, source, StatusPending); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) add(front, back string, source domain.FlashcardSource, status Status) (*Candidate, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("candidate id: %w", err)
	}
	c := &Candidate{
		ID:            id,
		Front:         front,
		Back:          back,
		OriginalFront: front,
		OriginalBack:  back,
		Source:        source,
		Status:        status,
	}
	s.candidates = append(s.candidates, c)
	s.byID[id] = c
	return c, nil
}

func (s *Session) get(id string) (*Candidate, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, id)
	}
	return c, nil
}

// Candidates returns a snapshot in insertion order.
func (s *Session) Candidates() []Candidate {
	out := make([]Candidate, len(s.candidates))
	for i, c := range s.candidates {
		out[i] = *c
	}
	return out
}

// Candidate returns a snapshot of one candidate.
func (s *Session) Candidate(id string) (Candidate, error) {
	c, err := s.get(id)
	if err != nil {
		return Candidate{}, err
	}
	return *c, nil
}

// UpdateText sets one field and reclassifies a selected candidate as
// accepted or edited to match the new text. Pending candidates stay pending.
func (s *Session) UpdateText(id string, field Field, value string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}
	if c.Status == StatusRejected {
		return ErrRejected
	}

	switch field {
	case FieldFront:
		c.Front = value
	case FieldBack:
		c.Back = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	if c.IsSelected() {
		c.Status = c.acceptedStatus()
	}
	return nil
}

// ToggleAccept moves a pending candidate to accepted (or edited) and a
// selected one back to pending. Rejected candidates are left untouched.
// A candidate without content cannot be accepted.
func (s *Session) ToggleAccept(id string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}

	switch c.Status {
	case StatusRejected:
		return nil
	case StatusAccepted, StatusEdited:
		c.Status = StatusPending
	case StatusPending:
		if !c.HasContent() {
			return ErrCannotAccept
		}
		c.Status = c.acceptedStatus()
	}
	return nil
}

// Reject marks the candidate rejected for the rest of the session.
func (s *Session) Reject(id string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}
	c.Status = StatusRejected
	return nil
}

// AddManual appends an empty, already accepted, user-authored candidate.
func (s *Session) AddManual() (Candidate, error) {
	c, err := s.add("", "", domain.SourceManual, StatusAccepted)
	if err != nil {
		return Candidate{}, err
	}
	return *c, nil
}

// SelectedCount is the number of accepted or edited candidates.
func (s *Session) SelectedCount() int {
	n := 0
	for _, c := range s.candidates {
		if c.IsSelected() {
			n++
		}
	}
	return n
}

// IsSaving reports whether Save is running.
func (s *Session) IsSaving() bool {
	return s.saving
}

// Save creates the selected candidates in one request. generationID links
// the cards to their generation and may be empty. Validation happens
// locally before any request is made.
func (s *Session) Save(ctx context.Context, creator flashcardCreator, generationID string) ([]client.Flashcard, error) {
	if s.saving {
		return nil, ErrSaveInProgress
	}

	cmds, err := s.commands(generationID)
	if err != nil {
		return nil, err
	}

	s.saving = true
	defer func() { s.saving = false }()

	created, err := creator.CreateFlashcards(ctx, cmds)
	if err != nil {
		return nil, fmt.Errorf("save flashcards: %w", err)
	}
	return created, nil
}

func (s *Session) commands(generationID string) ([]client.CreateFlashcardRequest, error) {
	var genID *string
	if generationID != "" {
		genID = &generationID
	}

	var cmds []client.CreateFlashcardRequest
	for _, c := range s.candidates {
		if !c.IsSelected() {
			continue
		}
		if !c.HasContent() {
			return nil, ErrEmptyContent
		}
		cmds = append(cmds, client.CreateFlashcardRequest{
			Front:        strings.TrimSpace(c.Front),
			Back:         strings.TrimSpace(c.Back),
			Source:       c.FinalSource().String(),
			GenerationID: genID,
		})
	}
	if len(cmds) == 0 {
		return nil, ErrNothingSelected
	}
	return cmds, nil
}

// Stats summarises the outcome for AI candidates. Pending AI candidates
// count as rejected; manual candidates are not counted.
func (s *Session) Stats() client.GenerationStats {
	var st client.GenerationStats
	for _, c := range s.candidates {
		if c.Source == domain.SourceManual {
			continue
		}
		switch c.Status {
		case StatusAccepted:
			st.AcceptedUnedited++
		case StatusEdited:
			st.AcceptedEdited++
		default:
			st.Rejected++
		}
	}
	return st
}
