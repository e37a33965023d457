package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tenxcards-backend/internal/review"
)

type reviewOptions struct {
	accept  []string
	reject  []string
	edits   []string
	manual  []string
	dryRun  bool
	discard bool
}

func newReviewCmd() *cobra.Command {
	var opts reviewOptions

	cmd := &cobra.Command{
		Use:   "review <generation-id>",
		Short: "Accept, edit or reject generated candidates and save the result",
		Long: `Review the candidates of a generation. Candidates are numbered from 1 as
printed by generate. Edits apply before acceptance, so an accepted candidate
with changed text is saved as ai-edited. Without any action flags the
candidates are listed.

Examples:
  tenxcards review <id> --accept 1,3 --reject 2
  tenxcards review <id> --edit "1:front=What is ATP?" --accept 1
  tenxcards review <id> --accept 1 --add "Question|Answer"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.accept, "accept", nil, "candidate numbers to accept")
	f.StringSliceVar(&opts.reject, "reject", nil, "candidate numbers to reject")
	f.StringArrayVar(&opts.edits, "edit", nil, `edit a candidate: "N:front=text" or "N:back=text"`)
	f.StringArrayVar(&opts.manual, "add", nil, `add a manual flashcard: "front|back"`)
	f.BoolVar(&opts.dryRun, "dry-run", false, "show the outcome without saving")
	f.BoolVar(&opts.discard, "discard", false, "drop the pending review without saving")
	return cmd
}

func runReview(cmd *cobra.Command, generationID string, opts reviewOptions) error {
	out := cmd.OutOrStdout()

	cache, err := newCache()
	if err != nil {
		return err
	}
	if opts.discard {
		return cache.Clear(generationID)
	}

	result, err := cache.Load(generationID)
	if err != nil {
		return err
	}

	session, err := review.NewSession(result.Candidates)
	if err != nil {
		return err
	}

	if opts.empty() {
		printCandidates(out, session.Candidates())
		return nil
	}

	if err := applyReview(session, opts); err != nil {
		return err
	}
	printCandidates(out, session.Candidates())

	stats := session.Stats()
	fmt.Fprintf(out, "\nselected %d; accepted %d, edited %d, rejected %d\n",
		session.SelectedCount(), stats.AcceptedUnedited, stats.AcceptedEdited, stats.Rejected)
	if opts.dryRun {
		return nil
	}

	api := newClient()
	created, err := session.Save(cmd.Context(), api, generationID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %d flashcards\n", len(created))

	// The flashcards exist now, so a rerun must not save them again.
	if err := cache.Clear(generationID); err != nil {
		return fmt.Errorf("flashcards saved but pending review not cleared: %w", err)
	}
	if _, err := api.UpdateGenerationStats(cmd.Context(), generationID, stats); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: generation stats not recorded: %v\n", err)
	}
	return nil
}

func (o reviewOptions) empty() bool {
	return len(o.accept) == 0 && len(o.reject) == 0 && len(o.edits) == 0 && len(o.manual) == 0
}

// applyReview runs edits, then acceptance, then rejection, then manual
// additions against the session.
func applyReview(s *review.Session, opts reviewOptions) error {
	all := s.Candidates()
	idAt := func(n int) (string, error) {
		if n < 1 || n > len(all) {
			return "", fmt.Errorf("candidate %d out of range 1..%d", n, len(all))
		}
		return all[n-1].ID, nil
	}

	for _, raw := range opts.edits {
		n, field, value, err := parseEdit(raw)
		if err != nil {
			return err
		}
		id, err := idAt(n)
		if err != nil {
			return err
		}
		if err := s.UpdateText(id, field, value); err != nil {
			return fmt.Errorf("edit %d: %w", n, err)
		}
	}

	accept, err := parseNumbers(opts.accept)
	if err != nil {
		return err
	}
	for _, n := range accept {
		id, err := idAt(n)
		if err != nil {
			return err
		}
		c, err := s.Candidate(id)
		if err != nil {
			return err
		}
		if c.IsSelected() {
			continue
		}
		if err := s.ToggleAccept(id); err != nil {
			return fmt.Errorf("accept %d: %w", n, err)
		}
	}

	reject, err := parseNumbers(opts.reject)
	if err != nil {
		return err
	}
	for _, n := range reject {
		id, err := idAt(n)
		if err != nil {
			return err
		}
		if err := s.Reject(id); err != nil {
			return err
		}
	}

	for _, raw := range opts.manual {
		front, back, ok := strings.Cut(raw, "|")
		if !ok {
			return fmt.Errorf("manual flashcard %q: want front|back", raw)
		}
		c, err := s.AddManual()
		if err != nil {
			return err
		}
		if err := s.UpdateText(c.ID, review.FieldFront, strings.TrimSpace(front)); err != nil {
			return err
		}
		if err := s.UpdateText(c.ID, review.FieldBack, strings.TrimSpace(back)); err != nil {
			return err
		}
	}
	return nil
}

// parseEdit splits "N:field=value".
func parseEdit(raw string) (int, review.Field, string, error) {
	num, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, "", "", fmt.Errorf("edit %q: want N:front=text or N:back=text", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, "", "", fmt.Errorf("edit %q: bad candidate number", raw)
	}
	name, value, ok := strings.Cut(rest, "=")
	if !ok {
		return 0, "", "", fmt.Errorf("edit %q: missing '='", raw)
	}

	field := review.Field(strings.TrimSpace(name))
	if field != review.FieldFront && field != review.FieldBack {
		return 0, "", "", fmt.Errorf("edit %q: field must be front or back", raw)
	}
	return n, field, value, nil
}

func parseNumbers(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("bad candidate number %q", r)
		}
		out = append(out, n)
	}
	return out, nil
}

func printCandidates(w io.Writer, cands []review.Candidate) {
	for i, c := range cands {
		fmt.Fprintf(w, "%3d. [%-8s] %s\n     %s\n", i+1, c.Status, c.Front, c.Back)
	}
}
