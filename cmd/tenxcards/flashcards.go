package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
)

func newFlashcardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flashcards",
		Aliases: []string{"fc"},
		Short:   "Manage stored flashcards",
	}
	cmd.AddCommand(newFlashcardsListCmd(), newFlashcardsGetCmd(), newFlashcardsDeleteCmd())
	return cmd
}

func newFlashcardsListCmd() *cobra.Command {
	var (
		params client.ListFlashcardsParams
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListFlashcards(cmd.Context(), params)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			printFlashcards(cmd.OutOrStdout(), page)
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 0, "page number (default 1)")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size 1..100 (default 20)")
	cmd.Flags().StringVar(&params.Search, "search", "", "match front or back text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

func newFlashcardsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := newClient().GetFlashcard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), card)
		},
	}
}

func newFlashcardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete flashcards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := newClient()
			for _, id := range args {
				if err := api.DeleteFlashcard(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete %s: %w", id, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "deleted", id)
			}
			return nil
		},
	}
}

func printFlashcards(w io.Writer, page client.FlashcardPage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOURCE\tFRONT")
	for _, c := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Source, c.Front)
	}
	tw.Flush()

	p := page.Pagination
	fmt.Fprintf(w, "page %d/%d, %d total\n", p.CurrentPage, p.TotalPages, p.TotalItems)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
