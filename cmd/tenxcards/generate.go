package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
)

func newGenerateCmd() *cobra.Command {
	var (
		file  string
		model string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcard candidates from a source text",
		Long: `Send a source text (1000 to 10000 characters) to the API and print the
proposed flashcards. Candidates are kept locally until reviewed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readSource(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			result, err := newClient().Generate(cmd.Context(), text, model)
			if err != nil {
				return err
			}

			cache, err := newCache()
			if err != nil {
				return err
			}
			if err := cache.Put(result); err != nil {
				return err
			}

			printGeneration(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "source text file, - for stdin")
	cmd.Flags().StringVar(&model, "model", "", "model identifier (default: server default)")
	return cmd
}

func readSource(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read source text: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func printGeneration(w io.Writer, r client.GenerationResult) {
	model := "default"
	if r.Model != nil {
		model = *r.Model
	}
	fmt.Fprintf(w, "generation %s (%s, %d ms)\n", r.GenerationID, model, r.GenerationDuration)
	if len(r.Candidates) == 0 {
		fmt.Fprintln(w, "no candidates generated")
		return
	}
	for i, c := range r.Candidates {
		fmt.Fprintf(w, "%3d. %s\n     %s\n", i+1, c.Front, c.Back)
	}
	fmt.Fprintf(w, "\nreview with: tenxcards review %s --accept 1,2,...\n", r.GenerationID)
}
