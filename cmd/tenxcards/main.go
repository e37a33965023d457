// Command tenxcards is a terminal client for the flashcards API. It turns a
// source text into flashcard candidates, walks through their review and
// manages stored flashcards.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
	"github.com/heartmarshall/tenxcards-backend/internal/review"
)

var (
	serverURL string
	token     string
	cacheDir  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tenxcards",
		Short: "Generate, review and manage flashcards",
		Long: `tenxcards talks to the flashcards API.

Examples:
  # Generate candidates from a text file
  tenxcards generate --file notes.txt

  # Accept the first two candidates, fix the third and save
  tenxcards review <generation-id> --accept 1,2 --edit "3:back=Mitochondria"

  # List stored flashcards matching a phrase
  tenxcards flashcards list --search cell`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", envOr("TENXCARDS_SERVER", "http://localhost:8080"), "API base URL")
	root.PersistentFlags().StringVar(&token, "token", os.Getenv("TENXCARDS_TOKEN"), "bearer access token")
	root.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "directory for pending reviews (default: user cache dir)")

	root.AddCommand(
		newGenerateCmd(),
		newReviewCmd(),
		newFlashcardsCmd(),
		newDevTokenCmd(),
		newVersionCmd(),
	)
	return root
}

func newClient() *client.Client {
	var opts []client.Option
	if token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(serverURL, opts...)
}

func newCache() (*review.Cache, error) {
	return review.NewCache(cacheDir)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
