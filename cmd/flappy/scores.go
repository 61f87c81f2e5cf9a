package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagBackdrop string
	flagPlain    bool
	flagStats    bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high scores. In a terminal this opens the interactive
scoreboard with All/Day/Night tabs; otherwise (or with --plain) the top 10
are printed.

Examples:
  flappy scores
  flappy scores --plain --backdrop night
  flappy scores --stats
  flappy scores --clear --backdrop day
  flappy scores | head`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagBackdrop, "backdrop", "", "Only show games played on this backdrop (day, night)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print per-backdrop statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded scores (all, or only --backdrop)")
}

func runScores(_ *cobra.Command, _ []string) error {
	switch flagBackdrop {
	case "", flappy.BackdropDay.String(), flappy.BackdropNight.String():
	default:
		return fmt.Errorf("unknown backdrop %q (want day or night)", flagBackdrop)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(flagBackdrop); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagStats:
		return printStats(os.Stdout, store)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		rc := runtimeConfig()
		return tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
	}

	return printScores(os.Stdout, store, flagBackdrop)
}

func printScores(w io.Writer, store *storage.Store, backdrop string) error {
	scores, err := store.TopScores(backdrop, 10)
	if err != nil {
		return err
	}

	title := "All"
	if backdrop != "" {
		title = backdrop
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-8s  %-6s  %s\n", "Rank", "Score", "Bird", "Backdrop", "Pipes", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-8s  %-6s  %s\n", "----", "-----", "----", "--------", "-----", "----")

	// Print scores
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-6s  %-7s  %-8s  %-6s  %s\n",
			i+1, flappy.FormatScore(e.Score), e.Avatar, e.Backdrop, e.Pipe, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	best, err := store.HighScore(backdrop)
	if err == nil {
		fmt.Fprintf(w, "\nBest: %s\n", flappy.FormatScore(best))
	}
	return nil
}

func printStats(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %-8s  %-5s  %-6s  %-7s\n", "Backdrop", "Games", "Best", "Average")
	for _, name := range names {
		st := stats[name]
		fmt.Fprintf(w, "  %-8s  %-5d  %-6s  %-7.2f\n",
			st.Backdrop, st.GamesCount, flappy.FormatScore(st.HighScore), st.AvgScore)
	}

	last, err := store.LastPlayed()
	if err != nil {
		return err
	}
	if !last.IsZero() {
		fmt.Fprintf(w, "\nLast played: %s\n", last.Format("2006-01-02 15:04"))
	}
	return nil
}
