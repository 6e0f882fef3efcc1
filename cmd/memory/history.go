package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished runs",
	Long: `Display the journal of finished runs: when each run ended, who played it,
whether it was won or ran out of time, the level reached, the pairs found
on that level and how long the run took.

Examples:
  memory history
  memory history --limit 50
  memory history --plain
  memory history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain text table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the journal")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearRuns(memory.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return nil
	}

	if flagHistoryPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printHistory(store)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunHistory(store, memory.ID, flagHistoryLimit, width, height)
}

func printHistory(store *storage.Store) error {
	runs, err := store.RecentRuns(memory.ID, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Memory Match - Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' and finish a run to see it here.")
		return nil
	}

	headers := []string{"Date", "Player", "Result", "Level", "Pairs", "Time"}
	fmt.Printf("  %-12s  %-12s  %-10s  %-5s  %-5s  %s\n", anySlice(headers)...)
	fmt.Printf("  %-12s  %-12s  %-10s  %-5s  %-5s  %s\n", "----", "------", "------", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-12s  %-10s  %-5s  %-5s  %s\n", anySlice(tui.RunRow(r))...)
	}

	counts, err := store.ResultCounts(memory.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, c := range counts {
		fmt.Printf("%s: %d\n", tui.ResultLabel(c.Result), c.Count)
	}
	return nil
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
