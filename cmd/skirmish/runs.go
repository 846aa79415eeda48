package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show runs recorded in a journal file by play, serve or simulate.

Examples:
  skirmish runs --journal ./runs.db
  skirmish runs --journal ./runs.db --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Runs to print with --plain")
}

func runRuns(_ *cobra.Command, _ []string) {
	if flagJournalPath == "" {
		fail("--journal is required; an in-memory journal holds no runs")
	}

	j, err := journal.Open(flagJournalPath)
	if err != nil {
		fail("%v", err)
	}
	defer j.Close()

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunJournalBrowser(j, skirmish.GameID, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	runs, err := j.RecentRuns(skirmish.GameID, flagLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	t := styledTable("ID", "Seed", "Wave", "Score", "Ticks", "Date")
	for _, r := range runs {
		t.Row(
			r.ID.String()[:8],
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Waves),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		)
	}
	fmt.Println(t)
}
