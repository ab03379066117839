package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go-dice-defense/internal/leaderboard"
	"go-dice-defense/internal/logging"

	"github.com/urfave/cli/v3"
)

func scoresAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings)
	store, err := leaderboard.Open(settings.Leaderboard.Path, settings.Leaderboard.Size, logging.For(logger, "leaderboard"))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Top(cmd.Int("limit"))
	if err != nil {
		return err
	}
	return printScores(os.Stdout, entries)
}

func printScores(w io.Writer, entries []leaderboard.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded yet")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tLEVEL\tWAVES\tTIME\tDATE")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.0fs\t%s\n",
			i+1, e.Name, e.Level, e.Waves, e.GameTime, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
