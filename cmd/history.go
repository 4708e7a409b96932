package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexanderGrooff/kobe-client/pkg/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List tasks submitted from this machine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled in the configuration")
		}

		db, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		subs, err := db.List(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TASK\tKIND\tTARGET\tSUBMITTED\tSTATE")
		for _, s := range subs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.TaskID, s.Kind, s.Target, s.CreatedAt.Format(time.RFC3339), submissionState(s))
		}
		return w.Flush()
	},
}

func submissionState(s history.Submission) string {
	switch {
	case s.FetchedAt == nil:
		return "submitted"
	case !s.Finished:
		return "running"
	case s.Success:
		return "success"
	default:
		return "failed"
	}
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of submissions to show, 0 for all")
}
