package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AlexanderGrooff/kobe-client/pkg/await"
	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/history"
)

var pendingOnly bool

var resultCmd = &cobra.Command{
	Use:   "result [task-id...]",
	Short: "Fetch the results of one or more tasks",
	Long:  `Fetch task results concurrently. With --pending the ids of unfinished tasks in the local history are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx := commandContext(cmd)

		s, err := openSession(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ids := args
		if pendingOnly {
			if s.history == nil {
				return fmt.Errorf("--pending needs history.enabled")
			}
			pending, err := s.history.Pending()
			if err != nil {
				return fmt.Errorf("failed to list pending tasks: %w", err)
			}
			for _, p := range pending {
				ids = append(ids, p.TaskID)
			}
		}
		if len(ids) == 0 {
			return fmt.Errorf("no task ids given")
		}

		results := make([]*client.TaskResult, len(ids))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(8)
		for i, id := range ids {
			i, id := i, id
			g.Go(func() error {
				callCtx, cancel := callContext(gctx, cfg)
				defer cancel()
				r, err := s.api.FetchResult(callCtx, id)
				if err != nil {
					return fmt.Errorf("task %s: %w", id, err)
				}
				results[i] = r
				return nil
			})
		}
		err = g.Wait()

		for _, r := range results {
			if r == nil {
				continue
			}
			recordResult(s.history, r)
			printResult(cmd.OutOrStdout(), r)
		}
		return err
	},
}

var waitCmd = &cobra.Command{
	Use:   "wait task-id",
	Short: "Poll a task until it finishes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx := commandContext(cmd)

		s, err := openSession(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := await.Wait(ctx, s.api, args[0], waitPolicy(cfg))
		if result != nil {
			recordResult(s.history, result)
			printResult(cmd.OutOrStdout(), result)
		}
		return err
	},
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func recordResult(db *history.DB, r *client.TaskResult) {
	if db == nil {
		return
	}
	err := db.RecordResult(r)
	if errors.Is(err, history.ErrUnknownTask) {
		// Submitted elsewhere
		return
	}
	if err != nil {
		common.LogWarn("Failed to record result", map[string]interface{}{
			"task_id": r.ID,
			"error":   err.Error(),
		})
	}
}

func printResult(w io.Writer, r *client.TaskResult) {
	state := "running"
	switch {
	case r.Finished && r.Success:
		state = "success"
	case r.Finished:
		state = "failed"
	}
	fmt.Fprintf(w, "%s\t%s", r.ID, state)
	if r.Message != "" {
		fmt.Fprintf(w, "\t%s", r.Message)
	}
	fmt.Fprintln(w)
	if r.Content != "" {
		fmt.Fprint(w, r.Content)
		if r.Content[len(r.Content)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}

func init() {
	resultCmd.Flags().BoolVar(&pendingOnly, "pending", false, "Also fetch every unfinished task from the local history")
}
