package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexanderGrooff/kobe-client/pkg/await"
	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/history"
	"github.com/AlexanderGrooff/kobe-client/pkg/inventory"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/request"
	"github.com/AlexanderGrooff/kobe-client/pkg/source"
)

var (
	inventoryFile string
	extraVars     []string
	waitForResult bool

	adhocPattern string
	adhocModule  string
	adhocParam   string
	adhocScript  string

	playbookProject string
	playbookName    string
	playbookTag     string
	playbookFile    string
)

var adhocCmd = &cobra.Command{
	Use:   "adhoc",
	Short: "Run a module against the hosts matching a pattern",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if adhocParam != "" && adhocScript != "" {
			return fmt.Errorf("--param and --script are mutually exclusive")
		}

		inv, err := loadInventory(cfg.Inventory)
		if err != nil {
			return err
		}
		param := adhocParam
		if adhocScript != "" {
			param, err = source.NewLoader(cfg.Scripts.Dir).ReadText(adhocScript)
			if err != nil {
				return err
			}
		}

		req := request.BuildAdhoc(inv, adhocPattern, adhocModule, param)
		if err := request.Validate(req); err != nil {
			return err
		}

		return submit(cmd, &history.Submission{
			Kind:   history.KindAdhoc,
			Target: adhocPattern,
			Module: adhocModule,
		}, func(ctx context.Context, api client.TaskAPI) (client.TaskHandle, error) {
			return api.SubmitAdhoc(ctx, req)
		})
	},
}

var playbookCmd = &cobra.Command{
	Use:   "playbook",
	Short: "Run a playbook of a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		inv, err := loadInventory(cfg.Inventory)
		if err != nil {
			return err
		}
		content := ""
		if playbookFile != "" {
			content, err = source.NewLoader(cfg.Scripts.Dir).ReadText(playbookFile)
			if err != nil {
				return err
			}
		}

		req := request.BuildPlaybook(inv, playbookProject, playbookName, playbookTag, content)
		if err := request.Validate(req); err != nil {
			return err
		}

		return submit(cmd, &history.Submission{
			Kind:   history.KindPlaybook,
			Target: playbookProject + "/" + playbookName,
			Tag:    playbookTag,
		}, func(ctx context.Context, api client.TaskAPI) (client.TaskHandle, error) {
			return api.SubmitPlaybook(ctx, req)
		})
	},
}

// loadInventory reads --inventory, or the configured inventory file, and
// applies --var on top.
func loadInventory(configured string) (*kobe.Inventory, error) {
	path := inventoryFile
	if path == "" {
		path = configured
	}
	if path == "" {
		return nil, fmt.Errorf("no inventory given, use --inventory or set inventory in the config")
	}

	inv, err := inventory.Load(source.NewLoader(""), path)
	if err != nil {
		return nil, err
	}
	vars, err := parseVars(extraVars)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extra variables: %w", err)
	}
	inventory.MergeVars(inv, vars)
	return inv, nil
}

type submitFunc func(ctx context.Context, api client.TaskAPI) (client.TaskHandle, error)

func submit(cmd *cobra.Command, record *history.Submission, send submitFunc) error {
	cfg := GetConfig()
	ctx := commandContext(cmd)

	s, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	callCtx, cancel := callContext(ctx, cfg)
	handle, err := send(callCtx, s.api)
	cancel()
	if err != nil {
		return err
	}

	common.LogInfo("Task submitted", map[string]interface{}{
		"task_id": handle.ID,
		"kind":    record.Kind,
	})
	if s.history != nil {
		record.TaskID = handle.ID
		record.Endpoint = s.conn.Endpoint()
		if err := s.history.RecordSubmission(record); err != nil {
			common.LogWarn("Failed to record submission", map[string]interface{}{
				"task_id": handle.ID,
				"error":   err.Error(),
			})
		}
	}

	if !waitForResult {
		fmt.Fprintln(cmd.OutOrStdout(), handle.ID)
		return nil
	}

	result, err := await.Wait(ctx, s.api, handle.ID, waitPolicy(cfg))
	if result != nil {
		recordResult(s.history, result)
		printResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("task %s failed: %s", result.ID, result.Message)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{adhocCmd, playbookCmd} {
		c.Flags().StringVarP(&inventoryFile, "inventory", "i", "", "Inventory file (default: inventory from config)")
		c.Flags().StringArrayVarP(&extraVars, "var", "e", []string{}, "Set inventory variables as key=value, shell quoting allowed")
		c.Flags().BoolVarP(&waitForResult, "wait", "w", false, "Wait for the task to finish and print its result")
	}

	adhocCmd.Flags().StringVarP(&adhocPattern, "pattern", "p", "all", "Host pattern")
	adhocCmd.Flags().StringVarP(&adhocModule, "module", "m", "shell", "Module to run")
	adhocCmd.Flags().StringVarP(&adhocParam, "param", "a", "", "Module argument")
	adhocCmd.Flags().StringVarP(&adhocScript, "script", "s", "", "Read the module argument from a file, relative to scripts.dir")

	playbookCmd.Flags().StringVar(&playbookProject, "project", "", "Project the playbook belongs to (required)")
	playbookCmd.Flags().StringVar(&playbookName, "playbook", "", "Playbook name (required)")
	playbookCmd.Flags().StringVarP(&playbookTag, "tag", "t", "", "Only run tasks with this tag")
	playbookCmd.Flags().StringVarP(&playbookFile, "file", "f", "", "Playbook content file, relative to scripts.dir")

	playbookCmd.MarkFlagRequired("project")
	playbookCmd.MarkFlagRequired("playbook")
}
