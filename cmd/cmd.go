package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/config"
)

var (
	configFile string
	cfg        *config.Config
)

var LoadConfig = func(configFile string) error {
	configPaths := []string{}

	// If no config file specified, try to use kobectl.yaml from current directory
	if configFile == "" {
		defaultConfig := "kobectl.yaml"
		if _, err := os.Stat(defaultConfig); err == nil {
			configPaths = append(configPaths, defaultConfig)
		}
	} else {
		configPaths = append(configPaths, configFile)
	}

	loaded, err := config.Load(configPaths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration %v: %w", configPaths, err)
	}
	cfg = loaded
	return nil
}

// GetConfig returns the loaded configuration, or defaults when nothing was
// loaded yet.
func GetConfig() *config.Config {
	if cfg == nil {
		if err := LoadConfig(""); err != nil {
			common.LogWarn("Falling back to empty configuration", map[string]interface{}{
				"error": err.Error(),
			})
			return &config.Config{}
		}
	}
	return cfg
}

var RootCmd = &cobra.Command{
	Use:           "kobectl",
	Short:         "Client for the kobe task execution service",
	Long:          `Submit ad-hoc commands and playbooks to a kobe server and fetch their results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadConfig(configFile); err != nil {
			return err
		}
		if err := common.Configure(cfg.Logging); err != nil {
			return err
		}
		common.SetEndpoint(cfg.Server.Endpoint)
		return nil
	},
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add config flag to root command so it's available to all subcommands
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default: ./kobectl.yaml)")

	RootCmd.AddCommand(adhocCmd)
	RootCmd.AddCommand(playbookCmd)
	RootCmd.AddCommand(resultCmd)
	RootCmd.AddCommand(waitCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(serveCmd)
}
