package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AlexanderGrooff/kobe-client/pkg/gateway"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		// Gateway submissions come from HTTP callers, not this user.
		s, err := dialSession(commandContext(cmd), cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		port := cfg.Gateway.Port
		if servePort != "" {
			port = servePort
		}
		return gateway.NewServer(s.api, port).Start()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default: gateway.port from config)")
}
