package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkmirror/linkmirror/pkg/api"
)

// cmd/linkmirror/sync.go

var syncCmd = &cobra.Command{
	Use:   "sync <resource>",
	Short: "Force an immediate sync of one resource type",
	Long:  `Force an immediate fetch-and-store cycle for one resource type (user, wan, lan, interface, wanusage, lanusage, autocredit), outside the polling cadence.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result api.SyncResponse
		if err := newAPIClient().post("/api/sync/"+args[0], &result); err != nil {
			return err
		}

		fmt.Printf("Synced %d %s items\n", result.Count, result.Resource)

		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <resource>",
	Short: "Restart polling for a resource whose loop stopped at the failure threshold",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result api.RestartResponse
		if err := newAPIClient().post("/api/polling/"+args[0]+"/restart", &result); err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", result.Resource, result.Message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(restartCmd)
}
