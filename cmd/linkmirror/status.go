package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkmirror/linkmirror/pkg/sync"
)

// cmd/linkmirror/status.go

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show appliance availability and per-resource sync state",
	RunE: func(_ *cobra.Command, _ []string) error {
		var report sync.StatusReport
		if err := newAPIClient().get("/api/status", &report); err != nil {
			return err
		}

		availability := "available"
		if !report.ServiceAvailable {
			availability = "UNAVAILABLE"
		}

		fmt.Printf("Appliance: %s\n", availability)
		fmt.Println("─────────────────────────────")

		for _, res := range report.Resources {
			polling := "polling"
			if !res.Polling {
				polling = "STOPPED"
			}

			fmt.Printf("  %-10s %-8s failures=%d", res.Resource, polling, res.ConsecutiveFailures)

			if !res.LastSync.IsZero() {
				fmt.Printf("  last=%s (%d items)", res.LastSync.Format("2006-01-02 15:04:05"), res.LastCount)
			}

			if res.LastError != "" {
				fmt.Printf("  error=%s", res.LastError)
			}

			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
