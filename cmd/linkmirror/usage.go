package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/linkmirror/linkmirror/pkg/api"
	"github.com/linkmirror/linkmirror/pkg/usage"
)

// cmd/linkmirror/usage.go

var (
	usageStart string
	usageEnd   string
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show derived usage over a reporting window",
	Long:  `Show derived usage figures computed from daily snapshots. Without --start/--end the window runs from the first of the current month through today.`,
}

func usageQuery() string {
	q := url.Values{}

	if usageStart != "" {
		q.Set("start", usageStart)
	}

	if usageEnd != "" {
		q.Set("end", usageEnd)
	}

	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}

var usageUserCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show one user's usage",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result struct {
			ID    string          `json:"id"`
			Start string          `json:"start"`
			End   string          `json:"end"`
			Usage usage.UserUsage `json:"usage"`
		}

		path := "/api/users/" + url.PathEscape(args[0]) + "/usage" + usageQuery()
		if err := newAPIClient().get(path, &result); err != nil {
			return err
		}

		fmt.Printf("Usage for user %s (%s through %s)\n", result.ID, result.Start, result.End)
		fmt.Println("─────────────────────────────")
		fmt.Printf("  Data credit:      %s\n", formatBytes(result.Usage.DataCredit))
		fmt.Printf("  Time credit:      %s\n", (time.Duration(result.Usage.TimeCredit) * time.Second).String())
		fmt.Printf("  Autocredit:       %s\n", formatBytes(result.Usage.AutocreditValue))
		fmt.Printf("  Usage debit:      %s\n", formatBytes(result.Usage.UsageDebit))
		fmt.Printf("  Usage credit:     %s\n", formatBytes(result.Usage.UsageCredit))
		fmt.Printf("  Usage quota:      %s\n", formatBytes(result.Usage.UsageQuota))

		return nil
	},
}

var usageWanCmd = &cobra.Command{
	Use:   "wan <id>",
	Short: "Show one WAN link's byte consumption",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result struct {
			ID    string         `json:"id"`
			Start string         `json:"start"`
			End   string         `json:"end"`
			Usage usage.WanUsage `json:"usage"`
		}

		path := "/api/wans/" + url.PathEscape(args[0]) + "/usage" + usageQuery()
		if err := newAPIClient().get(path, &result); err != nil {
			return err
		}

		fmt.Printf("Usage for wan %s (%s through %s)\n", result.ID, result.Start, result.End)
		fmt.Printf("  Bytes:     %s\n", formatBytes(result.Usage.Bytes))
		fmt.Printf("  Max bytes: %s\n", formatBytes(result.Usage.MaxBytes))

		return nil
	},
}

var usageLanCmd = &cobra.Command{
	Use:   "lan <id>",
	Short: "Show one LAN segment's byte consumption",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result struct {
			ID    string         `json:"id"`
			Start string         `json:"start"`
			End   string         `json:"end"`
			Usage usage.LanUsage `json:"usage"`
		}

		path := "/api/lans/" + url.PathEscape(args[0]) + "/usage" + usageQuery()
		if err := newAPIClient().get(path, &result); err != nil {
			return err
		}

		fmt.Printf("Usage for lan %s (%s through %s)\n", result.ID, result.Start, result.End)
		fmt.Printf("  Bytes: %s\n", formatBytes(result.Usage.Bytes))

		return nil
	},
}

var usageDailyCmd = &cobra.Command{
	Use:   "daily <user-id>",
	Short: "Show one user's fine-grained daily usage records from the appliance",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var result api.DailyUsageResponse

		path := "/api/users/" + url.PathEscape(args[0]) + "/usage/daily"
		if err := newAPIClient().get(path, &result); err != nil {
			return err
		}

		fmt.Printf("Daily usage for user %s\n", result.UserID)
		fmt.Println("─────────────────────────────")

		for _, rec := range result.Records {
			fmt.Printf("  %s  %s\n", rec.Date, formatBytes(rec.Bytes))
		}

		fmt.Printf("  Total: %s\n", formatBytes(result.Total))

		return nil
	},
}

func init() {
	usageCmd.PersistentFlags().StringVar(&usageStart, "start", "", "window start (YYYY-MM-DD)")
	usageCmd.PersistentFlags().StringVar(&usageEnd, "end", "", "window end (YYYY-MM-DD)")

	usageCmd.AddCommand(usageUserCmd)
	usageCmd.AddCommand(usageWanCmd)
	usageCmd.AddCommand(usageLanCmd)
	usageCmd.AddCommand(usageDailyCmd)
	rootCmd.AddCommand(usageCmd)
}
