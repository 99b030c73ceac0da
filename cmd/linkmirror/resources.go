package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkmirror/linkmirror/pkg/models"
)

// cmd/linkmirror/resources.go

var resourcesCmd = &cobra.Command{
	Use:   "resources <users|wans|lans|interfaces>",
	Short: "List mirrored resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client := newAPIClient()

		switch args[0] {
		case "users":
			var users []models.User
			if err := client.get("/api/users", &users); err != nil {
				return err
			}

			for _, u := range users {
				fmt.Printf("  %-12s %-20s %-8s data=%s\n",
					u.ID, u.Name, u.Status, formatBytes(u.DataCredit))
			}

		case "wans":
			var wans []models.Wan
			if err := client.get("/api/wans", &wans); err != nil {
				return err
			}

			for _, w := range wans {
				fmt.Printf("  %-12s %-20s %-8s bytes=%s\n",
					w.ID, w.Name, w.Status, formatBytes(w.Bytes))
			}

		case "lans":
			var lans []models.Lan
			if err := client.get("/api/lans", &lans); err != nil {
				return err
			}

			for _, l := range lans {
				fmt.Printf("  %-12s %-20s dhcp=%-8s wan=%-10s bytes=%s\n",
					l.ID, l.Name, l.DHCP, l.WanID, formatBytes(l.Bytes))
			}

		case "interfaces":
			var ifaces []models.NetworkInterface
			if err := client.get("/api/interfaces", &ifaces); err != nil {
				return err
			}

			for _, i := range ifaces {
				fmt.Printf("  %-12s %-20s %-10s %s\n", i.ID, i.Name, i.Kind, i.HWAddress)
			}

		default:
			return fmt.Errorf("unknown resource list %q, want users, wans, lans, or interfaces", args[0])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
