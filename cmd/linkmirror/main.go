package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cmd/linkmirror/main.go

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "linkmirror",
	Short: "Operator CLI for the appliance mirror daemon",
	Long:  `linkmirror inspects and controls a running linkmirrord: sync status, manual syncs, polling recovery, and derived usage figures.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8090", "base URL of the linkmirrord API")
}
