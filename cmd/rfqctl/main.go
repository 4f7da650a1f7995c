// rfqctl is the operator's companion to the API server: bootstrap the admin
// account and run an end-to-end smoke pass against a live instance.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	baseURL   string
	adminUser string
	adminPass string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rfqctl",
		Short: "Admin utility for the Teklif Sistemi API",
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	rootCmd.PersistentFlags().StringVar(&adminUser, "admin-user", "admin", "admin username")
	rootCmd.PersistentFlags().StringVar(&adminPass, "admin-pass", "admin123", "admin password")

	rootCmd.AddCommand(initAdminCmd())
	rootCmd.AddCommand(smokeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
