package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-admin",
		Short: "Varsayılan yönetici hesabını oluşturur",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(baseURL)

			var result map[string]any
			status, err := client.doJSON("POST", "/api/admin/init", nil, false, &result)
			if err != nil {
				return err
			}
			if status >= 400 {
				return fmt.Errorf("admin init failed with status %d: %v", status, result)
			}

			if msg, ok := result["message"].(string); ok {
				fmt.Println(msg)
			} else {
				fmt.Printf("%v\n", result)
			}
			return nil
		},
	}
}
