package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// smokeStep runs one request in the end-to-end flow and fails the command on
// an unexpected status.
type smokeStep struct {
	name string
	run  func(c *apiClient) error
}

func smokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Çalışan sunucuya karşı uçtan uca duman testi çalıştırır",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(baseURL)

			var (
				categoryID string
				productID  string
				quoteID    string
				token      string
			)

			steps := []smokeStep{
				{"admin init", func(c *apiClient) error {
					status, _, err := c.do("POST", "/api/admin/init", nil, false)
					if err != nil {
						return err
					}
					return expectOK(status)
				}},
				{"admin login", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/admin/login", map[string]string{
						"username": adminUser,
						"password": adminPass,
					}, false, &out)
					if err != nil {
						return err
					}
					return expectOK(status)
				}},
				{"create category", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/categories", map[string]any{
						"name": "Duman Testi Kategorisi",
						"slug": "duman-testi",
					}, true, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					categoryID, _ = out["id"].(string)
					return nil
				}},
				{"create product", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/products", map[string]any{
						"name":        "Duman Testi Ürünü",
						"description": "Otomatik test ürünü",
						"category":    categoryID,
					}, true, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					productID, _ = out["id"].(string)
					return nil
				}},
				{"public product list", func(c *apiClient) error {
					var out []map[string]any
					status, err := c.doJSON("GET", "/api/products", nil, false, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					if len(out) == 0 {
						return fmt.Errorf("expected at least one product")
					}
					return nil
				}},
				{"create quote", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/quotes", map[string]any{
						"customer_name": "Duman Testi",
						"email":         "smoke@example.com",
						"phone":         "+90 555 000 0000",
						"items": []map[string]any{
							{"product_id": productID, "product_name": "Duman Testi Ürünü", "quantity": 5},
						},
					}, false, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					quoteID, _ = out["id"].(string)
					return nil
				}},
				{"admin quote list", func(c *apiClient) error {
					var out []map[string]any
					status, err := c.doJSON("GET", "/api/quotes", nil, true, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					if len(out) == 0 {
						return fmt.Errorf("expected at least one quote")
					}
					return nil
				}},
				{"price quote", func(c *apiClient) error {
					status, _, err := c.do("PUT", "/api/quotes/"+quoteID, map[string]any{
						"status": "fiyat_verildi",
						"pricing": []map[string]any{
							{
								"product_id":   productID,
								"product_name": "Duman Testi Ürünü",
								"quantity":     5,
								"unit_price":   149.90,
								"total_price":  749.50,
							},
						},
						"admin_note": "Duman testi fiyatı",
					}, true)
					if err != nil {
						return err
					}
					return expectOK(status)
				}},
				{"fetch pdf", func(c *apiClient) error {
					status, data, err := c.do("GET", "/api/quotes/"+quoteID+"/pdf", nil, true)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					if !bytes.HasPrefix(data, []byte("%PDF")) {
						return fmt.Errorf("response is not a PDF document")
					}
					return nil
				}},
				{"send email", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/quotes/"+quoteID+"/send-email", nil, true, &out)
					if err != nil {
						return err
					}
					return expectOK(status)
				}},
				{"customer register", func(c *apiClient) error {
					status, _, err := c.do("POST", "/api/customer/register", map[string]any{
						"name":     "Duman Müşterisi",
						"email":    "smoke@example.com",
						"password": "smoke-test-123",
					}, false)
					if err != nil {
						return err
					}
					// 409 means a previous run already registered
					if status == http.StatusConflict {
						return nil
					}
					return expectOK(status)
				}},
				{"customer login", func(c *apiClient) error {
					var out map[string]any
					status, err := c.doJSON("POST", "/api/customer/login", map[string]string{
						"email":    "smoke@example.com",
						"password": "smoke-test-123",
					}, false, &out)
					if err != nil {
						return err
					}
					if err := expectOK(status); err != nil {
						return err
					}
					token, _ = out["token"].(string)
					if token == "" {
						return fmt.Errorf("login response missing token")
					}
					return nil
				}},
				{"customer quotes", func(c *apiClient) error {
					req, err := http.NewRequest("GET", c.base+"/api/customer/quotes/smoke@example.com", nil)
					if err != nil {
						return err
					}
					req.Header.Set("Authorization", "Bearer "+token)
					resp, err := c.http.Do(req)
					if err != nil {
						return err
					}
					resp.Body.Close()
					return expectOK(resp.StatusCode)
				}},
			}

			for _, step := range steps {
				if err := step.run(client); err != nil {
					return fmt.Errorf("%s: %w", step.name, err)
				}
				fmt.Printf("ok   %s\n", step.name)
			}
			fmt.Println("duman testi tamamlandı")
			return nil
		},
	}
}

func expectOK(status int) error {
	if status >= 400 {
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}
