package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}
	cmd.AddCommand(newProductsListCmd(), newProductsGetCmd(), newProductsCategoriesCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, clients, err := setup()
			if err != nil {
				return err
			}

			var products []api.Product
			err = withSpinner("fetching products", func() error {
				products, err = clients.Product.ListProducts(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), products)
			}
			renderProductsTable(cmd, products)
			return nil
		},
	}
}

func renderProductsTable(cmd *cobra.Command, products []api.Product) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Price", "Discount %", "Final Price"})
	for _, p := range products {
		t.AppendRow(table.Row{
			p.ID, p.Name, p.Category,
			p.Price.StringFixed(2), p.Discount.StringFixed(0),
			p.DiscountedPrice().StringFixed(2),
		})
	}
	t.Render()
}

func newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, clients, err := setup()
			if err != nil {
				return err
			}

			product, err := clients.Product.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
}

func newProductsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, clients, err := setup()
			if err != nil {
				return err
			}

			categories, err := clients.Product.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range categories {
				cmd.Println(c)
			}
			return nil
		},
	}
}
