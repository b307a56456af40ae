package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newDairyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dairy",
		Short: "Browse and manage dairy products",
	}
	cmd.AddCommand(newDairyListCmd(), newDairyAddCmd())
	return cmd
}

func newDairyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookable dairy products",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, clients, err := setup()
			if err != nil {
				return err
			}

			products, err := clients.Dairy.ListDairyProducts(cmd.Context())
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), products)
			}
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Price", "Unit"})
			for _, p := range products {
				t.AppendRow(table.Row{p.ID, p.Name, p.Price.StringFixed(2), p.Unit})
			}
			t.Render()
			return nil
		},
	}
}

func newDairyAddCmd() *cobra.Command {
	var name, price, unit string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "List a dairy product for booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || price == "" {
				return fmt.Errorf("--name and --price are required")
			}
			parsedPrice, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}

			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}
			if sess.Role != session.RoleFarmer {
				return fmt.Errorf("only Farmer accounts can list dairy products")
			}

			saved, err := clients.Dairy.SaveDairyProduct(cmd.Context(), sess.UserID, &api.DairyProduct{
				Name:  name,
				Price: parsedPrice,
				Unit:  unit,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Listed %s (id %s)\n", saved.Name, saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&price, "price", "", "Unit price")
	cmd.Flags().StringVar(&unit, "unit", "litre", "Sale unit")
	return cmd
}

func newBookCmd() *cobra.Command {
	var quantity int
	var date string

	cmd := &cobra.Command{
		Use:   "book <dairy-product-id>",
		Short: "Book a dairy product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity < 1 {
				return fmt.Errorf("--quantity must be at least 1")
			}

			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			booking, err := clients.Booking.BookDairyProduct(cmd.Context(), &api.Booking{
				ProductID:  args[0],
				CustomerID: sess.UserID,
				Quantity:   quantity,
				Date:       date,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Booked (id %s, status %s)\n", booking.ID, booking.Status)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity to book")
	cmd.Flags().StringVar(&date, "date", "", "Delivery date (YYYY-MM-DD)")
	return cmd
}
