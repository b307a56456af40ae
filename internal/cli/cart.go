package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
	}
	cmd.AddCommand(
		newCartListCmd(),
		newCartAddCmd(),
		newCartUpdateCmd(),
		newCartRemoveCmd(),
		newCartClearCmd(),
	)
	return cmd
}

func newCartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart with its subtotal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			items, err := clients.Cart.GetCart(cmd.Context(), sess.UserID)
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), items)
			}
			renderCartTable(cmd, items)
			return nil
		},
	}
}

func renderCartTable(cmd *cobra.Command, items []api.CartItem) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Product", "Unit Price", "Qty", "Line Total"})
	for _, item := range items {
		t.AppendRow(table.Row{
			item.Product.Name,
			item.Product.DiscountedPrice().StringFixed(2),
			item.Quantity,
			item.LineTotal().StringFixed(2),
		})
	}
	t.AppendFooter(table.Row{"", "", "Subtotal", api.Subtotal(items).StringFixed(2)})
	t.Render()
}

func parseQuantity(arg string) (int, error) {
	quantity, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

func newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> <quantity>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			if err := clients.Cart.AddToCart(cmd.Context(), sess.UserID, args[0], quantity); err != nil {
				return err
			}
			cmd.Println("Added to cart.")
			return nil
		},
	}
}

func newCartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			if err := clients.Cart.UpdateCart(cmd.Context(), sess.UserID, args[0], quantity); err != nil {
				return err
			}
			cmd.Println("Cart updated.")
			return nil
		},
	}
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			if err := clients.Cart.RemoveFromCart(cmd.Context(), sess.UserID, args[0]); err != nil {
				return err
			}
			cmd.Println("Removed from cart.")
			return nil
		},
	}
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove everything from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			if err := clients.Cart.ClearCart(cmd.Context(), sess.UserID); err != nil {
				return err
			}
			cmd.Println("Cart cleared.")
			return nil
		},
	}
}
