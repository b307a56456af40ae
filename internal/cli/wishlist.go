package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newWishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage your wishlist",
	}
	cmd.AddCommand(newWishlistListCmd(), newWishlistAddCmd(), newWishlistRemoveCmd())
	return cmd
}

func newWishlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			items, err := clients.Wishlist.GetWishlist(cmd.Context(), sess.UserID)
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), items)
			}
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Product ID", "Name", "Price"})
			for _, item := range items {
				t.AppendRow(table.Row{item.ProductID, item.Product.Name, item.Product.DiscountedPrice().StringFixed(2)})
			}
			t.Render()
			return nil
		},
	}
}

func newWishlistAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the wishlist",
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

			if err := clients.Wishlist.AddToWishlist(cmd.Context(), sess.UserID, args[0]); err != nil {
				return err
			}
			cmd.Println("Added to wishlist.")
			return nil
		},
	}
}

func newWishlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
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

			if err := clients.Wishlist.RemoveFromWishlist(cmd.Context(), sess.UserID, args[0]); err != nil {
				return err
			}
			cmd.Println("Removed from wishlist.")
			return nil
		},
	}
}
