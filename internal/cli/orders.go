package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show orders",
	}
	cmd.AddCommand(newOrdersSellerCmd(), newOrdersCustomerCmd())
	return cmd
}

func newOrdersSellerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seller",
		Short: "Orders received as a seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}
			if sess.Role != session.RoleFarmer && sess.Role != session.RoleStaff {
				return fmt.Errorf("seller orders are only available to Farmer or Staff accounts")
			}

			orders, err := clients.Payment.GetOrdersBySeller(cmd.Context(), sess.UserID)
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), orders)
			}
			renderOrdersTable(cmd, orders)
			return nil
		},
	}
}

func newOrdersCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customer",
		Short: "Orders placed as a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, clients, err := setup()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			orders, err := clients.Payment.GetOrdersByCustomer(cmd.Context(), sess.UserID)
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), orders)
			}
			renderOrdersTable(cmd, orders)
			return nil
		},
	}
}

func renderOrdersTable(cmd *cobra.Command, orders []api.Order) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Order ID", "Product", "Amount", "Status"})
	for _, order := range orders {
		t.AppendRow(table.Row{order.ID, order.ProductID, order.Amount.StringFixed(2), order.Status})
	}
	t.Render()
}
