package cli

import (
	"context"
	"fmt"

	"github.com/abiosoft/ishell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agrocraft-dev/agrocraft-go/internal/config"
	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shopping shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, clients, err := setup()
			if err != nil {
				return err
			}
			runShell(cfg, store, clients)
			return nil
		},
	}
}

func runShell(cfg *config.Config, store session.Store, clients *client.ClientSet) {
	shell := ishell.New()
	shell.Println("AgroCraft interactive shell. Type 'help' for commands, 'exit' to quit.")
	shell.SetPrompt(config.BoldGreen("agrocraft> "))

	shell.AddCmd(&ishell.Cmd{
		Name: "login",
		Help: "login -e <email> -p <password>",
		Func: func(c *ishell.Context) {
			var email, password string
			flagSet := pflag.NewFlagSet(c.RawArgs[0], pflag.ContinueOnError)
			flagSet.StringVarP(&email, "email", "e", "", "Account email")
			flagSet.StringVarP(&password, "password", "p", "", "Account password")
			if err := flagSet.Parse(c.Args); err != nil {
				c.Printf("Failed to parse flags: %v\n", err)
				return
			}
			if email == "" {
				c.ShowPrompt(false)
				c.Print("Email: ")
				email = c.ReadLine()
				c.ShowPrompt(true)
			}
			if password == "" {
				password = c.ReadPassword()
			}

			login, err := clients.Auth.Login(context.Background(), &api.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				c.Println(config.BoldRed("%v", err))
				return
			}
			role, err := session.ParseRole(login.Role)
			if err != nil {
				c.Println(config.BoldRed("server returned an unusable role: %v", err))
				return
			}
			if err := session.Begin(store, login.UserID, role, sessionTTL); err != nil {
				c.Println(config.BoldRed("%v", err))
				return
			}
			c.Println(config.BoldGreen("Logged in as %s (%s)", email, role))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "products",
		Help: "list the product catalog",
		Func: func(c *ishell.Context) {
			products, err := clients.Product.ListProducts(context.Background())
			if err != nil {
				c.Println(config.BoldRed("%v", err))
				return
			}
			for _, p := range products {
				c.Printf("%-8s %-24s %8s\n", p.ID, p.Name, p.DiscountedPrice().StringFixed(2))
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "cart",
		Help: "cart [add <product-id> <quantity>]",
		Func: func(c *ishell.Context) {
			sess := session.Current(store)
			if !sess.Authenticated() {
				c.Println("Not logged in.")
				return
			}

			if len(c.Args) == 3 && c.Args[0] == "add" {
				quantity, err := parseQuantity(c.Args[2])
				if err != nil {
					c.Printf("Invalid quantity %q\n", c.Args[2])
					return
				}
				if err := clients.Cart.AddToCart(context.Background(), sess.UserID, c.Args[1], quantity); err != nil {
					c.Println(config.BoldRed("%v", err))
					return
				}
				c.Println("Added to cart.")
				return
			}

			items, err := clients.Cart.GetCart(context.Background(), sess.UserID)
			if err != nil {
				c.Println(config.BoldRed("%v", err))
				return
			}
			for _, item := range items {
				c.Printf("%-24s x%-3d %8s\n", item.Product.Name, item.Quantity, item.LineTotal().StringFixed(2))
			}
			c.Println(fmt.Sprintf("Subtotal: %s", api.Subtotal(items).StringFixed(2)))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "logout",
		Help: "clear the session",
		Func: func(c *ishell.Context) {
			session.End(store)
			c.Println("Logged out.")
		},
	})

	shell.Run()
}
