// Package cli implements the agrocraft command line interface. Commands are
// thin controllers: they read the injected session store, validate input
// before issuing a call, invoke one sub-client, and render the result.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agrocraft-dev/agrocraft-go/internal/config"
	"github.com/agrocraft-dev/agrocraft-go/internal/logger"
	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client"
)

// Version is set at build time.
var Version = "dev"

// NewRootCmd builds the agrocraft root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "agrocraft",
		Short:        "AgroCraft marketplace CLI",
		Long:         "Browse products, manage your cart and wishlist, and book dairy products on AgroCraft.",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", config.DefaultAPIURL, "Base URL of the AgroCraft API")
	flags.String("output", config.DefaultOutputFormat, "Output format (table or json)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.Duration("timeout", config.DefaultTimeout, "Request timeout")

	_ = viper.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = viper.BindPFlag("output_format", flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))

	cobra.OnInitialize(func() {
		if err := config.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	})

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newRegisterCmd(),
		newVerifyCmd(),
		newProductsCmd(),
		newCartCmd(),
		newWishlistCmd(),
		newOrdersCmd(),
		newDairyCmd(),
		newBookCmd(),
		newShellCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI.
func Execute() {
	defer logger.Sync()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newClients builds a ClientSet from the resolved configuration.
func newClients(cfg *config.Config, userID string) *client.ClientSet {
	return client.New(cfg.APIURL,
		client.WithTimeout(cfg.Timeout),
		client.WithUserID(userID),
	)
}

// openStore opens the persisted session store named by the configuration.
func openStore(cfg *config.Config) session.Store {
	return session.NewCookieStore(session.WithFile(cfg.SessionFile))
}

// setup resolves config, session and clients for one command invocation.
func setup() (*config.Config, session.Store, *client.ClientSet, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	store := openStore(cfg)
	sess := session.Current(store)
	return cfg, store, newClients(cfg, sess.UserID), nil
}

// requireLogin returns the current session or an error that stops the
// command before any request is issued.
func requireLogin(store session.Store) (session.Session, error) {
	sess := session.Current(store)
	if !sess.Authenticated() {
		return session.Session{}, fmt.Errorf("not logged in, run 'agrocraft login' first")
	}
	return sess, nil
}

// sessionTTL is how long a login lasts. Matches the web front-end.
const sessionTTL = 30 * time.Minute
