package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/recirculate/storefront/internal/api"
	cartapp "github.com/recirculate/storefront/internal/cart/app"
	cartstore "github.com/recirculate/storefront/internal/cart/infra/localstore"
	catalogapp "github.com/recirculate/storefront/internal/catalog/app"
	catalogrest "github.com/recirculate/storefront/internal/catalog/infra/rest"
	checkoutapp "github.com/recirculate/storefront/internal/checkout/app"
	checkoutadapter "github.com/recirculate/storefront/internal/checkout/infra/adapter"
	clientapp "github.com/recirculate/storefront/internal/client/app"
	clientrest "github.com/recirculate/storefront/internal/client/infra/rest"
	orderapp "github.com/recirculate/storefront/internal/order/app"
	orderrest "github.com/recirculate/storefront/internal/order/infra/rest"
	reviewapp "github.com/recirculate/storefront/internal/review/app"
	reviewrest "github.com/recirculate/storefront/internal/review/infra/rest"
	sessionapp "github.com/recirculate/storefront/internal/session/app"
	sessionstore "github.com/recirculate/storefront/internal/session/infra/localstore"
	sessionrest "github.com/recirculate/storefront/internal/session/infra/rest"
	"github.com/recirculate/storefront/pkg/config"
	"github.com/recirculate/storefront/pkg/logger"
)

// app wires every service once per invocation, explicitly, the way the
// binaries' main does — no globals, no service locator.
type app struct {
	cfg config.Config
	log *slog.Logger

	session  *sessionapp.Service
	cart     *cartapp.Service
	catalog  *catalogapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
	reviews  *reviewapp.Service
	clients  *clientapp.Service
}

// tokenHolder breaks the construction cycle between the gateway (needs a
// token source) and the session service (needs the gateway).
type tokenHolder struct {
	session *sessionapp.Service
}

func (h *tokenHolder) Token() string {
	if h.session == nil {
		return ""
	}
	return h.session.Token()
}

func newApp() *app {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	holder := &tokenHolder{}
	gateway := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, holder)

	session := sessionapp.NewService(
		sessionstore.NewSessionStore(cfg.StateDir),
		sessionrest.NewAuthAPI(gateway),
		log,
	)
	holder.session = session

	cart := cartapp.NewService(cartstore.NewCartStore(cfg.StateDir), log)
	catalog := catalogapp.NewService(catalogrest.NewProductAPI(gateway), catalogrest.NewCategoryAPI(gateway))
	orderAPI := orderrest.NewOrderAPI(gateway)
	orders := orderapp.NewService(orderAPI)
	reviews := reviewapp.NewService(reviewrest.NewReviewAPI(gateway))
	clients := clientapp.NewService(clientrest.NewClientAPI(gateway))

	checkout := checkoutapp.NewService(
		checkoutadapter.NewCartServiceSource(cart),
		checkoutadapter.NewSessionIdentitySource(session),
		orderAPI,
		checkoutapp.Options{
			StepTimeout: cfg.CheckoutStepTimeout,
			FanoutLimit: cfg.CheckoutFanoutLimit,
		},
		log,
	)

	return &app{
		cfg:      cfg,
		log:      log,
		session:  session,
		cart:     cart,
		catalog:  catalog,
		orders:   orders,
		checkout: checkout,
		reviews:  reviews,
		clients:  clients,
	}
}

func newRootCmd() *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Recirculate storefront: browse, cart, checkout, orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a = newApp()
		},
	}

	// The app is built in PersistentPreRun, so subcommands dereference it
	// lazily through the getter.
	get := func() *app { return a }

	root.AddCommand(
		newLoginCmd(get),
		newRegisterCmd(get),
		newLogoutCmd(get),
		newWhoamiCmd(get),
		newProfileCmd(get),
		newProductsCmd(get),
		newCartCmd(get),
		newCheckoutCmd(get),
		newOrdersCmd(get),
		newReviewsCmd(get),
		newAdminCmd(get),
	)

	return root
}
