package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/auth"
	"github.com/authorizedbuyers/marketplace-samples/internal/config"
	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
	"github.com/authorizedbuyers/marketplace-samples/internal/playgroundcli"
)

// app carries the settings shared by all sample commands.
type app struct {
	keyFile string
	token   string
	baseURL string
	verbose bool

	cfg *config.Config
	api *marketplace.APIClient
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Samples for the Authorized Buyers Marketplace API",
		Long: `Samples for the Authorized Buyers Marketplace API (v1).

Each subcommand performs one API call on behalf of a buyer account and
prints the resources it returns. Run "marketplace playground start" to get
a local API to try the samples against.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.keyFile, "key-file", "", "Path to a service account key file (env "+config.EnvKeyFile+")")
	flags.StringVar(&a.token, "token", "", "Bearer token to send instead of service account credentials (env "+config.EnvToken+")")
	flags.StringVar(&a.baseURL, "base-url", "", "API root URL, e.g. a local playground (env "+config.EnvBaseURL+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log every API request")

	cmd.AddCommand(
		newFirstRequestCommand(a),
		newClientsCommand(a),
		newClientUsersCommand(a),
		newProposalsCommand(a),
		newDealsCommand(a),
		newFinalizedDealsCommand(a),
		newAuctionPackagesCommand(a),
		newPublisherProfilesCommand(a),
		playgroundcli.NewCommand("playground"),
	)
	return cmd
}

// loadConfig resolves the environment and lets explicit flags override it.
func (a *app) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.keyFile != "" {
		cfg.KeyFile = a.keyFile
	}
	if a.token != "" {
		cfg.Token = a.token
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	a.cfg = cfg
	return nil
}

// client returns the API client, creating it on first use.
func (a *app) client(ctx context.Context, stderr io.Writer) (*marketplace.APIClient, error) {
	if a.api != nil {
		return a.api, nil
	}
	httpClient, err := auth.NewHTTPClient(ctx, auth.Options{KeyFile: a.cfg.KeyFile, Token: a.cfg.Token})
	if err != nil {
		return nil, err
	}
	httpClient.Timeout = 30 * time.Second

	opts := []marketplace.ClientOption{marketplace.WithBaseURL(normalizeBaseURL(a.cfg.BaseURL))}
	if a.verbose {
		logger := logrus.New()
		logger.SetOutput(stderr)
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		opts = append(opts, marketplace.WithLogger(logger))
	}
	api, err := marketplace.NewClient(httpClient, opts...)
	if err != nil {
		return nil, err
	}
	a.api = api
	return api, nil
}

// accountID returns id, or the configured account when id is unset.
func (a *app) accountID(id int64) (int64, error) {
	if id == 0 {
		id = a.cfg.AccountID
	}
	if id <= 0 {
		return 0, errors.New("a buyer account ID is required: set --account-id or " + config.EnvAccountID)
	}
	return id, nil
}

// pageSize returns n, or the configured page size when n is unset.
func (a *app) pageSize(n int) int {
	if n > 0 {
		return n
	}
	return a.cfg.PageSize
}

// normalizeBaseURL accepts a server root ("http://localhost:8080") as well
// as an API root and returns the API root with a trailing slash.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if raw == "" {
		return config.DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/v1") {
		raw += "/v1"
	}
	return raw + "/"
}

// sample is the context one sample command runs in.
type sample struct {
	ctx context.Context
	out io.Writer
	api *marketplace.APIClient
}

// run wraps a sample body into a cobra RunE that resolves the API client.
func (a *app) run(fn func(s *sample) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, err := a.client(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		err = fn(&sample{ctx: cmd.Context(), out: cmd.OutOrStdout(), api: api})
		if marketplace.IsNotFound(err) {
			return fmt.Errorf("the resource was not found, check the IDs passed to %q: %w", cmd.CommandPath(), err)
		}
		return err
	}
}

// intro prints the line announcing what a sample does.
func (s *sample) intro(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// print renders one resource.
func (s *sample) print(v any) error {
	return marketplace.Printers.Render(s.out, v, 0)
}

// listAll prints every resource of every page fetch returns, or empty when
// there are none.
func listAll[T any](s *sample, opts marketplace.ListOptions, empty string,
	fetch func(ctx context.Context, opts marketplace.ListOptions) ([]T, string, error)) error {
	found := 0
	err := marketplace.Pages(s.ctx, opts, func(ctx context.Context, opts marketplace.ListOptions) (string, error) {
		items, next, err := fetch(ctx, opts)
		if err != nil {
			return "", err
		}
		found += len(items)
		for i := range items {
			if err := s.print(&items[i]); err != nil {
				return "", err
			}
		}
		return next, nil
	})
	if err != nil {
		return err
	}
	if found == 0 {
		fmt.Fprintln(s.out, empty)
	}
	return nil
}

// listFlags are the flags shared by list samples.
type listFlags struct {
	pageSize int
	filter   string
	orderBy  string
}

func (f *listFlags) register(cmd *cobra.Command, pageShorthand string, withFilter bool) {
	cmd.Flags().IntVarP(&f.pageSize, "page-size", pageShorthand, 0, fmt.Sprintf("Maximum number of resources per page (default %d)", config.DefaultPageSize))
	if withFilter {
		cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "Filter expression, e.g. 'state = ACTIVE'")
		cmd.Flags().StringVarP(&f.orderBy, "order-by", "o", "", "Sort order, e.g. 'displayName desc'")
	}
}

func (f *listFlags) options(a *app) marketplace.ListOptions {
	return marketplace.ListOptions{PageSize: a.pageSize(f.pageSize), Filter: f.filter, OrderBy: f.orderBy}
}

func addAccountFlag(cmd *cobra.Command, id *int64) {
	cmd.Flags().Int64VarP(id, "account-id", "a", 0, "Buyer account ID (env "+config.EnvAccountID+")")
}

// requireFlags marks flags as required, panicking on unknown names.
func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
