package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newClientsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Samples for buyers.clients",
	}
	cmd.AddCommand(
		newCreateClientCommand(a),
		newGetClientCommand(a),
		newListClientsCommand(a),
		newPatchClientCommand(a),
		newSetClientStateCommand(a, "activate", "Activate an inactive client", "Activated"),
		newSetClientStateCommand(a, "deactivate", "Deactivate an active client", "Deactivated"),
	)
	return cmd
}

// clientFields are the editable fields of a client.
type clientFields struct {
	displayName     string
	partnerClientID string
	role            string
	sellerVisible   bool
}

func (f *clientFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.displayName, "display-name", "n", "", "Display name of the client (default \"Test Client #<uuid>\")")
	cmd.Flags().StringVar(&f.partnerClientID, "partner-client-id", "", "Arbitrary ID assigned to the client by the buyer")
	cmd.Flags().StringVarP(&f.role, "role", "r", "CLIENT_DEAL_VIEWER", "Client role: CLIENT_DEAL_VIEWER, CLIENT_DEAL_NEGOTIATOR or CLIENT_DEAL_APPROVER")
	cmd.Flags().BoolVarP(&f.sellerVisible, "seller-visible", "s", false, "Whether sellers can see the client")
}

func (f *clientFields) client() *marketplace.Client {
	name := f.displayName
	if name == "" {
		name = "Test Client #" + uuid.NewString()
	}
	c := &marketplace.Client{
		DisplayName:   marketplace.String(name),
		Role:          marketplace.String(f.role),
		SellerVisible: marketplace.Bool(f.sellerVisible),
	}
	if f.partnerClientID != "" {
		c.PartnerClientID = marketplace.String(f.partnerClientID)
	}
	return c
}

func newCreateClientCommand(a *app) *cobra.Command {
	var (
		accountID int64
		fields    clientFields
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client for a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			c, err := s.api.Clients.Create(s.ctx, marketplace.BuyerName(id), fields.client())
			if err != nil {
				return err
			}
			s.intro("Created client for buyer Account ID '%d':", id)
			return s.print(c)
		}),
	}
	addAccountFlag(cmd, &accountID)
	fields.register(cmd)
	return cmd
}

func newGetClientCommand(a *app) *cobra.Command {
	var (
		accountID int64
		clientID  string
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a client",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			name := marketplace.ClientName(id, clientID)
			c, err := s.api.Clients.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found client with name %q:", name)
			return s.print(c)
		}),
	}
	addAccountFlag(cmd, &accountID)
	cmd.Flags().StringVarP(&clientID, "client-id", "c", "", "ID of the client")
	requireFlags(cmd, "client-id")
	return cmd
}

func newListClientsCommand(a *app) *cobra.Command {
	var (
		accountID int64
		list      listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the clients of a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)
			s.intro("Listing clients for buyer account: %q.", buyer)
			return listAll(s, list.options(a), "No clients found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.Client, string, error) {
					resp, err := s.api.Clients.List(ctx, buyer, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.Clients, resp.NextPageToken, nil
				})
		}),
	}
	addAccountFlag(cmd, &accountID)
	list.register(cmd, "p", true)
	return cmd
}

func newPatchClientCommand(a *app) *cobra.Command {
	var (
		accountID int64
		clientID  string
		fields    clientFields
	)
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Update the display name, role and seller visibility of a client",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			mask := "displayName,role,sellerVisible"
			if fields.partnerClientID != "" {
				mask += ",partnerClientId"
			}
			c, err := s.api.Clients.Patch(s.ctx, marketplace.ClientName(id, clientID), fields.client(), mask)
			if err != nil {
				return err
			}
			s.intro("Patched client for buyer Account ID '%d':", id)
			return s.print(c)
		}),
	}
	addAccountFlag(cmd, &accountID)
	cmd.Flags().StringVarP(&clientID, "client-id", "c", "", "ID of the client")
	fields.register(cmd)
	requireFlags(cmd, "client-id")
	return cmd
}

// newSetClientStateCommand returns the activate or deactivate sample.
func newSetClientStateCommand(a *app, verb, short, done string) *cobra.Command {
	var (
		accountID int64
		clientID  string
	)
	cmd := &cobra.Command{
		Use:   verb,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			name := marketplace.ClientName(id, clientID)
			call := s.api.Clients.Activate
			if verb == "deactivate" {
				call = s.api.Clients.Deactivate
			}
			c, err := call(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("%s client with name %q:", done, name)
			return s.print(c)
		}),
	}
	addAccountFlag(cmd, &accountID)
	cmd.Flags().StringVarP(&clientID, "client-id", "c", "", "ID of the client")
	requireFlags(cmd, "client-id")
	return cmd
}
