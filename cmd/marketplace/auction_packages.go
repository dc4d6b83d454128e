package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newAuctionPackagesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction-packages",
		Short: "Samples for buyers.auctionPackages",
	}
	cmd.AddCommand(
		newGetAuctionPackageCommand(a),
		newListAuctionPackagesCommand(a),
		newSubscribeCommand(a, "subscribe", "Subscribe the buyer to an auction package",
			"Subscribing to auction package with name %q:", false),
		newSubscribeCommand(a, "unsubscribe", "Unsubscribe the buyer from an auction package",
			"Unsubscribing from auction package with name %q:", false),
		newSubscribeCommand(a, "subscribe-clients", "Subscribe clients of the buyer to an auction package",
			"Subscribing clients to auction package with name %q:", true),
		newSubscribeCommand(a, "unsubscribe-clients", "Unsubscribe clients of the buyer from an auction package",
			"Unsubscribing clients from auction package with name %q:", true),
	)
	return cmd
}

// auctionPackageFlags identify one auction package.
type auctionPackageFlags struct {
	accountID int64
	packageID string
}

func (f *auctionPackageFlags) register(cmd *cobra.Command) {
	addAccountFlag(cmd, &f.accountID)
	cmd.Flags().StringVarP(&f.packageID, "auction-package-id", "i", "", "ID of the auction package")
	requireFlags(cmd, "auction-package-id")
}

func newGetAuctionPackageCommand(a *app) *cobra.Command {
	var flags auctionPackageFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an auction package",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(flags.accountID)
			if err != nil {
				return err
			}
			name := marketplace.AuctionPackageName(id, flags.packageID)
			p, err := s.api.AuctionPackages.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found auction package with name %q:", name)
			return s.print(p)
		}),
	}
	flags.register(cmd)
	return cmd
}

func newListAuctionPackagesCommand(a *app) *cobra.Command {
	var (
		accountID int64
		list      listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the auction packages available to a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)
			s.intro("Found auction packages for buyer account ID '%d':", id)
			return listAll(s, list.options(a), "No auction packages found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.AuctionPackage, string, error) {
					resp, err := s.api.AuctionPackages.List(ctx, buyer, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.AuctionPackages, resp.NextPageToken, nil
				})
		}),
	}
	addAccountFlag(cmd, &accountID)
	list.register(cmd, "p", false)
	return cmd
}

// newSubscribeCommand returns one of the four subscription samples. The
// client variants take the client IDs to (un)subscribe.
func newSubscribeCommand(a *app, use, short, intro string, withClients bool) *cobra.Command {
	var (
		flags     auctionPackageFlags
		clientIDs []string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(flags.accountID)
			if err != nil {
				return err
			}
			name := marketplace.AuctionPackageName(id, flags.packageID)
			clients := make([]string, len(clientIDs))
			for i, c := range clientIDs {
				clients[i] = marketplace.ClientName(id, c)
			}

			s.intro(intro, name)
			var p *marketplace.AuctionPackage
			switch use {
			case "subscribe":
				p, err = s.api.AuctionPackages.Subscribe(s.ctx, name)
			case "unsubscribe":
				p, err = s.api.AuctionPackages.Unsubscribe(s.ctx, name)
			case "subscribe-clients":
				p, err = s.api.AuctionPackages.SubscribeClients(s.ctx, name, clients)
			default:
				p, err = s.api.AuctionPackages.UnsubscribeClients(s.ctx, name, clients)
			}
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd)
	if withClients {
		cmd.Flags().StringSliceVarP(&clientIDs, "client-ids", "c", nil, "IDs of the clients")
		requireFlags(cmd, "client-ids")
	}
	return cmd
}
