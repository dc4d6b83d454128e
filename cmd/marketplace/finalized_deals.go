package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newFinalizedDealsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalized-deals",
		Short: "Samples for buyers.finalizedDeals",
	}
	cmd.AddCommand(
		newGetFinalizedDealCommand(a),
		newListFinalizedDealsCommand(a),
		newPauseFinalizedDealCommand(a),
		newResumeFinalizedDealCommand(a),
		newAddCreativeCommand(a),
		newSetReadyToServeCommand(a),
	)
	return cmd
}

// finalizedDealFlags identify one finalized deal.
type finalizedDealFlags struct {
	accountID int64
	dealID    string
}

func (f *finalizedDealFlags) register(cmd *cobra.Command) {
	addAccountFlag(cmd, &f.accountID)
	cmd.Flags().StringVarP(&f.dealID, "deal-id", "d", "", "ID of the finalized deal")
	requireFlags(cmd, "deal-id")
}

// finalizedDealCommand returns a sample that performs call on one finalized
// deal and prints the result after the intro.
func finalizedDealCommand(a *app, use, short, intro string,
	call func(s *sample, accountID int64, name string) (*marketplace.FinalizedDeal, error)) *cobra.Command {
	flags := &finalizedDealFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(flags.accountID)
			if err != nil {
				return err
			}
			name := marketplace.FinalizedDealName(id, flags.dealID)
			s.intro(intro, name)
			fd, err := call(s, id, name)
			if err != nil {
				return err
			}
			return s.print(fd)
		}),
	}
	flags.register(cmd)
	return cmd
}

func newGetFinalizedDealCommand(a *app) *cobra.Command {
	cmd := finalizedDealCommand(a, "get", "Get a finalized deal", "Found finalized deal with name %q:",
		func(s *sample, _ int64, name string) (*marketplace.FinalizedDeal, error) {
			return s.api.FinalizedDeals.Get(s.ctx, name)
		})
	return cmd
}

func newListFinalizedDealsCommand(a *app) *cobra.Command {
	var (
		accountID int64
		list      listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the finalized deals of a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)
			s.intro("Found finalized deals for buyer account ID '%d':", id)
			return listAll(s, list.options(a), "No finalized deals found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.FinalizedDeal, string, error) {
					resp, err := s.api.FinalizedDeals.List(ctx, buyer, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.FinalizedDeals, resp.NextPageToken, nil
				})
		}),
	}
	addAccountFlag(cmd, &accountID)
	list.register(cmd, "p", true)
	return cmd
}

func newPauseFinalizedDealCommand(a *app) *cobra.Command {
	var reason string
	cmd := finalizedDealCommand(a, "pause", "Pause serving of a finalized deal", "Pausing finalized deal with name %q:",
		func(s *sample, _ int64, name string) (*marketplace.FinalizedDeal, error) {
			return s.api.FinalizedDeals.Pause(s.ctx, name, reason)
		})
	cmd.Flags().StringVar(&reason, "reason", "", "Reason shown to the seller")
	return cmd
}

func newResumeFinalizedDealCommand(a *app) *cobra.Command {
	cmd := finalizedDealCommand(a, "resume", "Resume serving of a paused finalized deal", "Resuming finalized deal with name %q:",
		func(s *sample, _ int64, name string) (*marketplace.FinalizedDeal, error) {
			return s.api.FinalizedDeals.Resume(s.ctx, name)
		})
	return cmd
}

func newAddCreativeCommand(a *app) *cobra.Command {
	var creativeID string
	cmd := finalizedDealCommand(a, "add-creative", "Add a creative to a programmatic guaranteed finalized deal",
		"Adding creative to finalized deal with name %q:",
		func(s *sample, accountID int64, name string) (*marketplace.FinalizedDeal, error) {
			return s.api.FinalizedDeals.AddCreative(s.ctx, name, marketplace.CreativeName(accountID, creativeID))
		})
	cmd.Flags().StringVar(&creativeID, "creative-id", "", "ID of a creative of the buyer")
	requireFlags(cmd, "creative-id")
	return cmd
}

func newSetReadyToServeCommand(a *app) *cobra.Command {
	cmd := finalizedDealCommand(a, "set-ready-to-serve", "Signal that a programmatic guaranteed deal is ready to serve",
		"Signaling that finalized deal with name %q is ready to serve:",
		func(s *sample, _ int64, name string) (*marketplace.FinalizedDeal, error) {
			return s.api.FinalizedDeals.SetReadyToServe(s.ctx, name)
		})
	return cmd
}
