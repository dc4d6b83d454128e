package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newDealsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deals",
		Short: "Samples for buyers.proposals.deals",
	}
	cmd.AddCommand(
		newGetDealCommand(a),
		newListDealsCommand(a),
		newPatchDealCommand(a, marketplace.DealTypePreferredDeal),
		newPatchDealCommand(a, marketplace.DealTypeProgrammaticGuaranteed),
		newBatchUpdateDealsCommand(a),
	)
	return cmd
}

// dealFlags identify one deal.
type dealFlags struct {
	proposalFlags
	dealID string
}

func (f *dealFlags) register(cmd *cobra.Command) {
	f.proposalFlags.register(cmd)
	cmd.Flags().StringVarP(&f.dealID, "deal-id", "d", "", "ID of the deal")
	requireFlags(cmd, "deal-id")
}

func (f *dealFlags) name(a *app) (string, error) {
	id, err := a.accountID(f.accountID)
	if err != nil {
		return "", err
	}
	return marketplace.DealName(id, f.proposalID, f.dealID), nil
}

func newGetDealCommand(a *app) *cobra.Command {
	var flags dealFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a deal of a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			d, err := s.api.Deals.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found deal with name %q:", name)
			return s.print(d)
		}),
	}
	flags.register(cmd)
	return cmd
}

func newListDealsCommand(a *app) *cobra.Command {
	var (
		flags proposalFlags
		list  listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the deals of a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			parent, err := flags.name(a)
			if err != nil {
				return err
			}
			s.intro("Found deals for proposal with name %q:", parent)
			return listAll(s, list.options(a), "No deals found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.Deal, string, error) {
					resp, err := s.api.Deals.List(ctx, parent, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.Deals, resp.NextPageToken, nil
				})
		}),
	}
	flags.register(cmd)
	list.register(cmd, "", false)
	return cmd
}

// newPatchDealCommand returns the sample that moves the flight of a deal
// and changes its fixed price. dealType selects the terms that carry the
// price.
func newPatchDealCommand(a *app, dealType string) *cobra.Command {
	var (
		flags       dealFlags
		revision    int64
		flightStart string
		flightEnd   string
		units       int64
		nanos       int32
	)
	use, short, terms := "patch-preferred", "Update the flight and fixed price of a preferred deal", "preferredDealTerms"
	if dealType == marketplace.DealTypeProgrammaticGuaranteed {
		use, short, terms = "patch-programmatic-guaranteed", "Update the flight and fixed price of a programmatic guaranteed deal", "programmaticGuaranteedTerms"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			start, end, err := resolveFlight(flightStart, flightEnd, time.Now())
			if err != nil {
				return err
			}
			price := &marketplace.Price{Amount: &marketplace.Money{
				Units: marketplace.Int64(units),
				Nanos: marketplace.Int32(nanos),
			}}
			update := &marketplace.Deal{
				ProposalRevision: marketplace.Int64(revision),
				FlightStartTime:  optionalString(start),
				FlightEndTime:    optionalString(end),
			}
			if dealType == marketplace.DealTypeProgrammaticGuaranteed {
				update.ProgrammaticGuaranteedTerms = &marketplace.ProgrammaticGuaranteedTerms{FixedPrice: price}
			} else {
				update.PreferredDealTerms = &marketplace.PreferredDealTerms{FixedPrice: price}
			}
			mask := "flightStartTime,flightEndTime," +
				terms + ".fixedPrice.amount.units," +
				terms + ".fixedPrice.amount.nanos"

			s.intro("Patching deal with name %q:", name)
			d, err := s.api.Deals.Patch(s.ctx, name, update, mask)
			if err != nil {
				return err
			}
			return s.print(d)
		}),
	}
	flags.register(cmd)
	addRevisionFlag(cmd, &revision)
	cmd.Flags().StringVar(&flightStart, "flight-start-time", "", "RFC 3339 start of the flight (default one day from now, or one day before the end)")
	cmd.Flags().StringVar(&flightEnd, "flight-end-time", "", "RFC 3339 end of the flight (default one day after the start)")
	cmd.Flags().Int64Var(&units, "fixed-price-units", 1, "Whole units of the fixed price")
	cmd.Flags().Int32Var(&nanos, "fixed-price-nanos", 0, "Nano units of the fixed price")
	return cmd
}

func newBatchUpdateDealsCommand(a *app) *cobra.Command {
	var (
		flags       proposalFlags
		revision    int64
		dealIDs     []string
		userListIDs []int64
	)
	cmd := &cobra.Command{
		Use:   "batch-update",
		Short: "Set the targeted user lists of several deals of a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(flags.accountID)
			if err != nil {
				return err
			}
			parent := marketplace.ProposalName(id, flags.proposalID)

			req := &marketplace.BatchUpdateDealsRequest{}
			for _, dealID := range dealIDs {
				req.Requests = append(req.Requests, marketplace.UpdateDealRequest{
					Deal: &marketplace.Deal{
						Name:             marketplace.String(marketplace.DealName(id, flags.proposalID, dealID)),
						ProposalRevision: marketplace.Int64(revision),
						Targeting: &marketplace.MarketplaceTargeting{
							UserListTargeting: &marketplace.CriteriaTargeting{
								TargetedCriteriaIDs: marketplace.Int64List(userListIDs),
							},
						},
					},
					UpdateMask: "targeting.userListTargeting.targetedCriteriaIds",
				})
			}

			s.intro("Batch updating deals for proposal with name %q:", parent)
			resp, err := s.api.Deals.BatchUpdate(s.ctx, parent, req)
			if err != nil {
				return err
			}
			for i := range resp.Deals {
				if err := s.print(&resp.Deals[i]); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	flags.register(cmd)
	addRevisionFlag(cmd, &revision)
	cmd.Flags().StringSliceVarP(&dealIDs, "deal-ids", "d", nil, "IDs of the deals to update")
	cmd.Flags().Int64SliceVarP(&userListIDs, "user-list-ids", "u", nil, "IDs of the user lists to target")
	requireFlags(cmd, "deal-ids", "user-list-ids")
	return cmd
}
