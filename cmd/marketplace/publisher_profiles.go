package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newPublisherProfilesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publisher-profiles",
		Short: "Samples for buyers.publisherProfiles",
	}
	cmd.AddCommand(newGetPublisherProfileCommand(a), newListPublisherProfilesCommand(a))
	return cmd
}

func newGetPublisherProfileCommand(a *app) *cobra.Command {
	var (
		accountID int64
		profileID string
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a publisher profile",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			name := marketplace.PublisherProfileName(id, profileID)
			p, err := s.api.PublisherProfiles.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found publisher profile with name %q:", name)
			return s.print(p)
		}),
	}
	addAccountFlag(cmd, &accountID)
	cmd.Flags().StringVarP(&profileID, "publisher-profile-id", "i", "", "ID of the publisher profile")
	requireFlags(cmd, "publisher-profile-id")
	return cmd
}

func newListPublisherProfilesCommand(a *app) *cobra.Command {
	var (
		accountID int64
		list      listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the publisher profiles available to a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)
			s.intro("Found publisher profiles for buyer account ID '%d':", id)
			return listAll(s, list.options(a), "No publisher profiles found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.PublisherProfile, string, error) {
					resp, err := s.api.PublisherProfiles.List(ctx, buyer, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.PublisherProfiles, resp.NextPageToken, nil
				})
		}),
	}
	addAccountFlag(cmd, &accountID)
	list.register(cmd, "p", true)
	return cmd
}
