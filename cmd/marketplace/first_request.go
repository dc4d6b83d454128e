package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newFirstRequestCommand(a *app) *cobra.Command {
	var accountID int64
	cmd := &cobra.Command{
		Use:   "first-request",
		Short: "List the clients of a buyer to check that credentials work",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)

			resp, err := s.api.Clients.List(s.ctx, buyer, marketplace.ListOptions{PageSize: a.pageSize(0)})
			if err != nil {
				return err
			}
			if len(resp.Clients) == 0 {
				s.intro("No clients were found that were associated with buyer %q.", buyer)
				return nil
			}
			s.intro("Listing of clients associated with buyer %q", buyer)
			for _, c := range resp.Clients {
				fmt.Fprintf(s.out, "* Client name: %s\n", marketplace.StringValue(c.Name))
			}
			return nil
		}),
	}
	addAccountFlag(cmd, &accountID)
	return cmd
}
