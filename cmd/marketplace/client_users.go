package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newClientUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client-users",
		Short: "Samples for buyers.clients.users",
	}
	cmd.AddCommand(
		newCreateClientUserCommand(a),
		newGetClientUserCommand(a),
		newListClientUsersCommand(a),
		newSetClientUserStateCommand(a, "activate", "Activate an inactive client user", "Activated"),
		newSetClientUserStateCommand(a, "deactivate", "Deactivate an active client user", "Deactivated"),
		newDeleteClientUserCommand(a),
	)
	return cmd
}

// clientUserFlags identify one client user.
type clientUserFlags struct {
	accountID int64
	clientID  string
	userID    string
}

func (f *clientUserFlags) register(cmd *cobra.Command, withUser bool) {
	addAccountFlag(cmd, &f.accountID)
	cmd.Flags().StringVarP(&f.clientID, "client-id", "c", "", "ID of the client")
	requireFlags(cmd, "client-id")
	if withUser {
		cmd.Flags().StringVarP(&f.userID, "client-user-id", "u", "", "ID of the client user")
		requireFlags(cmd, "client-user-id")
	}
}

func (f *clientUserFlags) clientName(a *app) (string, error) {
	id, err := a.accountID(f.accountID)
	if err != nil {
		return "", err
	}
	return marketplace.ClientName(id, f.clientID), nil
}

func (f *clientUserFlags) userName(a *app) (string, error) {
	id, err := a.accountID(f.accountID)
	if err != nil {
		return "", err
	}
	return marketplace.ClientUserName(id, f.clientID, f.userID), nil
}

func newCreateClientUserCommand(a *app) *cobra.Command {
	var (
		flags clientUserFlags
		email string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Invite a user to a client",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			parent, err := flags.clientName(a)
			if err != nil {
				return err
			}
			u, err := s.api.ClientUsers.Create(s.ctx, parent, &marketplace.ClientUser{Email: marketplace.String(email)})
			if err != nil {
				return err
			}
			s.intro("Created client user for client with name %q:", parent)
			return s.print(u)
		}),
	}
	flags.register(cmd, false)
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address of the client user")
	requireFlags(cmd, "email")
	return cmd
}

func newGetClientUserCommand(a *app) *cobra.Command {
	var flags clientUserFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a client user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.userName(a)
			if err != nil {
				return err
			}
			u, err := s.api.ClientUsers.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found client user with name %q:", name)
			return s.print(u)
		}),
	}
	flags.register(cmd, true)
	return cmd
}

func newListClientUsersCommand(a *app) *cobra.Command {
	var (
		flags clientUserFlags
		list  listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the users of a client",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			parent, err := flags.clientName(a)
			if err != nil {
				return err
			}
			s.intro("Found client users for client with name %q:", parent)
			return listAll(s, list.options(a), "No client users found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.ClientUser, string, error) {
					resp, err := s.api.ClientUsers.List(ctx, parent, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.ClientUsers, resp.NextPageToken, nil
				})
		}),
	}
	flags.register(cmd, false)
	list.register(cmd, "p", false)
	return cmd
}

// newSetClientUserStateCommand returns the activate or deactivate sample.
func newSetClientUserStateCommand(a *app, verb, short, done string) *cobra.Command {
	var flags clientUserFlags
	cmd := &cobra.Command{
		Use:   verb,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.userName(a)
			if err != nil {
				return err
			}
			call := s.api.ClientUsers.Activate
			if verb == "deactivate" {
				call = s.api.ClientUsers.Deactivate
			}
			u, err := call(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("%s client user with name %q:", done, name)
			return s.print(u)
		}),
	}
	flags.register(cmd, true)
	return cmd
}

func newDeleteClientUserCommand(a *app) *cobra.Command {
	var flags clientUserFlags
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a client user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.userName(a)
			if err != nil {
				return err
			}
			if err := s.api.ClientUsers.Delete(s.ctx, name); err != nil {
				return err
			}
			s.intro("Deleted client user with name %q.", name)
			return nil
		}),
	}
	flags.register(cmd, true)
	return cmd
}
