package marketplace

import (
	"context"
	"net/http"
)

// ClientsService handles buyers.clients.
type ClientsService struct{ c *APIClient }

// Create creates a client under parent ("buyers/{accountID}").
func (s *ClientsService) Create(ctx context.Context, parent string, client *Client) (*Client, error) {
	var out Client
	if err := s.c.post(ctx, parent+"/clients", client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a client by resource name.
func (s *ClientsService) Get(ctx context.Context, name string) (*Client, error) {
	var out Client
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the clients under parent.
func (s *ClientsService) List(ctx context.Context, parent string, opts ListOptions) (*ListClientsResponse, error) {
	var out ListClientsResponse
	if err := s.c.get(ctx, parent+"/clients", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates the fields of client named by updateMask.
func (s *ClientsService) Patch(ctx context.Context, name string, client *Client, updateMask string) (*Client, error) {
	var out Client
	if err := s.c.patch(ctx, name, updateMask, client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activate sets the client's state to ACTIVE.
func (s *ClientsService) Activate(ctx context.Context, name string) (*Client, error) {
	var out Client
	if err := s.c.post(ctx, name+":activate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deactivate sets the client's state to INACTIVE.
func (s *ClientsService) Deactivate(ctx context.Context, name string) (*Client, error) {
	var out Client
	if err := s.c.post(ctx, name+":deactivate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientUsersService handles buyers.clients.users.
type ClientUsersService struct{ c *APIClient }

// Create invites a user to the client named parent.
func (s *ClientUsersService) Create(ctx context.Context, parent string, user *ClientUser) (*ClientUser, error) {
	var out ClientUser
	if err := s.c.post(ctx, parent+"/users", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a client user by resource name.
func (s *ClientUsersService) Get(ctx context.Context, name string) (*ClientUser, error) {
	var out ClientUser
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the users of the client named parent.
func (s *ClientUsersService) List(ctx context.Context, parent string, opts ListOptions) (*ListClientUsersResponse, error) {
	var out ListClientUsersResponse
	if err := s.c.get(ctx, parent+"/users", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activate sets the user's state to ACTIVE.
func (s *ClientUsersService) Activate(ctx context.Context, name string) (*ClientUser, error) {
	var out ClientUser
	if err := s.c.post(ctx, name+":activate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deactivate sets the user's state to INACTIVE.
func (s *ClientUsersService) Deactivate(ctx context.Context, name string) (*ClientUser, error) {
	var out ClientUser
	if err := s.c.post(ctx, name+":deactivate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a client user.
func (s *ClientUsersService) Delete(ctx context.Context, name string) error {
	return s.c.do(ctx, http.MethodDelete, name, nil, nil, nil)
}
