package playground

import (
	"strings"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// Client states and roles.
const (
	StateActive   = "ACTIVE"
	StateInactive = "INACTIVE"
	StateInvited  = "INVITED"
)

var clientRoles = []string{"CLIENT_DEAL_VIEWER", "CLIENT_DEAL_NEGOTIATOR", "CLIENT_DEAL_APPROVER"}

var clientUpdatableFields = []string{"displayName", "partnerClientId", "role", "sellerVisible"}

// CreateClient stores a new client under buyer and returns it.
func (s *State) CreateClient(buyer string, c *marketplace.Client) (*marketplace.Client, error) {
	if c == nil || marketplace.StringValue(c.DisplayName) == "" {
		return nil, errInvalid("Client display name is required.")
	}
	if !containsString(clientRoles, marketplace.StringValue(c.Role)) {
		return nil, errInvalid("Invalid client role: %q", marketplace.StringValue(c.Role))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, existing := range s.clients {
		if buyerOf(name) == buyer && marketplace.StringValue(existing.DisplayName) == *c.DisplayName {
			return nil, errAlreadyExists("A client with display name %q already exists.", *c.DisplayName)
		}
	}

	created := clone(c)
	created.Name = marketplace.String(buyer + "/clients/" + s.newID())
	created.State = marketplace.String(StateActive)
	s.clients[*created.Name] = created
	return clone(created), nil
}

// GetClient returns the named client.
func (s *State) GetClient(name string) (*marketplace.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[name]
	if !ok {
		return nil, errNotFound("Client", name)
	}
	return clone(c), nil
}

// ListClients returns a page of the clients of buyer.
func (s *State) ListClients(buyer string, params *ListParams) (*marketplace.ListClientsResponse, error) {
	s.mu.RLock()
	items := sortedChildren(s.clients, buyer+"/clients/")
	s.mu.RUnlock()

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListClientsResponse{Clients: page, NextPageToken: next}, nil
}

// PatchClient applies the fields of update selected by mask.
func (s *State) PatchClient(name string, update *marketplace.Client, mask string) (*marketplace.Client, error) {
	if update == nil {
		return nil, errInvalid("Request body is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[name]
	if !ok {
		return nil, errNotFound("Client", name)
	}
	patched := clone(c)
	if err := applyUpdateMask(patched, update, mask, clientUpdatableFields); err != nil {
		return nil, err
	}
	if !containsString(clientRoles, marketplace.StringValue(patched.Role)) {
		return nil, errInvalid("Invalid client role: %q", marketplace.StringValue(patched.Role))
	}
	if marketplace.StringValue(patched.DisplayName) == "" {
		return nil, errInvalid("Client display name is required.")
	}
	patched.Name = c.Name
	patched.State = c.State
	s.clients[name] = patched
	return clone(patched), nil
}

// SetClientState sets the client's state to ACTIVE or INACTIVE.
func (s *State) SetClientState(name, state string) (*marketplace.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[name]
	if !ok {
		return nil, errNotFound("Client", name)
	}
	c.State = marketplace.String(state)
	return clone(c), nil
}

// CreateClientUser invites a user to the client named parent.
func (s *State) CreateClientUser(parent string, u *marketplace.ClientUser) (*marketplace.ClientUser, error) {
	email := ""
	if u != nil {
		email = strings.TrimSpace(marketplace.StringValue(u.Email))
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errInvalid("A valid client user email is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[parent]; !ok {
		return nil, errNotFound("Client", parent)
	}
	prefix := parent + "/users/"
	for name, existing := range s.clientUsers {
		if strings.HasPrefix(name, prefix) && strings.EqualFold(marketplace.StringValue(existing.Email), email) {
			return nil, errAlreadyExists("A client user with email %q already exists.", email)
		}
	}

	created := &marketplace.ClientUser{
		Name:  marketplace.String(prefix + s.newID()),
		Email: marketplace.String(email),
		State: marketplace.String(StateInvited),
	}
	s.clientUsers[*created.Name] = created
	return clone(created), nil
}

// GetClientUser returns the named client user.
func (s *State) GetClientUser(name string) (*marketplace.ClientUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.clientUsers[name]
	if !ok {
		return nil, errNotFound("Client user", name)
	}
	return clone(u), nil
}

// ListClientUsers returns a page of the users of the client named parent.
func (s *State) ListClientUsers(parent string, params *ListParams) (*marketplace.ListClientUsersResponse, error) {
	s.mu.RLock()
	_, ok := s.clients[parent]
	items := sortedChildren(s.clientUsers, parent+"/users/")
	s.mu.RUnlock()
	if !ok {
		return nil, errNotFound("Client", parent)
	}

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListClientUsersResponse{ClientUsers: page, NextPageToken: next}, nil
}

// SetClientUserState sets the user's state to ACTIVE or INACTIVE.
func (s *State) SetClientUserState(name, state string) (*marketplace.ClientUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.clientUsers[name]
	if !ok {
		return nil, errNotFound("Client user", name)
	}
	u.State = marketplace.String(state)
	return clone(u), nil
}

// DeleteClientUser removes the named client user.
func (s *State) DeleteClientUser(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clientUsers[name]; !ok {
		return errNotFound("Client user", name)
	}
	delete(s.clientUsers, name)
	return nil
}
