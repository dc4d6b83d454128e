package marketplace

import "context"

// AuctionPackagesService handles buyers.auctionPackages.
type AuctionPackagesService struct{ c *APIClient }

// Get fetches an auction package by resource name.
func (s *AuctionPackagesService) Get(ctx context.Context, name string) (*AuctionPackage, error) {
	var out AuctionPackage
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the auction packages under parent.
func (s *AuctionPackagesService) List(ctx context.Context, parent string, opts ListOptions) (*ListAuctionPackagesResponse, error) {
	var out ListAuctionPackagesResponse
	if err := s.c.get(ctx, parent+"/auctionPackages", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscribe subscribes the buyer to the auction package.
func (s *AuctionPackagesService) Subscribe(ctx context.Context, name string) (*AuctionPackage, error) {
	return s.call(ctx, name+":subscribe", nil)
}

// Unsubscribe unsubscribes the buyer from the auction package.
func (s *AuctionPackagesService) Unsubscribe(ctx context.Context, name string) (*AuctionPackage, error) {
	return s.call(ctx, name+":unsubscribe", nil)
}

// SubscribeClients subscribes the named clients to the auction package.
func (s *AuctionPackagesService) SubscribeClients(ctx context.Context, name string, clients []string) (*AuctionPackage, error) {
	return s.call(ctx, name+":subscribeClients", &SubscribeClientsRequest{Clients: clients})
}

// UnsubscribeClients unsubscribes the named clients from the auction package.
func (s *AuctionPackagesService) UnsubscribeClients(ctx context.Context, name string, clients []string) (*AuctionPackage, error) {
	return s.call(ctx, name+":unsubscribeClients", &UnsubscribeClientsRequest{Clients: clients})
}

func (s *AuctionPackagesService) call(ctx context.Context, path string, body any) (*AuctionPackage, error) {
	var out AuctionPackage
	if err := s.c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublisherProfilesService handles buyers.publisherProfiles.
type PublisherProfilesService struct{ c *APIClient }

// Get fetches a publisher profile by resource name.
func (s *PublisherProfilesService) Get(ctx context.Context, name string) (*PublisherProfile, error) {
	var out PublisherProfile
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the publisher profiles under parent.
func (s *PublisherProfilesService) List(ctx context.Context, parent string, opts ListOptions) (*ListPublisherProfilesResponse, error) {
	var out ListPublisherProfilesResponse
	if err := s.c.get(ctx, parent+"/publisherProfiles", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
