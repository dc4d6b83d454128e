package playground

import (
	"strings"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// GetFinalizedDeal returns the named finalized deal.
func (s *State) GetFinalizedDeal(name string) (*marketplace.FinalizedDeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fd, ok := s.finalizedDeals[name]
	if !ok {
		return nil, errNotFound("Finalized deal", name)
	}
	return clone(fd), nil
}

// ListFinalizedDeals returns a page of the finalized deals of buyer.
func (s *State) ListFinalizedDeals(buyer string, params *ListParams) (*marketplace.ListFinalizedDealsResponse, error) {
	s.mu.RLock()
	items := sortedChildren(s.finalizedDeals, buyer+"/finalizedDeals/")
	s.mu.RUnlock()

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListFinalizedDealsResponse{FinalizedDeals: page, NextPageToken: next}, nil
}

// PauseFinalizedDeal pauses serving of an active finalized deal on behalf of
// the buyer.
func (s *State) PauseFinalizedDeal(name, reason string) (*marketplace.FinalizedDeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fd, ok := s.finalizedDeals[name]
	if !ok {
		return nil, errNotFound("Finalized deal", name)
	}
	if status := marketplace.StringValue(fd.DealServingStatus); status != ServingStatusActive {
		return nil, errFailedPrecondition("Finalized deal %s is %s and cannot be paused.", name, status)
	}
	fd.DealServingStatus = marketplace.String(ServingStatusPausedByBuyer)
	fd.DealPausingInfo = &marketplace.DealPausingInfo{
		PausingConsented: marketplace.Bool(true),
		PauseRole:        marketplace.String(RoleBuyer),
	}
	if reason != "" {
		fd.DealPausingInfo.PauseReason = marketplace.String(reason)
	}
	return clone(fd), nil
}

// ResumeFinalizedDeal resumes a finalized deal paused by the buyer.
func (s *State) ResumeFinalizedDeal(name string) (*marketplace.FinalizedDeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fd, ok := s.finalizedDeals[name]
	if !ok {
		return nil, errNotFound("Finalized deal", name)
	}
	if status := marketplace.StringValue(fd.DealServingStatus); status != ServingStatusPausedByBuyer {
		return nil, errFailedPrecondition("Finalized deal %s is %s and cannot be resumed.", name, status)
	}
	fd.DealServingStatus = marketplace.String(ServingStatusActive)
	fd.DealPausingInfo = nil
	return clone(fd), nil
}

// AddCreative associates a creative with a programmatic guaranteed
// finalized deal.
func (s *State) AddCreative(name, creative string) (*marketplace.FinalizedDeal, error) {
	if !strings.HasPrefix(creative, buyerOf(name)+"/creatives/") {
		return nil, errInvalid("Invalid creative name: %q", creative)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fd, err := s.guaranteedDealLocked(name)
	if err != nil {
		return nil, err
	}
	if !containsString(s.creatives[name], creative) {
		s.creatives[name] = append(s.creatives[name], creative)
	}
	return clone(fd), nil
}

// SetReadyToServe marks a programmatic guaranteed finalized deal as ready to
// serve.
func (s *State) SetReadyToServe(name string) (*marketplace.FinalizedDeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fd, err := s.guaranteedDealLocked(name)
	if err != nil {
		return nil, err
	}
	fd.ReadyToServe = marketplace.Bool(true)
	return clone(fd), nil
}

// Creatives returns the creatives added to the named finalized deal.
func (s *State) Creatives(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.creatives[name]...)
}

func (s *State) guaranteedDealLocked(name string) (*marketplace.FinalizedDeal, error) {
	fd, ok := s.finalizedDeals[name]
	if !ok {
		return nil, errNotFound("Finalized deal", name)
	}
	if fd.Deal == nil || marketplace.StringValue(fd.Deal.DealType) != DealTypeProgrammaticGuaranteed {
		return nil, errFailedPrecondition("Finalized deal %s is not a programmatic guaranteed deal.", name)
	}
	return fd, nil
}

// GetAuctionPackage returns the named auction package.
func (s *State) GetAuctionPackage(name string) (*marketplace.AuctionPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ap, ok := s.auctionPackages[name]
	if !ok {
		return nil, errNotFound("Auction package", name)
	}
	return clone(ap), nil
}

// ListAuctionPackages returns a page of the auction packages visible to
// buyer.
func (s *State) ListAuctionPackages(buyer string, params *ListParams) (*marketplace.ListAuctionPackagesResponse, error) {
	s.mu.RLock()
	items := sortedChildren(s.auctionPackages, buyer+"/auctionPackages/")
	s.mu.RUnlock()

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListAuctionPackagesResponse{AuctionPackages: page, NextPageToken: next}, nil
}

// SubscribeAuctionPackage subscribes the package's buyer to it.
func (s *State) SubscribeAuctionPackage(name string) (*marketplace.AuctionPackage, error) {
	return s.updateAuctionPackage(name, func(ap *marketplace.AuctionPackage) error {
		buyer := buyerOf(name)
		if !containsString(ap.SubscribedBuyers, buyer) {
			ap.SubscribedBuyers = append(ap.SubscribedBuyers, buyer)
		}
		return nil
	})
}

// UnsubscribeAuctionPackage removes the buyer and all of its clients from
// the package's subscribers.
func (s *State) UnsubscribeAuctionPackage(name string) (*marketplace.AuctionPackage, error) {
	return s.updateAuctionPackage(name, func(ap *marketplace.AuctionPackage) error {
		buyer := buyerOf(name)
		ap.SubscribedBuyers = removeString(ap.SubscribedBuyers, buyer)
		kept := ap.SubscribedClients[:0:0]
		for _, c := range ap.SubscribedClients {
			if !strings.HasPrefix(c, buyer+"/clients/") {
				kept = append(kept, c)
			}
		}
		ap.SubscribedClients = kept
		return nil
	})
}

// SubscribeClients subscribes existing clients of the buyer to the package.
func (s *State) SubscribeClients(name string, clients []string) (*marketplace.AuctionPackage, error) {
	if len(clients) == 0 {
		return nil, errInvalid("At least one client is required.")
	}
	return s.updateAuctionPackage(name, func(ap *marketplace.AuctionPackage) error {
		for _, c := range clients {
			if _, ok := s.clients[c]; !ok || buyerOf(c) != buyerOf(name) {
				return errNotFound("Client", c)
			}
		}
		for _, c := range clients {
			if !containsString(ap.SubscribedClients, c) {
				ap.SubscribedClients = append(ap.SubscribedClients, c)
			}
		}
		return nil
	})
}

// UnsubscribeClients removes clients from the package's subscribers.
func (s *State) UnsubscribeClients(name string, clients []string) (*marketplace.AuctionPackage, error) {
	if len(clients) == 0 {
		return nil, errInvalid("At least one client is required.")
	}
	return s.updateAuctionPackage(name, func(ap *marketplace.AuctionPackage) error {
		for _, c := range clients {
			ap.SubscribedClients = removeString(ap.SubscribedClients, c)
		}
		return nil
	})
}

// updateAuctionPackage applies fn to a copy of the named package and stores
// the copy when fn succeeds.
func (s *State) updateAuctionPackage(name string, fn func(*marketplace.AuctionPackage) error) (*marketplace.AuctionPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.auctionPackages[name]
	if !ok {
		return nil, errNotFound("Auction package", name)
	}
	updated := clone(ap)
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.UpdateTime = s.timestamp()
	s.auctionPackages[name] = updated
	return clone(updated), nil
}

// GetPublisherProfile returns the named publisher profile.
func (s *State) GetPublisherProfile(name string) (*marketplace.PublisherProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pp, ok := s.publisherProfiles[name]
	if !ok {
		return nil, errNotFound("Publisher profile", name)
	}
	return clone(pp), nil
}

// ListPublisherProfiles returns a page of the publisher profiles visible to
// buyer.
func (s *State) ListPublisherProfiles(buyer string, params *ListParams) (*marketplace.ListPublisherProfilesResponse, error) {
	s.mu.RLock()
	items := sortedChildren(s.publisherProfiles, buyer+"/publisherProfiles/")
	s.mu.RUnlock()

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListPublisherProfilesResponse{PublisherProfiles: page, NextPageToken: next}, nil
}
