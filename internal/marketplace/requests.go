package marketplace

// ListClientsResponse is the response of buyers.clients.list.
type ListClientsResponse struct {
	Clients       []Client `json:"clients,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// ListClientUsersResponse is the response of buyers.clients.users.list.
type ListClientUsersResponse struct {
	ClientUsers   []ClientUser `json:"clientUsers,omitempty"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// ListProposalsResponse is the response of buyers.proposals.list.
type ListProposalsResponse struct {
	Proposals     []Proposal `json:"proposals,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// ListDealsResponse is the response of buyers.proposals.deals.list.
type ListDealsResponse struct {
	Deals         []Deal `json:"deals,omitempty"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListFinalizedDealsResponse is the response of buyers.finalizedDeals.list.
type ListFinalizedDealsResponse struct {
	FinalizedDeals []FinalizedDeal `json:"finalizedDeals,omitempty"`
	NextPageToken  string          `json:"nextPageToken,omitempty"`
}

// ListAuctionPackagesResponse is the response of buyers.auctionPackages.list.
type ListAuctionPackagesResponse struct {
	AuctionPackages []AuctionPackage `json:"auctionPackages,omitempty"`
	NextPageToken   string           `json:"nextPageToken,omitempty"`
}

// ListPublisherProfilesResponse is the response of buyers.publisherProfiles.list.
type ListPublisherProfilesResponse struct {
	PublisherProfiles []PublisherProfile `json:"publisherProfiles,omitempty"`
	NextPageToken     string             `json:"nextPageToken,omitempty"`
}

// AcceptProposalRequest is the body of buyers.proposals.accept.
type AcceptProposalRequest struct {
	ProposalRevision *int64 `json:"proposalRevision,omitempty,string"`
}

// AddNoteRequest is the body of buyers.proposals.addNote.
type AddNoteRequest struct {
	Note *Note `json:"note,omitempty"`
}

// SendRfpRequest is the body of buyers.proposals.sendRfp.
type SendRfpRequest struct {
	DisplayName                 *string                      `json:"displayName,omitempty"`
	PublisherProfile            *string                      `json:"publisherProfile,omitempty"`
	Client                      *string                      `json:"client,omitempty"`
	BuyerContacts               []Contact                    `json:"buyerContacts,omitempty"`
	Note                        *string                      `json:"note,omitempty"`
	GeoTargeting                *CriteriaTargeting           `json:"geoTargeting,omitempty"`
	InventorySizeTargeting      *InventorySizeTargeting      `json:"inventorySizeTargeting,omitempty"`
	ProgrammaticGuaranteedTerms *ProgrammaticGuaranteedTerms `json:"programmaticGuaranteedTerms,omitempty"`
	PreferredDealTerms          *PreferredDealTerms          `json:"preferredDealTerms,omitempty"`
	FlightStartTime             *string                      `json:"flightStartTime,omitempty"`
	FlightEndTime               *string                      `json:"flightEndTime,omitempty"`
}

// UpdateDealRequest is one entry of a batch update.
type UpdateDealRequest struct {
	Deal       *Deal  `json:"deal,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

// BatchUpdateDealsRequest is the body of buyers.proposals.deals.batchUpdate.
type BatchUpdateDealsRequest struct {
	Requests []UpdateDealRequest `json:"requests,omitempty"`
}

// BatchUpdateDealsResponse is the response of buyers.proposals.deals.batchUpdate.
type BatchUpdateDealsResponse struct {
	Deals []Deal `json:"deals,omitempty"`
}

// PauseFinalizedDealRequest is the body of buyers.finalizedDeals.pause.
type PauseFinalizedDealRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// AddCreativeRequest is the body of buyers.finalizedDeals.addCreative.
type AddCreativeRequest struct {
	Creative *string `json:"creative,omitempty"`
}

// SubscribeClientsRequest is the body of buyers.auctionPackages.subscribeClients.
type SubscribeClientsRequest struct {
	Clients []string `json:"clients,omitempty"`
}

// UnsubscribeClientsRequest is the body of buyers.auctionPackages.unsubscribeClients.
type UnsubscribeClientsRequest struct {
	Clients []string `json:"clients,omitempty"`
}

// Empty is the body of requests and responses that carry no fields.
type Empty struct{}
