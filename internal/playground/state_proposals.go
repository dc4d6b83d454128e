package playground

import (
	"strings"
	"time"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// Proposal states, deal types and roles.
const (
	ProposalBuyerAcceptanceRequested = "BUYER_ACCEPTANCE_REQUESTED"
	ProposalSellerReviewRequested    = "SELLER_REVIEW_REQUESTED"
	ProposalFinalized                = "FINALIZED"
	ProposalTerminated               = "TERMINATED"
	DealTypeProgrammaticGuaranteed   = marketplace.DealTypeProgrammaticGuaranteed
	DealTypePreferredDeal            = marketplace.DealTypePreferredDeal
	RoleBuyer                        = "BUYER"
	ServingStatusActive              = "ACTIVE"
	ServingStatusPausedByBuyer       = "PAUSED_BY_BUYER"
	ServingStatusEnded               = "ENDED"
)

var proposalUpdatableFields = []string{"displayName", "buyerPrivateData", "buyerContacts", "pausingConsented"}

var dealUpdatableFields = []string{
	"displayName", "description", "flightStartTime", "flightEndTime", "targeting",
	"creativeRequirements", "deliveryControl", "estimatedGrossSpend",
	"programmaticGuaranteedTerms", "preferredDealTerms", "privateAuctionTerms",
}

// GetProposal returns the named proposal.
func (s *State) GetProposal(name string) (*marketplace.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.proposals[name]
	if !ok {
		return nil, errNotFound("Proposal", name)
	}
	return clone(p), nil
}

// ListProposals returns a page of the proposals of buyer.
func (s *State) ListProposals(buyer string, params *ListParams) (*marketplace.ListProposalsResponse, error) {
	s.mu.RLock()
	items := sortedChildren(s.proposals, buyer+"/proposals/")
	s.mu.RUnlock()

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListProposalsResponse{Proposals: page, NextPageToken: next}, nil
}

// PatchProposal applies the fields of update selected by mask. update must
// carry the proposal's current revision.
func (s *State) PatchProposal(name string, update *marketplace.Proposal, mask string) (*marketplace.Proposal, error) {
	if update == nil {
		return nil, errInvalid("Request body is required.")
	}
	if strings.TrimSpace(mask) == "" {
		return nil, errInvalid("An update mask is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[name]
	if !ok {
		return nil, errNotFound("Proposal", name)
	}
	if err := checkRevision(p, update.ProposalRevision); err != nil {
		return nil, err
	}
	patched := clone(p)
	if err := applyUpdateMask(patched, update, mask, proposalUpdatableFields); err != nil {
		return nil, err
	}
	s.proposals[name] = patched
	s.bumpRevision(patched)
	return clone(patched), nil
}

// AcceptProposal accepts a proposal awaiting buyer acceptance at the given
// revision. The proposal becomes FINALIZED and each of its deals gets a
// finalized deal.
func (s *State) AcceptProposal(name string, revision *int64) (*marketplace.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[name]
	if !ok {
		return nil, errNotFound("Proposal", name)
	}
	if err := checkRevision(p, revision); err != nil {
		return nil, err
	}
	if marketplace.StringValue(p.State) != ProposalBuyerAcceptanceRequested {
		return nil, errFailedPrecondition("Proposal %s is in state %s and cannot be accepted.", name, marketplace.StringValue(p.State))
	}

	p.State = marketplace.String(ProposalFinalized)
	p.IsRenegotiating = marketplace.Bool(false)
	p.UpdateTime = s.timestamp()
	p.LastUpdaterOrCommentorRole = marketplace.String(RoleBuyer)

	buyer := buyerOf(name)
	for dealName, deal := range s.deals {
		if !strings.HasPrefix(dealName, name+"/deals/") {
			continue
		}
		fdName := buyer + "/finalizedDeals/" + marketplace.LastSegment(dealName)
		if fd, ok := s.finalizedDeals[fdName]; ok {
			fd.Deal = clone(deal)
			continue
		}
		s.finalizedDeals[fdName] = &marketplace.FinalizedDeal{
			Name:              marketplace.String(fdName),
			Deal:              clone(deal),
			DealServingStatus: marketplace.String(ServingStatusActive),
			ReadyToServe:      marketplace.Bool(false),
		}
	}
	return clone(p), nil
}

// AddNote appends a buyer note to the proposal.
func (s *State) AddNote(name string, note *marketplace.Note) (*marketplace.Proposal, error) {
	if note == nil || strings.TrimSpace(marketplace.StringValue(note.Note)) == "" {
		return nil, errInvalid("Note text is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[name]
	if !ok {
		return nil, errNotFound("Proposal", name)
	}
	p.Notes = append(p.Notes, marketplace.Note{
		CreateTime:  s.timestamp(),
		CreatorRole: marketplace.String(RoleBuyer),
		Note:        note.Note,
	})
	p.LastUpdaterOrCommentorRole = marketplace.String(RoleBuyer)
	p.UpdateTime = s.timestamp()
	return clone(p), nil
}

// CancelNegotiation ends a renegotiation, restoring the finalized
// proposal, or terminates a proposal that was never finalized.
func (s *State) CancelNegotiation(name string) (*marketplace.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[name]
	if !ok {
		return nil, errNotFound("Proposal", name)
	}
	switch {
	case marketplace.StringValue(p.State) == ProposalTerminated:
		return nil, errFailedPrecondition("Proposal %s is already terminated.", name)
	case p.IsRenegotiating != nil && *p.IsRenegotiating:
		s.bumpRevision(p)
		p.IsRenegotiating = marketplace.Bool(false)
		p.State = marketplace.String(ProposalFinalized)
	case marketplace.StringValue(p.State) == ProposalFinalized:
		return nil, errFailedPrecondition("Proposal %s is not being negotiated.", name)
	default:
		s.bumpRevision(p)
		p.State = marketplace.String(ProposalTerminated)
	}
	return clone(p), nil
}

// SendRfp creates a proposal with a single deal from a buyer's request for
// proposal.
func (s *State) SendRfp(buyer string, req *marketplace.SendRfpRequest) (*marketplace.Proposal, error) {
	if req == nil {
		return nil, errInvalid("Request body is required.")
	}
	if marketplace.StringValue(req.DisplayName) == "" {
		return nil, errInvalid("RFP display name is required.")
	}
	if len(req.BuyerContacts) == 0 {
		return nil, errInvalid("At least one buyer contact is required.")
	}
	var dealType string
	switch {
	case req.ProgrammaticGuaranteedTerms != nil && req.PreferredDealTerms != nil:
		return nil, errInvalid("Only one of programmaticGuaranteedTerms and preferredDealTerms may be set.")
	case req.ProgrammaticGuaranteedTerms != nil:
		dealType = DealTypeProgrammaticGuaranteed
	case req.PreferredDealTerms != nil:
		dealType = DealTypePreferredDeal
	default:
		return nil, errInvalid("One of programmaticGuaranteedTerms and preferredDealTerms is required.")
	}
	if err := checkFlight(req.FlightStartTime, req.FlightEndTime); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := marketplace.StringValue(req.PublisherProfile)
	if _, ok := s.publisherProfiles[profile]; !ok {
		return nil, errNotFound("Publisher profile", profile)
	}
	client := marketplace.StringValue(req.Client)
	if client != "" {
		if _, ok := s.clients[client]; !ok {
			return nil, errNotFound("Client", client)
		}
	}

	now := s.timestamp()
	proposalName := buyer + "/proposals/MP" + s.newID()
	p := &marketplace.Proposal{
		Name:                       marketplace.String(proposalName),
		UpdateTime:                 now,
		ProposalRevision:           marketplace.Int64(1),
		DealType:                   marketplace.String(dealType),
		DisplayName:                req.DisplayName,
		State:                      marketplace.String(ProposalSellerReviewRequested),
		IsRenegotiating:            marketplace.Bool(false),
		OriginatorRole:             marketplace.String(RoleBuyer),
		PublisherProfile:           marketplace.String(profile),
		BilledBuyer:                marketplace.String(buyer),
		BuyerContacts:              req.BuyerContacts,
		LastUpdaterOrCommentorRole: marketplace.String(RoleBuyer),
	}
	if note := marketplace.StringValue(req.Note); note != "" {
		p.Notes = []marketplace.Note{{CreateTime: now, CreatorRole: marketplace.String(RoleBuyer), Note: marketplace.String(note)}}
	}

	d := &marketplace.Deal{
		Name:                        marketplace.String(proposalName + "/deals/" + s.newID()),
		CreateTime:                  now,
		UpdateTime:                  now,
		ProposalRevision:            marketplace.Int64(1),
		DisplayName:                 req.DisplayName,
		BilledBuyer:                 marketplace.String(buyer),
		PublisherProfile:            marketplace.String(profile),
		DealType:                    marketplace.String(dealType),
		FlightStartTime:             req.FlightStartTime,
		FlightEndTime:               req.FlightEndTime,
		ProgrammaticGuaranteedTerms: req.ProgrammaticGuaranteedTerms,
		PreferredDealTerms:          req.PreferredDealTerms,
	}
	if req.GeoTargeting != nil || req.InventorySizeTargeting != nil {
		d.Targeting = &marketplace.MarketplaceTargeting{
			GeoTargeting:           req.GeoTargeting,
			InventorySizeTargeting: req.InventorySizeTargeting,
		}
	}
	if client != "" {
		p.Client = marketplace.String(client)
		d.Client = marketplace.String(client)
	} else {
		p.Buyer = marketplace.String(buyer)
		d.Buyer = marketplace.String(buyer)
	}

	s.proposals[proposalName] = clone(p)
	s.deals[*d.Name] = clone(d)
	return p, nil
}

// GetDeal returns the named deal.
func (s *State) GetDeal(name string) (*marketplace.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deals[name]
	if !ok {
		return nil, errNotFound("Deal", name)
	}
	return clone(d), nil
}

// ListDeals returns a page of the deals of the proposal named parent.
func (s *State) ListDeals(parent string, params *ListParams) (*marketplace.ListDealsResponse, error) {
	s.mu.RLock()
	_, ok := s.proposals[parent]
	items := sortedChildren(s.deals, parent+"/deals/")
	s.mu.RUnlock()
	if !ok {
		return nil, errNotFound("Proposal", parent)
	}

	page, next, err := listPage(items, params)
	if err != nil {
		return nil, err
	}
	return &marketplace.ListDealsResponse{Deals: page, NextPageToken: next}, nil
}

// PatchDeal applies the fields of update selected by mask. update must carry
// the current revision of the deal's proposal.
func (s *State) PatchDeal(name string, update *marketplace.Deal, mask string) (*marketplace.Deal, error) {
	if update == nil {
		return nil, errInvalid("Request body is required.")
	}
	if strings.TrimSpace(mask) == "" {
		return nil, errInvalid("An update mask is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patched, err := s.patchDealLocked(name, update, mask)
	if err != nil {
		return nil, err
	}
	s.deals[name] = patched
	s.bumpRevision(s.proposals[proposalOf(name)])
	return clone(s.deals[name]), nil
}

// BatchUpdateDeals applies every update of req to deals of the proposal
// named parent. Either all updates are applied or none.
func (s *State) BatchUpdateDeals(parent string, req *marketplace.BatchUpdateDealsRequest) (*marketplace.BatchUpdateDealsResponse, error) {
	if req == nil || len(req.Requests) == 0 {
		return nil, errInvalid("At least one update request is required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[parent]
	if !ok {
		return nil, errNotFound("Proposal", parent)
	}

	patched := make([]*marketplace.Deal, 0, len(req.Requests))
	for i, r := range req.Requests {
		if r.Deal == nil || r.Deal.Name == nil {
			return nil, errInvalid("requests[%d].deal.name is required.", i)
		}
		name := *r.Deal.Name
		if proposalOf(name) != parent {
			return nil, errInvalid("Deal %s does not belong to proposal %s.", name, parent)
		}
		d, err := s.patchDealLocked(name, r.Deal, r.UpdateMask)
		if err != nil {
			return nil, err
		}
		patched = append(patched, d)
	}

	for _, d := range patched {
		s.deals[*d.Name] = d
	}
	s.bumpRevision(p)

	resp := &marketplace.BatchUpdateDealsResponse{Deals: make([]marketplace.Deal, len(patched))}
	for i, d := range patched {
		resp.Deals[i] = *clone(s.deals[*d.Name])
	}
	return resp, nil
}

// patchDealLocked returns a patched copy of the named deal without storing
// it. Callers hold s.mu.
func (s *State) patchDealLocked(name string, update *marketplace.Deal, mask string) (*marketplace.Deal, error) {
	d, ok := s.deals[name]
	if !ok {
		return nil, errNotFound("Deal", name)
	}
	p, ok := s.proposals[proposalOf(name)]
	if !ok {
		return nil, errNotFound("Proposal", proposalOf(name))
	}
	if err := checkRevision(p, update.ProposalRevision); err != nil {
		return nil, err
	}
	patched := clone(d)
	if err := applyUpdateMask(patched, update, mask, dealUpdatableFields); err != nil {
		return nil, err
	}
	if err := checkFlight(patched.FlightStartTime, patched.FlightEndTime); err != nil {
		return nil, err
	}
	return patched, nil
}

// bumpRevision records a buyer change to p: the revision increases, a
// finalized proposal enters renegotiation and every deal of p follows the
// new revision. Callers hold s.mu.
func (s *State) bumpRevision(p *marketplace.Proposal) {
	if p == nil || p.Name == nil {
		return
	}
	rev := int64(1)
	if p.ProposalRevision != nil {
		rev = *p.ProposalRevision + 1
	}
	now := s.timestamp()
	p.ProposalRevision = marketplace.Int64(rev)
	p.UpdateTime = now
	p.LastUpdaterOrCommentorRole = marketplace.String(RoleBuyer)
	switch marketplace.StringValue(p.State) {
	case ProposalFinalized:
		p.IsRenegotiating = marketplace.Bool(true)
		p.State = marketplace.String(ProposalSellerReviewRequested)
	case ProposalBuyerAcceptanceRequested:
		p.State = marketplace.String(ProposalSellerReviewRequested)
	}

	for dealName, d := range s.deals {
		if strings.HasPrefix(dealName, *p.Name+"/deals/") {
			d.ProposalRevision = marketplace.Int64(rev)
			d.UpdateTime = now
		}
	}
}

// checkRevision fails unless revision matches the proposal's current one.
func checkRevision(p *marketplace.Proposal, revision *int64) error {
	if revision == nil {
		return errInvalid("proposalRevision is required.")
	}
	current := int64(0)
	if p.ProposalRevision != nil {
		current = *p.ProposalRevision
	}
	if *revision != current {
		return errAborted("Proposal revision %d does not match the current revision %d.", *revision, current)
	}
	return nil
}

func checkFlight(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return errInvalid("Both flightStartTime and flightEndTime are required.")
	}
	s, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		return errInvalid("Invalid flightStartTime: %s", *start)
	}
	e, err := time.Parse(time.RFC3339, *end)
	if err != nil {
		return errInvalid("Invalid flightEndTime: %s", *end)
	}
	if !e.After(s) {
		return errInvalid("flightEndTime must be after flightStartTime.")
	}
	return nil
}

// proposalOf returns the proposal name of a deal name.
func proposalOf(dealName string) string {
	if i := strings.Index(dealName, "/deals/"); i >= 0 {
		return dealName[:i]
	}
	return dealName
}
