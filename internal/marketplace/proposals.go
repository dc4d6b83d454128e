package marketplace

import "context"

// ProposalsService handles buyers.proposals.
type ProposalsService struct{ c *APIClient }

// Get fetches a proposal by resource name.
func (s *ProposalsService) Get(ctx context.Context, name string) (*Proposal, error) {
	var out Proposal
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the proposals under parent.
func (s *ProposalsService) List(ctx context.Context, parent string, opts ListOptions) (*ListProposalsResponse, error) {
	var out ListProposalsResponse
	if err := s.c.get(ctx, parent+"/proposals", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates the fields of proposal named by updateMask.
func (s *ProposalsService) Patch(ctx context.Context, name string, proposal *Proposal, updateMask string) (*Proposal, error) {
	var out Proposal
	if err := s.c.patch(ctx, name, updateMask, proposal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Accept accepts the proposal at the given revision.
func (s *ProposalsService) Accept(ctx context.Context, name string, revision int64) (*Proposal, error) {
	var out Proposal
	req := &AcceptProposalRequest{ProposalRevision: Int64(revision)}
	if err := s.c.post(ctx, name+":accept", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddNote attaches a note to the proposal.
func (s *ProposalsService) AddNote(ctx context.Context, name, note string) (*Proposal, error) {
	var out Proposal
	req := &AddNoteRequest{Note: &Note{Note: String(note)}}
	if err := s.c.post(ctx, name+":addNote", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelNegotiation cancels an ongoing renegotiation.
func (s *ProposalsService) CancelNegotiation(ctx context.Context, name string) (*Proposal, error) {
	var out Proposal
	if err := s.c.post(ctx, name+":cancelNegotiation", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendRfp sends a request for proposal to a publisher on behalf of buyer.
func (s *ProposalsService) SendRfp(ctx context.Context, buyer string, req *SendRfpRequest) (*Proposal, error) {
	var out Proposal
	if err := s.c.post(ctx, buyer+"/proposals:sendRfp", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DealsService handles buyers.proposals.deals.
type DealsService struct{ c *APIClient }

// Get fetches a deal by resource name.
func (s *DealsService) Get(ctx context.Context, name string) (*Deal, error) {
	var out Deal
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the deals of the proposal named parent.
func (s *DealsService) List(ctx context.Context, parent string, opts ListOptions) (*ListDealsResponse, error) {
	var out ListDealsResponse
	if err := s.c.get(ctx, parent+"/deals", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates the fields of deal named by updateMask. The deal must carry
// the current proposal revision.
func (s *DealsService) Patch(ctx context.Context, name string, deal *Deal, updateMask string) (*Deal, error) {
	var out Deal
	if err := s.c.patch(ctx, name, updateMask, deal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdate applies several deal updates of the proposal named parent at once.
func (s *DealsService) BatchUpdate(ctx context.Context, parent string, req *BatchUpdateDealsRequest) (*BatchUpdateDealsResponse, error) {
	var out BatchUpdateDealsResponse
	if err := s.c.post(ctx, parent+"/deals:batchUpdate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
