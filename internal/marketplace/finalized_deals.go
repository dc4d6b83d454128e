package marketplace

import "context"

// FinalizedDealsService handles buyers.finalizedDeals.
type FinalizedDealsService struct{ c *APIClient }

// Get fetches a finalized deal by resource name.
func (s *FinalizedDealsService) Get(ctx context.Context, name string) (*FinalizedDeal, error) {
	var out FinalizedDeal
	if err := s.c.get(ctx, name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the finalized deals under parent.
func (s *FinalizedDealsService) List(ctx context.Context, parent string, opts ListOptions) (*ListFinalizedDealsResponse, error) {
	var out ListFinalizedDealsResponse
	if err := s.c.get(ctx, parent+"/finalizedDeals", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pause pauses serving of the finalized deal.
func (s *FinalizedDealsService) Pause(ctx context.Context, name, reason string) (*FinalizedDeal, error) {
	var out FinalizedDeal
	req := &PauseFinalizedDealRequest{}
	if reason != "" {
		req.Reason = String(reason)
	}
	if err := s.c.post(ctx, name+":pause", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resume resumes serving of a paused finalized deal.
func (s *FinalizedDealsService) Resume(ctx context.Context, name string) (*FinalizedDeal, error) {
	var out FinalizedDeal
	if err := s.c.post(ctx, name+":resume", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCreative associates a creative ("buyers/{id}/creatives/{id}") with a
// programmatic guaranteed finalized deal.
func (s *FinalizedDealsService) AddCreative(ctx context.Context, deal, creative string) (*FinalizedDeal, error) {
	var out FinalizedDeal
	if err := s.c.post(ctx, deal+":addCreative", &AddCreativeRequest{Creative: String(creative)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetReadyToServe marks a programmatic guaranteed finalized deal as ready
// to serve.
func (s *FinalizedDealsService) SetReadyToServe(ctx context.Context, deal string) (*FinalizedDeal, error) {
	var out FinalizedDeal
	if err := s.c.post(ctx, deal+":setReadyToServe", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
