package playground

import (
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

const (
	testBuyer          = "buyers/12345678"
	pendingProposal    = testBuyer + "/proposals/MP21673270"
	finalizedProposal  = testBuyer + "/proposals/MP14138120"
	pendingDeal        = pendingProposal + "/deals/1840860"
	preferredFinalized = testBuyer + "/finalizedDeals/1840861"
	seedClient         = testBuyer + "/clients/873721984"
	seedPackage        = testBuyer + "/auctionPackages/558444393847004125"
	seedProfile        = testBuyer + "/publisherProfiles/PP54321"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestState returns a state holding the embedded seed with a fixed clock.
func newTestState(t *testing.T) *State {
	t.Helper()
	state, err := NewSeededState(nil)
	require.NoError(t, err)
	state.now = func() time.Time { return testNow }
	return state
}

func requireAPIError(t *testing.T, err error, code int, status string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)
	assert.Equal(t, code, apiErr.Code)
	assert.Equal(t, status, apiErr.Status)
}

func TestNewSeededState(t *testing.T) {
	t.Run("Embedded seed", func(t *testing.T) {
		state := newTestState(t)
		counts := state.Counts()
		assert.Equal(t, 2, counts["clients"])
		assert.Equal(t, 1, counts["client_users"])
		assert.Equal(t, 2, counts["proposals"])
		assert.Equal(t, 2, counts["deals"])
		assert.Equal(t, 1, counts["finalized_deals"])
		assert.Equal(t, 2, counts["auction_packages"])
		assert.Equal(t, 2, counts["publisher_profiles"])
	})

	t.Run("Seeding disabled", func(t *testing.T) {
		state, err := NewSeededState(&PlaygroundConfig{Seeding: &SeedingConfig{Disabled: true}})
		require.NoError(t, err)
		assert.Equal(t, 0, state.Counts()["proposals"])
	})

	t.Run("Missing seed file", func(t *testing.T) {
		_, err := NewSeededState(&PlaygroundConfig{Seeding: &SeedingConfig{File: t.TempDir() + "/missing.json"}})
		assert.Error(t, err)
	})

	t.Run("Finalized deal linked to its deal", func(t *testing.T) {
		state := newTestState(t)
		fd, err := state.GetFinalizedDeal(preferredFinalized)
		require.NoError(t, err)
		require.NotNil(t, fd.Deal)
		assert.Equal(t, DealTypePreferredDeal, marketplace.StringValue(fd.Deal.DealType))
	})
}

func TestState_Clients(t *testing.T) {
	state := newTestState(t)

	t.Run("Create", func(t *testing.T) {
		c, err := state.CreateClient(testBuyer, &marketplace.Client{
			DisplayName: marketplace.String("Initech"),
			Role:        marketplace.String("CLIENT_DEAL_VIEWER"),
		})
		require.NoError(t, err)
		assert.Equal(t, testBuyer+"/clients/2000001", marketplace.StringValue(c.Name))
		assert.Equal(t, StateActive, marketplace.StringValue(c.State))
	})

	t.Run("Duplicate display name", func(t *testing.T) {
		_, err := state.CreateClient(testBuyer, &marketplace.Client{
			DisplayName: marketplace.String("Acme Media"),
			Role:        marketplace.String("CLIENT_DEAL_VIEWER"),
		})
		requireAPIError(t, err, http.StatusConflict, "ALREADY_EXISTS")
	})

	t.Run("Invalid role", func(t *testing.T) {
		_, err := state.CreateClient(testBuyer, &marketplace.Client{
			DisplayName: marketplace.String("Hooli"),
			Role:        marketplace.String("OWNER"),
		})
		requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	t.Run("List pages", func(t *testing.T) {
		page, err := state.ListClients(testBuyer, &ListParams{PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page.Clients, 2)
		assert.Equal(t, "2", page.NextPageToken)

		rest, err := state.ListClients(testBuyer, &ListParams{PageSize: 2, PageToken: page.NextPageToken})
		require.NoError(t, err)
		assert.Len(t, rest.Clients, 1)
		assert.Empty(t, rest.NextPageToken)
	})

	t.Run("Patch with mask", func(t *testing.T) {
		c, err := state.PatchClient(seedClient, &marketplace.Client{
			DisplayName:   marketplace.String("Ignored"),
			SellerVisible: marketplace.Bool(false),
		}, "sellerVisible")
		require.NoError(t, err)
		assert.Equal(t, "Acme Media", marketplace.StringValue(c.DisplayName))
		require.NotNil(t, c.SellerVisible)
		assert.False(t, *c.SellerVisible)
	})

	t.Run("Patch rejects immutable field", func(t *testing.T) {
		_, err := state.PatchClient(seedClient, &marketplace.Client{State: marketplace.String(StateInactive)}, "state")
		requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	t.Run("Deactivate", func(t *testing.T) {
		c, err := state.SetClientState(seedClient, StateInactive)
		require.NoError(t, err)
		assert.Equal(t, StateInactive, marketplace.StringValue(c.State))
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := state.GetClient(testBuyer + "/clients/1")
		requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")
	})
}

func TestState_ClientUsers(t *testing.T) {
	state := newTestState(t)

	u, err := state.CreateClientUser(seedClient, &marketplace.ClientUser{Email: marketplace.String("bob@acme.example")})
	require.NoError(t, err)
	assert.Equal(t, StateInvited, marketplace.StringValue(u.State))

	_, err = state.CreateClientUser(seedClient, &marketplace.ClientUser{Email: marketplace.String("BOB@acme.example")})
	requireAPIError(t, err, http.StatusConflict, "ALREADY_EXISTS")

	_, err = state.CreateClientUser(seedClient, &marketplace.ClientUser{Email: marketplace.String("not-an-email")})
	requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")

	_, err = state.CreateClientUser(testBuyer+"/clients/1", &marketplace.ClientUser{Email: marketplace.String("x@y.example")})
	requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")

	list, err := state.ListClientUsers(seedClient, nil)
	require.NoError(t, err)
	assert.Len(t, list.ClientUsers, 2)

	activated, err := state.SetClientUserState(*u.Name, StateActive)
	require.NoError(t, err)
	assert.Equal(t, StateActive, marketplace.StringValue(activated.State))

	require.NoError(t, state.DeleteClientUser(*u.Name))
	_, err = state.GetClientUser(*u.Name)
	requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")
	requireAPIError(t, state.DeleteClientUser(*u.Name), http.StatusNotFound, "NOT_FOUND")
}

func TestState_PatchProposal(t *testing.T) {
	tests := []struct {
		name       string
		revision   *int64
		mask       string
		wantCode   int
		wantStatus string
	}{
		{name: "Missing revision", revision: nil, mask: "displayName", wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "Stale revision", revision: marketplace.Int64(1), mask: "displayName", wantCode: http.StatusConflict, wantStatus: "ABORTED"},
		{name: "Missing mask", revision: marketplace.Int64(2), mask: "", wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "Field not updatable", revision: marketplace.Int64(2), mask: "state", wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState(t)
			_, err := state.PatchProposal(pendingProposal, &marketplace.Proposal{
				ProposalRevision: tt.revision,
				DisplayName:      marketplace.String("Renamed"),
			}, tt.mask)
			requireAPIError(t, err, tt.wantCode, tt.wantStatus)

			p, err := state.GetProposal(pendingProposal)
			require.NoError(t, err)
			assert.Equal(t, int64(2), *p.ProposalRevision, "failed patch must not change the revision")
		})
	}

	t.Run("Success bumps revision", func(t *testing.T) {
		state := newTestState(t)
		p, err := state.PatchProposal(pendingProposal, &marketplace.Proposal{
			ProposalRevision: marketplace.Int64(2),
			BuyerPrivateData: &marketplace.PrivateData{ReferenceID: marketplace.String("new-ref")},
		}, "buyerPrivateData.referenceId")
		require.NoError(t, err)
		assert.Equal(t, int64(3), *p.ProposalRevision)
		assert.Equal(t, "new-ref", marketplace.StringValue(p.BuyerPrivateData.ReferenceID))
		assert.Equal(t, "Spring PG campaign", marketplace.StringValue(p.DisplayName))
		assert.Equal(t, ProposalSellerReviewRequested, marketplace.StringValue(p.State))
		assert.Equal(t, RoleBuyer, marketplace.StringValue(p.LastUpdaterOrCommentorRole))
		assert.Equal(t, "2024-05-01T12:00:00Z", marketplace.StringValue(p.UpdateTime))

		d, err := state.GetDeal(pendingDeal)
		require.NoError(t, err)
		assert.Equal(t, int64(3), *d.ProposalRevision, "deals follow the proposal revision")
	})

	t.Run("Finalized proposal enters renegotiation", func(t *testing.T) {
		state := newTestState(t)
		p, err := state.PatchProposal(finalizedProposal, &marketplace.Proposal{
			ProposalRevision: marketplace.Int64(4),
			DisplayName:      marketplace.String("Renegotiated"),
		}, "displayName")
		require.NoError(t, err)
		assert.True(t, *p.IsRenegotiating)
		assert.Equal(t, ProposalSellerReviewRequested, marketplace.StringValue(p.State))
	})
}

func TestState_AcceptProposal(t *testing.T) {
	t.Run("Stale revision", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.AcceptProposal(pendingProposal, marketplace.Int64(3))
		requireAPIError(t, err, http.StatusConflict, "ABORTED")
	})

	t.Run("Wrong state", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.AcceptProposal(finalizedProposal, marketplace.Int64(4))
		requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")
	})

	t.Run("Creates finalized deals", func(t *testing.T) {
		state := newTestState(t)
		p, err := state.AcceptProposal(pendingProposal, marketplace.Int64(2))
		require.NoError(t, err)
		assert.Equal(t, ProposalFinalized, marketplace.StringValue(p.State))

		fd, err := state.GetFinalizedDeal(testBuyer + "/finalizedDeals/1840860")
		require.NoError(t, err)
		assert.Equal(t, ServingStatusActive, marketplace.StringValue(fd.DealServingStatus))
		assert.False(t, *fd.ReadyToServe)
		require.NotNil(t, fd.Deal)
		assert.Equal(t, pendingDeal, marketplace.StringValue(fd.Deal.Name))
	})
}

func TestState_AddNote(t *testing.T) {
	state := newTestState(t)

	_, err := state.AddNote(pendingProposal, &marketplace.Note{Note: marketplace.String("  ")})
	requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")

	p, err := state.AddNote(pendingProposal, &marketplace.Note{Note: marketplace.String("Looks good.")})
	require.NoError(t, err)
	require.Len(t, p.Notes, 2)
	last := p.Notes[1]
	assert.Equal(t, "Looks good.", marketplace.StringValue(last.Note))
	assert.Equal(t, RoleBuyer, marketplace.StringValue(last.CreatorRole))
	assert.Equal(t, int64(2), *p.ProposalRevision, "notes do not change the revision")
}

func TestState_CancelNegotiation(t *testing.T) {
	t.Run("Finalized without renegotiation", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.CancelNegotiation(finalizedProposal)
		requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")
	})

	t.Run("Renegotiation restores finalized", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.PatchProposal(finalizedProposal, &marketplace.Proposal{
			ProposalRevision: marketplace.Int64(4),
			DisplayName:      marketplace.String("Renegotiated"),
		}, "displayName")
		require.NoError(t, err)

		p, err := state.CancelNegotiation(finalizedProposal)
		require.NoError(t, err)
		assert.Equal(t, ProposalFinalized, marketplace.StringValue(p.State))
		assert.False(t, *p.IsRenegotiating)
		assert.Equal(t, int64(6), *p.ProposalRevision)
	})

	t.Run("Negotiation terminates", func(t *testing.T) {
		state := newTestState(t)
		p, err := state.CancelNegotiation(pendingProposal)
		require.NoError(t, err)
		assert.Equal(t, ProposalTerminated, marketplace.StringValue(p.State))

		_, err = state.CancelNegotiation(pendingProposal)
		requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")
	})
}

func validRfp() *marketplace.SendRfpRequest {
	return &marketplace.SendRfpRequest{
		DisplayName:      marketplace.String("Summer RFP"),
		PublisherProfile: marketplace.String(seedProfile),
		BuyerContacts:    []marketplace.Contact{{Email: marketplace.String("buyer@example.com")}},
		Note:             marketplace.String("Please review."),
		GeoTargeting:     &marketplace.CriteriaTargeting{TargetedCriteriaIDs: marketplace.Int64List{1023191}},
		PreferredDealTerms: &marketplace.PreferredDealTerms{
			FixedPrice: &marketplace.Price{
				Type:   marketplace.String("CPM"),
				Amount: &marketplace.Money{CurrencyCode: marketplace.String("USD"), Units: marketplace.Int64(1)},
			},
		},
		FlightStartTime: marketplace.String("2024-06-01T00:00:00Z"),
		FlightEndTime:   marketplace.String("2024-06-02T00:00:00Z"),
	}
}

func TestState_SendRfp(t *testing.T) {
	t.Run("Preferred deal", func(t *testing.T) {
		state := newTestState(t)
		p, err := state.SendRfp(testBuyer, validRfp())
		require.NoError(t, err)
		assert.Equal(t, testBuyer+"/proposals/MP2000001", marketplace.StringValue(p.Name))
		assert.Equal(t, DealTypePreferredDeal, marketplace.StringValue(p.DealType))
		assert.Equal(t, ProposalSellerReviewRequested, marketplace.StringValue(p.State))
		assert.Equal(t, int64(1), *p.ProposalRevision)
		assert.Equal(t, testBuyer, marketplace.StringValue(p.Buyer))
		require.Len(t, p.Notes, 1)

		deals, err := state.ListDeals(*p.Name, nil)
		require.NoError(t, err)
		require.Len(t, deals.Deals, 1)
		d := deals.Deals[0]
		require.NotNil(t, d.Targeting)
		assert.Equal(t, marketplace.Int64List{1023191}, d.Targeting.GeoTargeting.TargetedCriteriaIDs)
		assert.Equal(t, "2024-06-01T00:00:00Z", marketplace.StringValue(d.FlightStartTime))
	})

	t.Run("Client proposal", func(t *testing.T) {
		state := newTestState(t)
		req := validRfp()
		req.Client = marketplace.String(seedClient)
		p, err := state.SendRfp(testBuyer, req)
		require.NoError(t, err)
		assert.Equal(t, seedClient, marketplace.StringValue(p.Client))
		assert.Nil(t, p.Buyer)
	})

	tests := []struct {
		name       string
		mutate     func(*marketplace.SendRfpRequest)
		wantCode   int
		wantStatus string
	}{
		{
			name:       "Missing display name",
			mutate:     func(r *marketplace.SendRfpRequest) { r.DisplayName = nil },
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "Missing buyer contacts",
			mutate:     func(r *marketplace.SendRfpRequest) { r.BuyerContacts = nil },
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name: "Both deal terms",
			mutate: func(r *marketplace.SendRfpRequest) {
				r.ProgrammaticGuaranteedTerms = &marketplace.ProgrammaticGuaranteedTerms{}
			},
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "No deal terms",
			mutate:     func(r *marketplace.SendRfpRequest) { r.PreferredDealTerms = nil },
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "Flight ends before it starts",
			mutate:     func(r *marketplace.SendRfpRequest) { r.FlightEndTime = marketplace.String("2024-05-31T00:00:00Z") },
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "Unknown publisher profile",
			mutate:     func(r *marketplace.SendRfpRequest) { r.PublisherProfile = marketplace.String(testBuyer + "/publisherProfiles/PP0") },
			wantCode:   http.StatusNotFound,
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "Unknown client",
			mutate:     func(r *marketplace.SendRfpRequest) { r.Client = marketplace.String(testBuyer + "/clients/1") },
			wantCode:   http.StatusNotFound,
			wantStatus: "NOT_FOUND",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState(t)
			req := validRfp()
			tt.mutate(req)
			_, err := state.SendRfp(testBuyer, req)
			requireAPIError(t, err, tt.wantCode, tt.wantStatus)
			assert.Equal(t, 2, state.Counts()["proposals"])
		})
	}
}

func TestState_PatchDeal(t *testing.T) {
	state := newTestState(t)

	d, err := state.PatchDeal(pendingDeal, &marketplace.Deal{
		ProposalRevision: marketplace.Int64(2),
		FlightStartTime:  marketplace.String("2024-04-02T00:00:00Z"),
		FlightEndTime:    marketplace.String("2024-04-03T00:00:00Z"),
	}, "flightStartTime,flightEndTime")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02T00:00:00Z", marketplace.StringValue(d.FlightStartTime))
	assert.Equal(t, int64(3), *d.ProposalRevision)
	assert.Equal(t, "Homepage takeover", marketplace.StringValue(d.Description))

	_, err = state.PatchDeal(pendingDeal, &marketplace.Deal{
		ProposalRevision: marketplace.Int64(3),
		FlightEndTime:    marketplace.String("2024-04-01T00:00:00Z"),
	}, "flightEndTime")
	requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")

	_, err = state.PatchDeal(pendingProposal+"/deals/1", &marketplace.Deal{ProposalRevision: marketplace.Int64(3)}, "description")
	requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestState_BatchUpdateDeals(t *testing.T) {
	t.Run("All or nothing", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.BatchUpdateDeals(pendingProposal, &marketplace.BatchUpdateDealsRequest{
			Requests: []marketplace.UpdateDealRequest{
				{
					Deal: &marketplace.Deal{
						Name:             marketplace.String(pendingDeal),
						ProposalRevision: marketplace.Int64(2),
						Description:      marketplace.String("changed"),
					},
					UpdateMask: "description",
				},
				{
					Deal: &marketplace.Deal{
						Name:             marketplace.String(pendingProposal + "/deals/1"),
						ProposalRevision: marketplace.Int64(2),
					},
					UpdateMask: "description",
				},
			},
		})
		requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")

		d, err := state.GetDeal(pendingDeal)
		require.NoError(t, err)
		assert.Equal(t, "Homepage takeover", marketplace.StringValue(d.Description))
		assert.Equal(t, int64(2), *d.ProposalRevision)
	})

	t.Run("Deal of another proposal", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.BatchUpdateDeals(pendingProposal, &marketplace.BatchUpdateDealsRequest{
			Requests: []marketplace.UpdateDealRequest{{
				Deal: &marketplace.Deal{
					Name:             marketplace.String(finalizedProposal + "/deals/1840861"),
					ProposalRevision: marketplace.Int64(2),
				},
			}},
		})
		requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	t.Run("Missing deal name", func(t *testing.T) {
		state := newTestState(t)
		_, err := state.BatchUpdateDeals(pendingProposal, &marketplace.BatchUpdateDealsRequest{
			Requests: []marketplace.UpdateDealRequest{{Deal: &marketplace.Deal{}}},
		})
		requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	t.Run("Success", func(t *testing.T) {
		state := newTestState(t)
		resp, err := state.BatchUpdateDeals(pendingProposal, &marketplace.BatchUpdateDealsRequest{
			Requests: []marketplace.UpdateDealRequest{{
				Deal: &marketplace.Deal{
					Name:             marketplace.String(pendingDeal),
					ProposalRevision: marketplace.Int64(2),
					Targeting: &marketplace.MarketplaceTargeting{
						GeoTargeting: &marketplace.CriteriaTargeting{TargetedCriteriaIDs: marketplace.Int64List{1023191, 1023192}},
					},
				},
				UpdateMask: "targeting.geoTargeting.targetedCriteriaIds",
			}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Deals, 1)
		d := resp.Deals[0]
		assert.Equal(t, int64(3), *d.ProposalRevision)
		assert.Equal(t, marketplace.Int64List{1023191, 1023192}, d.Targeting.GeoTargeting.TargetedCriteriaIDs)
		assert.NotNil(t, d.Targeting.InventorySizeTargeting, "unmasked targeting is kept")

		p, err := state.GetProposal(pendingProposal)
		require.NoError(t, err)
		assert.Equal(t, int64(3), *p.ProposalRevision)
	})
}

func TestState_FinalizedDeals(t *testing.T) {
	state := newTestState(t)

	fd, err := state.PauseFinalizedDeal(preferredFinalized, "Budget exhausted")
	require.NoError(t, err)
	assert.Equal(t, ServingStatusPausedByBuyer, marketplace.StringValue(fd.DealServingStatus))
	require.NotNil(t, fd.DealPausingInfo)
	assert.Equal(t, "Budget exhausted", marketplace.StringValue(fd.DealPausingInfo.PauseReason))
	assert.Equal(t, RoleBuyer, marketplace.StringValue(fd.DealPausingInfo.PauseRole))

	_, err = state.PauseFinalizedDeal(preferredFinalized, "")
	requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")

	fd, err = state.ResumeFinalizedDeal(preferredFinalized)
	require.NoError(t, err)
	assert.Equal(t, ServingStatusActive, marketplace.StringValue(fd.DealServingStatus))
	assert.Nil(t, fd.DealPausingInfo)

	_, err = state.ResumeFinalizedDeal(preferredFinalized)
	requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")

	t.Run("Preferred deals take no creatives", func(t *testing.T) {
		_, err := state.AddCreative(preferredFinalized, testBuyer+"/creatives/cr-1")
		requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")
		_, err = state.SetReadyToServe(preferredFinalized)
		requireAPIError(t, err, http.StatusBadRequest, "FAILED_PRECONDITION")
	})

	t.Run("Programmatic guaranteed", func(t *testing.T) {
		_, err := state.AcceptProposal(pendingProposal, marketplace.Int64(2))
		require.NoError(t, err)
		name := testBuyer + "/finalizedDeals/1840860"

		_, err = state.AddCreative(name, "buyers/1/creatives/cr-1")
		requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")

		_, err = state.AddCreative(name, testBuyer+"/creatives/cr-1")
		require.NoError(t, err)
		_, err = state.AddCreative(name, testBuyer+"/creatives/cr-1")
		require.NoError(t, err)
		assert.Equal(t, []string{testBuyer + "/creatives/cr-1"}, state.Creatives(name))

		fd, err := state.SetReadyToServe(name)
		require.NoError(t, err)
		assert.True(t, *fd.ReadyToServe)
	})

	t.Run("List", func(t *testing.T) {
		list, err := state.ListFinalizedDeals(testBuyer, &ListParams{PageSize: 10, Filter: `deal.dealType = "PREFERRED_DEAL"`})
		require.NoError(t, err)
		require.Len(t, list.FinalizedDeals, 1)
		assert.Equal(t, preferredFinalized, marketplace.StringValue(list.FinalizedDeals[0].Name))
	})
}

func TestState_AuctionPackages(t *testing.T) {
	state := newTestState(t)

	ap, err := state.SubscribeAuctionPackage(seedPackage)
	require.NoError(t, err)
	assert.Equal(t, []string{testBuyer}, ap.SubscribedBuyers)
	assert.Equal(t, "2024-05-01T12:00:00Z", marketplace.StringValue(ap.UpdateTime))

	_, err = state.SubscribeClients(seedPackage, []string{seedClient, testBuyer + "/clients/1"})
	requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")
	ap, err = state.GetAuctionPackage(seedPackage)
	require.NoError(t, err)
	assert.Empty(t, ap.SubscribedClients, "failed subscription changes nothing")

	_, err = state.SubscribeClients(seedPackage, nil)
	requireAPIError(t, err, http.StatusBadRequest, "INVALID_ARGUMENT")

	ap, err = state.SubscribeClients(seedPackage, []string{seedClient})
	require.NoError(t, err)
	assert.Equal(t, []string{seedClient}, ap.SubscribedClients)

	ap, err = state.UnsubscribeAuctionPackage(seedPackage)
	require.NoError(t, err)
	assert.Empty(t, ap.SubscribedBuyers)
	assert.Empty(t, ap.SubscribedClients, "unsubscribing the buyer drops its clients")

	other := testBuyer + "/auctionPackages/558444393847004126"
	ap, err = state.UnsubscribeClients(other, []string{seedClient})
	require.NoError(t, err)
	assert.Empty(t, ap.SubscribedClients)
	assert.Equal(t, []string{testBuyer}, ap.SubscribedBuyers)

	_, err = state.GetAuctionPackage(testBuyer + "/auctionPackages/1")
	requireAPIError(t, err, http.StatusNotFound, "NOT_FOUND")

	list, err := state.ListAuctionPackages(testBuyer, &ListParams{PageSize: 10, OrderBy: "displayName"})
	require.NoError(t, err)
	require.Len(t, list.AuctionPackages, 2)
	assert.Equal(t, "News display", marketplace.StringValue(list.AuctionPackages[0].DisplayName))
}

func TestState_PublisherProfiles(t *testing.T) {
	state := newTestState(t)

	pp, err := state.GetPublisherProfile(seedProfile)
	require.NoError(t, err)
	assert.Equal(t, "EXNEWS", marketplace.StringValue(pp.PublisherCode))
	assert.Len(t, pp.MobileApps, 2)

	list, err := state.ListPublisherProfiles(testBuyer, &ListParams{PageSize: 1, OrderBy: "displayName desc"})
	require.NoError(t, err)
	require.Len(t, list.PublisherProfiles, 1)
	assert.Equal(t, "Sports Daily", marketplace.StringValue(list.PublisherProfiles[0].DisplayName))
	assert.Equal(t, "1", list.NextPageToken)
}

func TestState_ExportImport(t *testing.T) {
	state := newTestState(t)
	_, err := state.SendRfp(testBuyer, validRfp())
	require.NoError(t, err)

	export := state.Export()
	require.NotNil(t, export.ExportedAt)

	restored := NewState()
	require.NoError(t, restored.Import(export))
	assert.Equal(t, state.Counts(), restored.Counts())

	// IDs continue after the imported ones.
	p, err := restored.SendRfp(testBuyer, validRfp())
	require.NoError(t, err)
	assert.Equal(t, testBuyer+"/proposals/MP2000003", marketplace.StringValue(p.Name))

	t.Run("Missing name", func(t *testing.T) {
		err := NewState().Import(&StateExport{Clients: []*marketplace.Client{{DisplayName: marketplace.String("x")}}})
		assert.Error(t, err)
	})

	t.Run("Nil export", func(t *testing.T) {
		assert.Error(t, NewState().Import(nil))
	})

	t.Run("Copies are independent", func(t *testing.T) {
		c, err := state.GetClient(seedClient)
		require.NoError(t, err)
		c.DisplayName = marketplace.String("mutated")
		again, err := state.GetClient(seedClient)
		require.NoError(t, err)
		assert.Equal(t, "Acme Media", marketplace.StringValue(again.DisplayName))
	})
}
