package playground

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected *ListParams
		wantErr  bool
	}{
		{
			name:     "Defaults",
			query:    "",
			expected: &ListParams{PageSize: DefaultPageSize},
		},
		{
			name:     "All parameters",
			query:    "?pageSize=5&pageToken=10&filter=state+%3D+ACTIVE&orderBy=displayName+desc",
			expected: &ListParams{PageSize: 5, PageToken: "10", Filter: "state = ACTIVE", OrderBy: "displayName desc"},
		},
		{
			name:     "Zero page size uses default",
			query:    "?pageSize=0",
			expected: &ListParams{PageSize: DefaultPageSize},
		},
		{
			name:     "Page size is capped",
			query:    "?pageSize=10000",
			expected: &ListParams{PageSize: MaxPageSize},
		},
		{
			name:    "Invalid page size",
			query:   "?pageSize=abc",
			wantErr: true,
		},
		{
			name:    "Negative page size",
			query:   "?pageSize=-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/buyers/1/clients"+tt.query, nil)
			params, err := ParseListParams(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestMatchFilter(t *testing.T) {
	doc := toDocument(&marketplace.FinalizedDeal{
		Name:              marketplace.String("buyers/1/finalizedDeals/2"),
		DealServingStatus: marketplace.String("ACTIVE"),
		ReadyToServe:      marketplace.Bool(false),
		Deal:              &marketplace.Deal{DealType: marketplace.String("PREFERRED_DEAL")},
	})

	tests := []struct {
		filter  string
		match   bool
		wantErr bool
	}{
		{filter: "", match: true},
		{filter: `dealServingStatus = "ACTIVE"`, match: true},
		{filter: `dealServingStatus = ACTIVE`, match: true},
		{filter: `dealServingStatus = "ENDED"`, match: false},
		{filter: `deal.dealType = "PREFERRED_DEAL" AND readyToServe = false`, match: true},
		{filter: `deal.dealType = "PREFERRED_DEAL" AND readyToServe = true`, match: false},
		{filter: `deal.missing = "x"`, match: false},
		{filter: `dealServingStatus`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			ok, err := matchFilter(doc, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.match, ok)
		})
	}
}

func TestListPage(t *testing.T) {
	items := []*marketplace.Client{
		{Name: marketplace.String("a"), DisplayName: marketplace.String("Charlie")},
		{Name: marketplace.String("b"), DisplayName: marketplace.String("Alpha")},
		{Name: marketplace.String("c"), DisplayName: marketplace.String("Bravo")},
	}

	page, next, err := listPage(items, &ListParams{PageSize: 2, OrderBy: "displayName"})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Alpha", *page[0].DisplayName)
	assert.Equal(t, "Bravo", *page[1].DisplayName)
	assert.Equal(t, "2", next)

	page, next, err = listPage(items, &ListParams{PageSize: 2, PageToken: next, OrderBy: "displayName"})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Charlie", *page[0].DisplayName)
	assert.Empty(t, next)

	_, _, err = listPage(items, &ListParams{PageSize: 2, PageToken: "x"})
	assert.Error(t, err)
	_, _, err = listPage(items, &ListParams{PageSize: 2, OrderBy: "displayName sideways"})
	assert.Error(t, err)
}

func TestApplyUpdateMask(t *testing.T) {
	dst := &marketplace.Deal{
		Description: marketplace.String("old"),
		DisplayName: marketplace.String("keep"),
		Targeting: &marketplace.MarketplaceTargeting{
			VideoTargeting: &marketplace.VideoTargeting{TargetedPositionTypes: []string{"PREROLL"}},
		},
	}
	src := &marketplace.Deal{DisplayName: marketplace.String("ignored")}

	err := applyUpdateMask(dst, src, "description, targeting.videoTargeting", dealUpdatableFields)
	require.NoError(t, err)
	assert.Nil(t, dst.Description, "masked field absent from the update is cleared")
	assert.Equal(t, "keep", *dst.DisplayName)
	require.NotNil(t, dst.Targeting)
	assert.Nil(t, dst.Targeting.VideoTargeting)

	err = applyUpdateMask(dst, src, "name", dealUpdatableFields)
	assert.Error(t, err)
}
