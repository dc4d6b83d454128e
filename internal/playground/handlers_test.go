package playground

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

const testToken = "test-token"

func newTestServer(t *testing.T, config *PlaygroundConfig) *Server {
	t.Helper()
	server, err := NewServerWithConfig(0, "localhost", config)
	require.NoError(t, err)
	return server
}

// doRequest sends a request with the test bearer token to the server's
// handler.
func doRequest(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var envelope struct {
		Error APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	return envelope.Error
}

func TestHandleAPI_Routes(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{})

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "List clients",
			method:         "GET",
			path:           "/v1/buyers/12345678/clients?pageSize=1",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp marketplace.ListClientsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp.Clients, 1)
				assert.Equal(t, "1", resp.NextPageToken)
			},
		},
		{
			name:           "Get publisher profile",
			method:         "GET",
			path:           "/v1/buyers/12345678/publisherProfiles/PP54321",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var pp marketplace.PublisherProfile
				require.NoError(t, json.Unmarshal(body, &pp))
				assert.Equal(t, "Example News", marketplace.StringValue(pp.DisplayName))
			},
		},
		{
			name:           "Filter proposals",
			method:         "GET",
			path:           `/v1/buyers/12345678/proposals?filter=dealType+%3D+%22PREFERRED_DEAL%22`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp marketplace.ListProposalsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Proposals, 1)
				assert.Equal(t, finalizedProposal, marketplace.StringValue(resp.Proposals[0].Name))
			},
		},
		{
			name:           "Accept proposal",
			method:         "POST",
			path:           "/v1/buyers/12345678/proposals/MP21673270:accept",
			body:           `{"proposalRevision":"2"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var p marketplace.Proposal
				require.NoError(t, json.Unmarshal(body, &p))
				assert.Equal(t, ProposalFinalized, marketplace.StringValue(p.State))
			},
		},
		{
			name:           "Stale revision is aborted",
			method:         "PATCH",
			path:           "/v1/buyers/12345678/proposals/MP14138120?updateMask=displayName",
			body:           `{"proposalRevision":"1","displayName":"x"}`,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Invalid JSON",
			method:         "POST",
			path:           "/v1/buyers/12345678/clients",
			body:           `{"displayName":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Delete client user returns empty object",
			method:         "DELETE",
			path:           "/v1/buyers/12345678/clients/873721984/users/4573638",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{}`, string(body))
			},
		},
		{
			name:           "Pause finalized deal",
			method:         "POST",
			path:           "/v1/buyers/12345678/finalizedDeals/1840861:pause",
			body:           `{"reason":"Testing"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var fd marketplace.FinalizedDeal
				require.NoError(t, json.Unmarshal(body, &fd))
				assert.Equal(t, ServingStatusPausedByBuyer, marketplace.StringValue(fd.DealServingStatus))
			},
		},
		{
			name:           "Subscribe clients",
			method:         "POST",
			path:           "/v1/buyers/12345678/auctionPackages/558444393847004125:subscribeClients",
			body:           `{"clients":["buyers/12345678/clients/873721985"]}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Batch update deals",
			method:         "POST",
			path:           "/v1/buyers/12345678/proposals/MP14138120/deals:batchUpdate",
			body:           `{"requests":[{"deal":{"name":"buyers/12345678/proposals/MP14138120/deals/1840861","proposalRevision":"4","description":"updated"},"updateMask":"description"}]}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp marketplace.BatchUpdateDealsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Deals, 1)
				assert.Equal(t, "updated", marketplace.StringValue(resp.Deals[0].Description))
				assert.Equal(t, int64(5), *resp.Deals[0].ProposalRevision)
			},
		},
		{
			name:           "Unknown method on known path",
			method:         "PUT",
			path:           "/v1/buyers/12345678/clients",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}

func TestHandleAPI_NotFoundEnvelope(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{})

	rec := doRequest(t, server, "GET", "/v1/buyers/12345678/creatives", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "NOT_FOUND", apiErr.Status)
	assert.Contains(t, apiErr.Message, "/v1/buyers/12345678/creatives")

	rec = doRequest(t, server, "GET", "/v1/buyers/12345678/proposals/MP0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "buyers/12345678/proposals/MP0")
}

func TestAPIMiddleware_Auth(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		server := newTestServer(t, &PlaygroundConfig{})
		req := httptest.NewRequest("GET", "/v1/buyers/12345678/clients", nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Status)
	})

	t.Run("Token not in list", func(t *testing.T) {
		server := newTestServer(t, &PlaygroundConfig{Auth: &AuthConfig{Tokens: []string{"other"}}})
		rec := doRequest(t, server, "GET", "/v1/buyers/12345678/clients", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token in list", func(t *testing.T) {
		server := newTestServer(t, &PlaygroundConfig{Auth: &AuthConfig{Tokens: []string{"other", testToken}}})
		rec := doRequest(t, server, "GET", "/v1/buyers/12345678/clients", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Validation disabled", func(t *testing.T) {
		server := newTestServer(t, &PlaygroundConfig{Auth: &AuthConfig{DisableValidation: true}})
		req := httptest.NewRequest("GET", "/v1/buyers/12345678/clients", nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		server := newTestServer(t, &PlaygroundConfig{})
		req := httptest.NewRequest("OPTIONS", "/v1/buyers/12345678/clients", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAPIMiddleware_RateLimit(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{
		RateLimit: &RateLimitConfig{
			Enabled:   true,
			Limit:     100,
			WindowSec: 60,
			EndpointOverrides: map[string]EndpointRateLimitOverride{
				"GET:/v1/buyers/*/publisherProfiles": {Limit: 2, WindowSec: 60},
			},
		},
	})

	for i := 0; i < 2; i++ {
		rec := doRequest(t, server, "GET", "/v1/buyers/12345678/publisherProfiles", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(t, server, "GET", "/v1/buyers/12345678/publisherProfiles", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RESOURCE_EXHAUSTED", decodeError(t, rec).Status)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = doRequest(t, server, "GET", "/v1/buyers/12345678/clients", "")
	assert.Equal(t, http.StatusOK, rec.Code, "other endpoints keep their own quota")
	assert.Equal(t, "600", rec.Header().Get("X-RateLimit-Limit"))
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{})
	doRequest(t, server, "GET", "/v1/buyers/12345678/clients", "")
	doRequest(t, server, "GET", "/v1/buyers/12345678/clients/1", "")

	rec := doRequest(t, server, "GET", "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health struct {
		Status    string         `json:"status"`
		Stats     map[string]any `json:"stats"`
		Resources map[string]int `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, float64(2), health.Stats["requests_total"])
	assert.Equal(t, float64(1), health.Stats["requests_error"])
	assert.Equal(t, 2, health.Resources["proposals"])

	rec = doRequest(t, server, "GET", "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Stats ServerStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Stats.RequestsTotal)
	assert.Equal(t, int64(1), stats.Stats.RequestsSuccess)
}

func TestStateHandlers(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{})

	rec := doRequest(t, server, "DELETE", "/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, server.GetState().Counts()["clients"])

	rec = doRequest(t, server, "POST", "/state/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, server.GetState().Counts()["clients"])

	rec = doRequest(t, server, "GET", "/state/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	exported := rec.Body.String()

	doRequest(t, server, "DELETE", "/state", "")
	rec = doRequest(t, server, "POST", "/state/import", exported)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 2, server.GetState().Counts()["proposals"])

	rec = doRequest(t, server, "POST", "/state/import", `{"clients":[{"displayName":"no name"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, server.GetState().Counts()["clients"], "a rejected import keeps the state")

	rec = doRequest(t, server, "POST", "/state/save", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FAILED_PRECONDITION", decodeError(t, rec).Status)

	rec = doRequest(t, server, "GET", "/state/reset", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConfigHandlers(t *testing.T) {
	server := newTestServer(t, &PlaygroundConfig{})

	rec := doRequest(t, server, "POST", "/config/update", `{"rate_limit":{"enabled":true,"limit":1,"window_sec":60}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, server.rateLimiter.Config().Enabled)

	rec = doRequest(t, server, "POST", "/config/update", `{"rate_limit":{"limit":-1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, "GET", "/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Config PlaygroundConfig `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Config.RateLimit)
	assert.Equal(t, 1, body.Config.RateLimit.Limit)

	rec = doRequest(t, server, "GET", "/rate-limits", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/buyers/*/proposals:sendRfp")
}
