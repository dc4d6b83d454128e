// Package playground sets up route handlers for the playground server.
//
// This file routes /v1/* requests to State operations. A request path is
// reduced to its route pattern, resource IDs replaced by "*" and any custom
// verb kept, and looked up with its method in the route table, e.g.
// "POST /v1/buyers/*/proposals/*:accept".
package playground

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// routeFunc handles one API method. res is the resource path of the
// request without the "/v1/" prefix and the custom verb.
type routeFunc func(s *Server, r *http.Request, res string) (any, error)

var routes = map[string]routeFunc{
	"GET /v1/buyers/*/clients":                       listClients,
	"POST /v1/buyers/*/clients":                      createClient,
	"GET /v1/buyers/*/clients/*":                     getClient,
	"PATCH /v1/buyers/*/clients/*":                   patchClient,
	"POST /v1/buyers/*/clients/*:activate":           setClientState(StateActive),
	"POST /v1/buyers/*/clients/*:deactivate":         setClientState(StateInactive),
	"GET /v1/buyers/*/clients/*/users":               listClientUsers,
	"POST /v1/buyers/*/clients/*/users":              createClientUser,
	"GET /v1/buyers/*/clients/*/users/*":             getClientUser,
	"DELETE /v1/buyers/*/clients/*/users/*":          deleteClientUser,
	"POST /v1/buyers/*/clients/*/users/*:activate":   setClientUserState(StateActive),
	"POST /v1/buyers/*/clients/*/users/*:deactivate": setClientUserState(StateInactive),

	"GET /v1/buyers/*/proposals":                      listProposals,
	"GET /v1/buyers/*/proposals/*":                    getProposal,
	"PATCH /v1/buyers/*/proposals/*":                  patchProposal,
	"POST /v1/buyers/*/proposals/*:accept":            acceptProposal,
	"POST /v1/buyers/*/proposals/*:addNote":           addNote,
	"POST /v1/buyers/*/proposals/*:cancelNegotiation": cancelNegotiation,
	"POST /v1/buyers/*/proposals:sendRfp":             sendRfp,
	"GET /v1/buyers/*/proposals/*/deals":              listDeals,
	"GET /v1/buyers/*/proposals/*/deals/*":            getDeal,
	"PATCH /v1/buyers/*/proposals/*/deals/*":          patchDeal,
	"POST /v1/buyers/*/proposals/*/deals:batchUpdate": batchUpdateDeals,

	"GET /v1/buyers/*/finalizedDeals":                    listFinalizedDeals,
	"GET /v1/buyers/*/finalizedDeals/*":                  getFinalizedDeal,
	"POST /v1/buyers/*/finalizedDeals/*:pause":           pauseFinalizedDeal,
	"POST /v1/buyers/*/finalizedDeals/*:resume":          resumeFinalizedDeal,
	"POST /v1/buyers/*/finalizedDeals/*:addCreative":     addCreative,
	"POST /v1/buyers/*/finalizedDeals/*:setReadyToServe": setReadyToServe,

	"GET /v1/buyers/*/auctionPackages":                       listAuctionPackages,
	"GET /v1/buyers/*/auctionPackages/*":                     getAuctionPackage,
	"POST /v1/buyers/*/auctionPackages/*:subscribe":          subscribeAuctionPackage,
	"POST /v1/buyers/*/auctionPackages/*:unsubscribe":        unsubscribeAuctionPackage,
	"POST /v1/buyers/*/auctionPackages/*:subscribeClients":   subscribeClients,
	"POST /v1/buyers/*/auctionPackages/*:unsubscribeClients": unsubscribeClients,

	"GET /v1/buyers/*/publisherProfiles":   listPublisherProfiles,
	"GET /v1/buyers/*/publisherProfiles/*": getPublisherProfile,
}

// routePattern replaces the resource IDs of an API path with "*". Paths
// outside /v1/ are returned unchanged.
func routePattern(p string) string {
	rest, ok := strings.CutPrefix(p, "/v1/")
	if !ok {
		return p
	}
	segs := strings.Split(rest, "/")
	for i := 1; i < len(segs); i += 2 {
		if _, verb, ok := strings.Cut(segs[i], ":"); ok {
			segs[i] = "*:" + verb
		} else {
			segs[i] = "*"
		}
	}
	return "/v1/" + strings.Join(segs, "/")
}

// handleAPI dispatches a /v1/ request through the route table.
func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	p := normalizePath(r.URL.Path)
	route, ok := routes[r.Method+" "+routePattern(p)]
	if !ok {
		WriteError(w, &APIError{
			Code:    http.StatusNotFound,
			Status:  "NOT_FOUND",
			Message: "The requested URL " + r.URL.Path + " was not found on this server.",
		})
		return
	}

	res, _, _ := strings.Cut(strings.TrimPrefix(p, "/v1/"), ":")
	out, err := route(s, r, res)
	if err != nil {
		WriteError(w, err)
		return
	}
	if out == nil {
		out = marketplace.Empty{}
	}
	WriteJSONSafe(w, http.StatusOK, out)
}

// decodeBody decodes the JSON request body into v. An empty body leaves v
// unchanged.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &APIError{Code: http.StatusRequestEntityTooLarge, Status: "INVALID_ARGUMENT", Message: "Request body is too large."}
	}
	return errInvalid("Invalid JSON payload received. %v", err)
}

func listClients(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListClients(path.Dir(res), params)
}

func createClient(s *Server, r *http.Request, res string) (any, error) {
	var c marketplace.Client
	if err := decodeBody(r, &c); err != nil {
		return nil, err
	}
	return s.state.CreateClient(path.Dir(res), &c)
}

func getClient(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetClient(res)
}

func patchClient(s *Server, r *http.Request, res string) (any, error) {
	var c marketplace.Client
	if err := decodeBody(r, &c); err != nil {
		return nil, err
	}
	return s.state.PatchClient(res, &c, r.URL.Query().Get("updateMask"))
}

func setClientState(state string) routeFunc {
	return func(s *Server, r *http.Request, res string) (any, error) {
		return s.state.SetClientState(res, state)
	}
}

func listClientUsers(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListClientUsers(path.Dir(res), params)
}

func createClientUser(s *Server, r *http.Request, res string) (any, error) {
	var u marketplace.ClientUser
	if err := decodeBody(r, &u); err != nil {
		return nil, err
	}
	return s.state.CreateClientUser(path.Dir(res), &u)
}

func getClientUser(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetClientUser(res)
}

func deleteClientUser(s *Server, r *http.Request, res string) (any, error) {
	return nil, s.state.DeleteClientUser(res)
}

func setClientUserState(state string) routeFunc {
	return func(s *Server, r *http.Request, res string) (any, error) {
		return s.state.SetClientUserState(res, state)
	}
}

func listProposals(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListProposals(path.Dir(res), params)
}

func getProposal(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetProposal(res)
}

func patchProposal(s *Server, r *http.Request, res string) (any, error) {
	var p marketplace.Proposal
	if err := decodeBody(r, &p); err != nil {
		return nil, err
	}
	return s.state.PatchProposal(res, &p, r.URL.Query().Get("updateMask"))
}

func acceptProposal(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.AcceptProposalRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.AcceptProposal(res, req.ProposalRevision)
}

func addNote(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.AddNoteRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.AddNote(res, req.Note)
}

func cancelNegotiation(s *Server, r *http.Request, res string) (any, error) {
	return s.state.CancelNegotiation(res)
}

func sendRfp(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.SendRfpRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.SendRfp(path.Dir(res), &req)
}

func listDeals(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListDeals(path.Dir(res), params)
}

func getDeal(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetDeal(res)
}

func patchDeal(s *Server, r *http.Request, res string) (any, error) {
	var d marketplace.Deal
	if err := decodeBody(r, &d); err != nil {
		return nil, err
	}
	return s.state.PatchDeal(res, &d, r.URL.Query().Get("updateMask"))
}

func batchUpdateDeals(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.BatchUpdateDealsRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.BatchUpdateDeals(path.Dir(res), &req)
}

func listFinalizedDeals(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListFinalizedDeals(path.Dir(res), params)
}

func getFinalizedDeal(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetFinalizedDeal(res)
}

func pauseFinalizedDeal(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.PauseFinalizedDealRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.PauseFinalizedDeal(res, marketplace.StringValue(req.Reason))
}

func resumeFinalizedDeal(s *Server, r *http.Request, res string) (any, error) {
	return s.state.ResumeFinalizedDeal(res)
}

func addCreative(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.AddCreativeRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.AddCreative(res, marketplace.StringValue(req.Creative))
}

func setReadyToServe(s *Server, r *http.Request, res string) (any, error) {
	return s.state.SetReadyToServe(res)
}

func listAuctionPackages(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListAuctionPackages(path.Dir(res), params)
}

func getAuctionPackage(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetAuctionPackage(res)
}

func subscribeAuctionPackage(s *Server, r *http.Request, res string) (any, error) {
	return s.state.SubscribeAuctionPackage(res)
}

func unsubscribeAuctionPackage(s *Server, r *http.Request, res string) (any, error) {
	return s.state.UnsubscribeAuctionPackage(res)
}

func subscribeClients(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.SubscribeClientsRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.SubscribeClients(res, req.Clients)
}

func unsubscribeClients(s *Server, r *http.Request, res string) (any, error) {
	var req marketplace.UnsubscribeClientsRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return s.state.UnsubscribeClients(res, req.Clients)
}

func listPublisherProfiles(s *Server, r *http.Request, res string) (any, error) {
	params, err := ParseListParams(r)
	if err != nil {
		return nil, err
	}
	return s.state.ListPublisherProfiles(path.Dir(res), params)
}

func getPublisherProfile(s *Server, r *http.Request, res string) (any, error) {
	return s.state.GetPublisherProfile(res)
}
