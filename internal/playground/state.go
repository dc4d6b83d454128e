// Package playground manages the in-memory state of the playground server.
//
// This file defines the State type that holds every simulated Marketplace
// resource keyed by its resource name, together with the export format used
// for seeding and persistence. Resource operations live in the state_*.go
// files; every one of them takes the State lock and hands out copies, so
// callers never share memory with the store.
package playground

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// State manages the in-memory state of the playground server
type State struct {
	mu                sync.RWMutex
	clients           map[string]*marketplace.Client
	clientUsers       map[string]*marketplace.ClientUser
	proposals         map[string]*marketplace.Proposal
	deals             map[string]*marketplace.Deal
	finalizedDeals    map[string]*marketplace.FinalizedDeal
	auctionPackages   map[string]*marketplace.AuctionPackage
	publisherProfiles map[string]*marketplace.PublisherProfile
	creatives         map[string][]string // finalized deal name -> creative names
	nextID            int64

	now func() time.Time
}

// StateExport is the serialized form of State, used by seed files and
// persistence.
type StateExport struct {
	Clients           []*marketplace.Client           `json:"clients,omitempty"`
	ClientUsers       []*marketplace.ClientUser       `json:"client_users,omitempty"`
	Proposals         []*marketplace.Proposal         `json:"proposals,omitempty"`
	Deals             []*marketplace.Deal             `json:"deals,omitempty"`
	FinalizedDeals    []*marketplace.FinalizedDeal    `json:"finalized_deals,omitempty"`
	AuctionPackages   []*marketplace.AuctionPackage   `json:"auction_packages,omitempty"`
	PublisherProfiles []*marketplace.PublisherProfile `json:"publisher_profiles,omitempty"`
	Creatives         map[string][]string             `json:"creatives,omitempty"`
	NextID            int64                           `json:"next_id,omitempty"`
	ExportedAt        *time.Time                      `json:"exported_at,omitempty"`
}

// initialNextID is the first ID handed out by an empty state.
const initialNextID = 1000000

// NewState creates an empty state.
func NewState() *State {
	return &State{
		clients:           make(map[string]*marketplace.Client),
		clientUsers:       make(map[string]*marketplace.ClientUser),
		proposals:         make(map[string]*marketplace.Proposal),
		deals:             make(map[string]*marketplace.Deal),
		finalizedDeals:    make(map[string]*marketplace.FinalizedDeal),
		auctionPackages:   make(map[string]*marketplace.AuctionPackage),
		publisherProfiles: make(map[string]*marketplace.PublisherProfile),
		creatives:         make(map[string][]string),
		nextID:            initialNextID,
		now:               time.Now,
	}
}

// Export returns a snapshot of the state.
func (s *State) Export() *StateExport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().UTC()
	export := &StateExport{
		Clients:           sortedValues(s.clients),
		ClientUsers:       sortedValues(s.clientUsers),
		Proposals:         sortedValues(s.proposals),
		Deals:             sortedValues(s.deals),
		FinalizedDeals:    sortedValues(s.finalizedDeals),
		AuctionPackages:   sortedValues(s.auctionPackages),
		PublisherProfiles: sortedValues(s.publisherProfiles),
		Creatives:         make(map[string][]string, len(s.creatives)),
		NextID:            s.nextID,
		ExportedAt:        &now,
	}
	for k, v := range s.creatives {
		export.Creatives[k] = append([]string(nil), v...)
	}
	return export
}

// Import replaces the state's contents with export. Resources without a
// name are rejected. A finalized deal without an embedded deal is linked to
// the deal with the same ID.
func (s *State) Import(export *StateExport) error {
	if export == nil {
		return fmt.Errorf("nothing to import")
	}
	fresh := NewState()
	fresh.now = s.now

	if err := importAll(fresh.clients, export.Clients, func(v *marketplace.Client) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.clientUsers, export.ClientUsers, func(v *marketplace.ClientUser) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.proposals, export.Proposals, func(v *marketplace.Proposal) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.deals, export.Deals, func(v *marketplace.Deal) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.finalizedDeals, export.FinalizedDeals, func(v *marketplace.FinalizedDeal) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.auctionPackages, export.AuctionPackages, func(v *marketplace.AuctionPackage) *string { return v.Name }); err != nil {
		return err
	}
	if err := importAll(fresh.publisherProfiles, export.PublisherProfiles, func(v *marketplace.PublisherProfile) *string { return v.Name }); err != nil {
		return err
	}
	for k, v := range export.Creatives {
		fresh.creatives[k] = append([]string(nil), v...)
	}

	for name, fd := range fresh.finalizedDeals {
		if fd.Deal != nil {
			continue
		}
		id := marketplace.LastSegment(name)
		for dealName, deal := range fresh.deals {
			if marketplace.LastSegment(dealName) == id {
				fd.Deal = clone(deal)
				break
			}
		}
	}

	if export.NextID > fresh.nextID {
		fresh.nextID = export.NextID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = fresh.clients
	s.clientUsers = fresh.clientUsers
	s.proposals = fresh.proposals
	s.deals = fresh.deals
	s.finalizedDeals = fresh.finalizedDeals
	s.auctionPackages = fresh.auctionPackages
	s.publisherProfiles = fresh.publisherProfiles
	s.creatives = fresh.creatives
	s.nextID = fresh.nextID
	return nil
}

// Reset empties the state.
func (s *State) Reset() {
	fresh := NewState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = fresh.clients
	s.clientUsers = fresh.clientUsers
	s.proposals = fresh.proposals
	s.deals = fresh.deals
	s.finalizedDeals = fresh.finalizedDeals
	s.auctionPackages = fresh.auctionPackages
	s.publisherProfiles = fresh.publisherProfiles
	s.creatives = fresh.creatives
	s.nextID = fresh.nextID
}

// Counts returns the number of stored resources per collection.
func (s *State) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"clients":            len(s.clients),
		"client_users":       len(s.clientUsers),
		"proposals":          len(s.proposals),
		"deals":              len(s.deals),
		"finalized_deals":    len(s.finalizedDeals),
		"auction_packages":   len(s.auctionPackages),
		"publisher_profiles": len(s.publisherProfiles),
	}
}

// newID returns a fresh numeric resource ID. Callers hold s.mu.
func (s *State) newID() string {
	s.nextID++
	return strconv.FormatInt(s.nextID, 10)
}

// timestamp returns the current time in the API's format. Callers hold s.mu.
func (s *State) timestamp() *string {
	return marketplace.String(s.now().UTC().Format(time.RFC3339))
}

func importAll[T any](dst map[string]*T, items []*T, name func(*T) *string) error {
	for _, item := range items {
		if item == nil {
			continue
		}
		n := name(item)
		if n == nil || *n == "" {
			return fmt.Errorf("failed to import %T: missing name", item)
		}
		dst[*n] = clone(item)
	}
	return nil
}

// clone returns a deep copy of v.
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		c := *v
		return &c
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		c := *v
		return &c
	}
	return &out
}

// sortedValues returns copies of the map's values ordered by key.
func sortedValues[T any](m map[string]*T) []*T {
	return sortedChildren(m, "")
}

// sortedChildren returns copies of the values whose key starts with prefix,
// ordered by key.
func sortedChildren[T any](m map[string]*T, prefix string) []*T {
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]*T, len(keys))
	for i, k := range keys {
		out[i] = clone(m[k])
	}
	return out
}

// buyerOf returns the "buyers/{id}" prefix of a resource name.
func buyerOf(name string) string {
	parts := strings.SplitN(name, "/", 3)
	if len(parts) < 2 {
		return name
	}
	return parts[0] + "/" + parts[1]
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	out := list[:0:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
