package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func newProposalsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Samples for buyers.proposals",
	}
	cmd.AddCommand(
		newGetProposalCommand(a),
		newListProposalsCommand(a),
		newPatchProposalCommand(a),
		newAcceptProposalCommand(a),
		newAddNoteCommand(a),
		newCancelNegotiationCommand(a),
		newSendRfpCommand(a, marketplace.DealTypePreferredDeal),
		newSendRfpCommand(a, marketplace.DealTypeProgrammaticGuaranteed),
	)
	return cmd
}

// proposalFlags identify one proposal.
type proposalFlags struct {
	accountID  int64
	proposalID string
}

func (f *proposalFlags) register(cmd *cobra.Command) {
	addAccountFlag(cmd, &f.accountID)
	cmd.Flags().StringVarP(&f.proposalID, "proposal-id", "p", "", "ID of the proposal")
	requireFlags(cmd, "proposal-id")
}

func (f *proposalFlags) name(a *app) (string, error) {
	id, err := a.accountID(f.accountID)
	if err != nil {
		return "", err
	}
	return marketplace.ProposalName(id, f.proposalID), nil
}

func addRevisionFlag(cmd *cobra.Command, revision *int64) {
	cmd.Flags().Int64VarP(revision, "proposal-revision", "r", 0, "Current revision of the proposal; mismatches are rejected")
	requireFlags(cmd, "proposal-revision")
}

func newGetProposalCommand(a *app) *cobra.Command {
	var flags proposalFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			p, err := s.api.Proposals.Get(s.ctx, name)
			if err != nil {
				return err
			}
			s.intro("Found proposal with name %q:", name)
			return s.print(p)
		}),
	}
	flags.register(cmd)
	return cmd
}

func newListProposalsCommand(a *app) *cobra.Command {
	var (
		accountID int64
		list      listFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the proposals of a buyer",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(accountID)
			if err != nil {
				return err
			}
			buyer := marketplace.BuyerName(id)
			s.intro("Found proposals for buyer account ID '%d':", id)
			return listAll(s, list.options(a), "No proposals found.",
				func(ctx context.Context, opts marketplace.ListOptions) ([]marketplace.Proposal, string, error) {
					resp, err := s.api.Proposals.List(ctx, buyer, opts)
					if err != nil {
						return nil, "", err
					}
					return resp.Proposals, resp.NextPageToken, nil
				})
		}),
	}
	addAccountFlag(cmd, &accountID)
	list.register(cmd, "p", true)
	return cmd
}

func newPatchProposalCommand(a *app) *cobra.Command {
	var (
		flags       proposalFlags
		revision    int64
		referenceID string
	)
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Update the buyer's private reference ID of a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			if referenceID == "" {
				referenceID = "Marketplace-Go-Sample-Reference-" + uuid.NewString()
			}
			update := &marketplace.Proposal{
				ProposalRevision: marketplace.Int64(revision),
				BuyerPrivateData: &marketplace.PrivateData{ReferenceID: marketplace.String(referenceID)},
			}

			s.intro("Patching proposal with name %q:", name)
			p, err := s.api.Proposals.Patch(s.ctx, name, update, "buyerPrivateData.referenceId")
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd)
	addRevisionFlag(cmd, &revision)
	cmd.Flags().StringVar(&referenceID, "reference-id", "", "Buyer reference ID (default \"Marketplace-Go-Sample-Reference-<uuid>\")")
	return cmd
}

func newAcceptProposalCommand(a *app) *cobra.Command {
	var (
		flags    proposalFlags
		revision int64
	)
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept a proposal awaiting buyer acceptance",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			s.intro("Accepting proposal with name %q:", name)
			p, err := s.api.Proposals.Accept(s.ctx, name, revision)
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd)
	addRevisionFlag(cmd, &revision)
	return cmd
}

func newAddNoteCommand(a *app) *cobra.Command {
	var (
		flags proposalFlags
		note  string
	)
	cmd := &cobra.Command{
		Use:   "add-note",
		Short: "Add a note to a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			s.intro("Adding note to proposal with name %q:", name)
			p, err := s.api.Proposals.AddNote(s.ctx, name, note)
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&note, "note", "n", "Created note from Go sample.", "Note to add")
	return cmd
}

func newCancelNegotiationCommand(a *app) *cobra.Command {
	var flags proposalFlags
	cmd := &cobra.Command{
		Use:   "cancel-negotiation",
		Short: "Cancel the ongoing negotiation of a proposal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			name, err := flags.name(a)
			if err != nil {
				return err
			}
			s.intro("Canceling negotiation for a proposal with name %q:", name)
			p, err := s.api.Proposals.CancelNegotiation(s.ctx, name)
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd)
	return cmd
}

// rfpFlags describe the single deal a request for proposal asks for.
type rfpFlags struct {
	accountID          int64
	publisherProfileID string
	clientID           string
	contactEmail       string
	contactName        string
	displayName        string
	note               string
	geoCriteriaID      int64
	adWidth            int64
	adHeight           int64
	flightStart        string
	flightEnd          string
	currencyCode       string
	units              int64
	nanos              int32
	reservationType    string
}

func (f *rfpFlags) register(cmd *cobra.Command, dealType string) {
	fs := cmd.Flags()
	addAccountFlag(cmd, &f.accountID)
	fs.StringVarP(&f.publisherProfileID, "publisher-profile-id", "p", "", "ID of the publisher profile the RFP is sent to")
	fs.StringVarP(&f.clientID, "client-id", "c", "", "ID of a client to send the RFP on behalf of")
	fs.StringVarP(&f.contactEmail, "buyer-contacts-email", "b", "", "Email address of the buyer contact")
	fs.StringVar(&f.contactName, "buyer-contacts-display-name", "", "Display name of the buyer contact")
	fs.StringVarP(&f.displayName, "display-name", "d", "", "Display name of the proposal (default \"Test "+rfpAbbrev(dealType)+" Proposal #<uuid>\")")
	fs.StringVarP(&f.note, "note", "n", "", "Note sent to the publisher")
	fs.Int64Var(&f.geoCriteriaID, "geo-targeting-criteria-id", 1023191, "Targeted geo criteria ID")
	fs.Int64Var(&f.adWidth, "ad-size-width", 300, "Width of the targeted ad size in pixels")
	fs.Int64Var(&f.adHeight, "ad-size-height", 260, "Height of the targeted ad size in pixels")
	fs.StringVar(&f.flightStart, "flight-start-time", "", "RFC 3339 start of the flight (default one day from now, or one day before the end)")
	fs.StringVar(&f.flightEnd, "flight-end-time", "", "RFC 3339 end of the flight (default one day after the start)")
	fs.StringVar(&f.currencyCode, "currency-code", "USD", "Currency of the fixed CPM price")
	fs.Int64Var(&f.units, "fixed-price-units", 1, "Whole units of the fixed CPM price")
	fs.Int32Var(&f.nanos, "fixed-price-nanos", 0, "Nano units of the fixed CPM price")
	if dealType == marketplace.DealTypeProgrammaticGuaranteed {
		fs.StringVar(&f.reservationType, "reservation-type", "STANDARD", "Reservation type: STANDARD or SPONSORSHIP")
	}
	requireFlags(cmd, "publisher-profile-id", "buyer-contacts-email")
}

func rfpAbbrev(dealType string) string {
	if dealType == marketplace.DealTypeProgrammaticGuaranteed {
		return "PG"
	}
	return "PD"
}

// request builds the RFP body for a deal of dealType.
func (f *rfpFlags) request(id int64, dealType string, now time.Time) (*marketplace.SendRfpRequest, error) {
	displayName := f.displayName
	if displayName == "" {
		displayName = "Test " + rfpAbbrev(dealType) + " Proposal #" + uuid.NewString()
	}
	note := f.note
	if note == "" {
		if dealType == marketplace.DealTypeProgrammaticGuaranteed {
			note = "Test programmatic guaranteed deal proposal created by Go sample."
		} else {
			note = "Test preferred deal proposal created by Go sample."
		}
	}
	start, end, err := resolveFlight(f.flightStart, f.flightEnd, now)
	if err != nil {
		return nil, err
	}

	contact := marketplace.Contact{Email: marketplace.String(f.contactEmail)}
	if f.contactName != "" {
		contact.DisplayName = marketplace.String(f.contactName)
	}
	price := &marketplace.Price{
		Type: marketplace.String("CPM"),
		Amount: &marketplace.Money{
			CurrencyCode: marketplace.String(f.currencyCode),
			Units:        marketplace.Int64(f.units),
			Nanos:        marketplace.Int32(f.nanos),
		},
	}

	req := &marketplace.SendRfpRequest{
		DisplayName:      marketplace.String(displayName),
		PublisherProfile: marketplace.String(marketplace.PublisherProfileName(id, f.publisherProfileID)),
		BuyerContacts:    []marketplace.Contact{contact},
		Note:             marketplace.String(note),
		GeoTargeting: &marketplace.CriteriaTargeting{
			TargetedCriteriaIDs: marketplace.Int64List{f.geoCriteriaID},
		},
		InventorySizeTargeting: &marketplace.InventorySizeTargeting{
			TargetedInventorySizes: []marketplace.AdSize{{
				Width:  marketplace.Int64(f.adWidth),
				Height: marketplace.Int64(f.adHeight),
				Type:   marketplace.String("PIXEL"),
			}},
		},
		FlightStartTime: optionalString(start),
		FlightEndTime:   optionalString(end),
	}
	if f.clientID != "" {
		req.Client = marketplace.String(marketplace.ClientName(id, f.clientID))
	}
	if dealType == marketplace.DealTypeProgrammaticGuaranteed {
		req.ProgrammaticGuaranteedTerms = &marketplace.ProgrammaticGuaranteedTerms{
			FixedPrice:      price,
			ReservationType: marketplace.String(f.reservationType),
		}
	} else {
		req.PreferredDealTerms = &marketplace.PreferredDealTerms{FixedPrice: price}
	}
	return req, nil
}

func newSendRfpCommand(a *app, dealType string) *cobra.Command {
	var flags rfpFlags
	use, short, kind := "send-rfp-preferred-deal", "Send a request for a preferred deal proposal", "preferred deal"
	if dealType == marketplace.DealTypeProgrammaticGuaranteed {
		use, short, kind = "send-rfp-programmatic-guaranteed", "Send a request for a programmatic guaranteed proposal", "programmatic guaranteed"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(s *sample) error {
			id, err := a.accountID(flags.accountID)
			if err != nil {
				return err
			}
			req, err := flags.request(id, dealType, time.Now())
			if err != nil {
				return err
			}
			s.intro("Sending %s RFP on behalf of buyer account \"%d\" to publisher profile with name %q:",
				kind, id, *req.PublisherProfile)
			p, err := s.api.Proposals.SendRfp(s.ctx, marketplace.BuyerName(id), req)
			if err != nil {
				return err
			}
			return s.print(p)
		}),
	}
	flags.register(cmd, dealType)
	return cmd
}

// defaultFlight returns a flight that starts one day after now and lasts
// one day.
func defaultFlight(now time.Time) (start, end string) {
	s := now.UTC().Truncate(time.Second).Add(24 * time.Hour)
	return s.Format(time.RFC3339), s.Add(24 * time.Hour).Format(time.RFC3339)
}

// resolveFlight fills in the flight bounds that were not given. With neither
// bound it returns defaultFlight(now); with one bound the other is one day
// away from it.
func resolveFlight(start, end string, now time.Time) (string, string, error) {
	const day = 24 * time.Hour
	switch {
	case start == "" && end == "":
		start, end = defaultFlight(now)
	case end == "":
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return "", "", fmt.Errorf("invalid --flight-start-time %q: %w", start, err)
		}
		end = t.Add(day).UTC().Format(time.RFC3339)
	case start == "":
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return "", "", fmt.Errorf("invalid --flight-end-time %q: %w", end, err)
		}
		start = t.Add(-day).UTC().Format(time.RFC3339)
	}
	return start, end, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return marketplace.String(v)
}
