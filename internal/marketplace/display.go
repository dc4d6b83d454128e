package marketplace

import (
	"io"

	"github.com/authorizedbuyers/marketplace-samples/internal/printer"
)

// Display tables for every shape of the object model.

var moneyShape = &printer.Shape[Money]{
	Fields: []printer.Field[Money]{
		printer.Scalar("Currency code", func(m *Money) *string { return m.CurrencyCode }),
		printer.ScalarOr("Units", func(m *Money) *int64 { return m.Units }, 0),
		printer.ScalarOr("Nanos", func(m *Money) *int32 { return m.Nanos }, 0),
	},
}

var priceShape = &printer.Shape[Price]{
	Fields: []printer.Field[Price]{
		printer.Scalar("Type", func(p *Price) *string { return p.Type }),
		printer.Record("Amount", func(p *Price) *Money { return p.Amount }, moneyShape),
	},
}

var timeZoneShape = &printer.Shape[TimeZone]{
	Fields: []printer.Field[TimeZone]{
		printer.Scalar("ID", func(z *TimeZone) *string { return z.ID }),
		printer.Scalar("Version", func(z *TimeZone) *string { return z.Version }),
	},
}

var criteriaTargetingShape = &printer.Shape[CriteriaTargeting]{
	Fields: []printer.Field[CriteriaTargeting]{
		printer.ScalarList("Targeted Criteria IDs", func(c *CriteriaTargeting) []int64 { return c.TargetedCriteriaIDs }),
		// The Java samples print targetedCriteriaIds under this label as well.
		// This reads excludedCriteriaIds, the field the label names.
		printer.ScalarList("Excluded Criteria IDs", func(c *CriteriaTargeting) []int64 { return c.ExcludedCriteriaIDs }),
	},
}

var adSizeShape = &printer.Shape[AdSize]{
	Fields: []printer.Field[AdSize]{
		printer.Scalar("Width", func(s *AdSize) *int64 { return s.Width }),
		printer.Scalar("Height", func(s *AdSize) *int64 { return s.Height }),
		printer.Scalar("Type", func(s *AdSize) *string { return s.Type }),
	},
}

var inventorySizeTargetingShape = &printer.Shape[InventorySizeTargeting]{
	Fields: []printer.Field[InventorySizeTargeting]{
		printer.RecordList("Targeted inventory sizes", "AdSize",
			func(t *InventorySizeTargeting) []AdSize { return t.TargetedInventorySizes }, adSizeShape),
		printer.RecordList("Excluded inventory sizes", "AdSize",
			func(t *InventorySizeTargeting) []AdSize { return t.ExcludedInventorySizes }, adSizeShape),
	},
}

var operatingSystemTargetingShape = &printer.Shape[OperatingSystemTargeting]{
	Fields: []printer.Field[OperatingSystemTargeting]{
		printer.Record("Operating system criteria",
			func(t *OperatingSystemTargeting) *CriteriaTargeting { return t.OperatingSystemCriteria }, criteriaTargetingShape),
		printer.Record("Operating system version criteria",
			func(t *OperatingSystemTargeting) *CriteriaTargeting { return t.OperatingSystemVersionCriteria }, criteriaTargetingShape),
	},
}

var technologyTargetingShape = &printer.Shape[TechnologyTargeting]{
	Fields: []printer.Field[TechnologyTargeting]{
		printer.Record("Device category targeting",
			func(t *TechnologyTargeting) *CriteriaTargeting { return t.DeviceCategoryTargeting }, criteriaTargetingShape),
		printer.Record("Device capability targeting",
			func(t *TechnologyTargeting) *CriteriaTargeting { return t.DeviceCapabilityTargeting }, criteriaTargetingShape),
		printer.Record("Operating system targeting",
			func(t *TechnologyTargeting) *OperatingSystemTargeting { return t.OperatingSystemTargeting }, operatingSystemTargetingShape),
	},
}

var uriTargetingShape = &printer.Shape[URITargeting]{
	Fields: []printer.Field[URITargeting]{
		printer.ScalarList("Targeted URIs", func(t *URITargeting) []string { return t.TargetedURIs }),
		printer.ScalarList("Excluded URIs", func(t *URITargeting) []string { return t.ExcludedURIs }),
	},
}

var firstPartyMobileApplicationTargetingShape = &printer.Shape[FirstPartyMobileApplicationTargeting]{
	Fields: []printer.Field[FirstPartyMobileApplicationTargeting]{
		printer.ScalarList("Targeted App IDs", func(t *FirstPartyMobileApplicationTargeting) []string { return t.TargetedAppIDs }),
		printer.ScalarList("Excluded App IDs", func(t *FirstPartyMobileApplicationTargeting) []string { return t.ExcludedAppIDs }),
	},
}

var mobileApplicationTargetingShape = &printer.Shape[MobileApplicationTargeting]{
	Fields: []printer.Field[MobileApplicationTargeting]{
		printer.Record("First-party mobile application targeting",
			func(t *MobileApplicationTargeting) *FirstPartyMobileApplicationTargeting { return t.FirstPartyTargeting },
			firstPartyMobileApplicationTargetingShape),
	},
}

var placementTargetingShape = &printer.Shape[PlacementTargeting]{
	Fields: []printer.Field[PlacementTargeting]{
		printer.Record("URI targeting", func(t *PlacementTargeting) *URITargeting { return t.URITargeting }, uriTargetingShape),
		printer.Record("Mobile application targeting",
			func(t *PlacementTargeting) *MobileApplicationTargeting { return t.MobileApplicationTargeting },
			mobileApplicationTargetingShape),
	},
}

var videoTargetingShape = &printer.Shape[VideoTargeting]{
	Fields: []printer.Field[VideoTargeting]{
		printer.ScalarList("Targeted position types", func(t *VideoTargeting) []string { return t.TargetedPositionTypes }),
		printer.ScalarList("Excluded position types", func(t *VideoTargeting) []string { return t.ExcludedPositionTypes }),
	},
}

var timeOfDayShape = &printer.Shape[TimeOfDay]{
	Fields: []printer.Field[TimeOfDay]{
		printer.Scalar("Hours", func(t *TimeOfDay) *int32 { return t.Hours }),
		printer.Scalar("Minutes", func(t *TimeOfDay) *int32 { return t.Minutes }),
		printer.Scalar("Seconds", func(t *TimeOfDay) *int32 { return t.Seconds }),
		printer.Scalar("Nanos", func(t *TimeOfDay) *int32 { return t.Nanos }),
	},
}

var dayPartShape = &printer.Shape[DayPart]{
	Fields: []printer.Field[DayPart]{
		printer.Scalar("Day of week", func(d *DayPart) *string { return d.DayOfWeek }),
		printer.Record("Start time", func(d *DayPart) *TimeOfDay { return d.StartTime }, timeOfDayShape),
		printer.Record("End time", func(d *DayPart) *TimeOfDay { return d.EndTime }, timeOfDayShape),
	},
}

var dayPartTargetingShape = &printer.Shape[DayPartTargeting]{
	Fields: []printer.Field[DayPartTargeting]{
		printer.RecordList("Day parts", "Day part", func(t *DayPartTargeting) []DayPart { return t.DayParts }, dayPartShape),
		printer.Scalar("Time zone type", func(t *DayPartTargeting) *string { return t.TimeZoneType }),
	},
}

var marketplaceTargetingShape = &printer.Shape[MarketplaceTargeting]{
	Fields: []printer.Field[MarketplaceTargeting]{
		printer.Record("Geo targeting", func(t *MarketplaceTargeting) *CriteriaTargeting { return t.GeoTargeting }, criteriaTargetingShape),
		printer.Record("Inventory size targeting",
			func(t *MarketplaceTargeting) *InventorySizeTargeting { return t.InventorySizeTargeting }, inventorySizeTargetingShape),
		printer.Record("Technology targeting",
			func(t *MarketplaceTargeting) *TechnologyTargeting { return t.TechnologyTargeting }, technologyTargetingShape),
		printer.Record("Placement targeting",
			func(t *MarketplaceTargeting) *PlacementTargeting { return t.PlacementTargeting }, placementTargetingShape),
		printer.Record("Video targeting", func(t *MarketplaceTargeting) *VideoTargeting { return t.VideoTargeting }, videoTargetingShape),
		printer.Record("User list targeting",
			func(t *MarketplaceTargeting) *CriteriaTargeting { return t.UserListTargeting }, criteriaTargetingShape),
		printer.Record("Day part targeting",
			func(t *MarketplaceTargeting) *DayPartTargeting { return t.DaypartTargeting }, dayPartTargetingShape),
	},
}

var creativeRequirementsShape = &printer.Shape[CreativeRequirements]{
	Fields: []printer.Field[CreativeRequirements]{
		printer.Scalar("Creative preapproval policy", func(c *CreativeRequirements) *string { return c.CreativePreApprovalPolicy }),
		printer.Scalar("Creative safeframe compatibility", func(c *CreativeRequirements) *string { return c.CreativeSafeFrameCompatibility }),
		printer.Scalar("Programmatic creative source", func(c *CreativeRequirements) *string { return c.ProgrammaticCreativeSource }),
		printer.Scalar("Creative format", func(c *CreativeRequirements) *string { return c.CreativeFormat }),
	},
}

var frequencyCapShape = &printer.Shape[FrequencyCap]{
	Fields: []printer.Field[FrequencyCap]{
		printer.Scalar("Max impressions", func(f *FrequencyCap) *int32 { return f.MaxImpressions }),
		printer.Scalar("Time units count", func(f *FrequencyCap) *int32 { return f.TimeUnitsCount }),
		printer.Scalar("Time unit type", func(f *FrequencyCap) *string { return f.TimeUnitType }),
	},
}

var deliveryControlShape = &printer.Shape[DeliveryControl]{
	Fields: []printer.Field[DeliveryControl]{
		printer.Scalar("Delivery rate type", func(d *DeliveryControl) *string { return d.DeliveryRateType }),
		printer.RecordList("Frequency caps", "Frequency cap", func(d *DeliveryControl) []FrequencyCap { return d.FrequencyCap }, frequencyCapShape),
		printer.Scalar("Road blocking type", func(d *DeliveryControl) *string { return d.RoadblockingType }),
		printer.Scalar("Companion delivery type", func(d *DeliveryControl) *string { return d.CompanionDeliveryType }),
		printer.Scalar("Creative rotation type", func(d *DeliveryControl) *string { return d.CreativeRotationType }),
	},
}

var programmaticGuaranteedTermsShape = &printer.Shape[ProgrammaticGuaranteedTerms]{
	Fields: []printer.Field[ProgrammaticGuaranteedTerms]{
		printer.Scalar("Guaranteed looks", func(t *ProgrammaticGuaranteedTerms) *int64 { return t.GuaranteedLooks }),
		printer.Record("Fixed price", func(t *ProgrammaticGuaranteedTerms) *Price { return t.FixedPrice }, priceShape),
		printer.Scalar("Minimum daily looks", func(t *ProgrammaticGuaranteedTerms) *int64 { return t.MinimumDailyLooks }),
		printer.Scalar("Reservation type", func(t *ProgrammaticGuaranteedTerms) *string { return t.ReservationType }),
		printer.Scalar("Impression cap", func(t *ProgrammaticGuaranteedTerms) *int64 { return t.ImpressionCap }),
		printer.Scalar("Percent share of voice", func(t *ProgrammaticGuaranteedTerms) *int64 { return t.PercentShareOfVoice }),
	},
}

var preferredDealTermsShape = &printer.Shape[PreferredDealTerms]{
	Fields: []printer.Field[PreferredDealTerms]{
		printer.Record("Fixed price", func(t *PreferredDealTerms) *Price { return t.FixedPrice }, priceShape),
	},
}

var privateAuctionTermsShape = &printer.Shape[PrivateAuctionTerms]{
	Fields: []printer.Field[PrivateAuctionTerms]{
		printer.Record("Floor price", func(t *PrivateAuctionTerms) *Price { return t.FloorPrice }, priceShape),
		printer.Scalar("Open auction allowed", func(t *PrivateAuctionTerms) *bool { return t.OpenAuctionAllowed }),
	},
}

var privateDataShape = &printer.Shape[PrivateData]{
	Fields: []printer.Field[PrivateData]{
		printer.Scalar("Reference ID", func(p *PrivateData) *string { return p.ReferenceID }),
	},
}

var contactShape = &printer.Shape[Contact]{
	Fields: []printer.Field[Contact]{
		printer.Scalar("Email", func(c *Contact) *string { return c.Email }),
		printer.Scalar("Display name", func(c *Contact) *string { return c.DisplayName }),
	},
}

var noteShape = &printer.Shape[Note]{
	Fields: []printer.Field[Note]{
		printer.Scalar("Create time", func(n *Note) *string { return n.CreateTime }),
		printer.Scalar("Creator role", func(n *Note) *string { return n.CreatorRole }),
		printer.Scalar("Note value", func(n *Note) *string { return n.Note }),
	},
}

var dealPausingInfoShape = &printer.Shape[DealPausingInfo]{
	Fields: []printer.Field[DealPausingInfo]{
		printer.Scalar("Pausing consented", func(d *DealPausingInfo) *bool { return d.PausingConsented }),
		printer.Scalar("Pause role", func(d *DealPausingInfo) *string { return d.PauseRole }),
		printer.Scalar("Pause reason", func(d *DealPausingInfo) *string { return d.PauseReason }),
	},
}

var rtbMetricsShape = &printer.Shape[RtbMetrics]{
	Fields: []printer.Field[RtbMetrics]{
		printer.ScalarOr("Bid requests over last 7 days", func(m *RtbMetrics) *int64 { return m.BidRequests7Days }, 0),
		printer.ScalarOr("Bids over last 7 days", func(m *RtbMetrics) *int64 { return m.Bids7Days }, 0),
		printer.ScalarOr("Ad impressions over last 7 days", func(m *RtbMetrics) *int64 { return m.AdImpressions7Days }, 0),
		printer.ScalarOr("Bid rate over last 7 days", func(m *RtbMetrics) *float64 { return m.BidRate7Days }, 0.0),
		printer.ScalarOr("Filtered bid rate over last 7 days", func(m *RtbMetrics) *float64 { return m.FilteredBidRate7Days }, 0.0),
		printer.ScalarOr("Must bid rate for current month", func(m *RtbMetrics) *float64 { return m.MustBidRateCurrentMonth }, 0.0),
	},
}

var publisherProfileMobileApplicationShape = &printer.Shape[PublisherProfileMobileApplication]{
	Fields: []printer.Field[PublisherProfileMobileApplication]{
		printer.Scalar("Name", func(a *PublisherProfileMobileApplication) *string { return a.Name }),
		printer.Scalar("App Store", func(a *PublisherProfileMobileApplication) *string { return a.AppStore }),
		printer.Scalar("External App ID", func(a *PublisherProfileMobileApplication) *string { return a.ExternalAppID }),
	},
}

// Root shapes.

// ClientShape renders a Client.
var ClientShape = &printer.Shape[Client]{
	Title: "Client name",
	ID:    func(c *Client) *string { return c.Name },
	Fields: []printer.Field[Client]{
		printer.Scalar("Display name", func(c *Client) *string { return c.DisplayName }),
		printer.Scalar("Partner client ID", func(c *Client) *string { return c.PartnerClientID }),
		printer.Scalar("Role", func(c *Client) *string { return c.Role }),
		printer.Scalar("State", func(c *Client) *string { return c.State }),
		printer.Scalar("Seller visible", func(c *Client) *bool { return c.SellerVisible }),
	},
}

// ClientUserShape renders a ClientUser.
var ClientUserShape = &printer.Shape[ClientUser]{
	Title: "Client user name",
	ID:    func(u *ClientUser) *string { return u.Name },
	Fields: []printer.Field[ClientUser]{
		printer.Scalar("State", func(u *ClientUser) *string { return u.State }),
		printer.Scalar("Email", func(u *ClientUser) *string { return u.Email }),
	},
}

// AuctionPackageShape renders an AuctionPackage.
var AuctionPackageShape = &printer.Shape[AuctionPackage]{
	Title: "Auction package name",
	ID:    func(p *AuctionPackage) *string { return p.Name },
	Fields: []printer.Field[AuctionPackage]{
		printer.Scalar("Creator", func(p *AuctionPackage) *string { return p.Creator }),
		printer.Scalar("Display name", func(p *AuctionPackage) *string { return p.DisplayName }),
		printer.Scalar("Description", func(p *AuctionPackage) *string { return p.Description }),
		printer.Scalar("Create time", func(p *AuctionPackage) *string { return p.CreateTime }),
		printer.Scalar("Update time", func(p *AuctionPackage) *string { return p.UpdateTime }),
		printer.ScalarList("Subscribed clients", func(p *AuctionPackage) []string { return p.SubscribedClients }),
	},
}

// DealShape renders a Deal.
var DealShape = &printer.Shape[Deal]{
	Title: "Deal name",
	ID:    func(d *Deal) *string { return d.Name },
	Fields: []printer.Field[Deal]{
		printer.Scalar("Create time", func(d *Deal) *string { return d.CreateTime }),
		printer.Scalar("Update time", func(d *Deal) *string { return d.UpdateTime }),
		printer.Scalar("Proposal revision", func(d *Deal) *int64 { return d.ProposalRevision }),
		printer.Scalar("Display name", func(d *Deal) *string { return d.DisplayName }),
		printer.Scalar("Billed buyer", func(d *Deal) *string { return d.BilledBuyer }),
		printer.Scalar("Publisher profile", func(d *Deal) *string { return d.PublisherProfile }),
		printer.Scalar("Deal type", func(d *Deal) *string { return d.DealType }),
		printer.Record("Estimated gross spend", func(d *Deal) *Money { return d.EstimatedGrossSpend }, moneyShape),
		printer.Record("Seller time zone", func(d *Deal) *TimeZone { return d.SellerTimeZone }, timeZoneShape),
		printer.Scalar("Description", func(d *Deal) *string { return d.Description }),
		printer.Scalar("Flight start time", func(d *Deal) *string { return d.FlightStartTime }),
		printer.Scalar("Flight end time", func(d *Deal) *string { return d.FlightEndTime }),
		printer.Record("Marketplace targeting", func(d *Deal) *MarketplaceTargeting { return d.Targeting }, marketplaceTargetingShape),
		printer.Record("Creative requirements", func(d *Deal) *CreativeRequirements { return d.CreativeRequirements }, creativeRequirementsShape),
		printer.Record("Delivery control", func(d *Deal) *DeliveryControl { return d.DeliveryControl }, deliveryControlShape),
		printer.Scalar("Buyer", func(d *Deal) *string { return d.Buyer }),
		printer.Scalar("Client", func(d *Deal) *string { return d.Client }),
		printer.Record("Programmatic guaranteed terms",
			func(d *Deal) *ProgrammaticGuaranteedTerms { return d.ProgrammaticGuaranteedTerms }, programmaticGuaranteedTermsShape),
		printer.Record("Preferred deal terms", func(d *Deal) *PreferredDealTerms { return d.PreferredDealTerms }, preferredDealTermsShape),
		printer.Record("Private auction terms", func(d *Deal) *PrivateAuctionTerms { return d.PrivateAuctionTerms }, privateAuctionTermsShape),
	},
}

// ProposalShape renders a Proposal.
var ProposalShape = &printer.Shape[Proposal]{
	Title: "Proposal name",
	ID:    func(p *Proposal) *string { return p.Name },
	Fields: []printer.Field[Proposal]{
		printer.Scalar("Display name", func(p *Proposal) *string { return p.DisplayName }),
		printer.Scalar("Update time", func(p *Proposal) *string { return p.UpdateTime }),
		printer.Scalar("Proposal revision", func(p *Proposal) *int64 { return p.ProposalRevision }),
		printer.Scalar("Deal type", func(p *Proposal) *string { return p.DealType }),
		printer.Scalar("State", func(p *Proposal) *string { return p.State }),
		printer.Scalar("Is renegotiating", func(p *Proposal) *bool { return p.IsRenegotiating }),
		printer.Scalar("Originator role", func(p *Proposal) *string { return p.OriginatorRole }),
		printer.Scalar("Publisher profile", func(p *Proposal) *string { return p.PublisherProfile }),
		printer.Record("Buyer private data", func(p *Proposal) *PrivateData { return p.BuyerPrivateData }, privateDataShape),
		printer.Scalar("Billed buyer", func(p *Proposal) *string { return p.BilledBuyer }),
		printer.RecordList("Seller contacts", "Contact", func(p *Proposal) []Contact { return p.SellerContacts }, contactShape),
		printer.RecordList("Buyer contacts", "Contact", func(p *Proposal) []Contact { return p.BuyerContacts }, contactShape),
		printer.Scalar("Last updater or commenter role", func(p *Proposal) *string { return p.LastUpdaterOrCommentorRole }),
		printer.Scalar("Terms and conditions", func(p *Proposal) *string { return p.TermsAndConditions }),
		printer.Scalar("Pausing consented", func(p *Proposal) *bool { return p.PausingConsented }),
		printer.RecordList("Notes", "Note", func(p *Proposal) []Note { return p.Notes }, noteShape),
		printer.Scalar("Buyer", func(p *Proposal) *string { return p.Buyer }),
		printer.Scalar("Client", func(p *Proposal) *string { return p.Client }),
	},
}

// PublisherProfileShape renders a PublisherProfile.
var PublisherProfileShape = &printer.Shape[PublisherProfile]{
	Title: "Publisher profile name",
	ID:    func(p *PublisherProfile) *string { return p.Name },
	Fields: []printer.Field[PublisherProfile]{
		printer.Scalar("Display name", func(p *PublisherProfile) *string { return p.DisplayName }),
		printer.ScalarList("Domains", func(p *PublisherProfile) []string { return p.Domains }),
		printer.RecordList("Mobile apps", "Publisher profile mobile application",
			func(p *PublisherProfile) []PublisherProfileMobileApplication { return p.MobileApps }, publisherProfileMobileApplicationShape),
		printer.Scalar("Logo URL", func(p *PublisherProfile) *string { return p.LogoURL }),
		printer.Scalar("Direct deals contact", func(p *PublisherProfile) *string { return p.DirectDealsContact }),
		printer.Scalar("Programmatic deals contact", func(p *PublisherProfile) *string { return p.ProgrammaticDealsContact }),
		printer.Scalar("Media kit URL", func(p *PublisherProfile) *string { return p.MediaKitURL }),
		printer.Scalar("Sample page URL", func(p *PublisherProfile) *string { return p.SamplePageURL }),
		printer.Scalar("Overview", func(p *PublisherProfile) *string { return p.Overview }),
		printer.Scalar("Pitch statement", func(p *PublisherProfile) *string { return p.PitchStatement }),
		printer.ScalarList("Top headlines", func(p *PublisherProfile) []string { return p.TopHeadlines }),
		printer.Scalar("Audience description", func(p *PublisherProfile) *string { return p.AudienceDescription }),
		printer.Scalar("Is parent", func(p *PublisherProfile) *bool { return p.IsParent }),
		printer.Scalar("Publisher code", func(p *PublisherProfile) *string { return p.PublisherCode }),
	},
}

// FinalizedDealShape renders a FinalizedDeal.
var FinalizedDealShape = &printer.Shape[FinalizedDeal]{
	Title: "Finalized deal name",
	ID:    func(f *FinalizedDeal) *string { return f.Name },
	Fields: []printer.Field[FinalizedDeal]{
		printer.Scalar("Deal serving status", func(f *FinalizedDeal) *string { return f.DealServingStatus }),
		printer.Record("Deal pausing info", func(f *FinalizedDeal) *DealPausingInfo { return f.DealPausingInfo }, dealPausingInfoShape),
		printer.Record("RTB metrics", func(f *FinalizedDeal) *RtbMetrics { return f.RtbMetrics }, rtbMetricsShape),
		printer.Scalar("Ready to serve", func(f *FinalizedDeal) *bool { return f.ReadyToServe }),
		printer.Record("Deal", func(f *FinalizedDeal) *Deal { return f.Deal }, DealShape),
	},
}

// Printers renders any root resource of this package by type.
var Printers = newPrinters()

func newPrinters() *printer.Registry {
	r := printer.NewRegistry()
	printer.Register(r, ClientShape)
	printer.Register(r, ClientUserShape)
	printer.Register(r, AuctionPackageShape)
	printer.Register(r, DealShape)
	printer.Register(r, ProposalShape)
	printer.Register(r, PublisherProfileShape)
	printer.Register(r, FinalizedDealShape)
	return r
}

// PrintClient writes a human-readable Client to w.
func PrintClient(w io.Writer, c *Client) error { return printer.Render(w, ClientShape, c, 0) }

// PrintClientUser writes a human-readable ClientUser to w.
func PrintClientUser(w io.Writer, u *ClientUser) error {
	return printer.Render(w, ClientUserShape, u, 0)
}

// PrintAuctionPackage writes a human-readable AuctionPackage to w.
func PrintAuctionPackage(w io.Writer, p *AuctionPackage) error {
	return printer.Render(w, AuctionPackageShape, p, 0)
}

// PrintDeal writes a human-readable Deal to w.
func PrintDeal(w io.Writer, d *Deal) error { return printer.Render(w, DealShape, d, 0) }

// PrintProposal writes a human-readable Proposal to w.
func PrintProposal(w io.Writer, p *Proposal) error { return printer.Render(w, ProposalShape, p, 0) }

// PrintPublisherProfile writes a human-readable PublisherProfile to w.
func PrintPublisherProfile(w io.Writer, p *PublisherProfile) error {
	return printer.Render(w, PublisherProfileShape, p, 0)
}

// PrintFinalizedDeal writes a human-readable FinalizedDeal to w.
func PrintFinalizedDeal(w io.Writer, f *FinalizedDeal) error {
	return printer.Render(w, FinalizedDealShape, f, 0)
}
