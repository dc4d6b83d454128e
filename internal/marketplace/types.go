// Package marketplace is a small client for the Authorized Buyers
// Marketplace API (v1) together with the object model it exchanges.
//
// Every optional field of the object model is a pointer or a slice: nil
// means the field was absent from the JSON document, which is distinct from
// a present zero value. A JSON [] decodes to an empty, non-nil slice.
// int64 values travel as JSON strings, as the API encodes them.
package marketplace

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Values of Deal.DealType and Proposal.DealType.
const (
	DealTypePreferredDeal          = "PREFERRED_DEAL"
	DealTypePrivateAuction         = "PRIVATE_AUCTION"
	DealTypeProgrammaticGuaranteed = "PROGRAMMATIC_GUARANTEED"
)

// Client is a buyers.clients resource.
type Client struct {
	Name            *string `json:"name,omitempty"`
	PartnerClientID *string `json:"partnerClientId,omitempty"`
	Role            *string `json:"role,omitempty"`
	SellerVisible   *bool   `json:"sellerVisible,omitempty"`
	State           *string `json:"state,omitempty"`
	DisplayName     *string `json:"displayName,omitempty"`
}

// ClientUser is a buyers.clients.users resource.
type ClientUser struct {
	Name  *string `json:"name,omitempty"`
	State *string `json:"state,omitempty"`
	Email *string `json:"email,omitempty"`
}

// AuctionPackage is a buyers.auctionPackages resource.
type AuctionPackage struct {
	Name              *string  `json:"name,omitempty"`
	Creator           *string  `json:"creator,omitempty"`
	DisplayName       *string  `json:"displayName,omitempty"`
	Description       *string  `json:"description,omitempty"`
	CreateTime        *string  `json:"createTime,omitempty"`
	UpdateTime        *string  `json:"updateTime,omitempty"`
	SubscribedClients []string `json:"subscribedClients,omitempty"`
	SubscribedBuyers  []string `json:"subscribedBuyers,omitempty"`
}

// PublisherProfile is a buyers.publisherProfiles resource.
type PublisherProfile struct {
	Name                     *string                             `json:"name,omitempty"`
	DisplayName              *string                             `json:"displayName,omitempty"`
	Domains                  []string                            `json:"domains,omitempty"`
	MobileApps               []PublisherProfileMobileApplication `json:"mobileApps,omitempty"`
	LogoURL                  *string                             `json:"logoUrl,omitempty"`
	DirectDealsContact       *string                             `json:"directDealsContact,omitempty"`
	ProgrammaticDealsContact *string                             `json:"programmaticDealsContact,omitempty"`
	MediaKitURL              *string                             `json:"mediaKitUrl,omitempty"`
	SamplePageURL            *string                             `json:"samplePageUrl,omitempty"`
	Overview                 *string                             `json:"overview,omitempty"`
	PitchStatement           *string                             `json:"pitchStatement,omitempty"`
	TopHeadlines             []string                            `json:"topHeadlines,omitempty"`
	AudienceDescription      *string                             `json:"audienceDescription,omitempty"`
	IsParent                 *bool                               `json:"isParent,omitempty"`
	PublisherCode            *string                             `json:"publisherCode,omitempty"`
}

// PublisherProfileMobileApplication is a mobile app owned by a publisher.
type PublisherProfileMobileApplication struct {
	Name          *string `json:"name,omitempty"`
	AppStore      *string `json:"appStore,omitempty"`
	ExternalAppID *string `json:"externalAppId,omitempty"`
}

// Proposal is a buyers.proposals resource.
type Proposal struct {
	Name                       *string      `json:"name,omitempty"`
	UpdateTime                 *string      `json:"updateTime,omitempty"`
	ProposalRevision           *int64       `json:"proposalRevision,omitempty,string"`
	DealType                   *string      `json:"dealType,omitempty"`
	DisplayName                *string      `json:"displayName,omitempty"`
	State                      *string      `json:"state,omitempty"`
	IsRenegotiating            *bool        `json:"isRenegotiating,omitempty"`
	OriginatorRole             *string      `json:"originatorRole,omitempty"`
	PublisherProfile           *string      `json:"publisherProfile,omitempty"`
	BuyerPrivateData           *PrivateData `json:"buyerPrivateData,omitempty"`
	BilledBuyer                *string      `json:"billedBuyer,omitempty"`
	SellerContacts             []Contact    `json:"sellerContacts,omitempty"`
	BuyerContacts              []Contact    `json:"buyerContacts,omitempty"`
	LastUpdaterOrCommentorRole *string      `json:"lastUpdaterOrCommentorRole,omitempty"`
	TermsAndConditions         *string      `json:"termsAndConditions,omitempty"`
	PausingConsented           *bool        `json:"pausingConsented,omitempty"`
	Notes                      []Note       `json:"notes,omitempty"`
	Buyer                      *string      `json:"buyer,omitempty"`
	Client                     *string      `json:"client,omitempty"`
}

// Contact is a buyer or seller contact.
type Contact struct {
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// Note is a message attached to a proposal.
type Note struct {
	CreateTime  *string `json:"createTime,omitempty"`
	CreatorRole *string `json:"creatorRole,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// PrivateData is buyer data invisible to the seller.
type PrivateData struct {
	ReferenceID *string `json:"referenceId,omitempty"`
}

// Deal is a buyers.proposals.deals resource.
type Deal struct {
	Name                        *string                      `json:"name,omitempty"`
	CreateTime                  *string                      `json:"createTime,omitempty"`
	UpdateTime                  *string                      `json:"updateTime,omitempty"`
	ProposalRevision            *int64                       `json:"proposalRevision,omitempty,string"`
	DisplayName                 *string                      `json:"displayName,omitempty"`
	Buyer                       *string                      `json:"buyer,omitempty"`
	Client                      *string                      `json:"client,omitempty"`
	BilledBuyer                 *string                      `json:"billedBuyer,omitempty"`
	PublisherProfile            *string                      `json:"publisherProfile,omitempty"`
	DealType                    *string                      `json:"dealType,omitempty"`
	EstimatedGrossSpend         *Money                       `json:"estimatedGrossSpend,omitempty"`
	SellerTimeZone              *TimeZone                    `json:"sellerTimeZone,omitempty"`
	Description                 *string                      `json:"description,omitempty"`
	FlightStartTime             *string                      `json:"flightStartTime,omitempty"`
	FlightEndTime               *string                      `json:"flightEndTime,omitempty"`
	Targeting                   *MarketplaceTargeting        `json:"targeting,omitempty"`
	CreativeRequirements        *CreativeRequirements        `json:"creativeRequirements,omitempty"`
	DeliveryControl             *DeliveryControl             `json:"deliveryControl,omitempty"`
	ProgrammaticGuaranteedTerms *ProgrammaticGuaranteedTerms `json:"programmaticGuaranteedTerms,omitempty"`
	PreferredDealTerms          *PreferredDealTerms          `json:"preferredDealTerms,omitempty"`
	PrivateAuctionTerms         *PrivateAuctionTerms         `json:"privateAuctionTerms,omitempty"`
}

// Money is an amount in a currency.
type Money struct {
	CurrencyCode *string `json:"currencyCode,omitempty"`
	Units        *int64  `json:"units,omitempty,string"`
	Nanos        *int32  `json:"nanos,omitempty"`
}

// TimeZone is an IANA time zone.
type TimeZone struct {
	ID      *string `json:"id,omitempty"`
	Version *string `json:"version,omitempty"`
}

// MarketplaceTargeting groups the targeting criteria of a deal.
type MarketplaceTargeting struct {
	GeoTargeting           *CriteriaTargeting      `json:"geoTargeting,omitempty"`
	InventorySizeTargeting *InventorySizeTargeting `json:"inventorySizeTargeting,omitempty"`
	TechnologyTargeting    *TechnologyTargeting    `json:"technologyTargeting,omitempty"`
	PlacementTargeting     *PlacementTargeting     `json:"placementTargeting,omitempty"`
	VideoTargeting         *VideoTargeting         `json:"videoTargeting,omitempty"`
	UserListTargeting      *CriteriaTargeting      `json:"userListTargeting,omitempty"`
	DaypartTargeting       *DayPartTargeting       `json:"daypartTargeting,omitempty"`
}

// CriteriaTargeting lists targeted and excluded criteria IDs.
type CriteriaTargeting struct {
	TargetedCriteriaIDs Int64List `json:"targetedCriteriaIds,omitempty"`
	ExcludedCriteriaIDs Int64List `json:"excludedCriteriaIds,omitempty"`
}

// InventorySizeTargeting lists targeted and excluded ad sizes.
type InventorySizeTargeting struct {
	TargetedInventorySizes []AdSize `json:"targetedInventorySizes,omitempty"`
	ExcludedInventorySizes []AdSize `json:"excludedInventorySizes,omitempty"`
}

// AdSize is an ad slot size.
type AdSize struct {
	Width  *int64  `json:"width,omitempty,string"`
	Height *int64  `json:"height,omitempty,string"`
	Type   *string `json:"type,omitempty"`
}

// TechnologyTargeting targets devices and operating systems.
type TechnologyTargeting struct {
	DeviceCategoryTargeting   *CriteriaTargeting        `json:"deviceCategoryTargeting,omitempty"`
	DeviceCapabilityTargeting *CriteriaTargeting        `json:"deviceCapabilityTargeting,omitempty"`
	OperatingSystemTargeting  *OperatingSystemTargeting `json:"operatingSystemTargeting,omitempty"`
}

// OperatingSystemTargeting targets operating systems and their versions.
type OperatingSystemTargeting struct {
	OperatingSystemCriteria        *CriteriaTargeting `json:"operatingSystemCriteria,omitempty"`
	OperatingSystemVersionCriteria *CriteriaTargeting `json:"operatingSystemVersionCriteria,omitempty"`
}

// PlacementTargeting targets sites and mobile applications.
type PlacementTargeting struct {
	URITargeting               *URITargeting               `json:"uriTargeting,omitempty"`
	MobileApplicationTargeting *MobileApplicationTargeting `json:"mobileApplicationTargeting,omitempty"`
}

// URITargeting targets or excludes URIs.
type URITargeting struct {
	TargetedURIs []string `json:"targetedUris,omitempty"`
	ExcludedURIs []string `json:"excludedUris,omitempty"`
}

// MobileApplicationTargeting targets mobile applications.
type MobileApplicationTargeting struct {
	FirstPartyTargeting *FirstPartyMobileApplicationTargeting `json:"firstPartyTargeting,omitempty"`
}

// FirstPartyMobileApplicationTargeting targets the publisher's own apps.
type FirstPartyMobileApplicationTargeting struct {
	TargetedAppIDs []string `json:"targetedAppIds,omitempty"`
	ExcludedAppIDs []string `json:"excludedAppIds,omitempty"`
}

// VideoTargeting targets video ad positions.
type VideoTargeting struct {
	TargetedPositionTypes []string `json:"targetedPositionTypes,omitempty"`
	ExcludedPositionTypes []string `json:"excludedPositionTypes,omitempty"`
}

// DayPartTargeting restricts serving to parts of the week.
type DayPartTargeting struct {
	DayParts     []DayPart `json:"dayParts,omitempty"`
	TimeZoneType *string   `json:"timeZoneType,omitempty"`
}

// DayPart is one weekday time window.
type DayPart struct {
	DayOfWeek *string    `json:"dayOfWeek,omitempty"`
	StartTime *TimeOfDay `json:"startTime,omitempty"`
	EndTime   *TimeOfDay `json:"endTime,omitempty"`
}

// TimeOfDay is a wall-clock time.
type TimeOfDay struct {
	Hours   *int32 `json:"hours,omitempty"`
	Minutes *int32 `json:"minutes,omitempty"`
	Seconds *int32 `json:"seconds,omitempty"`
	Nanos   *int32 `json:"nanos,omitempty"`
}

// CreativeRequirements are the seller's creative constraints.
type CreativeRequirements struct {
	CreativePreApprovalPolicy      *string `json:"creativePreApprovalPolicy,omitempty"`
	CreativeSafeFrameCompatibility *string `json:"creativeSafeFrameCompatibility,omitempty"`
	ProgrammaticCreativeSource     *string `json:"programmaticCreativeSource,omitempty"`
	CreativeFormat                 *string `json:"creativeFormat,omitempty"`
}

// FrequencyCap limits impressions per time unit.
type FrequencyCap struct {
	MaxImpressions *int32  `json:"maxImpressions,omitempty"`
	TimeUnitsCount *int32  `json:"timeUnitsCount,omitempty"`
	TimeUnitType   *string `json:"timeUnitType,omitempty"`
}

// DeliveryControl describes how a deal is delivered.
type DeliveryControl struct {
	DeliveryRateType      *string        `json:"deliveryRateType,omitempty"`
	FrequencyCap          []FrequencyCap `json:"frequencyCap,omitempty"`
	RoadblockingType      *string        `json:"roadblockingType,omitempty"`
	CompanionDeliveryType *string        `json:"companionDeliveryType,omitempty"`
	CreativeRotationType  *string        `json:"creativeRotationType,omitempty"`
}

// Price is a typed amount (CPM or CPD).
type Price struct {
	Type   *string `json:"type,omitempty"`
	Amount *Money  `json:"amount,omitempty"`
}

// ProgrammaticGuaranteedTerms are the terms of a programmatic guaranteed deal.
type ProgrammaticGuaranteedTerms struct {
	GuaranteedLooks     *int64  `json:"guaranteedLooks,omitempty,string"`
	FixedPrice          *Price  `json:"fixedPrice,omitempty"`
	MinimumDailyLooks   *int64  `json:"minimumDailyLooks,omitempty,string"`
	ReservationType     *string `json:"reservationType,omitempty"`
	ImpressionCap       *int64  `json:"impressionCap,omitempty,string"`
	PercentShareOfVoice *int64  `json:"percentShareOfVoice,omitempty,string"`
}

// PreferredDealTerms are the terms of a preferred deal.
type PreferredDealTerms struct {
	FixedPrice *Price `json:"fixedPrice,omitempty"`
}

// PrivateAuctionTerms are the terms of a private auction.
type PrivateAuctionTerms struct {
	FloorPrice         *Price `json:"floorPrice,omitempty"`
	OpenAuctionAllowed *bool  `json:"openAuctionAllowed,omitempty"`
}

// FinalizedDeal is a buyers.finalizedDeals resource.
type FinalizedDeal struct {
	Name              *string          `json:"name,omitempty"`
	Deal              *Deal            `json:"deal,omitempty"`
	DealServingStatus *string          `json:"dealServingStatus,omitempty"`
	DealPausingInfo   *DealPausingInfo `json:"dealPausingInfo,omitempty"`
	RtbMetrics        *RtbMetrics      `json:"rtbMetrics,omitempty"`
	ReadyToServe      *bool            `json:"readyToServe,omitempty"`
}

// DealPausingInfo records who paused a deal and why.
type DealPausingInfo struct {
	PausingConsented *bool   `json:"pausingConsented,omitempty"`
	PauseRole        *string `json:"pauseRole,omitempty"`
	PauseReason      *string `json:"pauseReason,omitempty"`
}

// RtbMetrics are real-time bidding metrics of a finalized deal.
type RtbMetrics struct {
	BidRequests7Days        *int64   `json:"bidRequests7Days,omitempty,string"`
	Bids7Days               *int64   `json:"bids7Days,omitempty,string"`
	AdImpressions7Days      *int64   `json:"adImpressions7Days,omitempty,string"`
	BidRate7Days            *float64 `json:"bidRate7Days,omitempty"`
	FilteredBidRate7Days    *float64 `json:"filteredBidRate7Days,omitempty"`
	MustBidRateCurrentMonth *float64 `json:"mustBidRateCurrentMonth,omitempty"`
}

// Int64List is a list of int64 values encoded as JSON strings. Decoding
// also accepts bare numbers.
type Int64List []int64

// MarshalJSON implements json.Marshaler.
func (l Int64List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = strconv.FormatInt(v, 10)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Int64List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	out := make(Int64List, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = string(item)
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int64 list element %s: %w", item, err)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// StringValue returns *p, or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
