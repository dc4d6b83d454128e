package marketplace

import (
	"fmt"
	"strings"
)

// BuyerName returns "buyers/{accountID}".
func BuyerName(accountID int64) string {
	return fmt.Sprintf("buyers/%d", accountID)
}

// ClientName returns "buyers/{accountID}/clients/{clientID}".
func ClientName(accountID int64, clientID string) string {
	return fmt.Sprintf("buyers/%d/clients/%s", accountID, clientID)
}

// ClientUserName returns "buyers/{accountID}/clients/{clientID}/users/{userID}".
func ClientUserName(accountID int64, clientID, userID string) string {
	return fmt.Sprintf("buyers/%d/clients/%s/users/%s", accountID, clientID, userID)
}

// ProposalName returns "buyers/{accountID}/proposals/{proposalID}".
func ProposalName(accountID int64, proposalID string) string {
	return fmt.Sprintf("buyers/%d/proposals/%s", accountID, proposalID)
}

// DealName returns "buyers/{accountID}/proposals/{proposalID}/deals/{dealID}".
func DealName(accountID int64, proposalID, dealID string) string {
	return fmt.Sprintf("buyers/%d/proposals/%s/deals/%s", accountID, proposalID, dealID)
}

// FinalizedDealName returns "buyers/{accountID}/finalizedDeals/{dealID}".
func FinalizedDealName(accountID int64, dealID string) string {
	return fmt.Sprintf("buyers/%d/finalizedDeals/%s", accountID, dealID)
}

// AuctionPackageName returns "buyers/{accountID}/auctionPackages/{packageID}".
func AuctionPackageName(accountID int64, packageID string) string {
	return fmt.Sprintf("buyers/%d/auctionPackages/%s", accountID, packageID)
}

// PublisherProfileName returns "buyers/{accountID}/publisherProfiles/{profileID}".
func PublisherProfileName(accountID int64, profileID string) string {
	return fmt.Sprintf("buyers/%d/publisherProfiles/%s", accountID, profileID)
}

// CreativeName returns "buyers/{accountID}/creatives/{creativeID}".
func CreativeName(accountID int64, creativeID string) string {
	return fmt.Sprintf("buyers/%d/creatives/%s", accountID, creativeID)
}

// LastSegment returns the resource ID at the end of a resource name.
func LastSegment(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
