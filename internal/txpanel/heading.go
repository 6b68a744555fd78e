// Package txpanel resolves the translation keys shown at the top of a
// transaction page for the customer and the provider.
package txpanel

import (
	"fmt"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// State is the heading state derived from a transaction's process state.
type State string

const (
	StateEnquired            State = "enquired"
	StatePaymentPending      State = "pending-payment"
	StatePaymentExpired      State = "payment-expired"
	StateCancelledByCustomer State = "cancelled-by-customer"
	StateRequested           State = "requested"
	StateAccepted            State = "accepted"
	StateDeclined            State = "declined"
	StateCanceled            State = "canceled"
	StateDelivered           State = "delivered"
)

// Role is the viewer's side of the transaction.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// ParseRole validates s.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleProvider:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown transaction role %q", domain.ErrValidation, s)
}

const prefix = "TransactionPanel."

const (
	keyDeletedListing = prefix + "messageDeletedListing"
	keyCustomerBanned = prefix + "customerBannedStatus"
	keyTwoDaysPassed  = prefix + "orderNoteTwoDaysPassed"

	// DeletedListingTitleKey replaces the listing link once the listing is gone.
	DeletedListingTitleKey = prefix + "deletedListingOrderTitle"
)

// Heading is the set of message keys of a transaction page heading.
type Heading struct {
	TitleKey    string   `json:"titleKey"`
	SubtitleKey string   `json:"subtitleKey,omitempty"`
	InfoKeys    []string `json:"infoKeys"`
}

// Options carries the flags that add informational lines to a heading.
type Options struct {
	ListingDeleted bool
	CustomerBanned bool
}

type titles struct {
	order, sale string
}

var titleByState = map[State]titles{
	StateEnquired:       {prefix + "orderEnquiredTitle", prefix + "saleEnquiredTitle"},
	StatePaymentPending: {prefix + "orderPaymentPendingTitle", prefix + "salePaymentPendingTitle"},
	StatePaymentExpired: {prefix + "orderPaymentExpiredTitle", prefix + "salePaymentExpiredTitle"},
	StateRequested:      {prefix + "orderPreauthorizedTitle", prefix + "saleRequestedTitle"},
	StateAccepted:       {prefix + "orderPreauthorizedTitle", prefix + "saleAcceptedTitle"},
	StateDeclined:       {prefix + "orderDeclinedTitle", prefix + "saleDeclinedTitle"},
	StateCanceled:       {prefix + "orderCancelledTitle", prefix + "saleCancelledTitle"},
	StateDelivered:      {prefix + "orderDeliveredTitle", prefix + "saleDeliveredTitle"},
}

// ResolveHeading returns the heading for state as seen by role.
// A cancellation by the customer renders like any other cancellation.
func ResolveHeading(state State, role Role, opts Options) (Heading, error) {
	if state == StateCancelledByCustomer {
		state = StateCanceled
	}
	t, ok := titleByState[state]
	if !ok {
		return Heading{}, fmt.Errorf("%w: unknown heading state %q", domain.ErrValidation, state)
	}
	if role == RoleCustomer {
		return customerHeading(state, t.order, opts), nil
	}
	return providerHeading(state, t.sale, opts), nil
}

func customerHeading(state State, title string, opts Options) Heading {
	h := Heading{TitleKey: title, InfoKeys: []string{}}
	switch state {
	case StateRequested:
		h.SubtitleKey = prefix + "orderPreauthorizedSubtitle"
		if !opts.ListingDeleted {
			h.InfoKeys = append(h.InfoKeys, prefix+"orderPreauthorizedInfo", keyTwoDaysPassed)
		}
	case StateAccepted:
		h.SubtitleKey = prefix + "orderAcceptedSubtitle"
		if !opts.ListingDeleted {
			h.InfoKeys = append(h.InfoKeys, keyTwoDaysPassed)
		}
	case StateEnquired, StatePaymentPending, StatePaymentExpired:
		if opts.ListingDeleted {
			h.InfoKeys = append(h.InfoKeys, keyDeletedListing)
		}
	}
	return h
}

func providerHeading(state State, title string, opts Options) Heading {
	h := Heading{TitleKey: title, InfoKeys: []string{}}
	switch state {
	case StatePaymentPending:
		h.InfoKeys = append(h.InfoKeys, prefix+"salePaymentPendingInfo")
	case StateRequested:
		if !opts.CustomerBanned {
			h.InfoKeys = append(h.InfoKeys, prefix+"saleRequestedInfo")
		}
		return h
	case StateAccepted, StateCanceled:
		return h
	}
	if opts.CustomerBanned {
		h.InfoKeys = append(h.InfoKeys, keyCustomerBanned)
	}
	return h
}
