package availability

import "github.com/pkordes/rental-marketplace/backend/internal/domain"

// Inline messages shown in place of the booking form.
const (
	KeyPriceMissing    = "BookingDatesForm.listingPriceMissing"
	KeyCurrencyInvalid = "BookingDatesForm.listingCurrencyInvalid"
)

// CheckBookable returns the translation key of the inline error to render
// instead of the booking form, or "" when the listing can be booked.
func CheckBookable(price *domain.Money, marketplaceCurrency string) string {
	if price == nil {
		return KeyPriceMissing
	}
	if price.Currency != marketplaceCurrency {
		return KeyCurrencyInvalid
	}
	return ""
}
