package domain

import "time"

// SlotExportRow is one row of a listing's availability export: one row per
// bookable slot and calendar day it covers, in the viewer's time zone.
type SlotExportRow struct {
	ListingID    string    `json:"listingId"`
	ListingTitle string    `json:"listingTitle"`
	SlotID       string    `json:"slotId"`
	Date         string    `json:"date"` // "2006-01-02" in the export's time zone
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`

	// StartTimes are the "15:04" hour options the slot offers on Date.
	StartTimes []string `json:"startTimes"`
}
