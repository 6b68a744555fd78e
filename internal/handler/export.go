package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of a CSV export.
var csvHeaders = []string{
	"listing_id", "listing_title", "slot_id", "date", "slot_start", "slot_end", "start_times",
}

// ExportTimeSlots handles GET /listings/{id}/time-slots/export?tz=&format=.
// It returns one row per slot and bookable day inside the booking window.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportTimeSlots(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	var format *string
	if !queryParam(w, r, "format", &format) {
		return
	}

	rows, err := s.export.Export(r.Context(), id, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}

	if format != nil && *format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV encodes rows as CSV. Start times within a row are pipe-separated
// ("|") to keep each slot day on a single line.
func writeCSV(w http.ResponseWriter, rows []domain.SlotExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(rowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func rowToCSVRecord(r domain.SlotExportRow) []string {
	return []string{
		r.ListingID,
		r.ListingTitle,
		r.SlotID,
		r.Date,
		r.Start.UTC().Format(time.RFC3339),
		r.End.UTC().Format(time.RFC3339),
		strings.Join(r.StartTimes, "|"),
	}
}
