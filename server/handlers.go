package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sig-0/twdrates/storage/types"
)

const (
	defaultLimit = int32(100)
	maxLimit     = int32(500)
)

var (
	errUnableToFetchSeries = errors.New("unable to fetch series")
	errUnableToFetchRecord = errors.New("unable to fetch record")

	errRecordNotFound = errors.New("record not found")

	errInvalidLimit  = errors.New("invalid limit")
	errInvalidOffset = errors.New("invalid offset")
	errInvalidDate   = errors.New("invalid date (must be YYYY-MM-DD)")
)

func (s *Server) Series(w http.ResponseWriter, r *http.Request) {
	var (
		limitParam  = r.URL.Query().Get("limit")
		offsetParam = r.URL.Query().Get("offset")
	)

	// Parse the pagination settings
	limit, offset, err := parseLimitOffset(limitParam, offsetParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	series, err := s.storage.LoadSeries(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch series",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchSeries,
		)

		return
	}

	total := int64(len(series))

	if offset > total {
		writeJSON(w, http.StatusOK, &types.Page[*types.DailyRecord]{
			Results: nil,
			Total:   total,
		})

		return
	}

	start := int(offset)

	end := start + int(limit)
	if end > len(series) {
		end = len(series)
	}

	writeJSON(w, http.StatusOK, &types.Page[*types.DailyRecord]{
		Results: series[start:end],
		Total:   total,
	})
}

func (s *Server) LatestRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.storage.LatestRecord(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch latest record",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRecord,
		)

		return
	}

	if record == nil {
		writeError(w, http.StatusNotFound, errRecordNotFound)

		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) RecordForDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	record, err := s.storage.RecordForDate(r.Context(), date)
	if err != nil {
		s.logger.Debug(
			"unable to fetch record",
			"date", date,
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRecord,
		)

		return
	}

	if record == nil {
		writeError(w, http.StatusNotFound, errRecordNotFound)

		return
	}

	writeJSON(w, http.StatusOK, record)
}

func parseDate(raw string) (string, error) {
	v := strings.TrimSpace(raw)

	if _, err := time.Parse(types.DateFormat, v); err != nil {
		return "", errInvalidDate
	}

	return v, nil
}

func parseLimitOffset(limitRaw, offsetRaw string) (int32, int64, error) {
	limit := defaultLimit

	if v := strings.TrimSpace(limitRaw); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, errInvalidLimit
		}

		// Clamp before converting, so oversized values
		// can't wrap around the int32 range
		if n > int64(maxLimit) {
			n = int64(maxLimit)
		}

		limit = int32(n)
	}

	if limit == 0 {
		limit = defaultLimit
	}

	var offset int64

	if v := strings.TrimSpace(offsetRaw); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, errInvalidOffset
		}

		offset = n
	}

	return limit, offset, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
