package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/twdrates/storage/memory"
	"github.com/sig-0/twdrates/storage/types"
)

func testRecord(date string) *types.DailyRecord {
	return &types.DailyRecord{
		Date:          date,
		PrimaryUSDBuy: "31.50",

		SecondaryCNYBuy:  "4.30",
		SecondaryCNYSell: "4.40",
	}
}

// newTestServer creates a server backed by an in-memory store,
// preloaded with the given records
func newTestServer(t *testing.T, records ...*types.DailyRecord) *Server {
	t.Helper()

	store := memory.NewStorage()

	for _, record := range records {
		require.NoError(t, store.SaveDailyRecord(context.Background(), record))
	}

	s, err := New(store)
	require.NoError(t, err)

	return s
}

// dateRequest builds a GET request carrying the chi date URL param
func dateRequest(t *testing.T, date string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/records/"+date, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("date", date)

	return req.WithContext(
		context.WithValue(req.Context(), chi.RouteCtxKey, rctx),
	)
}

func decodeBody[T any](t *testing.T, res *httptest.ResponseRecorder) T {
	t.Helper()

	var out T

	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	return out
}

func TestServer_Series(t *testing.T) {
	t.Parallel()

	t.Run("full series", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(
			t,
			testRecord("2024-05-21"),
			testRecord("2024-05-22"),
			testRecord("2024-05-23"),
		)

		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series", nil))

		require.Equal(t, http.StatusOK, res.Code)

		page := decodeBody[types.Page[*types.DailyRecord]](t, res)

		assert.EqualValues(t, 3, page.Total)
		require.Len(t, page.Results, 3)
		assert.Equal(t, "2024-05-21", page.Results[0].Date)
		assert.Equal(t, "2024-05-23", page.Results[2].Date)
	})

	t.Run("paginated series", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(
			t,
			testRecord("2024-05-21"),
			testRecord("2024-05-22"),
			testRecord("2024-05-23"),
		)

		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series?limit=1&offset=1", nil))

		require.Equal(t, http.StatusOK, res.Code)

		page := decodeBody[types.Page[*types.DailyRecord]](t, res)

		assert.EqualValues(t, 3, page.Total)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "2024-05-22", page.Results[0].Date)
	})

	t.Run("offset beyond series", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, testRecord("2024-05-21"))

		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series?offset=100", nil))

		require.Equal(t, http.StatusOK, res.Code)

		page := decodeBody[types.Page[*types.DailyRecord]](t, res)

		assert.EqualValues(t, 1, page.Total)
		assert.Empty(t, page.Results)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(
			t,
			testRecord("2024-05-21"),
			testRecord("2024-05-22"),
		)

		// A limit beyond the int32 range must clamp, not wrap negative
		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series?limit=3000000000", nil))

		require.Equal(t, http.StatusOK, res.Code)

		page := decodeBody[types.Page[*types.DailyRecord]](t, res)

		assert.EqualValues(t, 2, page.Total)
		assert.Len(t, page.Results, 2)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series?limit=rando", nil))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		res := httptest.NewRecorder()
		s.Series(res, httptest.NewRequest(http.MethodGet, "/series?offset=-5", nil))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestServer_LatestRecord(t *testing.T) {
	t.Parallel()

	t.Run("latest present", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(
			t,
			testRecord("2024-05-21"),
			testRecord("2024-05-22"),
		)

		res := httptest.NewRecorder()
		s.LatestRecord(res, httptest.NewRequest(http.MethodGet, "/records/latest", nil))

		require.Equal(t, http.StatusOK, res.Code)

		record := decodeBody[types.DailyRecord](t, res)
		assert.Equal(t, "2024-05-22", record.Date)
	})

	t.Run("empty series", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		res := httptest.NewRecorder()
		s.LatestRecord(res, httptest.NewRequest(http.MethodGet, "/records/latest", nil))

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestServer_RecordForDate(t *testing.T) {
	t.Parallel()

	t.Run("record present", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, testRecord("2024-05-23"))

		res := httptest.NewRecorder()
		s.RecordForDate(res, dateRequest(t, "2024-05-23"))

		require.Equal(t, http.StatusOK, res.Code)

		record := decodeBody[types.DailyRecord](t, res)

		assert.Equal(t, "2024-05-23", record.Date)
		assert.Equal(t, "31.50", record.PrimaryUSDBuy)
		assert.Equal(t, "4.30", record.SecondaryCNYBuy)
	})

	t.Run("record absent", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, testRecord("2024-05-23"))

		res := httptest.NewRecorder()
		s.RecordForDate(res, dateRequest(t, "2020-01-01"))

		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		res := httptest.NewRecorder()
		s.RecordForDate(res, dateRequest(t, "23/05/2024"))

		assert.Equal(t, http.StatusBadRequest, res.Code)

		resp := decodeBody[ErrorResponse](t, res)
		assert.Contains(t, resp.Error, "invalid date")
	})
}
