package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/hotels"
	"github.com/zamzamtour/umrah-voucher/internal/models"
	"github.com/zamzamtour/umrah-voucher/internal/service"
	"github.com/zamzamtour/umrah-voucher/internal/voucher"
)

type stubSource struct {
	titles []string
	grids  map[string]models.Grid
}

func (f *stubSource) WorksheetTitles(ctx context.Context) ([]string, error) {
	return f.titles, nil
}

func (f *stubSource) FetchGrid(ctx context.Context, title string) (models.Grid, error) {
	g, ok := f.grids[title]
	if !ok {
		return nil, errors.New("no such worksheet")
	}
	return g, nil
}

func testServer(t *testing.T) (*Server, *service.Sessions) {
	t.Helper()
	logger := zap.NewNop()

	src := &stubSource{
		titles: []string{"November", "Flights"},
		grids: map[string]models.Grid{
			"November": {
				{"November"},
				{"", "15.11-22.11 NIYET/7d"},
				{"", "Makkah", "Al Kiswah Towers", "15.11.2025", "22.11.2025"},
				{"", "Madinah", "Dar Al Eiman", "22.11.2025", "25.11.2025"},
				{"", "автобус"},
			},
			"Flights": {
				{"Flights"},
				{"", "15.11-22.11 NIYET/7d"},
				{"", "", "15.11.2025", "KC265", "08:00", "11:30", "", "22.11.2025", "KC266", "13:00", "19:30"},
			},
		},
	}
	svc := service.NewService(src, hotels.NewResolverWithYear(logger, 2025), voucher.DefaultValues(), logger)
	sessions := service.NewSessions(16, time.Minute)
	srv := NewServer(DefaultServerConfig(), NewHandlers(svc, sessions, logger), logger)
	return srv, sessions
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestHealthCheck(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestListWorksheets(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/api/worksheets", "")
	require.Equal(t, http.StatusOK, w.Code)

	var titles []string
	raw, _ := json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &titles))
	assert.Equal(t, []string{"November", "Flights"}, titles)
}

func TestListPackages(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/api/worksheets/November/packages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var markers []models.PackageMarker
	raw, _ := json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &markers))
	require.Len(t, markers, 1)
	assert.Equal(t, "15.11-22.11 NIYET/7d", markers[0].Title)
	assert.Equal(t, 1, markers[0].Row)
}

func TestListPackagesUnknownSheet(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/api/worksheets/Nope/packages", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestCollectAndFetchVoucher(t *testing.T) {
	srv, _ := testServer(t)

	body := `{"sheet":"November","package_title":"15.11-22.11 NIYET/7d","row":1}`
	w, resp := doJSON(t, srv, http.MethodPost, "/api/vouchers", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	var vr VoucherResponse
	raw, _ := json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &vr))
	require.NotEmpty(t, vr.SessionID)
	require.NotNil(t, vr.Voucher)
	assert.Equal(t, models.CityMakkah, vr.Voucher.Legs[0].City)
	assert.Equal(t, "Автобус", vr.Voucher.Transfer)
	require.NotNil(t, vr.Voucher.Flights)
	assert.Equal(t, "Рейс KC265", vr.Voucher.Flights.DepartFlight)

	w, resp = doJSON(t, srv, http.MethodGet, "/api/vouchers/"+vr.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/vouchers/"+vr.SessionID+"/preview", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Отель: Al Kiswah Towers")
}

func TestCollectVoucherValidation(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodPost, "/api/vouchers", `{"sheet":"November"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestGetVoucherExpired(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/api/vouchers/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session not found or expired", resp.Error)
}

func TestScheduleMapsEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	w, resp := doJSON(t, srv, http.MethodGet, "/api/schedule/maps", "")
	require.Equal(t, http.StatusOK, w.Code)

	var sm ScheduleMapsResponse
	raw, _ := json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &sm))
	seg, ok := sm.OutboundJeddah["15/11/2025"]
	require.True(t, ok)
	assert.Equal(t, "KC265", seg.Flight)
}
