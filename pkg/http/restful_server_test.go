package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/agro/mocks"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/db"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
	"iotdef.xyz/agro-dashboard-service/pkg/report"
	_ "iotdef.xyz/agro-dashboard-service/pkg/testing"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

type testServer struct {
	rs      *RestfulServer
	plots   *mocks.MockIPlots
	history *mocks.MockIHistory
	zones   *mocks.MockIZones
}

var activePlots = []models.Plot{
	{ID: "1", Name: "Norte", Latitude: "21.07", Longitude: "-86.86", ReadingValues: models.ReadingValues{Temperature: 20, Humidity: 40}},
	{ID: "2", Name: "Sur", Latitude: "21.05", Longitude: "-86.85", ReadingValues: models.ReadingValues{Temperature: 25, Humidity: 51, Rain: 1}},
}

var allZones = []models.Zone{
	{ID: "1", Name: "A", Status: "Activo", Latitude: "1", Longitude: "2", Color: "#4caf50"},
	{ID: "2", Name: "B", Status: "Mantenimiento", Latitude: "1", Longitude: "2", Color: "#ff9800"},
	{ID: "3", Name: "C", Status: "Activo", Latitude: "1", Longitude: "2", Color: "#4caf50"},
}

func setupTestServer(t *testing.T, limiter *api.RateLimiterStore) *testServer {
	t.Helper()
	common.SetTestLoggerNop()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	ts := &testServer{
		plots:   mocks.NewMockIPlots(ctrl),
		history: mocks.NewMockIHistory(ctrl),
		zones:   mocks.NewMockIZones(ctrl),
	}

	ts.plots.EXPECT().FetchActivePlots(gomock.Any()).Return(activePlots, nil).AnyTimes()
	ts.plots.EXPECT().FetchDeletedPlots(gomock.Any()).Return([]models.DeletedPlot{
		{ID: "7", Name: "Campo Viejo"}, {ID: "8", Name: "Huerto"},
	}, nil).AnyTimes()
	ts.zones.EXPECT().FetchZones(gomock.Any()).Return(allZones, nil).AnyTimes()
	ts.zones.EXPECT().FetchNotFunctioningZones(gomock.Any()).Return(allZones[1:2], nil).AnyTimes()

	agroObj := (&agro.Agro{}).WithServices(agro.ServiceOpts{
		Plots:   ts.plots,
		History: ts.history,
		Zones:   ts.zones,
	})

	views := Views{
		Dashboard:        view.NewDashboardView(agroObj.Plots, view.Options{}),
		DeletedPlots:     view.NewDeletedPlotsView(agroObj.Plots, view.Options{}),
		Zones:            view.NewAllZonesView(agroObj.Zones, view.Options{}),
		UnavailableZones: view.NewUnavailableZonesView(agroObj.Zones, view.Options{}),
	}

	store := db.NewStore(db.GetInstance(db.UseMemorySqliteDialector()))
	require.NoError(t, store.Db.Conn.Exec("DELETE FROM aggregate_snapshots").Error)
	require.NoError(t, store.Db.Conn.Exec("DELETE FROM status_count_snapshots").Error)
	views.Dashboard.Subscribe(store.AveragesObserver())
	views.Zones.Subscribe(store.TallyObserver(view.ViewZones))

	ctx := context.Background()
	views.Dashboard.Refresh(ctx)
	views.DeletedPlots.Refresh(ctx)
	views.Zones.Refresh(ctx)
	views.UnavailableZones.Refresh(ctx)

	ts.rs = &RestfulServer{
		Server:           gin.New(),
		Agro:             agroObj,
		Views:            views,
		Store:            store,
		RateLimiterStore: limiter,
	}
	ts.rs.Setup()

	t.Cleanup(func() {
		views.Dashboard.Stop()
		views.DeletedPlots.Stop()
		views.Zones.Stop()
		views.UnavailableZones.Stop()
	})
	return ts
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.rs.Server.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("GET", "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(api.HeaderRequestID))
}

func TestGetDashboard(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("GET", "/views/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Equal(t, "ready", out["status"])
	assert.Len(t, out["items"], 2)
	assert.Len(t, out["markers"], 2)
	assert.Equal(t, map[string]any{"temperatura": 23.0, "humedad": 46.0, "lluvia": true, "intensidadSol": 0.0}, out["aggregate"])
	assert.Equal(t, 12.0, out["map"].(map[string]any)["zoom"])
}

func TestDashboardTrend(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("GET", "/views/dashboard/trend?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.AggregateSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].ActivePlots)
	assert.Equal(t, 23, rows[0].Temperature)

	w = ts.do("GET", "/views/dashboard/trend?limit=-3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do("GET", "/views/dashboard/trend?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.rs.Views.Dashboard.Refresh(context.Background())

	w = ts.do("GET", "/views/dashboard/trend?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	w = ts.do("GET", "/views/dashboard/trend?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
}

func TestExportDashboard(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("GET", "/views/dashboard/export.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetPlots)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSearchDeletedPlots(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("POST", "/views/deleted-plots/search", SearchRequest{Term: "  campo "})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "campo", out["search"])
	assert.Len(t, out["visible"], 1)

	w = ts.do("POST", "/views/deleted-plots/search", SearchRequest{Term: "zzz"})
	assert.Equal(t, view.MsgNoDeletedPlots, decode(t, w)["emptyMessage"])

	w = ts.do("GET", "/views/deleted-plots", nil)
	assert.Equal(t, "zzz", decode(t, w)["search"], "search term is kept by the view")
}

func TestToggleZoneStatus(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("POST", "/views/zones/status", StatusRequest{Status: "ACTIVO"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "activo", out["selectedStatus"])
	assert.Len(t, out["visible"], 2)
	assert.Len(t, out["outOfService"], 1)

	w = ts.do("POST", "/views/zones/status", StatusRequest{Status: "activo"})
	out = decode(t, w)
	assert.Equal(t, "", out["selectedStatus"])
	assert.Len(t, out["visible"], 3)

	w = ts.do("POST", "/views/zones/status", StatusRequest{Status: "activo"})
	require.Equal(t, http.StatusOK, w.Code)

	for _, blank := range []string{"", "   "} {
		w = ts.do("POST", "/views/zones/status", StatusRequest{Status: blank})
		assert.Equal(t, http.StatusBadRequest, w.Code, "status %q", blank)
	}

	w = ts.do("GET", "/views/zones", nil)
	assert.Equal(t, "activo", decode(t, w)["selectedStatus"], "a rejected body keeps the filter")
}

func TestZonesTrendAndUnavailable(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("GET", "/views/zones/trend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []models.StatusCountSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	w = ts.do("GET", "/views/zones/unavailable", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	require.Len(t, out["rows"], 1)
	assert.Equal(t, "status-maintenance", out["rows"].([]any)[0].(map[string]any)["statusClass"])
}

func TestRefreshView(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do("POST", "/views/dashboard/refresh", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"view":"dashboard","status":"accepted"}`, w.Body.String())

	w = ts.do("POST", "/views/zones-unavailable/refresh", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = ts.do("POST", "/views/nope/refresh", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshViewRateLimited(t *testing.T) {
	ts := setupTestServer(t, api.NewRateLimiterStore(1, 2))

	for i := 0; i < 2; i++ {
		w := ts.do("POST", "/views/zones/refresh", nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
	}
	w := ts.do("POST", "/views/zones/refresh", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = ts.do("POST", "/views/dashboard/refresh", nil)
	assert.Equal(t, http.StatusAccepted, w.Code, "limits are per view")

	time.Sleep(1100 * time.Millisecond)
	w = ts.do("POST", "/views/zones/refresh", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPassthroughRoutes(t *testing.T) {
	ts := setupTestServer(t, nil)

	ts.plots.EXPECT().FetchPlotByID(gomock.Any(), "1").Return(activePlots[0], nil)
	w := ts.do("GET", "/plots/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Norte", decode(t, w)["nombre"])

	ts.plots.EXPECT().FetchPlotByID(gomock.Any(), "99").Return(models.Plot{}, agro.ErrPlotNotFound)
	w = ts.do("GET", "/plots/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Parcela no encontrada", decode(t, w)["error"])

	ts.history.EXPECT().FetchPlotHistory(gomock.Any(), "1").Return([]models.HistoryItem{{ID: "5", PlotID: "1"}}, nil)
	w = ts.do("GET", "/plots/1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"parcelaId":"1"`)

	ts.history.EXPECT().FetchGeneralHistory(gomock.Any()).Return(nil, &api.RequestError{StatusCode: 500, Message: "Error: 500"})
	w = ts.do("GET", "/history", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Error: 500", decode(t, w)["error"])

	ts.zones.EXPECT().FetchZonesByStatus(gomock.Any(), "mantenimiento").Return(allZones[1:2], nil)
	w = ts.do("GET", "/zones/estado/mantenimiento", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"Mantenimiento"`)

	ts.zones.EXPECT().FetchZonesByStatus(gomock.Any(), "activo").Return(nil, errors.New("dial tcp: refused"))
	w = ts.do("GET", "/zones/estado/activo", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	common.SetTestLoggerNop()
	rs := &RestfulServer{Server: gin.New()}
	rs.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rs.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
