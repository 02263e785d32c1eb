package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
)

func startFake(t *testing.T, b *backend) *agro.Agro {
	t.Helper()
	common.SetTestLoggerNop()
	srv := httptest.NewServer(newRouter(b))
	t.Cleanup(srv.Close)
	return agro.New(api.NewClient(srv.URL+"/api", time.Second, nil))
}

func TestFakeBackendServesDump(t *testing.T) {
	b := newBackend(1, 20, 0)
	a := startFake(t, b)

	all, err := a.Plots.FetchPlots(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 20)

	active, err := a.Plots.FetchActivePlots(context.Background())
	require.NoError(t, err)
	deleted, err := a.Plots.FetchDeletedPlots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, len(active)+len(deleted))
}

func TestFakeBackendTickAddsReadings(t *testing.T) {
	b := newBackend(2, 5, 0)
	before := len(b.dump().Readings)

	b.tick(time.Now().Add(time.Minute))
	assert.Equal(t, before+5, len(b.dump().Readings))
}

func TestFakeBackendZoneFilters(t *testing.T) {
	b := newBackend(3, 0, 40)
	a := startFake(t, b)
	ctx := context.Background()

	all, err := a.Zones.FetchZones(ctx)
	require.NoError(t, err)
	require.Len(t, all, 40)

	working, err := a.Zones.FetchFunctioningZones(ctx)
	require.NoError(t, err)
	for _, z := range working {
		assert.Equal(t, format.StatusActive, format.StatusKey(z.Status))
	}

	broken, err := a.Zones.FetchNotFunctioningZones(ctx)
	require.NoError(t, err)
	for _, z := range broken {
		assert.NotEqual(t, format.StatusActive, format.StatusKey(z.Status))
	}

	outOfService, err := a.Zones.FetchZonesByStatus(ctx, format.StatusOutOfService)
	require.NoError(t, err)
	for _, z := range outOfService {
		assert.Equal(t, format.StatusOutOfService, format.StatusKey(z.Status))
	}
}
