package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/db"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

// Refresher is a view that can be refreshed out of band.
type Refresher interface {
	Name() string
	RefreshAsync() <-chan struct{}
}

type Views struct {
	Dashboard        *view.DashboardView
	DeletedPlots     *view.DeletedPlotsView
	Zones            *view.ZonesView
	UnavailableZones *view.UnavailableZonesView
}

func (v Views) refreshers() map[string]Refresher {
	out := map[string]Refresher{}
	if v.Dashboard != nil {
		out[view.ViewDashboard] = v.Dashboard
	}
	if v.DeletedPlots != nil {
		out[view.ViewDeletedPlots] = v.DeletedPlots
	}
	if v.Zones != nil {
		out[view.ViewZones] = v.Zones
	}
	if v.UnavailableZones != nil {
		out[view.ViewUnavailableZones] = v.UnavailableZones
	}
	return out
}

type RestfulServer struct {
	Server *gin.Engine
	Agro   *agro.Agro
	Views  Views
	Store  *db.Store
	// RateLimiterStore throttles manual refreshes per view name. Nil means
	// unlimited.
	RateLimiterStore *api.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(viewName string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(viewName)
	}
}

func (rs *RestfulServer) CheckViewLimiter(viewName string) bool {
	limiter := rs.GetLimiter(viewName)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestLogger())

	rs.Server.GET("/healthz", rs.HealthCheck)

	views := rs.Server.Group("/views")
	{
		views.GET("/dashboard", rs.GetDashboard)
		views.GET("/dashboard/trend", rs.GetDashboardTrend)
		views.GET("/dashboard/export.xlsx", rs.ExportDashboard)

		views.GET("/deleted-plots", rs.GetDeletedPlots)
		views.POST("/deleted-plots/search", rs.SearchDeletedPlots)

		views.GET("/zones", rs.GetZones)
		views.POST("/zones/status", rs.ToggleZoneStatus)
		views.GET("/zones/trend", rs.GetZonesTrend)
		views.GET("/zones/unavailable", rs.GetUnavailableZones)

		views.POST("/:view/refresh", rs.RefreshView)
	}

	rs.Server.GET("/plots/:id", rs.GetPlot)
	rs.Server.GET("/plots/:id/history", rs.GetPlotHistory)
	rs.Server.GET("/history", rs.GetGeneralHistory)
	rs.Server.GET("/zones/estado/:estado", rs.GetZonesByStatus)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (rs *RestfulServer) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: rs.Server,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
