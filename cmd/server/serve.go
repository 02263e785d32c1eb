package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/config"
	"iotdef.xyz/agro-dashboard-service/pkg/db"
	dashGrpc "iotdef.xyz/agro-dashboard-service/pkg/grpc"
	dashHttp "iotdef.xyz/agro-dashboard-service/pkg/http"
	"iotdef.xyz/agro-dashboard-service/pkg/scheduler"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

type startable interface {
	Start(ctx context.Context, sched scheduler.IScheduler) (<-chan struct{}, error)
	Stop()
}

func runServe(parent context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := common.GetLogger()

	store := db.NewStore(db.GetInstance(db.UseDialector(cfg.DBType, cfg.DbPath)))

	client := api.NewClient(cfg.BaseURL, cfg.RequestTimeout, cfg.FetchLimiter())
	agroCore := agro.New(client)

	opts := view.Options{
		Interval:         cfg.PollInterval,
		RefreshIndicator: cfg.RefreshIndicator,
		LoadTimeout:      cfg.RequestTimeout,
	}
	views := dashHttp.Views{
		Dashboard:        view.NewDashboardView(agroCore.Plots, opts),
		DeletedPlots:     view.NewDeletedPlotsView(agroCore.Plots, opts),
		Zones:            view.NewAllZonesView(agroCore.Zones, opts),
		UnavailableZones: view.NewUnavailableZonesView(agroCore.Zones, opts),
	}
	views.Dashboard.Subscribe(store.AveragesObserver())
	views.Zones.Subscribe(store.TallyObserver(view.ViewZones))
	views.UnavailableZones.Subscribe(store.TallyObserver(view.ViewUnavailableZones))

	reporter := dashGrpc.NewHealthReporter(cfg.RefreshLimiter())
	dashGrpc.Watch(reporter, views.Dashboard.Controller)
	dashGrpc.Watch(reporter, views.DeletedPlots.Controller)
	dashGrpc.Watch(reporter, views.Zones.Controller)
	dashGrpc.Watch(reporter, views.UnavailableZones.Controller)

	sched := scheduler.NewCronScheduler()
	sched.Start()
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		sched.Stop(stopCtx)
	}()

	for _, v := range []startable{views.Dashboard, views.DeletedPlots, views.Zones, views.UnavailableZones} {
		if _, err := v.Start(ctx, sched); err != nil {
			return fmt.Errorf("start view: %w", err)
		}
		defer v.Stop()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	rs := &dashHttp.RestfulServer{
		Server:           gin.New(),
		Agro:             agroCore,
		Views:            views,
		Store:            store,
		RateLimiterStore: cfg.RefreshLimiter(),
	}
	rs.Server.Use(gin.Recovery())
	rs.Setup()

	logger.Info("Dashboard service configured",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.String("db_type", cfg.DBType),
		zap.Float64("fetch_rate", cfg.FetchRate),
		zap.Float64("refresh_rate", cfg.RefreshRate))

	g, gctx := errgroup.WithContext(ctx)

	if cfg.GrpcHostPort != "" {
		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		server := dashGrpc.NewServer(reporter, []string{healthpb.Health_Check_FullMethodName})

		g.Go(func() error {
			logger.Info("Starting gRPC health server on " + cfg.GrpcHostPort)
			return server.Serve(listener)
		})
		g.Go(func() error {
			<-gctx.Done()
			reporter.Shutdown()
			server.GracefulStop()
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("Starting HTTP server on " + cfg.HttpHostPort)
		return rs.Run(gctx, cfg.HttpHostPort)
	})

	err = g.Wait()
	logger.Info("Dashboard service stopped")
	return err
}
