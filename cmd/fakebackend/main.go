package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

func main() {
	var (
		hostPort string
		plots    int
		zones    int
		every    time.Duration
		seed     int64
	)

	rootCmd := &cobra.Command{
		Use:   "fakebackend",
		Short: "Serve randomized plot and zone data on the agro API paths for local development",
		RunE: func(c *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return run(ctx, hostPort, newBackend(seed, plots, zones), every)
		},
	}
	rootCmd.Flags().StringVar(&hostPort, "addr", "127.0.0.1:3001", "Listen address")
	rootCmd.Flags().IntVar(&plots, "plots", 50, "Number of plots")
	rootCmd.Flags().IntVar(&zones, "zones", 30, "Number of irrigation zones")
	rootCmd.Flags().DurationVar(&every, "every", 5*time.Second, "Interval between new readings")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, hostPort string, b *backend, every time.Duration) error {
	logger := common.GetLogger()

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				b.tick(now)
			}
		}
	}()

	srv := &http.Server{Addr: hostPort, Handler: newRouter(b)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Fake backend listening", zap.String("addr", hostPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newRouter(b *backend) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	g := r.Group("/api")
	g.GET(api.PathDump, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.dump())
	})
	g.GET(api.PathZones, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.zonesWhere(func(models.ZoneRaw) bool { return true }))
	})
	g.GET(api.PathZonesFunctioning, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.zonesWhere(func(z models.ZoneRaw) bool {
			return format.StatusKey(z.Status) == format.StatusActive
		}))
	})
	g.GET(api.PathZonesNotFunctioning, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.zonesWhere(func(z models.ZoneRaw) bool {
			key := format.StatusKey(z.Status)
			return key != format.StatusActive && key != format.StatusInactive
		}))
	})
	g.GET(api.PathZones+"/estado/:estado", func(c *gin.Context) {
		want := format.StatusKey(c.Param("estado"))
		c.JSON(http.StatusOK, b.zonesWhere(func(z models.ZoneRaw) bool {
			return format.StatusKey(z.Status) == want
		}))
	})
	return r
}
