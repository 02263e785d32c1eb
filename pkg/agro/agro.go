package agro

import (
	"context"
	"time"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

type IPlots interface {
	FetchPlots(ctx context.Context) ([]models.Plot, error)
	FetchPlotByID(ctx context.Context, id string) (models.Plot, error)
	FetchActivePlots(ctx context.Context) ([]models.Plot, error)
	FetchDeletedPlots(ctx context.Context) ([]models.DeletedPlot, error)
}

type IHistory interface {
	FetchPlotHistory(ctx context.Context, id string) ([]models.HistoryItem, error)
	FetchGeneralHistory(ctx context.Context) ([]models.HistoryItem, error)
}

type IZones interface {
	FetchZones(ctx context.Context) ([]models.Zone, error)
	FetchFunctioningZones(ctx context.Context) ([]models.Zone, error)
	FetchNotFunctioningZones(ctx context.Context) ([]models.Zone, error)
	FetchZonesByStatus(ctx context.Context, status string) ([]models.Zone, error)
}

type Agro struct {
	Api     api.IClient
	Now     func() time.Time
	Plots   IPlots
	History IHistory
	Zones   IZones
}

type ServiceOpts struct {
	Plots   IPlots
	History IHistory
	Zones   IZones
}

// New wires the default services over the given backend client.
func New(client api.IClient) *Agro {
	a := &Agro{Api: client, Now: time.Now}
	return a.WithServices(ServiceOpts{
		Plots:   a.GetIPlots(),
		History: a.GetIHistory(),
		Zones:   a.GetIZones(),
	})
}

func (a *Agro) WithServices(opts ServiceOpts) *Agro {
	if opts.Plots != nil {
		a.Plots = opts.Plots
	}
	if opts.History != nil {
		a.History = opts.History
	}
	if opts.Zones != nil {
		a.Zones = opts.Zones
	}
	return a
}

func (a *Agro) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
