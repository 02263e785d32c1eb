package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/config"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

type snapshotOutput struct {
	TakenAt          time.Time          `json:"takenAt"`
	ActivePlots      int                `json:"activePlots"`
	Averages         models.Averages    `json:"averages"`
	ZoneStatus       models.StatusTally `json:"zoneStatus"`
	UnavailableZones int                `json:"unavailableZones"`
}

func runSnapshot(ctx context.Context, envFile string, out io.Writer) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.BaseURL, cfg.RequestTimeout, cfg.FetchLimiter())
	snap, err := takeSnapshot(ctx, agro.New(client))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func takeSnapshot(ctx context.Context, a *agro.Agro) (snapshotOutput, error) {
	plots, err := a.Plots.FetchActivePlots(ctx)
	if err != nil {
		return snapshotOutput{}, fmt.Errorf("fetch plots: %w", err)
	}
	zones, err := a.Zones.FetchZones(ctx)
	if err != nil {
		return snapshotOutput{}, fmt.Errorf("fetch zones: %w", err)
	}
	unavailable, err := a.Zones.FetchNotFunctioningZones(ctx)
	if err != nil {
		return snapshotOutput{}, fmt.Errorf("fetch unavailable zones: %w", err)
	}

	return snapshotOutput{
		TakenAt:          time.Now().UTC(),
		ActivePlots:      len(plots),
		Averages:         aggregate.Averages(plots),
		ZoneStatus:       aggregate.TallyByStatus(zones),
		UnavailableZones: len(unavailable),
	}, nil
}
