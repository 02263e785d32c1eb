package agro

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

var ErrPlotNotFound = errors.New("Parcela no encontrada")

func plotsLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAgroPlots),
	)
}

func (a *Agro) fetchDump(ctx context.Context, logger *zap.Logger) (models.Dump, error) {
	dump, err := a.Api.GetDump(ctx)
	if err != nil {
		logger.Error("Error fetching dump", zap.Error(err))
		return models.Dump{}, err
	}
	return dump, nil
}

func (a *Agro) fetchPlots(ctx context.Context) ([]models.Plot, error) {
	logger := plotsLogger()

	dump, err := a.fetchDump(ctx, logger)
	if err != nil {
		return nil, err
	}

	plots := aggregate.BuildPlots(dump)
	logger.Debug("Plots built", zap.Int("plots", len(plots)), zap.Int("readings", len(dump.Readings)))
	return plots, nil
}

func (a *Agro) fetchPlotByID(ctx context.Context, id string) (models.Plot, error) {
	logger := plotsLogger().With(zap.String("plot_id", id))

	dump, err := a.fetchDump(ctx, logger)
	if err != nil {
		return models.Plot{}, err
	}

	plot, ok := aggregate.BuildPlot(dump, id)
	if !ok {
		logger.Warn("Plot not found")
		return models.Plot{}, ErrPlotNotFound
	}
	return plot, nil
}

func (a *Agro) fetchActivePlots(ctx context.Context) ([]models.Plot, error) {
	plots, err := a.fetchPlots(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := aggregate.PartitionByDeletion(plots)
	return active, nil
}

func (a *Agro) fetchDeletedPlots(ctx context.Context) ([]models.DeletedPlot, error) {
	dump, err := a.fetchDump(ctx, plotsLogger())
	if err != nil {
		return nil, err
	}
	return aggregate.BuildDeletedPlots(dump, a.now()), nil
}

type IPlotsImpl struct {
	agro *Agro
}

func (ip *IPlotsImpl) FetchPlots(ctx context.Context) ([]models.Plot, error) {
	return ip.agro.fetchPlots(ctx)
}

func (ip *IPlotsImpl) FetchPlotByID(ctx context.Context, id string) (models.Plot, error) {
	return ip.agro.fetchPlotByID(ctx, id)
}

func (ip *IPlotsImpl) FetchActivePlots(ctx context.Context) ([]models.Plot, error) {
	return ip.agro.fetchActivePlots(ctx)
}

func (ip *IPlotsImpl) FetchDeletedPlots(ctx context.Context) ([]models.DeletedPlot, error) {
	return ip.agro.fetchDeletedPlots(ctx)
}

func (a *Agro) GetIPlots() IPlots {
	return &IPlotsImpl{agro: a}
}
