package agro

import (
	"context"

	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

func historyLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAgroHistory),
	)
}

func (a *Agro) fetchPlotHistory(ctx context.Context, id string) ([]models.HistoryItem, error) {
	dump, err := a.fetchDump(ctx, historyLogger().With(zap.String("plot_id", id)))
	if err != nil {
		return nil, err
	}
	return aggregate.BuildHistory(dump, id), nil
}

func (a *Agro) fetchGeneralHistory(ctx context.Context) ([]models.HistoryItem, error) {
	dump, err := a.fetchDump(ctx, historyLogger())
	if err != nil {
		return nil, err
	}
	return aggregate.BuildGeneralHistory(dump), nil
}

type IHistoryImpl struct {
	agro *Agro
}

func (ih *IHistoryImpl) FetchPlotHistory(ctx context.Context, id string) ([]models.HistoryItem, error) {
	return ih.agro.fetchPlotHistory(ctx, id)
}

func (ih *IHistoryImpl) FetchGeneralHistory(ctx context.Context) ([]models.HistoryItem, error) {
	return ih.agro.fetchGeneralHistory(ctx)
}

func (a *Agro) GetIHistory() IHistory {
	return &IHistoryImpl{agro: a}
}
