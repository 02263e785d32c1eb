package agro

import (
	"context"

	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// fetchZones loads one zone endpoint and converts every row to its display
// form, using fallbackColor for zones without a colour of their own.
func (a *Agro) fetchZones(ctx context.Context, path, fallbackColor string) ([]models.Zone, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAgroZones),
		zap.String("path", path),
	)

	raw, err := a.Api.GetZones(ctx, path)
	if err != nil {
		logger.Error("Error fetching zones", zap.Error(err))
		return nil, err
	}

	zones := common.Mapper(raw, func(z models.ZoneRaw) models.Zone {
		return format.ZoneFromRaw(z, fallbackColor)
	})
	logger.Debug("Zones built", zap.Int("zones", len(zones)))
	return zones, nil
}

type IZonesImpl struct {
	agro *Agro
}

func (iz *IZonesImpl) FetchZones(ctx context.Context) ([]models.Zone, error) {
	return iz.agro.fetchZones(ctx, api.PathZones, format.ColorDefault)
}

func (iz *IZonesImpl) FetchFunctioningZones(ctx context.Context) ([]models.Zone, error) {
	return iz.agro.fetchZones(ctx, api.PathZonesFunctioning, format.ColorFunctioning)
}

func (iz *IZonesImpl) FetchNotFunctioningZones(ctx context.Context) ([]models.Zone, error) {
	return iz.agro.fetchZones(ctx, api.PathZonesNotFunctioning, format.ColorNotFunctioning)
}

func (iz *IZonesImpl) FetchZonesByStatus(ctx context.Context, status string) ([]models.Zone, error) {
	return iz.agro.fetchZones(ctx, api.ZonesByStatusPath(status), format.ColorDefault)
}

func (a *Agro) GetIZones() IZones {
	return &IZonesImpl{agro: a}
}
