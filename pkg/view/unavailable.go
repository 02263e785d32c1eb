package view

import (
	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// UnavailableZonesView lists the zones that are not functioning.
type UnavailableZonesView struct {
	*Controller[models.Zone, models.StatusTally]
}

type UnavailableZone struct {
	models.Zone
	StatusClass string `json:"statusClass"`
}

type UnavailableZonesSnapshot struct {
	State[models.Zone, models.StatusTally]
	Rows         []UnavailableZone `json:"rows"`
	EmptyMessage string            `json:"emptyMessage,omitempty"`
}

func NewUnavailableZonesView(zones agro.IZones, opts Options) *UnavailableZonesView {
	return &UnavailableZonesView{
		Controller: NewController(ViewUnavailableZones, zones.FetchNotFunctioningZones, aggregate.TallyByStatus, MsgUnavailableZonesError, opts),
	}
}

func (v *UnavailableZonesView) View() UnavailableZonesSnapshot {
	s := v.Snapshot()
	out := UnavailableZonesSnapshot{
		State: s,
		Rows: common.Mapper(s.Items, func(z models.Zone) UnavailableZone {
			return UnavailableZone{Zone: z, StatusClass: format.StatusClass(z.Status)}
		}),
	}
	if s.Loaded && len(s.Items) == 0 {
		out.EmptyMessage = MsgNoUnavailableZones
	}
	return out
}
