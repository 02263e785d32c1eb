package view

import (
	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// DashboardView holds the active plots and their averages.
type DashboardView struct {
	*Controller[models.Plot, models.Averages]
}

type DashboardSnapshot struct {
	State[models.Plot, models.Averages]
	Markers      []Marker `json:"markers"`
	Map          MapView  `json:"map"`
	EmptyMessage string   `json:"emptyMessage,omitempty"`
}

func NewDashboardView(plots agro.IPlots, opts Options) *DashboardView {
	return &DashboardView{
		Controller: NewController(ViewDashboard, plots.FetchActivePlots, aggregate.Averages, MsgLoadDataError, opts),
	}
}

func (v *DashboardView) View() DashboardSnapshot {
	s := v.Snapshot()
	out := DashboardSnapshot{
		State:   s,
		Markers: markers(s.Items, plotMarker),
		Map:     DashboardMap,
	}
	if s.Loaded && len(s.Items) == 0 {
		out.EmptyMessage = MsgNoPlots
	}
	return out
}
