package view

import (
	"context"
	"sync"

	"iotdef.xyz/agro-dashboard-service/pkg/aggregate"
	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// ZonesView holds a zone collection, its status tally and a status filter.
type ZonesView struct {
	*Controller[models.Zone, models.StatusTally]

	mu       sync.RWMutex
	selected string
}

type ZonesSnapshot struct {
	State[models.Zone, models.StatusTally]
	SelectedStatus   string        `json:"selectedStatus"`
	Visible          []models.Zone `json:"visible"`
	OutOfService     []models.Zone `json:"outOfService"`
	Markers          []Marker      `json:"markers"`
	Map              MapView       `json:"map"`
	AttentionMessage string        `json:"attentionMessage,omitempty"`
}

// NewZonesView builds a zones view over any zone source.
func NewZonesView(name string, load Loader[models.Zone], opts Options) *ZonesView {
	return &ZonesView{
		Controller: NewController(name, load, aggregate.TallyByStatus, MsgZonesError, opts),
	}
}

func NewAllZonesView(zones agro.IZones, opts Options) *ZonesView {
	return NewZonesView(ViewZones, zones.FetchZones, opts)
}

func NewZonesByStatusView(zones agro.IZones, status string, opts Options) *ZonesView {
	load := func(ctx context.Context) ([]models.Zone, error) {
		return zones.FetchZonesByStatus(ctx, status)
	}
	return NewZonesView(ViewZones+"/"+format.StatusKey(status), load, opts)
}

// ToggleStatus selects status, or clears the selection when status is
// already selected. It returns the resulting selection.
func (v *ZonesView) ToggleStatus(status string) string {
	key := format.StatusKey(status)

	v.mu.Lock()
	defer v.mu.Unlock()
	if key == "" || key == v.selected {
		v.selected = ""
	} else {
		v.selected = key
	}
	return v.selected
}

func (v *ZonesView) SelectedStatus() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selected
}

func (v *ZonesView) View() ZonesSnapshot {
	s := v.Snapshot()
	selected := v.SelectedStatus()

	visible := s.Items
	if selected != "" {
		visible = Filter(s.Items, func(z models.Zone) bool {
			return format.StatusKey(z.Status) == selected
		})
	}
	outOfService := Filter(s.Items, func(z models.Zone) bool {
		return format.NeedsAttention(z.Status)
	})

	out := ZonesSnapshot{
		State:          s,
		SelectedStatus: selected,
		Visible:        visible,
		OutOfService:   outOfService,
		Markers:        markers(visible, zoneMarker),
		Map:            ZonesMap,
	}
	if s.Loaded && len(outOfService) == 0 {
		out.AttentionMessage = MsgNoAttentionZones
	}
	return out
}
