package view

import (
	"context"
	"strings"
	"sync"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// DeletedPlotsView lists the deleted plots with a name search.
type DeletedPlotsView struct {
	*Controller[models.DeletedPlot, int]

	mu     sync.RWMutex
	search string
}

type DeletedPlotsSnapshot struct {
	State[models.DeletedPlot, int]
	Search       string               `json:"search"`
	Visible      []models.DeletedPlot `json:"visible"`
	EmptyMessage string               `json:"emptyMessage,omitempty"`
}

func NewDeletedPlotsView(plots agro.IPlots, opts Options) *DeletedPlotsView {
	load := func(ctx context.Context) ([]models.DeletedPlot, error) {
		deleted, err := plots.FetchDeletedPlots(ctx)
		if err != nil {
			return nil, err
		}
		return Filter(deleted, func(p models.DeletedPlot) bool {
			return strings.TrimSpace(p.Name) != ""
		}), nil
	}
	count := func(items []models.DeletedPlot) int { return len(items) }

	return &DeletedPlotsView{
		Controller: NewController(ViewDeletedPlots, load, count, MsgLoadDataError, opts),
	}
}

func (v *DeletedPlotsView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = strings.TrimSpace(term)
}

func (v *DeletedPlotsView) Search() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.search
}

func (v *DeletedPlotsView) View() DeletedPlotsSnapshot {
	s := v.Snapshot()
	term := v.Search()

	visible := Filter(s.Items, func(p models.DeletedPlot) bool {
		return ContainsFold(p.Name, term)
	})

	out := DeletedPlotsSnapshot{State: s, Search: term, Visible: visible}
	if s.Loaded && len(visible) == 0 {
		out.EmptyMessage = MsgNoDeletedPlots
	}
	return out
}
